package form

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// JobCreateForm 管理员发布职位的参数。可选字段留空时入库用默认文案。
type JobCreateForm struct {
	JobCode       string `form:"jobCode" json:"jobCode"`
	Title         string `form:"title" json:"title"`
	Company       string `form:"company" json:"company"`
	Location      string `form:"location" json:"location"`
	Country       string `form:"country" json:"country"`
	JobType       string `form:"jobType" json:"jobType"`
	SalaryRange   string `form:"salaryRange" json:"salaryRange"`
	Experience    string `form:"experience" json:"experience"`
	Qualification string `form:"qualification" json:"qualification"`
	Description   string `form:"description" json:"description"`
	// 以下为展示用附加信息，留空取默认值
	ProjectDuration string `form:"projectDuration" json:"projectDuration"`
	PassportReq     string `form:"passportReq" json:"passportReq"`
	Benefits        string `form:"benefits" json:"benefits"`
	InterviewInfo   string `form:"interviewInfo" json:"interviewInfo"`
}

func (i *JobCreateForm) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.JobCode, validation.Required, validation.Length(0, 32)),
		validation.Field(&i.Title, validation.Required, validation.Length(0, 128)),
		validation.Field(&i.Company, validation.Required, validation.Length(0, 128)),
		validation.Field(&i.Location, validation.Required),
		validation.Field(&i.Country, validation.Required),
		validation.Field(&i.Experience, validation.Required),
		validation.Field(&i.Qualification, validation.Required),
		validation.Field(&i.Description, validation.Required),
	)
}

// JobListForm 公开职位列表过滤参数。
type JobListForm struct {
	Query   string `form:"q"`
	Country string `form:"country"`
	JobType string `form:"jobType"`
	// All 为true时包含已下架职位。
	All bool `form:"all"`
}
