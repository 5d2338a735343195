package model

import "time"

// JobDo 招聘职位记录。除is_active外创建后不再修改。
type JobDo struct {
	ID              int64     `json:"id"`
	JobCode         string    `json:"jobCode"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Country         string    `json:"country"`
	JobType         string    `json:"jobType"`
	SalaryRange     string    `json:"salaryRange"`
	Experience      string    `json:"experience"`
	Qualification   string    `json:"qualification"`
	Description     string    `json:"description"`
	ProjectDuration string    `json:"projectDuration"`
	PassportReq     string    `json:"passportReq"`
	Benefits        string    `json:"benefits"`
	InterviewInfo   string    `json:"interviewInfo"`
	PostedOn        time.Time `json:"postedOn"`
	IsActive        bool      `json:"isActive"`
}

// 职位附加信息默认文案
const (
	DefaultProjectDuration = "Minimum 03 Months"
	DefaultPassportReq     = "ECNR Passport Required"
	DefaultBenefits        = "Free Food, Accommodation, Transportation + OT"
	DefaultInterviewInfo   = "Online / Virtual Interview Shortly"
)

// JobFilter 职位列表过滤条件。
type JobFilter struct {
	// ActiveOnly 为true时仅返回上架职位。
	ActiveOnly bool
	// Query 在title/company上做模糊匹配。
	Query   string
	Country string
	JobType string
}
