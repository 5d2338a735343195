package form

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CandidateCreateForm 管理员上传候选人档案的参数。
// 简历与视频文件单独从multipart里取，先落盘再入库。
type CandidateCreateForm struct {
	Name            string `form:"name"`
	Skills          string `form:"skills"`
	ExperienceYears int    `form:"experienceYears"`
	Whatsapp        string `form:"whatsapp"`
	IsFeatured      bool   `form:"isFeatured"`
}

func (i *CandidateCreateForm) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Name, validation.Required, validation.Length(0, 128)),
		validation.Field(&i.Skills, validation.Required),
		validation.Field(&i.ExperienceYears, validation.Min(0), validation.Max(60)),
		validation.Field(&i.Whatsapp, validation.Required, validation.Length(0, 32)),
	)
}
