package form

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AdminLoginForm 管理员登录参数。
type AdminLoginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func (i *AdminLoginForm) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Username, validation.Required),
		validation.Field(&i.Password, validation.Required),
	)
}
