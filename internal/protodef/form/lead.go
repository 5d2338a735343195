package form

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/solutions/afroverseas/internal/protodef/model"
)

var (
	LeadTypeMap = map[string]string{
		string(model.LeadTypePaidAppointment): "付费预约",
		string(model.LeadTypeRecruitment):     "招聘订单",
	}
	VerifyActionMap = map[string]string{
		string(model.VerifyActionApprove):  "通过",
		string(model.VerifyActionDeny):     "拒绝",
		string(model.VerifyActionPostpone): "改期",
	}
	ErrLeadTypeMsg     = fmt.Errorf("type must be PAID_APPOINTMENT or RECRUITMENT")
	ErrVerifyActionMsg = fmt.Errorf("action must be one of APPROVE, DENY, POSTPONE")
	ErrPostponeDateMsg = fmt.Errorf("newDate is required for POSTPONE")
)

// LeadSubmitForm 五步向导与招聘购物车的提交参数。回执文件单独从multipart里取。
type LeadSubmitForm struct {
	Type          string `form:"type"`
	Whatsapp      string `form:"whatsapp"`
	Email         string `form:"email"`
	Service       string `form:"service"`
	Country       string `form:"country"`
	SubType       string `form:"subType"`
	Date          string `form:"date"`
	PaymentMethod string `form:"paymentMethod"`
	// CandidateIds JSON数组字符串，例如 "[1,3,5]"
	CandidateIds string `form:"candidateIds"`
	Message      string `form:"message"`
}

func (i *LeadSubmitForm) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.Type, validation.Required),
		validation.Field(&i.Whatsapp, validation.Required, validation.Length(0, 32)),
		validation.Field(&i.Email, validation.Length(0, 128)),
	)
	if err == nil {
		if _, ok := LeadTypeMap[i.Type]; !ok {
			return ErrLeadTypeMsg
		}
	}
	return err
}

// LeadVerifyForm 管理员审核参数。未知action一律报错，不做静默成功。
type LeadVerifyForm struct {
	Action  string `form:"action" json:"action"`
	NewDate string `form:"newDate" json:"newDate"`
}

func (i *LeadVerifyForm) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.Action, validation.Required),
	)
	if err != nil {
		return err
	}
	if _, ok := VerifyActionMap[i.Action]; !ok {
		return ErrVerifyActionMsg
	}
	if i.Action == string(model.VerifyActionPostpone) && i.NewDate == "" {
		return ErrPostponeDateMsg
	}
	return nil
}
