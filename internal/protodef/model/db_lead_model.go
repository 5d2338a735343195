package model

import "time"

// LeadDo 线索记录：付费咨询预约或招聘订单，统一存在leads表。
type LeadDo struct {
	ID        int64  `json:"id"`
	RefNumber string `json:"refNumber"`
	Type      string `json:"type"`
	Email     string `json:"email,omitempty"`
	Whatsapp  string `json:"whatsapp"`

	// 预约向导数据
	ServiceType string `json:"serviceType,omitempty"`
	Country     string `json:"country,omitempty"`
	SubType     string `json:"subType,omitempty"`

	// 预约信息
	AppointmentDate string `json:"appointmentDate,omitempty"`
	ArrivalTime     string `json:"arrivalTime"`
	Address         string `json:"address"`

	// 支付与人工审核
	PaymentMethod string `json:"paymentMethod,omitempty"`
	ReceiptURL    string `json:"receiptUrl,omitempty"`
	Status        string `json:"status"`

	// 招聘订单数据，JSON数组字符串，例如 "[1,3,5]"
	CandidateIDs string `json:"candidateIds,omitempty"`

	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type LeadType string
type LeadStatus string
type VerifyAction string

const (
	LeadTypePaidAppointment LeadType = "PAID_APPOINTMENT"
	LeadTypeRecruitment     LeadType = "RECRUITMENT"

	// LeadStatusPending 创建后的初始状态，离开后不会再回到该状态。
	LeadStatusPending     LeadStatus = "Pending Verification"
	LeadStatusApproved    LeadStatus = "Approved"
	LeadStatusRejected    LeadStatus = "Rejected"
	LeadStatusRescheduled LeadStatus = "Rescheduled"

	VerifyActionApprove  VerifyAction = "APPROVE"
	VerifyActionDeny     VerifyAction = "DENY"
	VerifyActionPostpone VerifyAction = "POSTPONE"

	// 预约信息默认值
	DefaultArrivalTime = "09:00 AM"
	DefaultAddress     = "Afroverseas HQ, City Center, Bujumbura"
)

// VerifyLeadResponse verify接口返回体。
type VerifyLeadResponse struct {
	RefNumber string `json:"refNumber"`
	Status    string `json:"status"`
}

// SubmitLeadResponse 提交线索接口返回体。
type SubmitLeadResponse struct {
	LeadID    int64  `json:"leadId"`
	RefNumber string `json:"refNumber"`
	Status    string `json:"status"`
}
