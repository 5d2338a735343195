package db

import (
	"fmt"

	"github.com/qiniu/x/xlog"

	"github.com/solutions/afroverseas/internal/protodef/model"
	"github.com/solutions/afroverseas/internal/service/cloud"
)

// 通知邮件文案。正文为简单HTML，变量都来自已提交的线索记录。

func acknowledgementMail(lead *model.LeadDo) *cloud.Mail {
	body := fmt.Sprintf(`<html><body>
<h2>We have received your request</h2>
<p>Dear client, your request has been received and is pending verification.</p>
<p><b>Reference Number:</b> %s</p>
<p>Please keep this reference number. You will be notified by email once our
team has verified your payment.</p>
<p>Afroverseas Group</p>
</body></html>`, lead.RefNumber)
	return &cloud.Mail{
		To:       lead.Email,
		Subject:  fmt.Sprintf("Request Received - %s", lead.RefNumber),
		HTMLBody: body,
	}
}

func approvalMail(lead *model.LeadDo) *cloud.Mail {
	body := fmt.Sprintf(`<html><body>
<h2>Your appointment is confirmed</h2>
<p><b>Reference Number:</b> %s</p>
<p><b>Service:</b> %s</p>
<p><b>Date:</b> %s</p>
<p><b>Arrival Time:</b> %s</p>
<p><b>Venue:</b> %s</p>
<p>Please present the attached QR ticket at the entrance.</p>
<p>Afroverseas Group</p>
</body></html>`, lead.RefNumber, lead.ServiceType, lead.AppointmentDate, lead.ArrivalTime, lead.Address)
	return &cloud.Mail{
		To:       lead.Email,
		Subject:  fmt.Sprintf("Appointment Confirmed - %s", lead.RefNumber),
		HTMLBody: body,
	}
}

func rejectionMail(lead *model.LeadDo) *cloud.Mail {
	body := fmt.Sprintf(`<html><body>
<h2>Payment verification failed</h2>
<p><b>Reference Number:</b> %s</p>
<p>We could not verify the payment for your request. If you believe this is
a mistake, please contact our support with your reference number.</p>
<p>Afroverseas Group</p>
</body></html>`, lead.RefNumber)
	return &cloud.Mail{
		To:       lead.Email,
		Subject:  fmt.Sprintf("Request Update - %s", lead.RefNumber),
		HTMLBody: body,
	}
}

func rescheduleMail(lead *model.LeadDo, oldDate string) *cloud.Mail {
	body := fmt.Sprintf(`<html><body>
<h2>Your appointment has been rescheduled</h2>
<p><b>Reference Number:</b> %s</p>
<p><b>Previous Date:</b> %s</p>
<p><b>New Date:</b> %s</p>
<p><b>Arrival Time:</b> %s</p>
<p><b>Venue:</b> %s</p>
<p>Afroverseas Group</p>
</body></html>`, lead.RefNumber, oldDate, lead.AppointmentDate, lead.ArrivalTime, lead.Address)
	return &cloud.Mail{
		To:       lead.Email,
		Subject:  fmt.Sprintf("Appointment Rescheduled - %s", lead.RefNumber),
		HTMLBody: body,
	}
}

// AcknowledgeLead 提交成功后给客户发确认收到邮件，尽力而为。
// 线索此时已落库，投递失败只打日志，不影响提交结果。
func (s *LeadService) AcknowledgeLead(xl *xlog.Logger, lead *model.LeadDo) {
	if xl == nil {
		xl = s.xl
	}
	if lead.Email == "" || s.notify == nil {
		return
	}
	s.notify.Enqueue(xl, acknowledgementMail(lead))
}
