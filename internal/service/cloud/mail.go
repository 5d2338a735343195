package cloud

import (
	"fmt"
	"io"

	"github.com/qiniu/x/xlog"
	gomail "gopkg.in/gomail.v2"

	"github.com/solutions/afroverseas/internal/common/utils"
)

// Mail 一封待发送的通知邮件，单收件人，HTML正文，最多一个附件。
type Mail struct {
	To             string
	Subject        string
	HTMLBody       string
	AttachmentName string
	Attachment     []byte
}

type MailSender interface {
	SendMail(xl *xlog.Logger, mail *Mail) error
}

// NewMailSender 创建邮件发送器。
func NewMailSender(conf utils.Config) (MailSender, error) {
	switch conf.Mail.Provider {
	// 模拟的邮件发送器，仅供测试使用。
	case "mock":
		return &mockMailSender{}, nil
	case "smtp", "":
		return NewSMTPMailSender(conf), nil
	default:
		return nil, fmt.Errorf("unsupported mail provider %s", conf.Mail.Provider)
	}
}

type mockMailSender struct {
}

func (m *mockMailSender) SendMail(xl *xlog.Logger, mail *Mail) error {
	xl.Debugf("mock: send mail %q to %s", mail.Subject, mail.To)
	return nil
}

// SMTPMailSender 通过配置的SMTP中继发送邮件。
type SMTPMailSender struct {
	conf utils.MailConfig
	xl   *xlog.Logger
}

func NewSMTPMailSender(conf utils.Config) *SMTPMailSender {
	return &SMTPMailSender{
		conf: *conf.Mail,
		xl:   xlog.New("smtp-mail-sender"),
	}
}

func (s *SMTPMailSender) SendMail(xl *xlog.Logger, mail *Mail) error {
	if xl == nil {
		xl = s.xl
	}
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.conf.From, s.conf.FromName)
	m.SetHeader("To", mail.To)
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/html", mail.HTMLBody)
	if len(mail.Attachment) > 0 {
		m.Attach(mail.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(mail.Attachment)
			return err
		}))
	}

	d := gomail.NewDialer(s.conf.SMTPHost, s.conf.SMTPPort, s.conf.Username, s.conf.Password)
	// 465端口走SMTPS
	if s.conf.SMTPPort == 465 {
		d.SSL = true
	}
	if err := d.DialAndSend(m); err != nil {
		xl.Errorf("failed to send mail to %s, error %v", mail.To, err)
		return err
	}
	xl.Infof("mail %q sent to %s", mail.Subject, mail.To)
	return nil
}
