package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGrid 通过SendGrid发送邮件通知
type SendGrid struct {
	client  *sendgrid.Client
	from    *mail.Email
	adminTo *mail.Email
}

// NewSendGrid 创建SendGrid通知渠道
func NewSendGrid(apiKey, from, fromName, adminEmail string) *SendGrid {
	return &SendGrid{
		client:  sendgrid.NewSendClient(apiKey),
		from:    mail.NewEmail(fromName, from),
		adminTo: mail.NewEmail("", adminEmail),
	}
}

// Name 实现 Notifier
func (s *SendGrid) Name() string { return "sendgrid" }

// Notify 实现 Notifier
func (s *SendGrid) Notify(ctx context.Context, msg Message) error {
	message := mail.NewSingleEmail(s.from, msg.Subject, s.adminTo, msg.Body, "")
	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid error: status %d", resp.StatusCode)
	}
	return nil
}
