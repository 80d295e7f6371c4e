// Package notify 在收到新的联系留言时通知站长。
package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"
	"time"

	"fgblog/config"
	"fgblog/pkg/logger"
)

// Message 一条通知
type Message struct {
	Subject string
	Body    string
}

// Notifier 通知渠道
type Notifier interface {
	Name() string
	Notify(ctx context.Context, msg Message) error
}

// Multi 依次发送到所有渠道，返回合并后的错误
type Multi []Notifier

// Name 实现 Notifier
func (m Multi) Name() string { return "multi" }

// Notify 实现 Notifier
func (m Multi) Notify(ctx context.Context, msg Message) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, msg); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", n.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// New 根据配置组装可用渠道，未配置任何渠道时返回空的 Multi
func New(cfg config.NotifyConfig, log *logger.Logger) (Multi, error) {
	var channels Multi

	if cfg.SendGridAPIKey != "" && cfg.AdminEmail != "" {
		channels = append(channels, NewSendGrid(cfg.SendGridAPIKey, cfg.From, cfg.FromName, cfg.AdminEmail))
	}

	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tg, err := NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			return nil, fmt.Errorf("初始化Telegram通知失败: %w", err)
		}
		channels = append(channels, tg)
	}

	if len(channels) == 0 {
		log.Info("未配置留言通知渠道")
	}
	return channels, nil
}

// ContactData 新留言通知的模板数据
type ContactData struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

var contactTemplate = template.Must(template.New("contact").Parse(`新的联系留言
姓名: {{.Name}}
邮箱: {{.Email}}
{{- if .Subject}}
主题: {{.Subject}}
{{- end}}
时间: {{.CreatedAt.Format "2006-01-02 15:04:05"}}

{{.Message}}
`))

// ContactMessage 渲染新留言通知
func ContactMessage(data ContactData) (Message, error) {
	var buf bytes.Buffer
	if err := contactTemplate.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("渲染通知模板失败: %w", err)
	}

	subject := "新的联系留言"
	if data.Subject != "" {
		subject = fmt.Sprintf("新的联系留言 - %s", data.Subject)
	}
	return Message{Subject: subject, Body: buf.String()}, nil
}
