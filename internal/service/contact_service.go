package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"fgblog/internal/model"
	"fgblog/internal/patch"
	"fgblog/internal/repository"
	"fgblog/pkg/async"
	"fgblog/pkg/geetest"
	"fgblog/pkg/logger"
	"fgblog/pkg/notify"
)

const (
	notifyTimeout  = 30 * time.Second
	notifyRetryMax = 2
)

// ContactService 联系留言服务
type ContactService struct {
	contactRepo *repository.ContactRepository
	worker      *async.Worker
	notifier    notify.Notifier
	captcha     *geetest.Client
	logger      *logger.Logger
	now         func() time.Time
}

// NewContactService 创建留言服务实例，worker 或 notifier 为 nil 时不发送通知，captcha 为 nil 时不校验验证码
func NewContactService(contactRepo *repository.ContactRepository, worker *async.Worker, notifier notify.Notifier, captcha *geetest.Client, logger *logger.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		worker:      worker,
		notifier:    notifier,
		captcha:     captcha,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock 替换时间来源
func (s *ContactService) WithClock(now func() time.Time) *ContactService {
	s.now = now
	return s
}

// List 获取全部留言
func (s *ContactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	messages, err := s.contactRepo.List(ctx)
	if err != nil {
		s.logger.Error("获取留言列表失败", "error", err)
		return nil, err
	}
	return messages, nil
}

// Create 保存访客留言并异步通知管理员
func (s *ContactService) Create(ctx context.Context, m *model.ContactMessage, captcha *geetest.VerifyParams) error {
	if err := s.verifyCaptcha(ctx, captcha); err != nil {
		return err
	}
	if m.Name == "" || m.Email == "" || strings.TrimSpace(m.Message) == "" {
		return invalid("姓名、邮箱和留言内容不能为空")
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return invalid("邮箱格式不正确")
	}

	m.ID = newID()
	m.CreatedAt = s.now().UTC()
	m.Read = false

	if err := s.contactRepo.Create(ctx, m); err != nil {
		s.logger.Error("保存留言失败", "error", err)
		return err
	}

	s.notifyAdmin(*m)
	return nil
}

func (s *ContactService) verifyCaptcha(ctx context.Context, params *geetest.VerifyParams) error {
	if !s.captcha.Enabled() {
		return nil
	}
	if params == nil {
		return invalid("请先完成人机验证")
	}
	if err := s.captcha.Verify(ctx, *params); err != nil {
		if errors.Is(err, geetest.ErrRejected) {
			return invalid("人机验证未通过")
		}
		s.logger.Error("人机验证请求失败", "error", err)
		return err
	}
	return nil
}

func (s *ContactService) notifyAdmin(m model.ContactMessage) {
	if s.worker == nil || s.notifier == nil {
		return
	}

	data := notify.ContactData{
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
	if m.Subject != nil {
		data.Subject = *m.Subject
	}
	msg, err := notify.ContactMessage(data)
	if err != nil {
		s.logger.Error("生成留言通知失败", "id", m.ID, "error", err)
		return
	}

	err = s.worker.Submit(async.Task{
		ID: "contact_notify_" + m.ID,
		Handler: func(ctx context.Context) error {
			return s.notifier.Notify(ctx, msg)
		},
		Timeout:  notifyTimeout,
		RetryMax: notifyRetryMax,
	})
	if err != nil {
		s.logger.Warn("提交留言通知任务失败", "id", m.ID, "error", err)
	}
}

// Update 部分更新留言
func (s *ContactService) Update(ctx context.Context, id string, p model.ContactPatch) (*model.ContactMessage, error) {
	return patch.Update[model.ContactMessage](ctx, s.contactRepo, id, p)
}

// MarkRead 标记留言为已读
func (s *ContactService) MarkRead(ctx context.Context, id string) (*model.ContactMessage, error) {
	return s.Update(ctx, id, model.ContactPatch{Read: patch.Of(true)})
}

// Delete 删除留言
func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.contactRepo.Delete(ctx, id)
}

// DeleteAll 删除全部留言
func (s *ContactService) DeleteAll(ctx context.Context) error {
	if err := s.contactRepo.DeleteAll(ctx); err != nil {
		s.logger.Error("清空留言失败", "error", err)
		return err
	}
	return nil
}
