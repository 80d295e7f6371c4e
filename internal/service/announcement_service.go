package service

import (
	"context"
	"strings"
	"time"

	"fgblog/internal/banner"
	"fgblog/internal/model"
	"fgblog/internal/patch"
	"fgblog/internal/repository"
	"fgblog/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const announcementListKey = "announcements:list"

// AnnouncementService 公告服务
type AnnouncementService struct {
	announcementRepo *repository.AnnouncementRepository
	dismissals       *banner.Dismissals
	cache            cache
	logger           *logger.Logger
	now              func() time.Time
}

// NewAnnouncementService 创建公告服务实例
func NewAnnouncementService(announcementRepo *repository.AnnouncementRepository, dismissals *banner.Dismissals, redisClient *redis.Client, logger *logger.Logger) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		dismissals:       dismissals,
		cache:            cache{client: redisClient, logger: logger},
		logger:           logger,
		now:              time.Now,
	}
}

// WithClock 替换时间来源
func (s *AnnouncementService) WithClock(now func() time.Time) *AnnouncementService {
	s.now = now
	return s
}

// List 获取全部公告，按优先级和创建时间倒序
func (s *AnnouncementService) List(ctx context.Context) ([]model.Announcement, error) {
	var announcements []model.Announcement
	if s.cache.get(ctx, announcementListKey, &announcements) {
		return announcements, nil
	}
	return s.load(ctx)
}

func (s *AnnouncementService) load(ctx context.Context) ([]model.Announcement, error) {
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		s.logger.Error("获取公告列表失败", "error", err)
		return nil, err
	}
	s.cache.set(ctx, announcementListKey, announcements)
	return announcements, nil
}

// ListActive 获取当前处于展示时间窗口内的启用公告
func (s *AnnouncementService) ListActive(ctx context.Context) ([]model.Announcement, error) {
	announcements, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return banner.ActiveAt(announcements, s.now()), nil
}

// Get 根据ID获取公告
func (s *AnnouncementService) Get(ctx context.Context, id string) (*model.Announcement, error) {
	return s.announcementRepo.GetByID(ctx, id)
}

// Banner 返回访客当前应看到的横幅公告，没有时返回 nil。
// dismissed 非 nil 时代替已保存的关闭记录
func (s *AnnouncementService) Banner(ctx context.Context, visitorID string, dismissed *string) (*model.Announcement, error) {
	announcements, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var dismissedID string
	switch {
	case dismissed != nil:
		dismissedID = *dismissed
	case visitorID != "" && s.dismissals != nil:
		dismissedID, err = s.dismissals.Get(ctx, visitorID)
		if err != nil {
			// 读取失败时按未关闭处理
			s.logger.Warn("读取横幅关闭记录失败", "visitor", visitorID, "error", err)
			dismissedID = ""
		}
	}

	return banner.Resolve(announcements, dismissedID, s.now()), nil
}

// Dismiss 记录访客关闭了横幅公告 id
func (s *AnnouncementService) Dismiss(ctx context.Context, visitorID, id string) error {
	if visitorID == "" || id == "" {
		return invalid("缺少访客标识或公告ID")
	}
	if s.dismissals == nil {
		return nil
	}
	return s.dismissals.Dismiss(ctx, visitorID, id)
}

// Create 创建公告
func (s *AnnouncementService) Create(ctx context.Context, a *model.Announcement) error {
	if err := checkAnnouncement(a); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = newID()
	}
	now := s.now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	if err := s.announcementRepo.Create(ctx, a); err != nil {
		s.logger.Error("创建公告失败", "id", a.ID, "error", err)
		return err
	}
	s.InvalidateCache(ctx)
	return nil
}

// Update 部分更新公告，未提供 updatedAt 时记为当前时间
func (s *AnnouncementService) Update(ctx context.Context, id string, p model.AnnouncementPatch) (*model.Announcement, error) {
	if !p.UpdatedAt.Set {
		p.UpdatedAt = patch.Of(s.now().UTC())
	}

	a, err := patch.Update[model.Announcement](ctx, s.announcementRepo, id, p, checkAnnouncement)
	if err != nil {
		return nil, err
	}
	s.InvalidateCache(ctx)
	return a, nil
}

// Delete 删除公告
func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	if err := s.announcementRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.InvalidateCache(ctx)
	return nil
}

// DeleteAll 删除全部公告
func (s *AnnouncementService) DeleteAll(ctx context.Context) error {
	if err := s.announcementRepo.DeleteAll(ctx); err != nil {
		s.logger.Error("清空公告失败", "error", err)
		return err
	}
	s.InvalidateCache(ctx)
	return nil
}

// InvalidateCache 使公告缓存失效
func (s *AnnouncementService) InvalidateCache(ctx context.Context) {
	s.cache.invalidate(ctx, "announcements:*")
}

// Warm 重新加载公告缓存，返回公告数量
func (s *AnnouncementService) Warm(ctx context.Context) (int, error) {
	announcements, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(announcements), nil
}

// checkAnnouncement 校验必填项和时间窗口，并把未知主题归一为 accent
func checkAnnouncement(a *model.Announcement) error {
	a.Title = strings.TrimSpace(a.Title)
	a.Message = strings.TrimSpace(a.Message)
	if a.Title == "" || a.Message == "" {
		return invalid("标题和内容不能为空")
	}
	if a.StartAt.IsZero() {
		return invalid("开始时间不能为空")
	}
	if a.EndAt != nil && a.EndAt.IsZero() {
		a.EndAt = nil
	}
	if a.EndAt != nil && a.EndAt.Before(a.StartAt) {
		return invalid("结束时间不能早于开始时间")
	}
	a.Theme = a.Theme.OrDefault()
	return nil
}
