package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fgblog/pkg/logger"

	"github.com/robfig/cron/v3"
)

const warmTimeout = 30 * time.Second

// Warmer 可重新加载缓存的服务
type Warmer interface {
	Warm(ctx context.Context) (int, error)
}

// AnnouncementScheduler 定时重建公告列表缓存。
// 时间窗口在读取时按当前时间过滤，与缓存新旧无关
type AnnouncementScheduler struct {
	warmer Warmer
	cron   *cron.Cron
	logger *logger.Logger
	wg     sync.WaitGroup
}

// NewAnnouncementScheduler 创建公告调度器实例，spec 为 cron 表达式，例如 "@every 1m"
func NewAnnouncementScheduler(warmer Warmer, spec string, logger *logger.Logger) (*AnnouncementScheduler, error) {
	s := &AnnouncementScheduler{
		warmer: warmer,
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger,
	}
	if _, err := s.cron.AddFunc(spec, s.warm); err != nil {
		return nil, fmt.Errorf("无效的定时任务表达式 %q: %w", spec, err)
	}
	return s, nil
}

// Start 启动调度器，并立即运行一次
func (s *AnnouncementScheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.warm()
	}()
	s.cron.Start()
	s.logger.Info("公告调度器启动")
}

// Stop 停止调度器并等待正在运行的任务结束，包括启动时的首次运行
func (s *AnnouncementScheduler) Stop() {
	<-s.cron.Stop().Done()
	s.wg.Wait()
	s.logger.Info("公告调度器停止")
}

func (s *AnnouncementScheduler) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()

	count, err := s.warmer.Warm(ctx)
	if err != nil {
		s.logger.Error("重建公告缓存失败", "error", err)
		return
	}
	s.logger.Debug("公告缓存已重建", "count", count)
}
