package service

import (
	"context"

	"fgblog/internal/model"
	"fgblog/internal/repository"
	"fgblog/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const recentPostLimit = 5

// DashboardService 后台概览服务
type DashboardService struct {
	statsRepo *repository.StatsRepository
	postRepo  *repository.PostRepository
	logger    *logger.Logger
}

// NewDashboardService 创建后台概览服务实例
func NewDashboardService(statsRepo *repository.StatsRepository, postRepo *repository.PostRepository, logger *logger.Logger) *DashboardService {
	return &DashboardService{
		statsRepo: statsRepo,
		postRepo:  postRepo,
		logger:    logger,
	}
}

// Get 并发获取统计数据和最新文章
func (s *DashboardService) Get(ctx context.Context) (*model.Dashboard, error) {
	var (
		stats  *model.DashboardStats
		recent []model.Post
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.statsRepo.GetStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.postRepo.Recent(gctx, recentPostLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("获取后台概览失败", "error", err)
		return nil, err
	}

	return &model.Dashboard{Stats: *stats, RecentPosts: recent}, nil
}
