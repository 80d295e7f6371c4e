package service

import (
	"context"
	"strings"

	"fgblog/internal/repository"
	"fgblog/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// CategoryService 分类服务
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	cache        cache
	logger       *logger.Logger
}

// NewCategoryService 创建分类服务实例
func NewCategoryService(categoryRepo *repository.CategoryRepository, redisClient *redis.Client, logger *logger.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cache:        cache{client: redisClient, logger: logger},
		logger:       logger,
	}
}

// List 获取全部分类名
func (s *CategoryService) List(ctx context.Context) ([]string, error) {
	cacheKey := "categories:list"
	var names []string
	if s.cache.get(ctx, cacheKey, &names) {
		return names, nil
	}

	names, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error("获取分类列表失败", "error", err)
		return nil, err
	}

	s.cache.set(ctx, cacheKey, names)
	return names, nil
}

// Create 创建分类，已存在时 created 为 false
func (s *CategoryService) Create(ctx context.Context, name string) (created bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, invalid("分类名不能为空")
	}

	created, err = s.categoryRepo.Create(ctx, name)
	if err != nil {
		s.logger.Error("创建分类失败", "name", name, "error", err)
		return false, err
	}
	if created {
		s.cache.invalidate(ctx, "categories:*")
	}
	return created, nil
}

// Delete 删除分类，文章上的分类名保持不变
func (s *CategoryService) Delete(ctx context.Context, name string) error {
	if err := s.categoryRepo.Delete(ctx, name); err != nil {
		return err
	}
	s.cache.invalidate(ctx, "categories:*")
	return nil
}

// DeleteAll 删除全部分类
func (s *CategoryService) DeleteAll(ctx context.Context) error {
	if err := s.categoryRepo.DeleteAll(ctx); err != nil {
		s.logger.Error("清空分类失败", "error", err)
		return err
	}
	s.cache.invalidate(ctx, "categories:*")
	return nil
}
