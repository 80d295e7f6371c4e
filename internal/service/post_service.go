package service

import (
	"context"
	"strings"
	"time"

	"fgblog/internal/model"
	"fgblog/internal/patch"
	"fgblog/internal/repository"
	"fgblog/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// PostService 文章服务
type PostService struct {
	postRepo *repository.PostRepository
	cache    cache
	logger   *logger.Logger
	now      func() time.Time
}

// NewPostService 创建文章服务实例
func NewPostService(postRepo *repository.PostRepository, redisClient *redis.Client, logger *logger.Logger) *PostService {
	return &PostService{
		postRepo: postRepo,
		cache:    cache{client: redisClient, logger: logger},
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock 替换时间来源
func (s *PostService) WithClock(now func() time.Time) *PostService {
	s.now = now
	return s
}

// List 获取全部文章
func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	cacheKey := "posts:list"
	var posts []model.Post
	if s.cache.get(ctx, cacheKey, &posts) {
		return posts, nil
	}

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		s.logger.Error("获取文章列表失败", "error", err)
		return nil, err
	}

	s.cache.set(ctx, cacheKey, posts)
	return posts, nil
}

// Get 根据ID获取文章
func (s *PostService) Get(ctx context.Context, id string) (*model.Post, error) {
	cacheKey := "posts:detail:" + id
	var post model.Post
	if s.cache.get(ctx, cacheKey, &post) {
		return &post, nil
	}

	found, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.set(ctx, cacheKey, found)
	return found, nil
}

// Create 创建文章，未提供ID和创建时间时自动生成
func (s *PostService) Create(ctx context.Context, post *model.Post) error {
	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" {
		return invalid("标题不能为空")
	}
	if post.ID == "" {
		post.ID = newID()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = s.now().UTC()
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		s.logger.Error("创建文章失败", "id", post.ID, "error", err)
		return err
	}
	s.cache.invalidate(ctx, "posts:*")
	return nil
}

// Update 部分更新文章
func (s *PostService) Update(ctx context.Context, id string, p model.PostPatch) (*model.Post, error) {
	post, err := patch.Update[model.Post](ctx, s.postRepo, id, p, func(post *model.Post) error {
		if strings.TrimSpace(post.Title) == "" {
			return invalid("标题不能为空")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, "posts:*")
	return post, nil
}

// Delete 删除文章
func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.invalidate(ctx, "posts:*")
	return nil
}

// DeleteAll 删除全部文章
func (s *PostService) DeleteAll(ctx context.Context) error {
	if err := s.postRepo.DeleteAll(ctx); err != nil {
		s.logger.Error("清空文章失败", "error", err)
		return err
	}
	s.cache.invalidate(ctx, "posts:*")
	return nil
}

// IncrementView 文章浏览量加一，返回新的浏览量
func (s *PostService) IncrementView(ctx context.Context, id string) (int, error) {
	count, err := s.postRepo.IncrementView(ctx, id)
	if err != nil {
		return 0, err
	}
	s.cache.invalidate(ctx, "posts:*")
	return count, nil
}
