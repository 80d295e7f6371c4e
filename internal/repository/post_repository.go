package repository

import (
	"context"

	"fgblog/internal/model"

	"github.com/jmoiron/sqlx"
)

// PostRepository 文章存储库
type PostRepository struct {
	db *sqlx.DB
}

// NewPostRepository 创建文章存储库实例
func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

// List 获取全部文章，按创建时间倒序
func (r *PostRepository) List(ctx context.Context) ([]model.Post, error) {
	posts := []model.Post{}
	err := r.db.SelectContext(ctx, &posts, "SELECT * FROM posts ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Recent 获取最新的 limit 篇文章
func (r *PostRepository) Recent(ctx context.Context, limit int) ([]model.Post, error) {
	posts := []model.Post{}
	query := r.db.Rebind("SELECT * FROM posts ORDER BY created_at DESC LIMIT ?")
	if err := r.db.SelectContext(ctx, &posts, query, limit); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID 根据ID获取文章
func (r *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	query := r.db.Rebind("SELECT * FROM posts WHERE id = ?")
	if err := r.db.GetContext(ctx, &post, query, id); err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

// Create 创建文章
func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	query := r.db.Rebind(`
		INSERT INTO posts (id, title, content, excerpt, category, author, created_at, view_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, post.Excerpt, post.Category, post.Author, post.CreatedAt, post.ViewCount)
	return err
}

// Update 写回合并后的文章，调用方需先确认文章存在
func (r *PostRepository) Update(ctx context.Context, id string, post *model.Post) error {
	query := r.db.Rebind(`
		UPDATE posts
		SET title = ?, content = ?, excerpt = ?, category = ?, author = ?, view_count = ?
		WHERE id = ?
	`)
	_, err := r.db.ExecContext(ctx, query,
		post.Title, post.Content, post.Excerpt, post.Category, post.Author, post.ViewCount, id)
	return err
}

// Delete 删除文章
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	query := r.db.Rebind("DELETE FROM posts WHERE id = ?")
	return affected(r.db.ExecContext(ctx, query, id))
}

// DeleteAll 删除全部文章
func (r *PostRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM posts")
	return err
}

// IncrementView 浏览数加一并返回新的浏览数
func (r *PostRepository) IncrementView(ctx context.Context, id string) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	update := tx.Rebind("UPDATE posts SET view_count = COALESCE(view_count, 0) + 1 WHERE id = ?")
	if err := affected(tx.ExecContext(ctx, update, id)); err != nil {
		return 0, err
	}

	var count int
	if err := tx.GetContext(ctx, &count, tx.Rebind("SELECT view_count FROM posts WHERE id = ?"), id); err != nil {
		return 0, notFound(err)
	}
	return count, tx.Commit()
}
