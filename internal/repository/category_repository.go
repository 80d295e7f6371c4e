package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// CategoryRepository 分类存储库
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository 创建分类存储库实例
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List 获取全部分类名称，按名称排序
func (r *CategoryRepository) List(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := r.db.SelectContext(ctx, &names, "SELECT name FROM categories ORDER BY name"); err != nil {
		return nil, err
	}
	return names, nil
}

// Create 创建分类，分类已存在时返回 created=false
func (r *CategoryRepository) Create(ctx context.Context, name string) (created bool, err error) {
	var query string
	if r.db.DriverName() == "mysql" {
		query = "INSERT IGNORE INTO categories (name) VALUES (?)"
	} else {
		query = "INSERT INTO categories (name) VALUES (?) ON CONFLICT (name) DO NOTHING"
	}

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), name)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete 删除分类
func (r *CategoryRepository) Delete(ctx context.Context, name string) error {
	query := r.db.Rebind("DELETE FROM categories WHERE name = ?")
	return affected(r.db.ExecContext(ctx, query, name))
}

// DeleteAll 删除全部分类
func (r *CategoryRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM categories")
	return err
}
