package repository

import (
	"context"

	"fgblog/internal/model"

	"github.com/jmoiron/sqlx"
)

// AnnouncementRepository 公告存储库
type AnnouncementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository 创建公告存储库实例
func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// List 获取全部公告，按优先级、创建时间倒序
func (r *AnnouncementRepository) List(ctx context.Context) ([]model.Announcement, error) {
	announcements := []model.Announcement{}
	query := "SELECT * FROM announcements ORDER BY priority DESC, created_at DESC"
	if err := r.db.SelectContext(ctx, &announcements, query); err != nil {
		return nil, err
	}
	return announcements, nil
}

// GetByID 根据ID获取公告
func (r *AnnouncementRepository) GetByID(ctx context.Context, id string) (*model.Announcement, error) {
	var announcement model.Announcement
	query := r.db.Rebind("SELECT * FROM announcements WHERE id = ?")
	if err := r.db.GetContext(ctx, &announcement, query, id); err != nil {
		return nil, notFound(err)
	}
	return &announcement, nil
}

// Create 创建公告
func (r *AnnouncementRepository) Create(ctx context.Context, a *model.Announcement) error {
	query := r.db.Rebind(`
		INSERT INTO announcements (
			id, title, message, start_at, end_at, is_active, is_banner,
			priority, theme, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.Title, a.Message, a.StartAt, a.EndAt, a.IsActive, a.IsBanner,
		a.Priority, a.Theme, a.CreatedAt, a.UpdatedAt)
	return err
}

// Update 写回合并后的公告
func (r *AnnouncementRepository) Update(ctx context.Context, id string, a *model.Announcement) error {
	query := r.db.Rebind(`
		UPDATE announcements
		SET title = ?, message = ?, start_at = ?, end_at = ?, is_active = ?,
			is_banner = ?, priority = ?, theme = ?, updated_at = ?
		WHERE id = ?
	`)
	_, err := r.db.ExecContext(ctx, query,
		a.Title, a.Message, a.StartAt, a.EndAt, a.IsActive,
		a.IsBanner, a.Priority, a.Theme, a.UpdatedAt, id)
	return err
}

// Delete 删除公告
func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	query := r.db.Rebind("DELETE FROM announcements WHERE id = ?")
	return affected(r.db.ExecContext(ctx, query, id))
}

// DeleteAll 删除全部公告
func (r *AnnouncementRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM announcements")
	return err
}
