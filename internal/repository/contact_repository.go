package repository

import (
	"context"

	"fgblog/internal/model"

	"github.com/jmoiron/sqlx"
)

// ContactRepository 留言存储库
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository 创建留言存储库实例
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// List 获取全部留言，按创建时间倒序
func (r *ContactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	messages := []model.ContactMessage{}
	if err := r.db.SelectContext(ctx, &messages, "SELECT * FROM contacts ORDER BY created_at DESC"); err != nil {
		return nil, err
	}
	return messages, nil
}

// GetByID 根据ID获取留言
func (r *ContactRepository) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	var message model.ContactMessage
	query := r.db.Rebind("SELECT * FROM contacts WHERE id = ?")
	if err := r.db.GetContext(ctx, &message, query, id); err != nil {
		return nil, notFound(err)
	}
	return &message, nil
}

// Create 保存留言
func (r *ContactRepository) Create(ctx context.Context, m *model.ContactMessage) error {
	query := r.db.Rebind(`
		INSERT INTO contacts (id, name, email, subject, message, created_at, is_read)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Name, m.Email, m.Subject, m.Message, m.CreatedAt, m.Read)
	return err
}

// Update 写回合并后的留言
func (r *ContactRepository) Update(ctx context.Context, id string, m *model.ContactMessage) error {
	query := r.db.Rebind(`
		UPDATE contacts
		SET is_read = ?, name = ?, email = ?, subject = ?, message = ?
		WHERE id = ?
	`)
	_, err := r.db.ExecContext(ctx, query, m.Read, m.Name, m.Email, m.Subject, m.Message, id)
	return err
}

// Delete 删除留言
func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	query := r.db.Rebind("DELETE FROM contacts WHERE id = ?")
	return affected(r.db.ExecContext(ctx, query, id))
}

// DeleteAll 删除全部留言
func (r *ContactRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM contacts")
	return err
}
