package model

import (
	"time"

	"fgblog/internal/patch"
)

// ContactMessage 联系表单留言
type ContactMessage struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Subject   *string   `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	Read      bool      `db:"is_read" json:"read"`
}

// ContactPatch 留言部分更新
type ContactPatch struct {
	Name    patch.Field[string] `json:"name"`
	Email   patch.Field[string] `json:"email"`
	Subject patch.Field[string] `json:"subject"`
	Message patch.Field[string] `json:"message"`
	Read    patch.Field[bool]   `json:"read"`
}

// ApplyTo 实现 patch.Patch
func (p ContactPatch) ApplyTo(m ContactMessage) ContactMessage {
	m.Name = p.Name.Or(m.Name)
	m.Email = p.Email.Or(m.Email)
	m.Subject = p.Subject.OrPtr(m.Subject)
	m.Message = p.Message.Or(m.Message)
	m.Read = p.Read.Or(m.Read)
	return m
}
