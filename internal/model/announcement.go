package model

import (
	"time"

	"fgblog/internal/patch"
)

// Theme 公告横幅主题
type Theme string

const (
	ThemeAccent  Theme = "accent"
	ThemeSuccess Theme = "success"
	ThemeWarning Theme = "warning"
	ThemeInfo    Theme = "info"
)

// Valid 是否为已知主题
func (t Theme) Valid() bool {
	switch t {
	case ThemeAccent, ThemeSuccess, ThemeWarning, ThemeInfo:
		return true
	}
	return false
}

// OrDefault 未知或为空时回落到 accent
func (t Theme) OrDefault() Theme {
	if t.Valid() {
		return t
	}
	return ThemeAccent
}

// Announcement 公告模型
type Announcement struct {
	ID        string     `db:"id" json:"id"`
	Title     string     `db:"title" json:"title"`
	Message   string     `db:"message" json:"message"`
	StartAt   time.Time  `db:"start_at" json:"startAt"`
	EndAt     *time.Time `db:"end_at" json:"endAt"`
	IsActive  bool       `db:"is_active" json:"isActive"`
	IsBanner  bool       `db:"is_banner" json:"isBanner"`
	Priority  int        `db:"priority" json:"priority"`
	Theme     Theme      `db:"theme" json:"theme"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
}

// AnnouncementPatch 公告部分更新
type AnnouncementPatch struct {
	Title     patch.Field[string]    `json:"title"`
	Message   patch.Field[string]    `json:"message"`
	StartAt   patch.Field[time.Time] `json:"startAt"`
	EndAt     patch.Field[time.Time] `json:"endAt"`
	IsActive  patch.Field[bool]      `json:"isActive"`
	IsBanner  patch.Field[bool]      `json:"isBanner"`
	Priority  patch.Field[int]       `json:"priority"`
	Theme     patch.Field[Theme]     `json:"theme"`
	UpdatedAt patch.Field[time.Time] `json:"updatedAt"`
}

// ApplyTo 实现 patch.Patch
func (p AnnouncementPatch) ApplyTo(a Announcement) Announcement {
	a.Title = p.Title.Or(a.Title)
	a.Message = p.Message.Or(a.Message)
	a.StartAt = p.StartAt.Or(a.StartAt)
	a.EndAt = p.EndAt.OrPtr(a.EndAt)
	a.IsActive = p.IsActive.Or(a.IsActive)
	a.IsBanner = p.IsBanner.Or(a.IsBanner)
	a.Priority = p.Priority.Or(a.Priority)
	a.Theme = p.Theme.Or(a.Theme)
	a.UpdatedAt = p.UpdatedAt.Or(a.UpdatedAt)
	return a
}

// PaginatedAnnouncements 公告列表结果
type PaginatedAnnouncements struct {
	Total int64          `json:"total"`
	Items []Announcement `json:"items"`
}
