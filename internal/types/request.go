package types

import (
	"strings"
	"time"

	"fgblog/internal/model"
	"fgblog/internal/patch"
	"fgblog/pkg/geetest"
)

// LoginRequest 管理员登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreatePostRequest 创建文章请求
type CreatePostRequest struct {
	ID        string     `json:"id"`
	Title     string     `json:"title" binding:"required"`
	Content   string     `json:"content"`
	Excerpt   string     `json:"excerpt"`
	Category  string     `json:"category"`
	Author    string     `json:"author"`
	CreatedAt *time.Time `json:"createdAt"`
	ViewCount int        `json:"viewCount"`
}

// Post 转换为文章模型
func (r CreatePostRequest) Post() model.Post {
	post := model.Post{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Excerpt:   r.Excerpt,
		Category:  r.Category,
		Author:    r.Author,
		ViewCount: r.ViewCount,
	}
	if r.CreatedAt != nil {
		post.CreatedAt = *r.CreatedAt
	}
	return post
}

// CategoryRequest 创建分类请求
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateContactRequest 联系表单提交
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
	// 极验验证参数，未启用验证码时忽略
	Captcha *geetest.VerifyParams `json:"captcha"`
}

// ContactMessage 转换为留言模型，空主题存为 null
func (r CreateContactRequest) ContactMessage() model.ContactMessage {
	m := model.ContactMessage{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Message: r.Message,
	}
	if subject := strings.TrimSpace(r.Subject); subject != "" {
		m.Subject = &subject
	}
	return m
}

// CreateAnnouncementRequest 创建公告请求，宽松解析：格式错误的时间视为未提供
type CreateAnnouncementRequest struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	StartAt   patch.Field[time.Time] `json:"startAt"`
	EndAt     patch.Field[time.Time] `json:"endAt"`
	IsActive  patch.Field[bool]      `json:"isActive"`
	IsBanner  patch.Field[bool]      `json:"isBanner"`
	Priority  patch.Field[int]       `json:"priority"`
	Theme     model.Theme            `json:"theme"`
	CreatedAt patch.Field[time.Time] `json:"createdAt"`
	UpdatedAt patch.Field[time.Time] `json:"updatedAt"`
}

// Announcement 按默认值补全后转换为公告模型：
// 启用、横幅展示、优先级0、accent主题、无结束时间
func (r CreateAnnouncementRequest) Announcement() model.Announcement {
	return model.Announcement{
		ID:        r.ID,
		Title:     strings.TrimSpace(r.Title),
		Message:   strings.TrimSpace(r.Message),
		StartAt:   r.StartAt.Value,
		EndAt:     r.EndAt.OrPtr(nil),
		IsActive:  r.IsActive.Or(true),
		IsBanner:  r.IsBanner.Or(true),
		Priority:  r.Priority.Or(0),
		Theme:     r.Theme.OrDefault(),
		CreatedAt: r.CreatedAt.Value,
		UpdatedAt: r.UpdatedAt.Value,
	}
}

// DismissRequest 关闭横幅请求
type DismissRequest struct {
	ID string `json:"id" binding:"required"`
}
