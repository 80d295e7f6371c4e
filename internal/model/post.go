package model

import (
	"time"

	"fgblog/internal/patch"
)

// Post 文章模型
type Post struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Excerpt   string    `db:"excerpt" json:"excerpt"`
	Category  string    `db:"category" json:"category"`
	Author    string    `db:"author" json:"author"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	ViewCount int       `db:"view_count" json:"viewCount"`
}

// PostPatch 文章部分更新
type PostPatch struct {
	Title     patch.Field[string] `json:"title"`
	Content   patch.Field[string] `json:"content"`
	Excerpt   patch.Field[string] `json:"excerpt"`
	Category  patch.Field[string] `json:"category"`
	Author    patch.Field[string] `json:"author"`
	ViewCount patch.Field[int]    `json:"viewCount"`
}

// ApplyTo 实现 patch.Patch
func (p PostPatch) ApplyTo(post Post) Post {
	post.Title = p.Title.Or(post.Title)
	post.Content = p.Content.Or(post.Content)
	post.Excerpt = p.Excerpt.Or(post.Excerpt)
	post.Category = p.Category.Or(post.Category)
	post.Author = p.Author.Or(post.Author)
	post.ViewCount = p.ViewCount.Or(post.ViewCount)
	return post
}
