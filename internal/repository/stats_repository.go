package repository

import (
	"context"

	"fgblog/internal/model"

	"github.com/jmoiron/sqlx"
)

// StatsRepository 后台统计存储库
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository 创建统计存储库实例
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetStats 获取各表计数
func (r *StatsRepository) GetStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats

	counts := []struct {
		dst   *int64
		query string
	}{
		{&stats.Posts, "SELECT COUNT(*) FROM posts"},
		{&stats.Categories, "SELECT COUNT(*) FROM categories"},
		{&stats.Contacts, "SELECT COUNT(*) FROM contacts"},
		{&stats.UnreadContacts, "SELECT COUNT(*) FROM contacts WHERE is_read = FALSE"},
		{&stats.Announcements, "SELECT COUNT(*) FROM announcements"},
		{&stats.TotalViews, "SELECT COALESCE(SUM(view_count), 0) FROM posts"},
	}
	for _, c := range counts {
		if err := r.db.GetContext(ctx, c.dst, c.query); err != nil {
			return nil, err
		}
	}

	return &stats, nil
}
