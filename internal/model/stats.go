package model

// DashboardStats 后台概览统计
type DashboardStats struct {
	Posts          int64 `db:"posts" json:"posts"`
	Categories     int64 `db:"categories" json:"categories"`
	Contacts       int64 `db:"contacts" json:"contacts"`
	UnreadContacts int64 `db:"unread_contacts" json:"unreadContacts"`
	Announcements  int64 `db:"announcements" json:"announcements"`
	TotalViews     int64 `db:"total_views" json:"totalViews"`
}

// Dashboard 后台概览
type Dashboard struct {
	Stats       DashboardStats `json:"stats"`
	RecentPosts []Post         `json:"recentPosts"`
}
