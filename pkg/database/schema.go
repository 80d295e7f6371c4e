package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// 各方言的类型差异
type dialect struct {
	key       string
	text      string
	timestamp string
	boolean   string
}

func dialectOf(db *sqlx.DB) dialect {
	switch db.DriverName() {
	case "pgx", DriverPostgres:
		return dialect{key: "VARCHAR(255)", text: "TEXT", timestamp: "TIMESTAMP", boolean: "BOOLEAN"}
	case DriverSQLite:
		return dialect{key: "TEXT", text: "TEXT", timestamp: "DATETIME", boolean: "BOOLEAN"}
	default:
		return dialect{key: "VARCHAR(255)", text: "TEXT", timestamp: "DATETIME(3)", boolean: "BOOLEAN"}
	}
}

// EnsureSchema 创建缺失的数据表
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	d := dialectOf(db)

	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS posts (
			id %[1]s PRIMARY KEY,
			title %[2]s NOT NULL,
			content %[2]s NOT NULL,
			excerpt %[2]s NOT NULL,
			category VARCHAR(255) NOT NULL,
			author VARCHAR(255) NOT NULL,
			created_at %[3]s NOT NULL,
			view_count INTEGER NOT NULL DEFAULT 0
		)`, d.key, d.text, d.timestamp),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS categories (
			name %[1]s PRIMARY KEY
		)`, d.key),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS contacts (
			id %[1]s PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			subject VARCHAR(255),
			message %[2]s NOT NULL,
			created_at %[3]s NOT NULL,
			is_read %[4]s NOT NULL DEFAULT FALSE
		)`, d.key, d.text, d.timestamp, d.boolean),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS announcements (
			id %[1]s PRIMARY KEY,
			title %[2]s NOT NULL,
			message %[2]s NOT NULL,
			start_at %[3]s NOT NULL,
			end_at %[3]s NULL,
			is_active %[4]s NOT NULL DEFAULT TRUE,
			is_banner %[4]s NOT NULL DEFAULT TRUE,
			priority INTEGER NOT NULL DEFAULT 0,
			theme VARCHAR(32) NOT NULL DEFAULT 'accent',
			created_at %[3]s NOT NULL,
			updated_at %[3]s NOT NULL
		)`, d.key, d.text, d.timestamp, d.boolean),
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("初始化数据表失败: %w", err)
		}
	}
	return nil
}
