package database

import (
	"fmt"
	"time"

	"fgblog/config"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// 支持的数据库类型
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func init() {
	// modernc 驱动注册名为 sqlite，sqlx 默认不认识它的占位符风格
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open 按配置创建数据库连接并完成连通性检查
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	driverName, dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		// 内存库每个连接互相独立，只能保留一个连接
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	return db, nil
}

func dataSource(cfg config.DatabaseConfig) (driverName, dsn string, err error) {
	switch cfg.Driver {
	case DriverMySQL, "":
		dsn = cfg.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
				cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		}
		return DriverMySQL, dsn, nil
	case DriverPostgres:
		dsn = cfg.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
				cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		}
		// pgx 的 database/sql 驱动注册名为 pgx
		return "pgx", dsn, nil
	case DriverSQLite:
		dsn = cfg.DSN
		if dsn == "" {
			dsn = cfg.DBName
		}
		if dsn == "" {
			dsn = ":memory:"
		}
		return DriverSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("不支持的数据库类型: %s", cfg.Driver)
	}
}
