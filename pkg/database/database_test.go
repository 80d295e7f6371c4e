package database

import (
	"context"
	"testing"

	"fgblog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataSource(t *testing.T) {
	driver, dsn, err := dataSource(config.DatabaseConfig{
		Driver: DriverMySQL, Host: "db", Port: 3306, User: "u", Password: "p", DBName: "blog",
	})
	require.NoError(t, err)
	assert.Equal(t, "mysql", driver)
	assert.Equal(t, "u:p@tcp(db:3306)/blog?charset=utf8mb4&parseTime=true&loc=UTC", dsn)

	driver, dsn, err = dataSource(config.DatabaseConfig{
		Driver: DriverPostgres, Host: "db", Port: 5432, User: "u", Password: "p", DBName: "blog",
	})
	require.NoError(t, err)
	assert.Equal(t, "pgx", driver)
	assert.Equal(t, "postgres://u:p@db:5432/blog?sslmode=disable", dsn)

	_, _, err = dataSource(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: DriverSQLite})
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, EnsureSchema(ctx, db))
	require.NoError(t, EnsureSchema(ctx, db))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM announcements"))
	assert.Zero(t, count)
}
