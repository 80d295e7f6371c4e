package repository

import (
	"context"
	"testing"
	"time"

	"fgblog/config"
	"fgblog/internal/model"
	"fgblog/internal/patch"
	"fgblog/pkg/database"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{Driver: database.DriverSQLite})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.EnsureSchema(context.Background(), db))
	return db
}

var base = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func TestPostRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(newTestDB(t))

	older := &model.Post{ID: "p1", Title: "first", Content: "c", Excerpt: "e", Category: "go", Author: "fg", CreatedAt: base}
	newer := &model.Post{ID: "p2", Title: "second", Content: "c", Excerpt: "e", Category: "go", Author: "fg", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p2", posts[0].ID)

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
	assert.True(t, base.Equal(got.CreatedAt))

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, patch.ErrNotFound)

	count, err := repo.IncrementView(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	count, err = repo.IncrementView(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = repo.IncrementView(ctx, "nope")
	assert.ErrorIs(t, err, patch.ErrNotFound)

	updated, err := patch.Update[model.Post](ctx, repo, "p1", model.PostPatch{Title: patch.Of("renamed")})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.ViewCount)

	got, err = repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, 2, got.ViewCount)

	recent, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "p2", recent[0].ID)

	require.NoError(t, repo.Delete(ctx, "p1"))
	assert.ErrorIs(t, repo.Delete(ctx, "p1"), patch.ErrNotFound)

	require.NoError(t, repo.DeleteAll(ctx))
	posts, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	created, err := repo.Create(ctx, "tech")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(ctx, "tech")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = repo.Create(ctx, "life")
	require.NoError(t, err)

	names, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"life", "tech"}, names)

	require.NoError(t, repo.Delete(ctx, "life"))
	assert.ErrorIs(t, repo.Delete(ctx, "life"), patch.ErrNotFound)

	require.NoError(t, repo.DeleteAll(ctx))
	names, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestContactRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(newTestDB(t))

	subject := "hello"
	require.NoError(t, repo.Create(ctx, &model.ContactMessage{
		ID: "c1", Name: "n", Email: "n@example.com", Subject: &subject, Message: "hi", CreatedAt: base,
	}))
	require.NoError(t, repo.Create(ctx, &model.ContactMessage{
		ID: "c2", Name: "m", Email: "m@example.com", Message: "yo", CreatedAt: base.Add(time.Minute),
	}))

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "c2", messages[0].ID)
	assert.Nil(t, messages[0].Subject)

	updated, err := patch.Update[model.ContactMessage](ctx, repo, "c1", model.ContactPatch{Read: patch.Of(true)})
	require.NoError(t, err)
	assert.True(t, updated.Read)

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, got.Read)
	require.NotNil(t, got.Subject)
	assert.Equal(t, "hello", *got.Subject)

	_, err = patch.Update[model.ContactMessage](ctx, repo, "missing", model.ContactPatch{})
	assert.ErrorIs(t, err, patch.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "c1"))
	assert.ErrorIs(t, repo.Delete(ctx, "c1"), patch.ErrNotFound)
	require.NoError(t, repo.DeleteAll(ctx))
}

func TestAnnouncementRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAnnouncementRepository(newTestDB(t))

	end := base.Add(24 * time.Hour)
	low := &model.Announcement{
		ID: "a1", Title: "low", Message: "m", StartAt: base, EndAt: &end,
		IsActive: true, IsBanner: true, Priority: 1, Theme: model.ThemeInfo,
		CreatedAt: base, UpdatedAt: base,
	}
	high := &model.Announcement{
		ID: "a2", Title: "high", Message: "m", StartAt: base,
		IsActive: true, IsBanner: false, Priority: 9, Theme: model.ThemeWarning,
		CreatedAt: base, UpdatedAt: base,
	}
	require.NoError(t, repo.Create(ctx, low))
	require.NoError(t, repo.Create(ctx, high))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a2", items[0].ID)
	assert.Nil(t, items[0].EndAt)
	assert.False(t, items[0].IsBanner)
	assert.Equal(t, model.ThemeWarning, items[0].Theme)

	updated, err := patch.Update[model.Announcement](ctx, repo, "a1", model.AnnouncementPatch{Priority: patch.Of(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Priority)

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Priority)
	require.NotNil(t, got.EndAt)
	assert.True(t, end.Equal(*got.EndAt))

	require.NoError(t, repo.Delete(ctx, "a1"))
	_, err = repo.GetByID(ctx, "a1")
	assert.ErrorIs(t, err, patch.ErrNotFound)
	require.NoError(t, repo.DeleteAll(ctx))
}

func TestStatsRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	posts := NewPostRepository(db)
	require.NoError(t, posts.Create(ctx, &model.Post{ID: "p", Title: "t", CreatedAt: base, ViewCount: 7}))
	contacts := NewContactRepository(db)
	require.NoError(t, contacts.Create(ctx, &model.ContactMessage{ID: "c", Name: "n", Email: "e", Message: "m", CreatedAt: base}))
	_, err := NewCategoryRepository(db).Create(ctx, "go")
	require.NoError(t, err)

	stats, err := NewStatsRepository(db).GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DashboardStats{
		Posts: 1, Categories: 1, Contacts: 1, UnreadContacts: 1, TotalViews: 7,
	}, *stats)
}
