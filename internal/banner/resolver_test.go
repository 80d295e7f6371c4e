package banner

import (
	"context"
	"sync"
	"testing"
	"time"

	"fgblog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time { return now.Add(d) }

func ptr(t time.Time) *time.Time { return &t }

func eligible(id string, priority int, start time.Time) model.Announcement {
	return model.Announcement{
		ID: id, Title: id, IsActive: true, IsBanner: true,
		Priority: priority, StartAt: start, Theme: model.ThemeAccent,
	}
}

func TestResolveEmpty(t *testing.T) {
	assert.Nil(t, Resolve(nil, "", now))
	assert.Nil(t, Resolve([]model.Announcement{}, "x", now))
}

func TestResolveWindow(t *testing.T) {
	future := eligible("future", 100, at(time.Minute))
	expired := eligible("expired", 50, at(-2*time.Hour))
	expired.EndAt = ptr(at(-time.Second))
	open := eligible("open", 1, at(-time.Hour))

	got := Resolve([]model.Announcement{future, expired, open}, "", now)
	require.NotNil(t, got)
	assert.Equal(t, "open", got.ID)
}

func TestResolveBoundariesAreInclusive(t *testing.T) {
	a := eligible("edge", 1, now)
	a.EndAt = ptr(now)

	got := Resolve([]model.Announcement{a}, "", now)
	require.NotNil(t, got)
	assert.Equal(t, "edge", got.ID)
}

func TestResolveMalformedTimes(t *testing.T) {
	// 零值开始时间等同纪元，零值结束时间等同无结束
	a := eligible("zero", 1, time.Time{})
	a.EndAt = ptr(time.Time{})

	got := Resolve([]model.Announcement{a}, "", now)
	require.NotNil(t, got)
	assert.Equal(t, "zero", got.ID)
}

func TestResolvePriority(t *testing.T) {
	low := eligible("low", 5, at(-time.Minute))
	high := eligible("high", 10, at(-time.Hour))

	got := Resolve([]model.Announcement{low, high}, "", now)
	require.NotNil(t, got)
	assert.Equal(t, "high", got.ID)
}

func TestResolveTieBreakByRecency(t *testing.T) {
	older := eligible("older", 3, at(-2*time.Hour))
	newer := eligible("newer", 3, at(-time.Hour))

	got := Resolve([]model.Announcement{older, newer}, "", now)
	require.NotNil(t, got)
	assert.Equal(t, "newer", got.ID)
}

func TestResolveDismissal(t *testing.T) {
	items := []model.Announcement{
		eligible("x", 10, at(-time.Hour)),
		eligible("y", 5, at(-time.Hour)),
	}

	first := Resolve(items, "", now)
	require.NotNil(t, first)
	assert.Equal(t, "x", first.ID)

	second := Resolve(items, first.ID, now)
	require.NotNil(t, second)
	assert.Equal(t, "y", second.ID)

	assert.Nil(t, Resolve(items[:1], "x", now))

	// 关闭其他公告不影响 x
	third := Resolve(items, "y", now)
	require.NotNil(t, third)
	assert.Equal(t, "x", third.ID)
}

func TestResolveExcludesInactiveAndNonBanner(t *testing.T) {
	inactive := eligible("inactive", 100, at(-time.Hour))
	inactive.IsActive = false
	internal := eligible("internal", 90, at(-time.Hour))
	internal.IsBanner = false
	shown := eligible("shown", 1, at(-time.Hour))

	got := Resolve([]model.Announcement{inactive, internal, shown}, "", now)
	require.NotNil(t, got)
	assert.Equal(t, "shown", got.ID)

	assert.Nil(t, Resolve([]model.Announcement{inactive, internal}, "", now))
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	items := []model.Announcement{
		eligible("a", 1, at(-time.Hour)),
		eligible("b", 2, at(-time.Hour)),
	}

	got := Resolve(items, "", now)
	require.NotNil(t, got)
	got.Title = "changed"

	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].Title)
}

func TestActiveAt(t *testing.T) {
	internal := eligible("internal", 9, at(-time.Hour))
	internal.IsBanner = false
	inactive := eligible("inactive", 100, at(-time.Hour))
	inactive.IsActive = false
	items := []model.Announcement{
		eligible("old", 1, at(-3*time.Hour)),
		eligible("future", 50, at(time.Hour)),
		internal,
		inactive,
		eligible("new", 1, at(-time.Hour)),
	}

	got := ActiveAt(items, now)

	ids := make([]string, 0, len(got))
	for _, a := range got {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"internal", "new", "old"}, ids)
}

func TestResolveConcurrent(t *testing.T) {
	items := []model.Announcement{
		eligible("a", 1, at(-time.Hour)),
		eligible("b", 2, at(-time.Hour)),
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := Resolve(items, "", now)
			assert.Equal(t, "b", got.ID)
		}()
	}
	wg.Wait()
}

func TestDismissals(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	d := NewDismissals(store)

	id, err := d.Get(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, d.Dismiss(ctx, "visitor-1", "x"))
	require.NoError(t, d.Dismiss(ctx, "visitor-1", "y"))

	id, err = d.Get(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, "y", id)

	other, err := d.Get(ctx, "visitor-2")
	require.NoError(t, err)
	assert.Empty(t, other)

	raw, ok, err := store.Get(ctx, DismissedKey+":visitor-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "y", raw)
}

func TestResultsDoNotShareEndAt(t *testing.T) {
	end := at(time.Hour)
	input := []model.Announcement{eligible("a", 1, at(-time.Hour))}
	input[0].EndAt = &end

	got := Resolve(input, "", now)
	require.NotNil(t, got)
	require.NotNil(t, got.EndAt)
	*got.EndAt = at(-time.Hour)

	active := ActiveAt(input, now)
	require.Len(t, active, 1)
	*active[0].EndAt = at(-time.Hour)

	require.NotNil(t, input[0].EndAt)
	assert.Equal(t, at(time.Hour), *input[0].EndAt)
	assert.Same(t, &end, input[0].EndAt)
}
