package types

import (
	"encoding/json"
	"testing"
	"time"

	"fgblog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAnnouncementDefaults(t *testing.T) {
	var req CreateAnnouncementRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"title": " 维护通知 ",
		"message": "今晚维护",
		"startAt": "2025-05-01T10:00:00Z",
		"endAt": "",
		"theme": "neon"
	}`), &req))

	a := req.Announcement()

	assert.Equal(t, "维护通知", a.Title)
	assert.Equal(t, time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC), a.StartAt.UTC())
	assert.Nil(t, a.EndAt)
	assert.True(t, a.IsActive)
	assert.True(t, a.IsBanner)
	assert.Equal(t, 0, a.Priority)
	assert.Equal(t, model.ThemeAccent, a.Theme)
}

func TestCreateAnnouncementExplicitValues(t *testing.T) {
	var req CreateAnnouncementRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"title": "t", "message": "m",
		"startAt": "2025-05-01T10:00:00Z",
		"endAt": "2025-05-02T10:00:00Z",
		"isActive": false, "isBanner": false, "priority": 7, "theme": "warning"
	}`), &req))

	a := req.Announcement()

	require.NotNil(t, a.EndAt)
	assert.False(t, a.IsActive)
	assert.False(t, a.IsBanner)
	assert.Equal(t, 7, a.Priority)
	assert.Equal(t, model.ThemeWarning, a.Theme)
}

func TestCreateContactEmptySubject(t *testing.T) {
	m := CreateContactRequest{Name: "n", Email: "e@example.com", Subject: "  ", Message: "m"}.ContactMessage()
	assert.Nil(t, m.Subject)

	m = CreateContactRequest{Name: "n", Email: "e@example.com", Subject: "hi", Message: "m"}.ContactMessage()
	require.NotNil(t, m.Subject)
	assert.Equal(t, "hi", *m.Subject)
}
