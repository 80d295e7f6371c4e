package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fgblog/config"
	"fgblog/internal/middleware"
	"fgblog/pkg/database"
	"fgblog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(config.DatabaseConfig{Driver: database.DriverSQLite})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.EnsureSchema(context.Background(), db))

	cfg := config.Default()
	cfg.LogLevel = "debug"
	cfg.Auth.AdminPassword = "s3cret"
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Site.BaseURL = "https://blog.example.com/"

	deps := Deps{Config: cfg, Logger: logger.NewNop(), DB: db}
	services, err := NewServices(deps)
	require.NoError(t, err)

	return &testServer{t: t, router: SetupRouter(deps, services)}
}

func (s *testServer) do(method, path string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		var data []byte
		if raw, ok := body.(string); ok {
			data = []byte(raw)
		} else {
			var err error
			data, err = json.Marshal(body)
			require.NoError(s.t, err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func (s *testServer) login() http.Header {
	w := s.do(http.MethodPost, "/api/v1/login", map[string]string{"username": "admin", "password": "s3cret"}, nil)
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var data struct {
		Token string `json:"token"`
	}
	decode(s.t, w, &data)
	require.NotEmpty(s.t, data.Token)
	return http.Header{"Authorization": []string{"Bearer " + data.Token}}
}

func TestLoginAndVerify(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/v1/login", map[string]string{"username": "admin", "password": "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/v1/login", map[string]string{"username": "admin"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	auth := s.login()
	w = s.do(http.MethodGet, "/api/v1/verify", nil, auth)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/v1/verify", nil, http.Header{"Authorization": []string{"Bearer garbage"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/v1/admin/posts", map[string]string{"title": "x"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/v1/admin/dashboard", nil, http.Header{"Authorization": []string{"Bearer bad"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAnnouncementBannerFlow(t *testing.T) {
	s := newTestServer(t)
	auth := s.login()

	start := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	w := s.do(http.MethodPost, "/api/v1/admin/announcements", map[string]interface{}{
		"id": "high", "title": "维护", "message": "今晚维护", "startAt": start, "priority": 10,
	}, auth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/admin/announcements", map[string]interface{}{
		"id": "low", "title": "活动", "message": "新活动", "startAt": start, "endAt": "", "theme": "success",
	}, auth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/admin/announcements", map[string]interface{}{
		"title": "缺少开始时间", "message": "m",
	}, auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/announcements/banner", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var current struct {
		ID       string `json:"id"`
		IsActive bool   `json:"isActive"`
		Theme    string `json:"theme"`
	}
	decode(t, w, &current)
	assert.Equal(t, "high", current.ID)
	assert.True(t, current.IsActive)
	assert.Equal(t, "accent", current.Theme)

	cookie := w.Header().Get("Set-Cookie")
	require.True(t, strings.HasPrefix(cookie, middleware.VisitorCookie+"="), cookie)
	visitor := http.Header{"Cookie": []string{strings.Split(cookie, ";")[0]}}

	w = s.do(http.MethodPost, "/api/v1/announcements/banner/dismiss", map[string]string{"id": "high"}, visitor)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/v1/announcements/banner", nil, visitor)
	decode(t, w, &current)
	assert.Equal(t, "low", current.ID)

	w = s.do(http.MethodGet, "/api/v1/announcements/banner?dismissed=low", nil, visitor)
	decode(t, w, &current)
	assert.Equal(t, "high", current.ID)

	// 优先级改为0且关闭横幅展示，未出现的字段保持不变
	w = s.do(http.MethodPut, "/api/v1/admin/announcements/high", `{"priority":0,"isBanner":false,"title":null,"isActive":"yes"}`, auth)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated struct {
		Title    string `json:"title"`
		Priority int    `json:"priority"`
		IsBanner bool   `json:"isBanner"`
		IsActive bool   `json:"isActive"`
	}
	decode(t, w, &updated)
	assert.Equal(t, "维护", updated.Title)
	assert.Equal(t, 0, updated.Priority)
	assert.False(t, updated.IsBanner)
	assert.True(t, updated.IsActive)

	w = s.do(http.MethodPut, "/api/v1/admin/announcements/missing", `{"priority":1}`, auth)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodDelete, "/api/v1/admin/announcements", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/v1/announcements/banner", nil, visitor)
	env := decode(t, w, nil)
	assert.Equal(t, "null", string(env.Data))
}

func TestPostsCategoriesAndSitemap(t *testing.T) {
	s := newTestServer(t)
	auth := s.login()

	w := s.do(http.MethodPost, "/api/v1/admin/posts", map[string]string{"id": "hello", "title": "Hello", "content": "c", "category": "Go"}, auth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/posts/hello/view", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view struct {
		ViewCount int `json:"viewCount"`
	}
	decode(t, w, &view)
	assert.Equal(t, 1, view.ViewCount)

	w = s.do(http.MethodPost, "/api/v1/posts/missing/view", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPut, "/api/v1/admin/posts/hello", `{"viewCount":0}`, auth)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/v1/posts/hello", nil, nil)
	var post struct {
		Title     string `json:"title"`
		ViewCount int    `json:"viewCount"`
	}
	decode(t, w, &post)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, 0, post.ViewCount)

	w = s.do(http.MethodPost, "/api/v1/admin/categories", map[string]string{"name": "Go"}, auth)
	assert.Equal(t, http.StatusCreated, w.Code)
	w = s.do(http.MethodPost, "/api/v1/admin/categories", map[string]string{"name": "Go"}, auth)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/v1/categories", nil, nil)
	var names []string
	decode(t, w, &names)
	assert.Equal(t, []string{"Go"}, names)

	w = s.do(http.MethodGet, "/api/v1/sitemap.xml", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	body := w.Body.String()
	assert.Contains(t, body, "<loc>https://blog.example.com</loc>")
	assert.Contains(t, body, "<loc>https://blog.example.com/contact</loc>")
	assert.Contains(t, body, "<loc>https://blog.example.com/post/hello</loc>")

	w = s.do(http.MethodGet, "/api/v1/admin/dashboard", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var dash struct {
		Stats struct {
			Posts      int64 `json:"posts"`
			Categories int64 `json:"categories"`
		} `json:"stats"`
	}
	decode(t, w, &dash)
	assert.Equal(t, int64(1), dash.Stats.Posts)
	assert.Equal(t, int64(1), dash.Stats.Categories)
}

func TestContactsFlow(t *testing.T) {
	s := newTestServer(t)
	auth := s.login()

	w := s.do(http.MethodPost, "/api/v1/contacts", map[string]string{"name": "小明", "email": "ming@example.com", "message": "你好"}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID   string `json:"id"`
		Read bool   `json:"read"`
	}
	decode(t, w, &created)
	assert.False(t, created.Read)

	w = s.do(http.MethodPost, "/api/v1/contacts", map[string]string{"name": "小明", "email": "bad", "message": "你好"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/admin/contacts/"+created.ID+"/read", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/v1/admin/contacts", nil, auth)
	var list []struct {
		ID   string `json:"id"`
		Read bool   `json:"read"`
	}
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.True(t, list[0].Read)

	w = s.do(http.MethodDelete, "/api/v1/admin/contacts/"+created.ID, nil, auth)
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(http.MethodDelete, "/api/v1/admin/contacts/"+created.ID, nil, auth)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/v1/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status map[string]string
	decode(t, w, &status)
	assert.Equal(t, "ok", status["database"])
	assert.Equal(t, "disabled", status["redis"])
}
