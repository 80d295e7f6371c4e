package handler

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"fgblog/internal/service"
	"fgblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var staticRoutes = []struct {
	path       string
	priority   string
	changeFreq string
}{
	{"", "1.0", "daily"},
	{"contact", "0.8", "monthly"},
	{"privacy", "0.5", "yearly"},
	{"terms", "0.5", "yearly"},
}

// SitemapHandler 站点地图处理器
type SitemapHandler struct {
	postService *service.PostService
	baseURL     string
	logger      *logger.Logger
	now         func() time.Time
}

// NewSitemapHandler 创建站点地图处理器实例，baseURL 为空时按请求头推断
func NewSitemapHandler(postService *service.PostService, baseURL string, logger *logger.Logger) *SitemapHandler {
	return &SitemapHandler{
		postService: postService,
		baseURL:     strings.TrimRight(baseURL, "/"),
		logger:      logger,
		now:         time.Now,
	}
}

// Sitemap 生成 sitemap.xml，包含静态页面和全部文章
func (h *SitemapHandler) Sitemap(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("生成站点地图失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "msg": "生成站点地图失败"})
		return
	}

	base := h.siteURL(c)
	today := h.now().UTC().Format("2006-01-02")

	set := urlSet{Xmlns: sitemapNamespace}
	for _, route := range staticRoutes {
		loc := base
		if route.path != "" {
			loc += "/" + route.path
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: loc, LastMod: today, ChangeFreq: route.changeFreq, Priority: route.priority})
	}
	for _, post := range posts {
		lastMod := today
		if !post.CreatedAt.IsZero() {
			lastMod = post.CreatedAt.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: base + "/post/" + post.ID, LastMod: lastMod, ChangeFreq: "weekly", Priority: "0.7"})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		h.logger.Error("编码站点地图失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "msg": "生成站点地图失败"})
		return
	}

	c.Header("Cache-Control", "public, s-maxage=3600, stale-while-revalidate")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}

func (h *SitemapHandler) siteURL(c *gin.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	host := c.Request.Host
	if host == "" {
		host = "localhost"
	}
	proto := c.GetHeader("X-Forwarded-Proto")
	if proto == "" {
		proto = "https"
	}
	return proto + "://" + host
}
