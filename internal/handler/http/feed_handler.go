package http

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
	"github.com/jasonzhang/portfolio/internal/utils"
)

const (
	feedSize        = 20
	rssContentType  = "application/rss+xml;charset=utf-8"
	xmlContentType  = "application/xml;charset=utf-8"
	sitemapDateForm = "2006-01-02"
)

// FeedHandler serves the RSS feed and the sitemap.
type FeedHandler struct {
	blogUsecase usecasecontract.IBlogUseCase
	baseURL     string
}

func NewFeedHandler(blogUsecase usecasecontract.IBlogUseCase, baseURL string) *FeedHandler {
	return &FeedHandler{blogUsecase: blogUsecase, baseURL: strings.TrimRight(baseURL, "/")}
}

// RSSHandler writes the most recent readable posts as RSS 2.0.
func (h *FeedHandler) RSSHandler(c *gin.Context) {
	posts, err := h.blogUsecase.ListPosts(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, "Failed to generate feed")
		return
	}
	if len(posts) > feedSize {
		posts = posts[:feedSize]
	}

	feed := &feeds.Feed{
		Title:       utils.DefaultTitle,
		Link:        &feeds.Link{Href: h.baseURL},
		Description: utils.DefaultDesc,
		Author:      &feeds.Author{Name: utils.SiteName},
		Image:       &feeds.Image{Url: utils.DefaultImage, Title: utils.SiteName, Link: h.baseURL},
		Created:     time.Now(),
	}
	if len(posts) > 0 {
		feed.Updated = posts[0].PublishedAt
	}
	for _, p := range posts {
		link := h.baseURL + "/blog/" + p.Slug
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          link,
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Description: p.Excerpt,
			Created:     p.PublishedAt,
			Updated:     p.UpdatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, "Failed to generate feed")
		return
	}
	c.Data(http.StatusOK, rssContentType, []byte(rss))
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapHandler lists the static pages and every readable post.
func (h *FeedHandler) SitemapHandler(c *gin.Context) {
	posts, err := h.blogUsecase.ListPosts(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, "Failed to generate sitemap")
		return
	}

	urls := []sitemapURL{
		{Loc: h.baseURL + "/", ChangeFreq: "daily", Priority: "1.0"},
		{Loc: h.baseURL + "/blog", ChangeFreq: "weekly", Priority: "0.8"},
		{Loc: h.baseURL + "/projects", ChangeFreq: "monthly", Priority: "0.6"},
		{Loc: h.baseURL + "/about", ChangeFreq: "monthly", Priority: "0.5"},
	}
	for _, p := range posts {
		lastMod := p.UpdatedAt
		if lastMod.IsZero() {
			lastMod = p.PublishedAt
		}
		urls = append(urls, sitemapURL{
			Loc:        h.baseURL + "/blog/" + p.Slug,
			LastMod:    lastMod.UTC().Format(sitemapDateForm),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	out, err := xml.MarshalIndent(sitemapURLSet{URLs: urls}, "", "  ")
	if err != nil {
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, "Failed to generate sitemap")
		return
	}
	c.Data(http.StatusOK, xmlContentType, append([]byte(xml.Header), out...))
}
