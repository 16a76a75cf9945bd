package http_test

import (
	"encoding/xml"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSSHandler(t *testing.T) {
	w := do(newTestDeps().router(), http.MethodGet, "/feed.xml", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/rss+xml;charset=utf-8", w.Header().Get("Content-Type"))

	var rss struct {
		Channel struct {
			Title string `xml:"title"`
			Items []struct {
				Title string `xml:"title"`
				Link  string `xml:"link"`
			} `xml:"item"`
		} `xml:"channel"`
	}
	require.NoError(t, xml.Unmarshal(w.Body.Bytes(), &rss))
	require.Len(t, rss.Channel.Items, 2)
	assert.Equal(t, "Second post", rss.Channel.Items[0].Title)
	assert.Equal(t, "https://jahir.dev/blog/second-post", rss.Channel.Items[0].Link)
}

func TestRSSHandler_Fail(t *testing.T) {
	deps := newTestDeps()
	deps.blog.ShouldFailList = true

	w := do(deps.router(), http.MethodGet, "/feed.xml", nil, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSitemapHandler(t *testing.T) {
	w := do(newTestDeps().router(), http.MethodGet, "/sitemap.xml", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), xml.Header))

	var set struct {
		URLs []struct {
			Loc     string `xml:"loc"`
			LastMod string `xml:"lastmod"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(w.Body.Bytes(), &set))
	require.Len(t, set.URLs, 6)
	assert.Equal(t, "https://jahir.dev/", set.URLs[0].Loc)
	assert.Equal(t, "https://jahir.dev/blog/second-post", set.URLs[4].Loc)
	assert.Equal(t, "2024-02-01", set.URLs[4].LastMod)
}
