package external_services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const latestReleaseJSON = `{
  "tag_name": "v3.0.0",
  "html_url": "https://github.com/jahirfiquitiva/Frames/releases/tag/v3.0.0",
  "assets": [
    {"name": "Frames-v3.0.0.apk", "content_type": "application/vnd.android.package-archive",
     "browser_download_url": "https://github.com/jahirfiquitiva/Frames/releases/download/v3.0.0/Frames-v3.0.0.apk"}
  ]
}`

func newGitHubTestClient(t *testing.T, token string, handler http.HandlerFunc) *GitHubReleaseClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c, err := NewGitHubReleaseClient(token, 5*time.Second).WithBaseURL(server.URL)
	require.NoError(t, err)
	return c
}

func TestGetLatestRelease(t *testing.T) {
	var gotPath, gotAuth string
	c := newGitHubTestClient(t, "gh-token", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(latestReleaseJSON))
	})

	release, err := c.GetLatestRelease(context.Background(), "jahirfiquitiva", "Frames")

	require.NoError(t, err)
	assert.Equal(t, "/repos/jahirfiquitiva/Frames/releases/latest", gotPath)
	assert.Equal(t, "Bearer gh-token", gotAuth)
	assert.Equal(t, "v3.0.0", release.TagName)
	require.Len(t, release.Assets, 1)
	assert.Equal(t, "Frames-v3.0.0.apk", release.Assets[0].Name)
	assert.Contains(t, release.Assets[0].DownloadURL, "/download/v3.0.0/")
}

func TestGetLatestRelease_Anonymous(t *testing.T) {
	var gotAuth string
	c := newGitHubTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"tag_name":"v1","assets":[]}`))
	})

	release, err := c.GetLatestRelease(context.Background(), "o", "r")

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Empty(t, release.Assets)
}

func TestGetLatestRelease_NotFound(t *testing.T) {
	c := newGitHubTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	_, err := c.GetLatestRelease(context.Background(), "o", "missing")

	assert.ErrorContains(t, err, "o/missing")
}
