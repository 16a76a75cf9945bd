package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPostsHandler(t *testing.T) {
	r := newTestDeps().router()

	w := do(r, http.MethodGet, "/api/v1/blog", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	posts := body["posts"].([]any)
	require.Len(t, posts, 2)
	first := posts[0].(map[string]any)
	assert.Equal(t, "second-post", first["slug"])
	assert.Equal(t, "2024-02-01T00:00:00Z", first["published_at"])
	assert.NotContains(t, first, "content")
	assert.Equal(t, "Blog", body["metadata"].(map[string]any)["title"])
}

func TestListPostsHandler_Fail(t *testing.T) {
	deps := newTestDeps()
	deps.blog.ShouldFailList = true

	w := do(deps.router(), http.MethodGet, "/api/v1/blog", nil, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load posts")
}

func TestGetPostHandler(t *testing.T) {
	r := newTestDeps().router()

	w := do(r, http.MethodGet, "/api/v1/blog/first-post", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "<p># One</p>", body["html"])
	md := body["metadata"].(map[string]any)
	assert.Equal(t, "First post – Jason Zhang", md["title"])
	assert.Equal(t, "https://jahir.dev/blog/first-post", md["canonical_url"])
}

func TestGetPostHandler_NotFound(t *testing.T) {
	w := do(newTestDeps().router(), http.MethodGet, "/api/v1/blog/nope", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Post not found"}`, w.Body.String())
}

func TestGetPostHandler_Fail(t *testing.T) {
	deps := newTestDeps()
	deps.blog.ShouldFailGet = true

	w := do(deps.router(), http.MethodGet, "/api/v1/blog/first-post", nil, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestViewsHandlers(t *testing.T) {
	r := newTestDeps().router()

	w := do(r, http.MethodPost, "/api/v1/blog/first-post/views", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"slug":"first-post","views":1}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/v1/blog/first-post/views", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"slug":"first-post","views":1}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/v1/blog/nope/views", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
