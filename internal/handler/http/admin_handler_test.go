package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var authHeader = map[string]string{"Authorization": "Bearer mock_access_token"}

func TestLoginHandler(t *testing.T) {
	r := newTestDeps().router()

	w := do(r, http.MethodPost, "/api/v1/admin/login", map[string]string{"password": "s3cret"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"access_token":"mock_access_token","token_type":"Bearer"}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/v1/admin/login", map[string]string{"password": "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/admin/login", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginHandler_Disabled(t *testing.T) {
	deps := newTestDeps()
	deps.admin.LoginDisabled = true

	w := do(deps.router(), http.MethodPost, "/api/v1/admin/login", map[string]string{"password": "s3cret"}, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreatePostHandler(t *testing.T) {
	r := newTestDeps().router()
	payload := map[string]any{"slug": "hello-world", "title": "Hello", "content": "# Hi", "tags": []string{"go"}}

	w := do(r, http.MethodPost, "/api/v1/admin/posts", payload, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/admin/posts", payload, authHeader)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "mock-post-id", body["id"])
	assert.Equal(t, "hello-world", body["slug"])

	w = do(r, http.MethodPost, "/api/v1/admin/posts", payload, authHeader)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreatePostHandler_Validation(t *testing.T) {
	r := newTestDeps().router()

	tests := []struct {
		name    string
		payload map[string]any
		field   string
		tag     string
	}{
		{"bad slug", map[string]any{"slug": "Hello World", "title": "Hello", "content": "x"}, "slug", "slug"},
		{"blank title", map[string]any{"slug": "hello", "title": "   ", "content": "x"}, "title", "notblank"},
		{"missing content", map[string]any{"slug": "hello", "title": "Hello"}, "content", "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/v1/admin/posts", tt.payload, authHeader)
			require.Equal(t, http.StatusBadRequest, w.Code)
			body := decode(t, w)
			assert.Equal(t, "Validation failed", body["error"])
			assert.Equal(t, map[string]any{tt.field: tt.tag}, body["fields"])
		})
	}
}

func TestCreatePostHandler_MalformedBody(t *testing.T) {
	r := newTestDeps().router()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/admin/posts", strings.NewReader("{not json"))
	req.RemoteAddr = "192.0.2.1:1234"
	req.Header.Set("Content-Type", "application/json")
	for k, v := range authHeader {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestCreatePostHandler_Fail(t *testing.T) {
	deps := newTestDeps()
	deps.admin.ShouldFailCreate = true

	w := do(deps.router(), http.MethodPost, "/api/v1/admin/posts", map[string]any{"slug": "a", "title": "A", "content": "x"}, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdatePostHandler(t *testing.T) {
	r := newTestDeps().router()
	w := do(r, http.MethodPost, "/api/v1/admin/posts", map[string]any{"slug": "draft", "title": "Draft", "content": "x", "draft": true}, authHeader)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPatch, "/api/v1/admin/posts/draft", map[string]any{"title": "Published", "draft": false}, authHeader)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Published", body["title"])
	assert.Equal(t, false, body["draft"])

	w = do(r, http.MethodPatch, "/api/v1/admin/posts/missing", map[string]any{"draft": false}, authHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPatch, "/api/v1/admin/posts/draft", map[string]any{"title": ""}, authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
