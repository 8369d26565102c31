package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createBlog(t *testing.T, router http.Handler, token string, payload map[string]any) map[string]any {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/blogs", payload, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	blog, ok := decodeBody(t, rec)["blog"].(map[string]any)
	require.True(t, ok)
	require.NotEmpty(t, blog["_id"])
	return blog
}

func TestBlogCreateAndGet(t *testing.T) {
	router := newTestRouter(t)
	token := setupAdmin(t, router)

	blog := createBlog(t, router, token, map[string]any{
		"title":    "Hello Go",
		"excerpt":  "intro",
		"content":  "long form content",
		"author":   "admin",
		"category": "Tech",
		"tags":     []string{"go", "web"},
	})

	// Defaults applied for omitted optional fields
	assert.Equal(t, "5 分钟", blog["read_time"])
	assert.Equal(t, true, blog["published"])
	assert.Equal(t, "", blog["cover"])

	id := blog["_id"].(string)
	rec := doJSON(t, router, http.MethodGet, "/api/blogs/"+id, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	fetched := decodeBody(t, rec)
	assert.Equal(t, id, fetched["_id"], "identifier stable across reads")
	assert.Equal(t, "Hello Go", fetched["title"])
	assert.Equal(t, []any{"go", "web"}, fetched["tags"])
}

func TestBlogCreateRequiresFields(t *testing.T) {
	router := newTestRouter(t)
	token := setupAdmin(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/blogs", map[string]any{
		"title": "Only a title",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBlogMalformedIDRejectedBeforeLookup(t *testing.T) {
	router := newTestRouter(t)
	token := setupAdmin(t, router)

	for _, tc := range []struct {
		method string
		path   string
		body   map[string]any
	}{
		{http.MethodGet, "/api/blogs/not-a-uuid", nil},
		{http.MethodPut, "/api/blogs/not-a-uuid", map[string]any{"title": "x"}},
		{http.MethodDelete, "/api/blogs/not-a-uuid", nil},
	} {
		rec := doJSON(t, router, tc.method, tc.path, tc.body, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.method)
	}
}

func TestBlogNotFound(t *testing.T) {
	router := newTestRouter(t)
	token := setupAdmin(t, router)

	// Well-formed but nonexistent identifier
	const missingID = "/api/blogs/2f37a8b1-9a55-4a8e-9c11-0e8a1de7b921"
	rec := doJSON(t, router, http.MethodGet, missingID, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPut, missingID, map[string]any{"title": "x"}, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, missingID, nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBlogPartialUpdate(t *testing.T) {
	router := newTestRouter(t)
	token := setupAdmin(t, router)

	blog := createBlog(t, router, token, map[string]any{
		"title":    "A",
		"excerpt":  "e",
		"content":  "c",
		"author":   "admin",
		"category": "Tech",
	})
	id := blog["_id"].(string)

	rec := doJSON(t, router, http.MethodPut, "/api/blogs/"+id, map[string]any{
		"category": "News",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeBody(t, rec)["blog"].(map[string]any)
	assert.Equal(t, "A", updated["title"], "omitted fields untouched")
	assert.Equal(t, "News", updated["category"])

	// An explicit empty string clears the field
	rec = doJSON(t, router, http.MethodPut, "/api/blogs/"+id, map[string]any{
		"cover": "",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	updated = decodeBody(t, rec)["blog"].(map[string]any)
	assert.Equal(t, "", updated["cover"])
	assert.Equal(t, "News", updated["category"])
}

func TestBlogDelete(t *testing.T) {
	router := newTestRouter(t)
	token := setupAdmin(t, router)

	blog := createBlog(t, router, token, map[string]any{
		"title":    "Doomed",
		"excerpt":  "e",
		"content":  "c",
		"author":   "admin",
		"category": "Tech",
	})
	id := blog["_id"].(string)

	rec := doJSON(t, router, http.MethodDelete, "/api/blogs/"+id, nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/blogs/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/blogs/"+id, nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBlogListFilters(t *testing.T) {
	router := newTestRouter(t)
	token := setupAdmin(t, router)

	createBlog(t, router, token, map[string]any{
		"title": "测试文章", "excerpt": "e", "content": "c", "author": "admin", "category": "Tech",
	})
	createBlog(t, router, token, map[string]any{
		"title": "Other", "excerpt": "e", "content": "c", "author": "admin", "category": "News",
	})
	createBlog(t, router, token, map[string]any{
		"title": "Hidden draft", "excerpt": "e", "content": "c", "author": "admin", "category": "Tech",
		"published": false,
	})

	// Default view: published only
	rec := doJSON(t, router, http.MethodGet, "/api/blogs", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 2)

	// Explicit override exposes drafts
	rec = doJSON(t, router, http.MethodGet, "/api/blogs?published=false", nil, "")
	assert.Len(t, decodeList(t, rec), 3)

	// Category filter and its sentinels
	rec = doJSON(t, router, http.MethodGet, "/api/blogs?category=News", nil, "")
	list := decodeList(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "Other", list[0]["title"])

	rec = doJSON(t, router, http.MethodGet, "/api/blogs?category=all", nil, "")
	assert.Len(t, decodeList(t, rec), 2)

	rec = doJSON(t, router, http.MethodGet, "/api/blogs?category=%E5%85%A8%E9%83%A8", nil, "")
	assert.Len(t, decodeList(t, rec), 2)

	// Free-text search
	rec = doJSON(t, router, http.MethodGet, "/api/blogs?search=%E6%B5%8B%E8%AF%95", nil, "")
	list = decodeList(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "测试文章", list[0]["title"])
}
