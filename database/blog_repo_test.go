package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sncblog/backend/models"
)

func newBlog(title, category string, published bool, date time.Time) *models.Blog {
	return &models.Blog{
		Title:     title,
		Excerpt:   "excerpt of " + title,
		Content:   "content of " + title,
		Author:    "admin",
		Date:      date,
		ReadTime:  models.DefaultReadTime,
		Category:  category,
		Tags:      []string{"go", "backend"},
		Published: published,
	}
}

func TestBlogRepoAddAssignsID(t *testing.T) {
	repo := newTestDB(t).BlogRepo()

	blog := newBlog("First", "Tech", true, time.Now())
	require.NoError(t, repo.Add(blog))

	require.NotEmpty(t, blog.ID)
	_, err := uuid.Parse(blog.ID)
	assert.NoError(t, err, "assigned ID should be a well-formed UUID")

	found, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, blog.ID, found.ID)
	assert.Equal(t, "First", found.Title)
	assert.Equal(t, []string{"go", "backend"}, found.Tags)
}

func TestBlogRepoFindByIDMissing(t *testing.T) {
	repo := newTestDB(t).BlogRepo()

	found, err := repo.FindByID(uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestBlogRepoFindAllFilters(t *testing.T) {
	repo := newTestDB(t).BlogRepo()

	now := time.Now()
	published := newBlog("Published Tech", "Tech", true, now)
	older := newBlog("Older News", "News", true, now.Add(-time.Hour))
	draft := newBlog("Draft", "Tech", false, now.Add(time.Hour))
	require.NoError(t, repo.Add(published))
	require.NoError(t, repo.Add(older))
	require.NoError(t, repo.Add(draft))

	// Published-only is the default view
	blogs, err := repo.FindAll(BlogFilter{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "Published Tech", blogs[0].Title, "newest first")
	assert.Equal(t, "Older News", blogs[1].Title)

	// Overriding visibility exposes drafts
	blogs, err = repo.FindAll(BlogFilter{})
	require.NoError(t, err)
	assert.Len(t, blogs, 3)

	// Category exact match
	blogs, err = repo.FindAll(BlogFilter{Category: "News", PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "Older News", blogs[0].Title)
}

func TestBlogRepoSearch(t *testing.T) {
	repo := newTestDB(t).BlogRepo()

	tagged := newBlog("Plain title", "Tech", true, time.Now())
	tagged.Tags = []string{"测试", "demo"}
	body := newBlog("Another", "Tech", true, time.Now())
	body.Content = "deep dive into GORM serializers"
	require.NoError(t, repo.Add(tagged))
	require.NoError(t, repo.Add(body))

	// Substring match against tags
	blogs, err := repo.FindAll(BlogFilter{Search: "测试", PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "Plain title", blogs[0].Title)

	// Case-insensitive match against content
	blogs, err = repo.FindAll(BlogFilter{Search: "gorm", PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "Another", blogs[0].Title)

	blogs, err = repo.FindAll(BlogFilter{Search: "no-such-text", PublishedOnly: true})
	require.NoError(t, err)
	assert.Empty(t, blogs)
}

func TestBlogRepoPartialUpdate(t *testing.T) {
	repo := newTestDB(t).BlogRepo()

	blog := newBlog("A", "Tech", true, time.Now())
	require.NoError(t, repo.Add(blog))

	stored, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	newCategory := "News"
	update := models.BlogUpdate{Category: &newCategory}
	update.Apply(stored)
	require.NoError(t, repo.Save(stored))

	after, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, "A", after.Title, "unnamed fields keep their pre-update values")
	assert.Equal(t, "News", after.Category)

	// An explicit empty value is applied, not skipped
	empty := ""
	update = models.BlogUpdate{Cover: &empty}
	update.Apply(after)
	require.NoError(t, repo.Save(after))

	final, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "", final.Cover)
	assert.Equal(t, "News", final.Category)
}

func TestBlogRepoDelete(t *testing.T) {
	repo := newTestDB(t).BlogRepo()

	blog := newBlog("Doomed", "Tech", true, time.Now())
	require.NoError(t, repo.Add(blog))

	deleted, err := repo.Delete(blog.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Well-formed but nonexistent ID never reports success
	deleted, err = repo.Delete(uuid.NewString())
	require.NoError(t, err)
	assert.False(t, deleted)
}
