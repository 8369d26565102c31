package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sncblog/backend/models"
)

func TestServiceRepoOrdering(t *testing.T) {
	repo := newTestDB(t).ServiceRepo()

	first := &models.Service{Name: "First", Description: "d", URL: "https://a", Icon: "🔗", Category: "Tools", SortOrder: 1, Active: true}
	second := &models.Service{Name: "Second", Description: "d", URL: "https://b", Icon: "🔗", Category: "Tools", SortOrder: 2, Active: true}
	require.NoError(t, repo.Add(second))
	require.NoError(t, repo.Add(first))

	services, err := repo.FindAll(ServiceFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "First", services[0].Name, "explicit sort order ascending wins")
	assert.Equal(t, "Second", services[1].Name)
}

func TestServiceRepoActiveFilter(t *testing.T) {
	repo := newTestDB(t).ServiceRepo()

	require.NoError(t, repo.Add(&models.Service{Name: "Live", Description: "d", URL: "https://a", Category: "Tools", Active: true}))
	require.NoError(t, repo.Add(&models.Service{Name: "Retired", Description: "d", URL: "https://b", Category: "Tools", Active: false}))

	services, err := repo.FindAll(ServiceFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Live", services[0].Name)

	services, err = repo.FindAll(ServiceFilter{})
	require.NoError(t, err)
	assert.Len(t, services, 2)
}

func TestEventRepoStatusFilter(t *testing.T) {
	repo := newTestDB(t).EventRepo()

	now := time.Now()
	require.NoError(t, repo.Add(&models.Event{Title: "Meetup", Description: "d", Date: now, Category: "Community", Status: "upcoming", Published: true}))
	require.NoError(t, repo.Add(&models.Event{Title: "Workshop", Description: "d", Date: now.Add(-time.Hour), Category: "Community", Status: "ended", Published: true}))

	events, err := repo.FindAll(EventFilter{Status: "upcoming", PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Meetup", events[0].Title)

	events, err = repo.FindAll(EventFilter{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Meetup", events[0].Title, "date descending")
}
