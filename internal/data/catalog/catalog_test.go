package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_All(t *testing.T) {
	store := NewStore()

	movies := store.All()
	require.NotEmpty(t, movies)

	// Catalog identifiers start at 1 and every entry has showtimes to book
	for _, movie := range movies {
		assert.Greater(t, movie.ID, 0)
		assert.NotEmpty(t, movie.Title)
		assert.NotEmpty(t, movie.Showtimes)
		assert.Greater(t, movie.Price, 0.0)
	}
}

func TestStore_FindByID(t *testing.T) {
	store := NewStore()

	movie := store.FindByID(1)
	require.NotNil(t, movie)
	assert.Equal(t, 1, movie.ID)

	assert.Nil(t, store.FindByID(999))
	assert.Nil(t, store.FindByID(0))
}

func TestStore_Search(t *testing.T) {
	store := NewStore()

	t.Run("empty term returns the full catalog", func(t *testing.T) {
		assert.Len(t, store.Search(""), len(store.All()))
	})

	t.Run("matches titles case-insensitively", func(t *testing.T) {
		matches := store.Search("jAwAn")
		require.Len(t, matches, 1)
		assert.Equal(t, "Jawan", matches[0].Title)
	})

	t.Run("matches genres case-insensitively", func(t *testing.T) {
		matches := store.Search("sci-fi")
		require.NotEmpty(t, matches)
		for _, movie := range matches {
			assert.Contains(t, movie.Genre, "Sci-Fi")
		}
	})

	t.Run("no matches yields an empty result", func(t *testing.T) {
		assert.Empty(t, store.Search("does-not-exist"))
	})
}
