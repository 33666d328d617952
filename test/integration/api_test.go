// Package integration exercises the full strand API surface through a live
// HTTP server and the typed client, end to end.
package integration

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/strand/internal/analyzer"
	"github.com/dreamware/strand/internal/client"
	"github.com/dreamware/strand/internal/errors"
	"github.com/dreamware/strand/internal/filter"
	"github.com/dreamware/strand/internal/server"
	"github.com/dreamware/strand/internal/storage"
)

// newTestSystem starts an in-process server and returns a client for it
func newTestSystem(t *testing.T) *client.Client {
	t.Helper()
	store := storage.NewStore()
	srv := httptest.NewServer(server.New(store, server.Options{}).Handler())
	t.Cleanup(srv.Close)
	return client.New(srv.URL)
}

// TestStringLifecycle tests create, fetch, and delete end to end
func TestStringLifecycle(t *testing.T) {
	ctx := context.Background()
	api := newTestSystem(t)

	require.NoError(t, api.Health(ctx))

	// Create
	created, err := api.CreateString(ctx, "racecar")
	require.NoError(t, err)
	assert.Equal(t, "racecar", created.Value)
	assert.Equal(t, analyzer.Fingerprint("racecar"), created.ID)
	assert.Equal(t, analyzer.Analyze("racecar"), created.Properties)
	assert.False(t, created.CreatedAt.IsZero())

	// Duplicate create conflicts, including whitespace variants
	_, err = api.CreateString(ctx, "racecar")
	assert.True(t, errors.IsConflict(err))
	_, err = api.CreateString(ctx, "  racecar ")
	assert.True(t, errors.IsConflict(err))

	// Fetch round trip
	fetched, err := api.GetString(ctx, "racecar")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Properties, fetched.Properties)

	// Fetch by whitespace variant resolves to the same entry
	fetched, err = api.GetString(ctx, " racecar ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	// Delete, then the entry is gone and a second delete fails
	require.NoError(t, api.DeleteString(ctx, "racecar"))
	_, err = api.GetString(ctx, "racecar")
	assert.True(t, errors.IsNotFound(err))
	err = api.DeleteString(ctx, "racecar")
	assert.True(t, errors.IsNotFound(err))
}

// TestFilteredListing tests list filters through the full stack
func TestFilteredListing(t *testing.T) {
	ctx := context.Background()
	api := newTestSystem(t)

	for _, v := range []string{"abc", "kayak", "abcdefg", "two words"} {
		_, err := api.CreateString(ctx, v)
		require.NoError(t, err)
	}

	t.Run("unfiltered", func(t *testing.T) {
		result, err := api.ListStrings(ctx, filter.Criteria{})
		require.NoError(t, err)
		assert.Equal(t, 4, result.Count)
		assert.Len(t, result.Data, 4)
		assert.True(t, result.FiltersApplied.IsEmpty())
	})

	t.Run("min length", func(t *testing.T) {
		min := 5
		result, err := api.ListStrings(ctx, filter.Criteria{MinLength: &min})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Count)
		require.NotNil(t, result.FiltersApplied.MinLength)
		assert.Equal(t, 5, *result.FiltersApplied.MinLength)
	})

	t.Run("combined filters", func(t *testing.T) {
		min, words := 5, 1
		result, err := api.ListStrings(ctx, filter.Criteria{MinLength: &min, WordCount: &words})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Count)
	})

	t.Run("malformed parameter is rejected", func(t *testing.T) {
		multi := "ab"
		_, err := api.ListStrings(ctx, filter.Criteria{ContainsCharacter: &multi})
		assert.True(t, errors.IsInvalidRequest(err))
	})
}

// TestNaturalLanguageFiltering tests the translator through the full stack
func TestNaturalLanguageFiltering(t *testing.T) {
	ctx := context.Background()
	api := newTestSystem(t)

	for _, v := range []string{"abc", "kayak", "abcdefg", "two words"} {
		_, err := api.CreateString(ctx, v)
		require.NoError(t, err)
	}

	t.Run("palindromic", func(t *testing.T) {
		result, err := api.FilterByNaturalLanguage(ctx, "show me palindromic strings")
		require.NoError(t, err)
		require.Equal(t, 1, result.Count)
		assert.Equal(t, "kayak", result.Data[0].Value)
		assert.Equal(t, "show me palindromic strings", result.InterpretedQuery.Original)
		require.NotNil(t, result.InterpretedQuery.ParsedFilters.IsPalindrome)
		assert.True(t, *result.InterpretedQuery.ParsedFilters.IsPalindrome)
	})

	t.Run("longer than", func(t *testing.T) {
		result, err := api.FilterByNaturalLanguage(ctx, "strings longer than 5 chars")
		require.NoError(t, err)
		require.NotNil(t, result.InterpretedQuery.ParsedFilters.MinLength)
		assert.Equal(t, 6, *result.InterpretedQuery.ParsedFilters.MinLength)
		assert.Equal(t, 2, result.Count)
	})

	t.Run("gibberish is rejected", func(t *testing.T) {
		_, err := api.FilterByNaturalLanguage(ctx, "no recognizable trigger here at all")
		assert.True(t, errors.IsInvalidRequest(err))
	})
}

// TestConcurrentClients tests duplicate-insert atomicity over HTTP
func TestConcurrentClients(t *testing.T) {
	ctx := context.Background()
	api := newTestSystem(t)

	numClients := 20
	var wg sync.WaitGroup
	wg.Add(numClients)

	var mu sync.Mutex
	successes, conflicts := 0, 0

	for i := 0; i < numClients; i++ {
		go func() {
			defer wg.Done()
			_, err := api.CreateString(ctx, "contested")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.IsConflict(err):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, numClients-1, conflicts)

	stats, err := api.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stats.Inserts)
	assert.Equal(t, 1, stats.Keys)
}

// TestManyEntries tests listing at a modest scale
func TestManyEntries(t *testing.T) {
	ctx := context.Background()
	api := newTestSystem(t)

	for i := 0; i < 50; i++ {
		_, err := api.CreateString(ctx, fmt.Sprintf("entry number %d", i))
		require.NoError(t, err)
	}

	result, err := api.ListStrings(ctx, filter.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, 50, result.Count)
}
