package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alateas/vybory"
	"github.com/alateas/vybory/cache"
	"github.com/alateas/vybory/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFetcher returns the URL as the page body and counts fetches per URL.
func countingFetcher(calls map[string]int) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			calls[url]++
			return "<html>" + url + "</html>", nil
		},
		CloseFn: func() error { return nil },
	}
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("serves a repeated URL from the cache", func(t *testing.T) {
		t.Parallel()

		calls := map[string]int{}
		f := cache.NewFetcher(countingFetcher(calls))

		first, err := f.Fetch(context.Background(), "http://archive.test/summary")
		require.NoError(t, err)
		second, err := f.Fetch(context.Background(), "http://archive.test/summary")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls["http://archive.test/summary"])
		assert.Equal(t, 1, f.Len())
	})

	t.Run("does not cache failed fetches", func(t *testing.T) {
		t.Parallel()

		calls := 0
		f := cache.NewFetcher(&mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				calls++
				return "", errors.New("HTTP 503")
			},
		})

		_, err := f.Fetch(context.Background(), "http://archive.test/summary")
		require.Error(t, err)
		_, err = f.Fetch(context.Background(), "http://archive.test/summary")
		require.Error(t, err)

		assert.Equal(t, 2, calls)
		assert.Equal(t, 0, f.Len())
	})

	t.Run("evicts the least recently used page", func(t *testing.T) {
		t.Parallel()

		calls := map[string]int{}
		f := cache.NewFetcher(countingFetcher(calls), cache.WithMaxPages(2))
		ctx := context.Background()

		for _, url := range []string{"http://a.test", "http://b.test", "http://a.test", "http://c.test", "http://a.test", "http://b.test"} {
			_, err := f.Fetch(ctx, url)
			require.NoError(t, err)
		}

		assert.Equal(t, map[string]int{
			"http://a.test": 1,
			"http://b.test": 2,
			"http://c.test": 1,
		}, calls)
		assert.Equal(t, 2, f.Len())
	})
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("drops cached pages and closes the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		calls := map[string]int{}
		inner := countingFetcher(calls)
		inner.CloseFn = func() error {
			closed = true
			return nil
		}
		f := cache.NewFetcher(inner)
		_, err := f.Fetch(context.Background(), "http://archive.test/summary")
		require.NoError(t, err)

		require.NoError(t, f.Close())

		assert.True(t, closed)
		assert.Equal(t, 0, f.Len())
	})
}

var _ vybory.Fetcher = (*cache.Fetcher)(nil)
