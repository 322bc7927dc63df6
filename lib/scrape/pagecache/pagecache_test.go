package pagecache

import (
	"context"
	"testing"
	"time"

	"sportsref/lib/telemetry"
	"sportsref/lib/timezone"

	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:pagecache")
	defer cleanup()

	cache, err := Open(":memory:")
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	url := "https://www.basketball-reference.com/leagues/NBA_2018.html"

	{
		_, ok, err := cache.Get(ctx, url)
		require.NoError(t, err)
		require.False(t, ok)
	}
	{
		err := cache.Put(ctx, url, "<html>season</html>", timezone.Now().Add(time.Hour))
		require.NoError(t, err)

		content, ok, err := cache.Get(ctx, url)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "<html>season</html>", content)
	}
	{
		// replaced entries serve the newest content
		err := cache.Put(ctx, url, "<html>updated</html>", timezone.Now().Add(time.Hour))
		require.NoError(t, err)

		content, ok, err := cache.Get(ctx, url)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "<html>updated</html>", content)
	}
	{
		// expired entries miss and get cleaned up
		err := cache.Put(ctx, url, "<html>stale</html>", timezone.Now().Add(-time.Minute))
		require.NoError(t, err)

		_, ok, err := cache.Get(ctx, url)
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestPrune(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:pagecache")
	defer cleanup()

	cache, err := Open(":memory:")
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, "a", "1", timezone.Now().Add(-time.Hour)))
	require.NoError(t, cache.Put(ctx, "b", "2", timezone.Now().Add(-time.Second)))
	require.NoError(t, cache.Put(ctx, "c", "3", timezone.Now().Add(time.Hour)))

	removed, err := cache.Prune(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, removed)

	_, ok, err := cache.Get(ctx, "c")
	require.NoError(t, err)
	require.True(t, ok)
}
