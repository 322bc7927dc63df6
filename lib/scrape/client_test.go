package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type memCache struct {
	pages map[string]string
	puts  int
}

func newMemCache() *memCache {
	return &memCache{pages: map[string]string{}}
}

func (c *memCache) Get(ctx context.Context, url string) (string, bool, error) {
	content, ok := c.pages[url]
	return content, ok, nil
}

func (c *memCache) Put(ctx context.Context, url, content string, expires time.Time) error {
	c.pages[url] = content
	c.puts++
	return nil
}

func TestClientPage(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/leagues/NBA_2018.html":
			w.Write([]byte("<html><body>season page</body></html>"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cache := newMemCache()
	client, err := NewClient(ClientOptions{BaseUrl: srv.URL, Cache: cache})
	require.NoError(t, err)
	ctx := context.Background()

	{
		page, err := client.Page(ctx, "/leagues/NBA_2018.html")
		require.NoError(t, err)
		require.Contains(t, page, "season page")
		require.Equal(t, int64(1), hits.Load())
		require.Equal(t, 1, cache.puts)
	}
	{
		// second read comes from the cache
		page, err := client.Page(ctx, "/leagues/NBA_2018.html")
		require.NoError(t, err)
		require.Contains(t, page, "season page")
		require.Equal(t, int64(1), hits.Load())
	}
	{
		_, err := client.Page(ctx, "/leagues/NBA_1891.html")
		require.Error(t, err)
		require.Contains(t, err.Error(), "404")
	}
}

func TestClientRetriesRateLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("waits out a retry backoff")
	}

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte("<html><body>finally</body></html>"))
	}))
	defer srv.Close()

	client, err := NewClient(ClientOptions{BaseUrl: srv.URL})
	require.NoError(t, err)

	page, err := client.Page(context.Background(), "/")
	require.NoError(t, err)
	require.Contains(t, page, "finally")
	require.Equal(t, int64(2), hits.Load())
}

func TestClientDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(seasonFixture))
	}))
	defer srv.Close()

	client, err := NewClient(ClientOptions{BaseUrl: srv.URL})
	require.NoError(t, err)

	doc, err := client.Document(context.Background(), "/leagues/NBA_2018.html")
	require.NoError(t, err)

	// the opponent table only exists inside an html comment
	rows, err := StatsTable(doc, "all_opponent-stats-base")
	require.NoError(t, err)
	require.Equal(t, 1, rows.Length())
}

func TestParseRetryAfter(t *testing.T) {
	require.Equal(t, 30*time.Second, parseRetryAfter("30"))
	require.Equal(t, time.Duration(0), parseRetryAfter(""))
	require.Equal(t, time.Duration(0), parseRetryAfter("soon"))

	at := time.Now().Add(time.Minute).UTC().Format(http.TimeFormat)
	got := parseRetryAfter(at)
	require.Greater(t, got, 50*time.Second)
	require.LessOrEqual(t, got, time.Minute)
}
