package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sportsref/lib/scrape/pagecache"
	"sportsref/lib/telemetry"
)

type ScraperParams struct {
	Name string
	// request path -> fixture HTML served by the test server,
	// anything else 404s
	Pages map[string]string
	// if true, an in-memory page cache is opened as well
	Cache bool
}

type ScraperResult struct {
	Server *httptest.Server
	Cache  *pagecache.Cache
}

// SetupScraper stands up everything a scraping test needs: telemetry,
// an httptest server over fixture pages and optionally an in-memory
// page cache.
func SetupScraper(t testing.TB, params ScraperParams) (ScraperResult, func()) {
	telemetryCleanup := telemetry.SetupForTesting(fmt.Sprintf("test:%s", params.Name))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := params.Pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("content-type", "text/html")
		w.Write([]byte(page))
	}))

	var cache *pagecache.Cache
	if params.Cache {
		var err error
		cache, err = pagecache.Open(":memory:")
		if err != nil {
			server.Close()
			t.Fatal(err)
		}
	}

	return ScraperResult{
			Server: server,
			Cache:  cache,
		}, func() {
			if cache != nil {
				cache.Close()
			}
			server.Close()
			telemetryCleanup()
		}
}
