// Package nhl scrapes season-level team statistics, schedules, and
// boxscores from hockey-reference.com.
package nhl

import (
	"time"

	"go.opentelemetry.io/otel"

	"sportsref/lib/restyutil"
	"sportsref/lib/scrape"
	"sportsref/lib/timezone"
)

var tracer = otel.Tracer("scrapers/nhl")

type ClientOptions struct {
	// overrides the production site url, used by tests
	BaseUrl   string
	UserAgent string
	Cache     scrape.PageCache
	CacheTTL  time.Duration
	Output    restyutil.InstrumentOutput
}

type Client struct {
	site *scrape.Client
}

func NewClient(options ClientOptions) (*Client, error) {
	baseUrl := options.BaseUrl
	if baseUrl == "" {
		baseUrl = BaseUrl
	}
	site, err := scrape.NewClient(scrape.ClientOptions{
		BaseUrl:   baseUrl,
		UserAgent: options.UserAgent,
		Cache:     options.Cache,
		CacheTTL:  options.CacheTTL,
		Output:    options.Output,
	})
	if err != nil {
		return nil, err
	}
	return &Client{site: site}, nil
}

// CurrentSeason returns the season the current date falls in. Season
// pages are labeled by the closing year, so October 2018 through
// September 2019 all map to the 2019 season.
func CurrentSeason() int {
	return scrape.SeasonYear(timezone.Now(), seasonStartMonth)
}
