package commands

import (
	"errors"
	"io/fs"

	"sportsref/lib/configutil"
	"sportsref/lib/restyutil"
	"sportsref/lib/scrape"
	"sportsref/lib/scrape/pagecache"
	"sportsref/lib/scrapers/nba"
	"sportsref/lib/scrapers/nhl"
	"sportsref/lib/serviceutil"
)

type Config struct {
	// path to the sqlite page cache, "" disables caching
	Cache string `json:"cache"`
	// overrides the browser user agent sent to the sites
	UserAgent string `json:"user_agent"`
	// dump http transcripts to this directory when debug logging is on
	Transcripts string `json:"transcripts"`
}

// a missing sref.json5 just means defaults
func loadConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("sref.json5")
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}
	}
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

func scraperOptions(cfg Config) (scrape.PageCache, restyutil.InstrumentOutput) {
	var cache scrape.PageCache
	if cfg.Cache != "" {
		opened, err := pagecache.Open(cfg.Cache)
		if err != nil {
			serviceutil.Fatal("failed to open page cache", err)
		}
		cache = opened
	}
	var output restyutil.InstrumentOutput
	if cfg.Transcripts != "" {
		output = restyutil.NewFilesystemOutput(cfg.Transcripts)
	}
	return cache, output
}

func newNbaClient() *nba.Client {
	cfg := loadConfig()
	cache, output := scraperOptions(cfg)
	client, err := nba.NewClient(nba.ClientOptions{
		UserAgent: cfg.UserAgent,
		Cache:     cache,
		Output:    output,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize nba client", err)
	}
	return client
}

func newNhlClient() *nhl.Client {
	cfg := loadConfig()
	cache, output := scraperOptions(cfg)
	client, err := nhl.NewClient(nhl.ClientOptions{
		UserAgent: cfg.UserAgent,
		Cache:     cache,
		Output:    output,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize nhl client", err)
	}
	return client
}
