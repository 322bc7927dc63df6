package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"sportsref/lib/scrape/pagecache"
	"sportsref/lib/serviceutil"
)

func init() {
	cacheCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the page cache.",
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove expired pages from the cache.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if cfg.Cache == "" {
			serviceutil.Fatal("no cache configured", fmt.Errorf(`set "cache" in sref.json5`))
		}

		cache, err := pagecache.Open(cfg.Cache)
		if err != nil {
			serviceutil.Fatal("failed to open page cache", err)
		}
		defer cache.Close()

		removed, err := cache.Prune(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to prune page cache", err)
		}
		slog.Info("pruned expired pages", "removed", removed)
	},
}
