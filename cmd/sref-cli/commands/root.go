package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sportsref/lib/telemetry"
)

var rootCmd = &cobra.Command{
	Use:   "sref-cli",
	Short: "sref-cli scrapes team stats, schedules, and boxscores from the sports reference sites.",
}

var verbose *bool
var sport *string

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
	sport = rootCmd.PersistentFlags().String("sport", "nba", "The sport to scrape: nba or nhl.")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	}
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
