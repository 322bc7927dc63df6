package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"sportsref/lib/scrape"
	"sportsref/lib/serviceutil"
)

func init() {
	rootCmd.AddCommand(boxscoreCmd)
}

var boxscoreCmd = &cobra.Command{
	Use:   "boxscore <id>",
	Short: "Show the final score and game details of a boxscore page, e.g. 201806080CLE.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		switch *sport {
		case "nba":
			client := newNbaClient()
			boxscore, err := client.Boxscore(cmd.Context(), args[0])
			if err != nil {
				serviceutil.Fatal("failed to scrape boxscore", err)
			}
			renderScorebox(boxscore.Scorebox)
		case "nhl":
			client := newNhlClient()
			boxscore, err := client.Boxscore(cmd.Context(), args[0])
			if err != nil {
				serviceutil.Fatal("failed to scrape boxscore", err)
			}
			renderScorebox(boxscore.Scorebox)
		default:
			serviceutil.Fatal("unknown sport", fmt.Errorf("%q is not nba or nhl", *sport))
		}
	},
}

func renderScorebox(scorebox scrape.Scorebox) {
	t := newTable()
	t.AppendHeader(table.Row{"", "Team", "Score"})
	t.AppendRow(table.Row{"Away", fmt.Sprintf("%s (%s)", scorebox.AwayName, scorebox.AwayAbbreviation), scorebox.AwayScore})
	t.AppendRow(table.Row{"Home", fmt.Sprintf("%s (%s)", scorebox.HomeName, scorebox.HomeAbbreviation), scorebox.HomeScore})
	t.Render()

	details := newTable()
	details.AppendRow(table.Row{"Winner", scorebox.WinningName()})
	if scorebox.Date != "" {
		details.AppendRow(table.Row{"Date", scorebox.Date})
	}
	if scorebox.Arena != "" {
		details.AppendRow(table.Row{"Arena", scorebox.Arena})
	}
	if scorebox.Attendance != 0 {
		details.AppendRow(table.Row{"Attendance", scorebox.Attendance})
	}
	if scorebox.Duration != 0 {
		details.AppendRow(table.Row{"Length", scorebox.Duration.String()})
	}
	details.Render()
}
