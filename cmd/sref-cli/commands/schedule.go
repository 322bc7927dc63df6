package commands

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"sportsref/lib/serviceutil"
)

var scheduleSeason *int

func init() {
	scheduleSeason = scheduleCmd.Flags().Int("season", 0, "Season by closing year, 0 means the current season.")
	rootCmd.AddCommand(scheduleCmd)
}

const scheduleDateFormat = "Mon 2006-01-02 3:04 PM"

var scheduleCmd = &cobra.Command{
	Use:   "schedule <abbreviation> [--season <year>]",
	Short: "List a team's game log for a season.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		switch *sport {
		case "nba":
			nbaSchedule(cmd.Context(), args[0], *scheduleSeason)
		case "nhl":
			nhlSchedule(cmd.Context(), args[0], *scheduleSeason)
		default:
			serviceutil.Fatal("unknown sport", fmt.Errorf("%q is not nba or nhl", *sport))
		}
	},
}

func nbaSchedule(ctx context.Context, abbreviation string, season int) {
	client := newNbaClient()
	schedule, err := client.Schedule(ctx, abbreviation, season)
	if err != nil {
		serviceutil.Fatal("failed to scrape schedule", err)
	}

	t := newTable()
	t.AppendHeader(table.Row{"G", "Date", "", "Opponent", "Result", "OT", "Tm", "Opp", "W", "L", "Streak"})
	for _, game := range schedule.Games() {
		t.AppendRow(table.Row{
			game.Ordinal,
			game.Date.Format(scheduleDateFormat),
			locationCell(game.Location),
			game.OpponentName,
			cell(game.Result),
			overtimesCell(game.Overtimes),
			cell(game.PointsScored),
			cell(game.PointsAllowed),
			cell(game.Wins),
			cell(game.Losses),
			game.Streak,
		})
	}
	t.Render()
}

func nhlSchedule(ctx context.Context, abbreviation string, season int) {
	client := newNhlClient()
	schedule, err := client.Schedule(ctx, abbreviation, season)
	if err != nil {
		serviceutil.Fatal("failed to scrape schedule", err)
	}

	t := newTable()
	t.AppendHeader(table.Row{"G", "Date", "", "Opponent", "Result", "OT", "GF", "GA", "SOG", "Att", "Length"})
	for _, game := range schedule.Games() {
		t.AppendRow(table.Row{
			game.Ordinal,
			game.Date.Format(scheduleDateFormat),
			locationCell(game.Location),
			game.OpponentName,
			cell(game.Result),
			overtimesCell(game.Overtimes),
			cell(game.GoalsScored),
			cell(game.GoalsAllowed),
			cell(game.ShotsOnGoal),
			cell(game.Attendance),
			durationCell(game.Duration),
		})
	}
	t.Render()
}
