package commands

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"sportsref/lib/serviceutil"
)

var teamsSeason *int

func init() {
	teamsSeason = teamsCmd.Flags().Int("season", 0, "Season by closing year, 0 means the current season.")
	rootCmd.AddCommand(teamsCmd)
}

var teamsCmd = &cobra.Command{
	Use:   "teams [--season <year>]",
	Short: "List every team of a season with its stat line.",
	Run: func(cmd *cobra.Command, args []string) {
		switch *sport {
		case "nba":
			nbaTeams(cmd.Context(), *teamsSeason)
		case "nhl":
			nhlTeams(cmd.Context(), *teamsSeason)
		default:
			serviceutil.Fatal("unknown sport", fmt.Errorf("%q is not nba or nhl", *sport))
		}
	},
}

func nbaTeams(ctx context.Context, season int) {
	client := newNbaClient()
	teams, err := client.Teams(ctx, season)
	if err != nil {
		serviceutil.Fatal("failed to scrape teams", err)
	}

	t := newTable()
	t.AppendHeader(table.Row{"Rk", "Abbr", "Team", "GP", "PTS", "OPP PTS", "FG%", "3P%", "FT%", "TRB", "AST"})
	for _, team := range teams.All() {
		t.AppendRow(table.Row{
			team.Rank, team.Abbreviation, team.Name, team.GamesPlayed,
			team.Points, team.OpponentPoints,
			fmt.Sprintf("%.3f", team.FieldGoalPercentage),
			fmt.Sprintf("%.3f", team.ThreePointFieldGoalPercentage),
			fmt.Sprintf("%.3f", team.FreeThrowPercentage),
			team.TotalRebounds, team.Assists,
		})
	}
	t.Render()
}

func nhlTeams(ctx context.Context, season int) {
	client := newNhlClient()
	teams, err := client.Teams(ctx, season)
	if err != nil {
		serviceutil.Fatal("failed to scrape teams", err)
	}

	t := newTable()
	t.AppendHeader(table.Row{"Rk", "Abbr", "Team", "GP", "W", "L", "OTL", "PTS", "PTS%", "GF", "GA", "SRS"})
	for _, team := range teams.All() {
		t.AppendRow(table.Row{
			team.Rank, team.Abbreviation, team.Name, team.GamesPlayed,
			team.Wins, team.Losses, team.OvertimeLosses, team.Points,
			fmt.Sprintf("%.3f", team.PointsPercentage),
			team.GoalsFor, team.GoalsAgainst,
			fmt.Sprintf("%.2f", team.SimpleRating),
		})
	}
	t.Render()
}
