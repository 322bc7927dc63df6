package nba

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"sportsref/lib/scrape"
)

// Team carries one franchise's season aggregates from the league
// summary page: the team's own totals plus the totals its opponents
// put up against it. Rank is the team's 1-based position in the stat
// table, which the site orders by points scored.
//
// Fields are set once during scraping and should be treated as
// read-only.
type Team struct {
	client *Client
	season int

	Rank         int
	Abbreviation string
	Name         string

	GamesPlayed   int
	MinutesPlayed int

	FieldGoals                    int
	FieldGoalAttempts             int
	FieldGoalPercentage           float64
	ThreePointFieldGoals          int
	ThreePointFieldGoalAttempts   int
	ThreePointFieldGoalPercentage float64
	TwoPointFieldGoals            int
	TwoPointFieldGoalAttempts     int
	TwoPointFieldGoalPercentage   float64
	FreeThrows                    int
	FreeThrowAttempts             int
	FreeThrowPercentage           float64
	OffensiveRebounds             int
	DefensiveRebounds             int
	TotalRebounds                 int
	Assists                       int
	Steals                        int
	Blocks                        int
	Turnovers                     int
	PersonalFouls                 int
	Points                        int

	OpponentFieldGoals                    int
	OpponentFieldGoalAttempts             int
	OpponentFieldGoalPercentage           float64
	OpponentThreePointFieldGoals          int
	OpponentThreePointFieldGoalAttempts   int
	OpponentThreePointFieldGoalPercentage float64
	OpponentTwoPointFieldGoals            int
	OpponentTwoPointFieldGoalAttempts     int
	OpponentTwoPointFieldGoalPercentage   float64
	OpponentFreeThrows                    int
	OpponentFreeThrowAttempts             int
	OpponentFreeThrowPercentage           float64
	OpponentOffensiveRebounds             int
	OpponentDefensiveRebounds             int
	OpponentTotalRebounds                 int
	OpponentAssists                       int
	OpponentSteals                        int
	OpponentBlocks                        int
	OpponentTurnovers                     int
	OpponentPersonalFouls                 int
	OpponentPoints                        int
}

// Schedule fetches the team's game log for the season it was scraped
// from.
func (t Team) Schedule(ctx context.Context) (Schedule, error) {
	return t.client.Schedule(ctx, t.Abbreviation, t.season)
}

// Teams is every team of one season, ordered the way the site's stat
// table lists them.
type Teams struct {
	teams []Team
}

func (t Teams) Len() int {
	return len(t.teams)
}

// All returns the teams in table order. Callers must not modify the
// returned slice.
func (t Teams) All() []Team {
	return t.teams
}

// Abbreviation finds a team by its site abbreviation ("DET"), ignoring
// case. Unknown abbreviations return an error wrapping
// scrape.ErrNotFound that names the closest match.
func (t Teams) Abbreviation(abbreviation string) (Team, error) {
	team, err := scrape.Lookup(t.teams, func(t Team) string { return t.Abbreviation }, abbreviation)
	if err != nil {
		return Team{}, fmt.Errorf("team %w", err)
	}
	return team, nil
}

// Teams scrapes the season summary page and merges its team and
// opponent stat tables into one record per franchise. A season of 0
// means the current season.
func (c *Client) Teams(ctx context.Context, season int) (Teams, error) {
	ctx, span := tracer.Start(ctx, "Teams")
	defer span.End()

	if season == 0 {
		season = CurrentSeason()
	}
	span.SetAttributes(attribute.Int("season", season))

	doc, err := c.site.Document(ctx, fmt.Sprintf(seasonPath, season))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not fetch season page")
		return Teams{}, err
	}

	offense, err := scrape.StatsTable(doc, offenseTableId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Teams{}, err
	}
	opponent, err := scrape.StatsTable(doc, opponentTableId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Teams{}, err
	}

	merger := scrape.NewRowMerger()
	if err := merger.AddTable(offense, teamKey); err != nil {
		return Teams{}, err
	}
	if err := merger.AddTable(opponent, teamKey); err != nil {
		return Teams{}, err
	}

	var teams []Team
	for _, group := range merger.Groups() {
		team, err := newTeam(c, season, group)
		if err != nil {
			err = fmt.Errorf("team %s: %w", group.Key, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "could not parse team row")
			return Teams{}, err
		}
		teams = append(teams, team)
	}

	slog.DebugContext(ctx, "scraped teams", "season", season, "count", len(teams))
	return Teams{teams: teams}, nil
}

// teamKey pulls the abbreviation out of the team name cell's link.
// Rows without one (the league average line) merge under "" and get
// dropped.
func teamKey(row *goquery.Selection) string {
	href, ok := scrape.ParseRow(row, teamScheme).Href("abbreviation")
	if !ok {
		return ""
	}
	return scrape.PathSegment(href, "teams")
}

func newTeam(c *Client, season int, group *scrape.RowGroup) (Team, error) {
	rows, err := group.Selection()
	if err != nil {
		return Team{}, err
	}
	p := scrape.ParseRow(rows, teamScheme)

	team := Team{
		client: c,
		season: season,

		Rank:         group.Rank,
		Abbreviation: group.Key,
		Name:         p.Str("name"),

		GamesPlayed:   p.Int("games_played"),
		MinutesPlayed: p.Int("minutes_played"),

		FieldGoals:                    p.Int("field_goals"),
		FieldGoalAttempts:             p.Int("field_goal_attempts"),
		FieldGoalPercentage:           p.Pct("field_goal_percentage"),
		ThreePointFieldGoals:          p.Int("three_point_field_goals"),
		ThreePointFieldGoalAttempts:   p.Int("three_point_field_goal_attempts"),
		ThreePointFieldGoalPercentage: p.Pct("three_point_field_goal_percentage"),
		TwoPointFieldGoals:            p.Int("two_point_field_goals"),
		TwoPointFieldGoalAttempts:     p.Int("two_point_field_goal_attempts"),
		TwoPointFieldGoalPercentage:   p.Pct("two_point_field_goal_percentage"),
		FreeThrows:                    p.Int("free_throws"),
		FreeThrowAttempts:             p.Int("free_throw_attempts"),
		FreeThrowPercentage:           p.Pct("free_throw_percentage"),
		OffensiveRebounds:             p.Int("offensive_rebounds"),
		DefensiveRebounds:             p.Int("defensive_rebounds"),
		TotalRebounds:                 p.Int("total_rebounds"),
		Assists:                       p.Int("assists"),
		Steals:                        p.Int("steals"),
		Blocks:                        p.Int("blocks"),
		Turnovers:                     p.Int("turnovers"),
		PersonalFouls:                 p.Int("personal_fouls"),
		Points:                        p.Int("points"),

		OpponentFieldGoals:                    p.Int("opponent_field_goals"),
		OpponentFieldGoalAttempts:             p.Int("opponent_field_goal_attempts"),
		OpponentFieldGoalPercentage:           p.Pct("opponent_field_goal_percentage"),
		OpponentThreePointFieldGoals:          p.Int("opponent_three_point_field_goals"),
		OpponentThreePointFieldGoalAttempts:   p.Int("opponent_three_point_field_goal_attempts"),
		OpponentThreePointFieldGoalPercentage: p.Pct("opponent_three_point_field_goal_percentage"),
		OpponentTwoPointFieldGoals:            p.Int("opponent_two_point_field_goals"),
		OpponentTwoPointFieldGoalAttempts:     p.Int("opponent_two_point_field_goal_attempts"),
		OpponentTwoPointFieldGoalPercentage:   p.Pct("opponent_two_point_field_goal_percentage"),
		OpponentFreeThrows:                    p.Int("opponent_free_throws"),
		OpponentFreeThrowAttempts:             p.Int("opponent_free_throw_attempts"),
		OpponentFreeThrowPercentage:           p.Pct("opponent_free_throw_percentage"),
		OpponentOffensiveRebounds:             p.Int("opponent_offensive_rebounds"),
		OpponentDefensiveRebounds:             p.Int("opponent_defensive_rebounds"),
		OpponentTotalRebounds:                 p.Int("opponent_total_rebounds"),
		OpponentAssists:                       p.Int("opponent_assists"),
		OpponentSteals:                        p.Int("opponent_steals"),
		OpponentBlocks:                        p.Int("opponent_blocks"),
		OpponentTurnovers:                     p.Int("opponent_turnovers"),
		OpponentPersonalFouls:                 p.Int("opponent_personal_fouls"),
		OpponentPoints:                        p.Int("opponent_points"),
	}
	return team, p.Err()
}
