package nhl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"sportsref/lib/scrape"
)

// Team carries one franchise's line from the season standings table.
// Rank is the team's 1-based position in the table, which the site
// orders by points.
//
// Fields are set once during scraping and should be treated as
// read-only.
type Team struct {
	client *Client
	season int

	Rank         int
	Abbreviation string
	Name         string

	AverageAge     float64
	GamesPlayed    int
	Wins           int
	Losses         int
	OvertimeLosses int
	// standings points, 2 per win and 1 per overtime loss
	Points           int
	PointsPercentage float64
	GoalsFor         int
	GoalsAgainst     int
	// margin-of-victory based rating relative to league average, can
	// be negative
	SimpleRating       float64
	StrengthOfSchedule float64
}

// Schedule fetches the team's game log for the season it was scraped
// from.
func (t Team) Schedule(ctx context.Context) (Schedule, error) {
	return t.client.Schedule(ctx, t.Abbreviation, t.season)
}

// Teams is every team of one season, ordered the way the site's
// standings table lists them.
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

// Abbreviation finds a team by its site abbreviation ("TBL"), ignoring
// case. Unknown abbreviations return an error wrapping
// scrape.ErrNotFound that names the closest match.
func (t Teams) Abbreviation(abbreviation string) (Team, error) {
	team, err := scrape.Lookup(t.teams, func(t Team) string { return t.Abbreviation }, abbreviation)
	if err != nil {
		return Team{}, fmt.Errorf("team %w", err)
	}
	return team, nil
}

// Teams scrapes the season standings table. A season of 0 means the
// current season.
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

	rows, err := scrape.StatsTable(doc, standingsTableId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Teams{}, err
	}

	merger := scrape.NewRowMerger()
	if err := merger.AddTable(rows, teamKey); err != nil {
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

		AverageAge:         p.Float("average_age"),
		GamesPlayed:        p.Int("games_played"),
		Wins:               p.Int("wins"),
		Losses:             p.Int("losses"),
		OvertimeLosses:     p.Int("overtime_losses"),
		Points:             p.Int("points"),
		PointsPercentage:   p.Pct("points_percentage"),
		GoalsFor:           p.Int("goals_for"),
		GoalsAgainst:       p.Int("goals_against"),
		SimpleRating:       p.Float("simple_rating"),
		StrengthOfSchedule: p.Float("strength_of_schedule"),
	}
	return team, p.Err()
}
