package nba

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"sportsref/lib/scrape"
)

type Result string

const (
	Win  Result = "Win"
	Loss Result = "Loss"
)

// Game is one row of a team's schedule page. Games that have not been
// played yet leave Result nil and the score, record, and streak fields
// empty.
type Game struct {
	client *Client

	// 1-based game number within the season
	Ordinal int
	// tip-off in eastern time, midnight when the site lists no start
	// time
	Date time.Time
	// id of the boxscore page, "" until the game is played
	BoxscoreId           string
	Location             scrape.GameLocation
	OpponentAbbreviation string
	OpponentName         string

	Result        *Result
	Overtimes     int
	PointsScored  *int
	PointsAllowed *int
	// season record after this game
	Wins   *int
	Losses *int
	// streak after this game, "W 3" style
	Streak string
}

// Boxscore fetches the game's boxscore page. Unplayed games have none
// and return an error wrapping scrape.ErrNotFound.
func (g Game) Boxscore(ctx context.Context) (Boxscore, error) {
	if g.BoxscoreId == "" {
		return Boxscore{}, fmt.Errorf("boxscore %w: game %d has not been played", scrape.ErrNotFound, g.Ordinal)
	}
	return g.client.Boxscore(ctx, g.BoxscoreId)
}

// Schedule is a team's full season game log in schedule order.
type Schedule struct {
	games []Game
}

func (s Schedule) Len() int {
	return len(s.games)
}

// Games returns the games in schedule order. Callers must not modify
// the returned slice.
func (s Schedule) Games() []Game {
	return s.games
}

// Index returns the i-th game of the season, 0-based.
func (s Schedule) Index(i int) (Game, error) {
	if i < 0 || i >= len(s.games) {
		return Game{}, fmt.Errorf("game %w: index %d of %d games", scrape.ErrNotFound, i, len(s.games))
	}
	return s.games[i], nil
}

// On finds the game played on the given calendar date, ignoring the
// time of day.
func (s Schedule) On(date time.Time) (Game, error) {
	y, m, d := date.Date()
	for _, game := range s.games {
		gy, gm, gd := game.Date.Date()
		if gy == y && gm == m && gd == d {
			return game, nil
		}
	}
	return Game{}, fmt.Errorf("game %w: no games on %s", scrape.ErrNotFound, date.Format("2006-01-02"))
}

// Schedule scrapes a team's schedule page for the given season. A
// season of 0 means the current season.
func (c *Client) Schedule(ctx context.Context, abbreviation string, season int) (Schedule, error) {
	ctx, span := tracer.Start(ctx, "Schedule")
	defer span.End()

	if season == 0 {
		season = CurrentSeason()
	}
	abbreviation = strings.ToUpper(abbreviation)
	span.SetAttributes(
		attribute.String("abbreviation", abbreviation),
		attribute.Int("season", season),
	)

	doc, err := c.site.Document(ctx, fmt.Sprintf(schedulePath, abbreviation, season))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not fetch schedule page")
		return Schedule{}, err
	}

	rows, err := scrape.Table(doc, scheduleTableId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Schedule{}, err
	}

	var games []Game
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		game, rowErr := newGame(c, row)
		if rowErr != nil {
			err = fmt.Errorf("row %d: %w", i, rowErr)
			return false
		}
		games = append(games, game)
		return true
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not parse schedule row")
		return Schedule{}, err
	}

	slog.DebugContext(ctx, "scraped schedule",
		"abbreviation", abbreviation, "season", season, "games", len(games))
	return Schedule{games: games}, nil
}

func newGame(c *Client, row *goquery.Selection) (Game, error) {
	p := scrape.ParseRow(row, scheduleScheme)

	date, err := scrape.DateTime(
		scheduleDateLayout, scheduleTimeLayout,
		p.Str("date"), normalizeClock(p.Str("time")),
	)
	if err != nil {
		return Game{}, err
	}
	result, err := parseResult(p.Str("result"))
	if err != nil {
		return Game{}, err
	}
	overtimes, err := scrape.Overtimes(p.Str("overtimes"))
	if err != nil {
		return Game{}, err
	}

	game := Game{
		client:        c,
		Ordinal:       p.Int("game"),
		Date:          date,
		Location:      scrape.ParseGameLocation(p.Str("location")),
		OpponentName:  p.Str("opponent_name"),
		Result:        result,
		Overtimes:     overtimes,
		PointsScored:  p.IntPtr("points_scored"),
		PointsAllowed: p.IntPtr("points_allowed"),
		Wins:          p.IntPtr("wins"),
		Losses:        p.IntPtr("losses"),
		Streak:        p.Str("streak"),
	}
	if href, ok := p.Href("opponent_name"); ok {
		game.OpponentAbbreviation = scrape.PathSegment(href, "teams")
	}
	if href, ok := p.Href("boxscore"); ok {
		game.BoxscoreId = scrape.PathSegment(href, "boxscores")
	}
	return game, p.Err()
}

func parseResult(raw string) (*Result, error) {
	switch strings.ToUpper(raw) {
	case "":
		return nil, nil
	case "W":
		result := Win
		return &result, nil
	case "L":
		result := Loss
		return &result, nil
	}
	return nil, fmt.Errorf("parse result %q", raw)
}

// the site renders start times like "7:30p", expand the meridiem so
// the standard time layouts can parse it
func normalizeClock(raw string) string {
	switch {
	case strings.HasSuffix(raw, "p"):
		return strings.TrimSuffix(raw, "p") + " PM"
	case strings.HasSuffix(raw, "a"):
		return strings.TrimSuffix(raw, "a") + " AM"
	}
	return raw
}
