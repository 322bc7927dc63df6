package nhl

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"sportsref/lib/scrape"
)

// Boxscore is the summary header of one game's boxscore page.
type Boxscore struct {
	Id string
	scrape.Scorebox
}

// Boxscore scrapes a boxscore page by id, e.g. "201806070VEG".
func (c *Client) Boxscore(ctx context.Context, id string) (Boxscore, error) {
	ctx, span := tracer.Start(ctx, "Boxscore")
	defer span.End()
	span.SetAttributes(attribute.String("id", id))

	doc, err := c.site.Document(ctx, fmt.Sprintf(boxscorePath, id))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not fetch boxscore page")
		return Boxscore{}, err
	}

	scorebox, err := scrape.ParseScorebox(doc)
	if err != nil {
		err = fmt.Errorf("boxscore %s: %w", id, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not parse scorebox")
		return Boxscore{}, err
	}
	return Boxscore{Id: id, Scorebox: scorebox}, nil
}
