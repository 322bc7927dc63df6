package scrape

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"sportsref/lib/htmlutil"
)

// Scorebox is the header block of a boxscore page: both teams with
// their final scores, plus the metadata lines printed under them. the
// sites share the markup, away team first.
type Scorebox struct {
	AwayName         string
	AwayAbbreviation string
	AwayScore        int
	HomeName         string
	HomeAbbreviation string
	HomeScore        int

	// the date line as printed, e.g. "9:00 PM, June 8, 2018"
	Date string
	// 0 when the page doesn't list it
	Attendance int
	// game length, 0 when the page doesn't list it
	Duration time.Duration
	Arena    string
}

func (s Scorebox) WinningName() string {
	if s.HomeScore > s.AwayScore {
		return s.HomeName
	}
	return s.AwayName
}

func (s Scorebox) WinningAbbreviation() string {
	if s.HomeScore > s.AwayScore {
		return s.HomeAbbreviation
	}
	return s.AwayAbbreviation
}

func (s Scorebox) LosingName() string {
	if s.HomeScore > s.AwayScore {
		return s.AwayName
	}
	return s.HomeName
}

func (s Scorebox) LosingAbbreviation() string {
	if s.HomeScore > s.AwayScore {
		return s.AwayAbbreviation
	}
	return s.HomeAbbreviation
}

func ParseScorebox(doc *goquery.Document) (Scorebox, error) {
	box := doc.Find("div.scorebox").First()
	if box.Length() == 0 {
		return Scorebox{}, fmt.Errorf("no scorebox on page")
	}

	teams := box.ChildrenFiltered("div").Not(".scorebox_meta")
	if teams.Length() < 2 {
		return Scorebox{}, fmt.Errorf("scorebox has %d team blocks, want 2", teams.Length())
	}

	var out Scorebox
	var err error
	out.AwayName, out.AwayAbbreviation, out.AwayScore, err = scoreboxTeam(teams.Eq(0))
	if err != nil {
		return Scorebox{}, fmt.Errorf("away team: %w", err)
	}
	out.HomeName, out.HomeAbbreviation, out.HomeScore, err = scoreboxTeam(teams.Eq(1))
	if err != nil {
		return Scorebox{}, fmt.Errorf("home team: %w", err)
	}

	err = parseScoreboxMeta(box, &out)
	if err != nil {
		return Scorebox{}, err
	}
	return out, nil
}

func scoreboxTeam(block *goquery.Selection) (name, abbreviation string, score int, err error) {
	anchor := block.Find("strong a").First()
	name = htmlutil.CleanText(anchor)
	if href, ok := anchor.Attr("href"); ok {
		abbreviation = PathSegment(href, "teams")
	}
	score, err = Int(htmlutil.CleanText(block.Find("div.score").First()))
	if err != nil {
		return "", "", 0, fmt.Errorf("score: %w", err)
	}
	return name, abbreviation, score, nil
}

// the meta block is a stack of one-line divs. some are labeled
// ("Attendance: 18,529") and some are not; of the unlabeled ones the
// first is the date line and the second, when present, the venue.
func parseScoreboxMeta(box *goquery.Selection, out *Scorebox) error {
	var err error
	box.Find("div.scorebox_meta").First().ChildrenFiltered("div").
		EachWithBreak(func(_ int, line *goquery.Selection) bool {
			text := htmlutil.CleanText(line)
			switch {
			case text == "":
			case strings.HasPrefix(text, "Attendance:"):
				out.Attendance, err = Int(metaValue(text, "Attendance:"))
			case strings.HasPrefix(text, "Time of Game:"):
				out.Duration, err = ClockDuration(metaValue(text, "Time of Game:"))
			case strings.HasPrefix(text, "Game Duration:"):
				out.Duration, err = ClockDuration(metaValue(text, "Game Duration:"))
			case strings.HasPrefix(text, "Arena:"):
				out.Arena = metaValue(text, "Arena:")
			case out.Date == "":
				out.Date = text
			case out.Arena == "":
				out.Arena = text
			}
			return err == nil
		})
	return err
}

func metaValue(line, label string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, label))
}
