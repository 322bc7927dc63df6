package scrape

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"sportsref/lib/timezone"
)

// Int parses a count cell. the sites render large counts with
// thousands separators ("17,565") so commas are stripped first.
func Int(raw string) (int, error) {
	v, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return 0, fmt.Errorf("parse int %q", raw)
	}
	return v, nil
}

func Float(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse float %q", raw)
	}
	return v, nil
}

// Pct parses a percentage cell into a fraction in [0, 1]. the sites
// mostly render fractions already (".507", sometimes with a leading
// zero) but a few tables use the 0-100 scale, which is divided down so
// callers always see the same range.
func Pct(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse percentage %q", raw)
	}
	if v > 1 {
		v /= 100
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("percentage %q out of range", raw)
	}
	return v, nil
}

// Shootout is the Overtimes value for a game decided in a shootout
// rather than a counted number of overtime periods.
const Shootout = -1

// Overtimes parses an overtime cell: "" means none, "OT" one period,
// "2OT" two and so on, and "SO" a shootout.
func Overtimes(raw string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return 0, nil
	case "ot":
		return 1, nil
	case "so":
		return Shootout, nil
	}
	if digits, found := strings.CutSuffix(s, "ot"); found {
		v, err := strconv.Atoi(digits)
		if err == nil && v > 0 {
			return v, nil
		}
	}
	return 0, fmt.Errorf("parse overtimes %q", raw)
}

// ClockDuration parses an "H:MM" game length cell like "2:27".
func ClockDuration(raw string) (time.Duration, error) {
	hours, minutes, found := strings.Cut(raw, ":")
	if !found {
		return 0, fmt.Errorf("parse game length %q", raw)
	}
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, fmt.Errorf("parse game length %q", raw)
	}
	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse game length %q", raw)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

// DateTime combines a date cell and an optional start time cell into
// one timestamp in the sites' home (eastern) timezone.
func DateTime(dateLayout, clockLayout, date, clock string) (time.Time, error) {
	if clock == "" {
		t, err := time.ParseInLocation(dateLayout, date, timezone.Location)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse date %q", date)
		}
		return t, nil
	}
	t, err := time.ParseInLocation(dateLayout+" "+clockLayout, date+" "+clock, timezone.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse datetime %q %q", date, clock)
	}
	return t, nil
}

type GameLocation string

const (
	Home GameLocation = "Home"
	Away GameLocation = "Away"
)

// ParseGameLocation reads the location marker column, which is "@" for
// road games and blank for home games.
func ParseGameLocation(raw string) GameLocation {
	if strings.TrimSpace(raw) == "@" {
		return Away
	}
	return Home
}

// PathSegment extracts the path component following `dir` from a link,
// with any ".html" suffix dropped. this is how the sites encode
// identifiers: /teams/DET/2018.html carries the abbreviation DET and
// /boxscores/201806080CLE.html the boxscore id.
func PathSegment(href, dir string) string {
	parts := strings.Split(href, "/")
	for i, part := range parts {
		if part == dir && i+1 < len(parts) {
			return strings.TrimSuffix(parts[i+1], ".html")
		}
	}
	return ""
}
