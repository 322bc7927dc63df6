package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"sportsref/lib/scrape"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

// pointer cells render as "-" until the game is played
func cell[T any](v *T) any {
	if v == nil {
		return "-"
	}
	return *v
}

func durationCell(v *time.Duration) string {
	if v == nil {
		return "-"
	}
	return v.String()
}

func overtimesCell(overtimes int) string {
	switch overtimes {
	case 0:
		return ""
	case 1:
		return "OT"
	case scrape.Shootout:
		return "SO"
	}
	return fmt.Sprintf("%dOT", overtimes)
}

func locationCell(location scrape.GameLocation) string {
	if location == scrape.Away {
		return "@"
	}
	return ""
}
