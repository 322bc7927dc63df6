package scrape

import (
	"testing"
	"time"

	"sportsref/lib/timezone"

	"github.com/stretchr/testify/require"
)

func TestSeasonYear(t *testing.T) {
	cases := []struct {
		month time.Month
		year  int
		want  int
	}{
		{month: time.October, year: 2017, want: 2018},
		{month: time.December, year: 2017, want: 2018},
		{month: time.January, year: 2018, want: 2018},
		{month: time.June, year: 2018, want: 2018},
		{month: time.September, year: 2018, want: 2018},
		{month: time.October, year: 2018, want: 2019},
	}
	for _, c := range cases {
		now := time.Date(c.year, c.month, 15, 12, 0, 0, 0, timezone.Location)
		require.Equal(t, c.want, SeasonYear(now, time.October), now.Format("Jan 2006"))
	}
}
