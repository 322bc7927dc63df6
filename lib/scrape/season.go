package scrape

import "time"

// SeasonYear returns the year labeling the season that `now` falls in.
// the sites label a season by the calendar year it ends in, so from
// the start month onward the label is next year: october 2017 belongs
// to the 2018 nba season page.
func SeasonYear(now time.Time, startMonth time.Month) int {
	if now.Month() >= startMonth {
		return now.Year() + 1
	}
	return now.Year()
}
