package nhl

import (
	"time"

	"sportsref/lib/scrape"
)

const BaseUrl = "https://www.hockey-reference.com"

const (
	seasonPath   = "/leagues/NHL_%d.html"
	schedulePath = "/teams/%s/%d_games.html"
	boxscorePath = "/boxscores/%s.html"
)

const (
	standingsTableId = "all_stats"
	scheduleTableId  = "games"
)

// seasons are labeled by the year they end in, so the 2017-18 season
// lives at NHL_2018.html
const seasonStartMonth = time.October

const (
	scheduleDateLayout = "2006-01-02"
	scheduleTimeLayout = "3:04 PM"
)

var teamScheme = scrape.Scheme{
	"name":                 `td[data-stat="team_name"]`,
	"abbreviation":         `td[data-stat="team_name"]`,
	"average_age":          scrape.DataStat("average_age"),
	"games_played":         scrape.DataStat("games"),
	"wins":                 scrape.DataStat("wins"),
	"losses":               scrape.DataStat("losses"),
	"overtime_losses":      scrape.DataStat("losses_ot"),
	"points":               scrape.DataStat("points"),
	"points_percentage":    scrape.DataStat("points_pct"),
	"goals_for":            scrape.DataStat("goals"),
	"goals_against":        scrape.DataStat("opp_goals"),
	"simple_rating":        scrape.DataStat("srs"),
	"strength_of_schedule": scrape.DataStat("sos"),
}

var scheduleScheme = scrape.Scheme{
	"game":                     `th[data-stat="games"]`,
	"date":                     scrape.DataStat("date_game"),
	"time":                     scrape.DataStat("time_game"),
	"boxscore":                 scrape.DataStat("box_score_text"),
	"location":                 scrape.DataStat("game_location"),
	"opponent_name":            scrape.DataStat("opp_name"),
	"goals_scored":             scrape.DataStat("goals"),
	"goals_allowed":            scrape.DataStat("opp_goals"),
	"result":                   scrape.DataStat("game_result"),
	"overtimes":                scrape.DataStat("overtimes"),
	"wins":                     scrape.DataStat("wins"),
	"losses":                   scrape.DataStat("losses"),
	"overtime_losses":          scrape.DataStat("losses_ot"),
	"streak":                   scrape.DataStat("game_streak"),
	"shots_on_goal":            scrape.DataStat("shots"),
	"penalties_in_minutes":     scrape.DataStat("pen_min"),
	"power_play_goals":         scrape.DataStat("goals_pp"),
	"power_play_opportunities": scrape.DataStat("chances_pp"),
	"short_handed_goals":       scrape.DataStat("goals_sh"),
	"attendance":               scrape.DataStat("attendance"),
	"duration":                 scrape.DataStat("game_duration"),
}
