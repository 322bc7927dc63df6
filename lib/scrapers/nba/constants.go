package nba

import (
	"time"

	"sportsref/lib/scrape"
)

const BaseUrl = "https://www.basketball-reference.com"

const (
	seasonPath   = "/leagues/NBA_%d.html"
	schedulePath = "/teams/%s/%d_games.html"
	boxscorePath = "/boxscores/%s.html"
)

const (
	offenseTableId  = "all_team-stats-base"
	opponentTableId = "all_opponent-stats-base"
	scheduleTableId = "games"
)

// seasons are labeled by the year they end in, so the 2017-18 season
// lives at NBA_2018.html
const seasonStartMonth = time.October

const (
	scheduleDateLayout = "Mon, Jan 2, 2006"
	scheduleTimeLayout = "3:04 PM"
)

// stat columns that appear in both the per-game and opponent tables,
// the opponent table prefixes its copies with opp_
var mirroredStats = map[string]string{
	"field_goals":                       "fg",
	"field_goal_attempts":               "fga",
	"field_goal_percentage":             "fg_pct",
	"three_point_field_goals":           "fg3",
	"three_point_field_goal_attempts":   "fg3a",
	"three_point_field_goal_percentage": "fg3_pct",
	"two_point_field_goals":             "fg2",
	"two_point_field_goal_attempts":     "fg2a",
	"two_point_field_goal_percentage":   "fg2_pct",
	"free_throws":                       "ft",
	"free_throw_attempts":               "fta",
	"free_throw_percentage":             "ft_pct",
	"offensive_rebounds":                "orb",
	"defensive_rebounds":                "drb",
	"total_rebounds":                    "trb",
	"assists":                           "ast",
	"steals":                            "stl",
	"blocks":                            "blk",
	"turnovers":                         "tov",
	"personal_fouls":                    "pf",
	"points":                            "pts",
}

var teamScheme = buildTeamScheme()

func buildTeamScheme() scrape.Scheme {
	scheme := scrape.Scheme{
		"name":           `td[data-stat="team_name"]`,
		"abbreviation":   `td[data-stat="team_name"]`,
		"games_played":   scrape.DataStat("g"),
		"minutes_played": scrape.DataStat("mp"),
	}
	for field, stat := range mirroredStats {
		scheme[field] = scrape.DataStat(stat)
		scheme["opponent_"+field] = scrape.DataStat("opp_" + stat)
	}
	return scheme
}

var scheduleScheme = scrape.Scheme{
	"game":           `th[data-stat="g"]`,
	"date":           scrape.DataStat("date_game"),
	"time":           scrape.DataStat("game_start_time"),
	"boxscore":       scrape.DataStat("box_score_text"),
	"location":       scrape.DataStat("game_location"),
	"opponent_name":  scrape.DataStat("opp_name"),
	"result":         scrape.DataStat("game_result"),
	"overtimes":      scrape.DataStat("overtimes"),
	"points_scored":  scrape.DataStat("pts"),
	"points_allowed": scrape.DataStat("opp_pts"),
	"wins":           scrape.DataStat("wins"),
	"losses":         scrape.DataStat("losses"),
	"streak":         scrape.DataStat("game_streak"),
}
