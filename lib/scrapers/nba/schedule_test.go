package nba

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sportsref/lib/scrape"
	"sportsref/lib/testutil"
	"sportsref/lib/timezone"
)

// schedule page with a road loss, a home overtime win, and a game that
// hasn't been played yet. the mid-table month header row carries
// class="thead" like the real pages.
const schedulePage = `<html><body>
<table id="games">
<thead><tr><th>G</th><th>Date</th></tr></thead>
<tbody>
<tr>
<th data-stat="g">1</th>
<td data-stat="date_game">Wed, Oct 17, 2018</td>
<td data-stat="game_start_time">8:00p</td>
<td data-stat="box_score_text"><a href="/boxscores/201810170BOS.html">Box Score</a></td>
<td data-stat="game_location">@</td>
<td data-stat="opp_name"><a href="/teams/BOS/2019.html">Boston Celtics</a></td>
<td data-stat="game_result">L</td>
<td data-stat="overtimes"></td>
<td data-stat="pts">87</td>
<td data-stat="opp_pts">105</td>
<td data-stat="wins">0</td>
<td data-stat="losses">1</td>
<td data-stat="game_streak">L 1</td>
</tr>
<tr class="thead"><td colspan="13">November</td></tr>
<tr>
<th data-stat="g">2</th>
<td data-stat="date_game">Sat, Oct 20, 2018</td>
<td data-stat="game_start_time">7:00p</td>
<td data-stat="box_score_text"><a href="/boxscores/201810200PHI.html">Box Score</a></td>
<td data-stat="game_location"></td>
<td data-stat="opp_name"><a href="/teams/CHI/2019.html">Chicago Bulls</a></td>
<td data-stat="game_result">W</td>
<td data-stat="overtimes">OT</td>
<td data-stat="pts">127</td>
<td data-stat="opp_pts">108</td>
<td data-stat="wins">1</td>
<td data-stat="losses">1</td>
<td data-stat="game_streak">W 1</td>
</tr>
<tr>
<th data-stat="g">3</th>
<td data-stat="date_game">Mon, Apr 1, 2019</td>
<td data-stat="game_start_time">7:30p</td>
<td data-stat="box_score_text"></td>
<td data-stat="game_location"></td>
<td data-stat="opp_name"><a href="/teams/MIA/2019.html">Miami Heat</a></td>
<td data-stat="game_result"></td>
<td data-stat="overtimes"></td>
<td data-stat="pts"></td>
<td data-stat="opp_pts"></td>
<td data-stat="wins"></td>
<td data-stat="losses"></td>
<td data-stat="game_streak"></td>
</tr>
</tbody>
</table>
</body></html>`

func TestSchedule(t *testing.T) {
	result, cleanup := testutil.SetupScraper(t, testutil.ScraperParams{
		Name: "nba_schedule",
		Pages: map[string]string{
			"/teams/PHI/2019_games.html": schedulePage,
		},
	})
	defer cleanup()

	client, err := NewClient(ClientOptions{BaseUrl: result.Server.URL})
	require.NoError(t, err)

	// lowercase abbreviation resolves to the uppercase page path
	schedule, err := client.Schedule(context.Background(), "phi", 2019)
	require.NoError(t, err)
	require.Equal(t, 3, schedule.Len())

	t.Run("PlayedRoadLoss", func(t *testing.T) {
		game := schedule.Games()[0]
		require.Equal(t, 1, game.Ordinal)
		want := time.Date(2018, time.October, 17, 20, 0, 0, 0, timezone.Location)
		require.True(t, game.Date.Equal(want), "got %s", game.Date)
		require.Equal(t, scrape.Away, game.Location)
		require.Equal(t, "BOS", game.OpponentAbbreviation)
		require.Equal(t, "Boston Celtics", game.OpponentName)
		require.Equal(t, "201810170BOS", game.BoxscoreId)
		require.NotNil(t, game.Result)
		require.Equal(t, Loss, *game.Result)
		require.Equal(t, 0, game.Overtimes)
		require.NotNil(t, game.PointsScored)
		require.Equal(t, 87, *game.PointsScored)
		require.NotNil(t, game.PointsAllowed)
		require.Equal(t, 105, *game.PointsAllowed)
		require.NotNil(t, game.Wins)
		require.Equal(t, 0, *game.Wins)
		require.NotNil(t, game.Losses)
		require.Equal(t, 1, *game.Losses)
		require.Equal(t, "L 1", game.Streak)
	})

	t.Run("OvertimeHomeWin", func(t *testing.T) {
		game := schedule.Games()[1]
		require.Equal(t, 2, game.Ordinal)
		require.Equal(t, scrape.Home, game.Location)
		require.NotNil(t, game.Result)
		require.Equal(t, Win, *game.Result)
		require.Equal(t, 1, game.Overtimes)
	})

	t.Run("UnplayedGame", func(t *testing.T) {
		game := schedule.Games()[2]
		require.Equal(t, 3, game.Ordinal)
		want := time.Date(2019, time.April, 1, 19, 30, 0, 0, timezone.Location)
		require.True(t, game.Date.Equal(want), "got %s", game.Date)
		require.Equal(t, "", game.BoxscoreId)
		require.Nil(t, game.Result)
		require.Nil(t, game.PointsScored)
		require.Nil(t, game.Wins)
		require.Equal(t, "", game.Streak)

		_, err := game.Boxscore(context.Background())
		require.Error(t, err)
		require.True(t, errors.Is(err, scrape.ErrNotFound))
	})

	t.Run("Index", func(t *testing.T) {
		game, err := schedule.Index(1)
		require.NoError(t, err)
		require.Equal(t, 2, game.Ordinal)

		_, err = schedule.Index(3)
		require.True(t, errors.Is(err, scrape.ErrNotFound))
		_, err = schedule.Index(-1)
		require.True(t, errors.Is(err, scrape.ErrNotFound))
	})

	t.Run("OnMatchesCalendarDate", func(t *testing.T) {
		game, err := schedule.On(time.Date(2018, time.October, 20, 23, 59, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Equal(t, 2, game.Ordinal)
	})

	t.Run("OnMissReturnsNotFound", func(t *testing.T) {
		_, err := schedule.On(time.Date(2018, time.December, 25, 0, 0, 0, 0, time.UTC))
		require.Error(t, err)
		require.True(t, errors.Is(err, scrape.ErrNotFound))
	})
}
