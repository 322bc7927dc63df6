package scrape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

const seasonFixture = `<html><body>
<div id="all_team-stats-base">
	<table>
		<tbody>
			<tr><td data-stat="team_name">Milwaukee Bucks</td></tr>
			<tr class="thead"><td>Team</td></tr>
			<tr><td data-stat="team_name">Boston Celtics</td></tr>
		</tbody>
	</table>
</div>
<!--
<div id="all_opponent-stats-base">
	<table>
		<tbody>
			<tr><td data-stat="opp_pts">8503</td></tr>
		</tbody>
	</table>
</div>
-->
</body></html>`

func TestStatsTable(t *testing.T) {
	doc, err := ParseDocument(seasonFixture)
	require.NoError(t, err)

	{
		rows, err := StatsTable(doc, "all_team-stats-base")
		require.NoError(t, err)
		require.Equal(t, 2, rows.Length(), "mid-table header rows should be skipped")
	}
	{
		// this one is shipped inside an html comment
		rows, err := StatsTable(doc, "all_opponent-stats-base")
		require.NoError(t, err)
		require.Equal(t, 1, rows.Length())
	}
	{
		_, err := StatsTable(doc, "all_shooting")
		require.True(t, errors.Is(err, ErrTableNotFound))
	}
}

func TestTableById(t *testing.T) {
	doc, err := ParseDocument(`<table id="games"><tbody>
		<tr><td data-stat="opp_name">Toronto Maple Leafs</td></tr>
		<tr class="thead"><td></td></tr>
		<tr><td data-stat="opp_name">Montreal Canadiens</td></tr>
	</tbody></table>`)
	require.NoError(t, err)

	rows, err := Table(doc, "games")
	require.NoError(t, err)
	require.Equal(t, 2, rows.Length())

	_, err = Table(doc, "playoffs")
	require.True(t, errors.Is(err, ErrTableNotFound))
}
