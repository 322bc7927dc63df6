package scrape

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const mergeFixture = `<html><body>
<div id="all_team-stats-base">
	<table><tbody>
		<tr>
			<td data-stat="team_name"><a href="/teams/TOR/2018.html">Toronto Raptors</a></td>
			<td data-stat="pts">9304</td>
		</tr>
		<tr>
			<td data-stat="team_name"><a href="/teams/DET/2018.html">Detroit Pistons</a></td>
			<td data-stat="pts">8853</td>
		</tr>
		<tr>
			<td data-stat="team_name">League Average</td>
			<td data-stat="pts">8700</td>
		</tr>
	</tbody></table>
</div>
<div id="all_opponent-stats-base">
	<table><tbody>
		<tr>
			<td data-stat="team_name"><a href="/teams/DET/2018.html">Detroit Pistons</a></td>
			<td data-stat="opp_pts">8857</td>
		</tr>
		<tr>
			<td data-stat="team_name"><a href="/teams/TOR/2018.html">Toronto Raptors</a></td>
			<td data-stat="opp_pts">8628</td>
		</tr>
	</tbody></table>
</div>
</body></html>`

func abbrKey(row *goquery.Selection) string {
	href, ok := ParseRow(row, Scheme{"abbr": `td[data-stat="team_name"]`}).Href("abbr")
	if !ok {
		return ""
	}
	return PathSegment(href, "teams")
}

func TestRowMerger(t *testing.T) {
	doc, err := ParseDocument(mergeFixture)
	require.NoError(t, err)

	offense, err := StatsTable(doc, "all_team-stats-base")
	require.NoError(t, err)
	opponent, err := StatsTable(doc, "all_opponent-stats-base")
	require.NoError(t, err)

	merger := NewRowMerger()
	require.NoError(t, merger.AddTable(offense, abbrKey))
	require.NoError(t, merger.AddTable(opponent, abbrKey))

	groups := merger.Groups()
	require.Len(t, groups, 2, "one group per team, league average dropped")

	type summary struct {
		Key  string
		Rank int
	}
	got := []summary{}
	for _, g := range groups {
		got = append(got, summary{Key: g.Key, Rank: g.Rank})
	}
	want := []summary{
		{Key: "TOR", Rank: 1},
		{Key: "DET", Rank: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}

	{
		// both tables' fields resolve against the merged rows,
		// first match winning for colliding selectors
		sel, err := groups[1].Selection()
		require.NoError(t, err)
		p := ParseRow(sel, Scheme{
			"name":           `td[data-stat="team_name"]`,
			"points":         `td[data-stat="pts"]`,
			"points_allowed": `td[data-stat="opp_pts"]`,
		})
		require.Equal(t, "Detroit Pistons", p.Str("name"))
		require.Equal(t, 8853, p.Int("points"))
		require.Equal(t, 8857, p.Int("points_allowed"))
		require.NoError(t, p.Err())
	}
}

func TestRowMergerRankPerTable(t *testing.T) {
	doc, err := ParseDocument(mergeFixture)
	require.NoError(t, err)

	offense, err := StatsTable(doc, "all_team-stats-base")
	require.NoError(t, err)
	opponent, err := StatsTable(doc, "all_opponent-stats-base")
	require.NoError(t, err)

	// a team only present in a later table gets ranked by its
	// position there, not continued from the previous table
	merger := NewRowMerger()
	require.NoError(t, merger.AddTable(offense.Slice(0, 1), abbrKey))
	require.NoError(t, merger.AddTable(opponent, abbrKey))

	groups := merger.Groups()
	require.Len(t, groups, 2)
	require.Equal(t, "TOR", groups[0].Key)
	require.Equal(t, 1, groups[0].Rank)
	require.Equal(t, "DET", groups[1].Key)
	require.Equal(t, 1, groups[1].Rank, "first row of the opponent table")
}
