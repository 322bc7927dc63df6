package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

var rowScheme = Scheme{
	"ordinal":    `th[data-stat="g"]`,
	"name":       `td[data-stat="team_name"]`,
	"games":      `td[data-stat="games"]`,
	"points":     `td[data-stat="pts"]`,
	"pct":        `td[data-stat="win_loss_pct"]`,
	"attendance": `td[data-stat="attendance"]`,
	"length":     `td[data-stat="game_duration"]`,
	"boxscore":   `td[data-stat="box_score_text"]`,
}

func parseFixtureRow(t *testing.T, row string) *goquery.Selection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		"<table><tbody>" + row + "</tbody></table>",
	))
	require.NoError(t, err)
	sel := doc.Find("tbody tr")
	require.Equal(t, 1, sel.Length())
	return sel
}

func TestRowParser(t *testing.T) {
	row := parseFixtureRow(t, `<tr>
		<th data-stat="g">12</th>
		<td data-stat="team_name"><a href="/teams/DET/2018.html">Detroit Pistons</a></td>
		<td data-stat="games">82</td>
		<td data-stat="pts">8,853</td>
		<td data-stat="win_loss_pct">.476</td>
		<td data-stat="attendance"></td>
		<td data-stat="game_duration">2:14</td>
		<td data-stat="box_score_text"><a href="/boxscores/201806080CLE.html">Box Score</a></td>
	</tr>`)

	p := ParseRow(row, rowScheme)
	require.Equal(t, 12, p.Int("ordinal"))
	require.Equal(t, "Detroit Pistons", p.Str("name"))
	require.Equal(t, 82, p.Int("games"))
	require.Equal(t, 8853, p.Int("points"))
	require.InDelta(t, 0.476, p.Pct("pct"), 1e-9)
	require.Nil(t, p.IntPtr("attendance"))
	require.NotNil(t, p.DurationPtr("length"))

	href, ok := p.Href("boxscore")
	require.True(t, ok)
	require.Equal(t, "201806080CLE", PathSegment(href, "boxscores"))

	href, ok = p.Href("name")
	require.True(t, ok)
	require.Equal(t, "DET", PathSegment(href, "teams"))

	require.NoError(t, p.Err())
}

func TestRowParserAbsentCells(t *testing.T) {
	// future games leave everything past the date blank
	row := parseFixtureRow(t, `<tr>
		<th data-stat="g">80</th>
		<td data-stat="team_name">Detroit Pistons</td>
		<td data-stat="pts"></td>
		<td data-stat="game_duration"></td>
	</tr>`)

	p := ParseRow(row, rowScheme)
	require.Equal(t, 80, p.Int("ordinal"))
	require.Nil(t, p.IntPtr("points"))
	require.Zero(t, p.Int("points"))
	require.Nil(t, p.DurationPtr("length"))
	require.Zero(t, p.Float("pct"))

	_, ok := p.Href("boxscore")
	require.False(t, ok)

	require.NoError(t, p.Err())
}

func TestRowParserStickyError(t *testing.T) {
	row := parseFixtureRow(t, `<tr>
		<th data-stat="g">eighty</th>
		<td data-stat="games">82</td>
	</tr>`)

	p := ParseRow(row, rowScheme)
	require.Zero(t, p.Int("ordinal"))
	require.Equal(t, 82, p.Int("games"))

	err := p.Err()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ordinal")
	require.Contains(t, err.Error(), "eighty")
}

func TestRowParserUnknownField(t *testing.T) {
	row := parseFixtureRow(t, `<tr><td data-stat="games">82</td></tr>`)

	p := ParseRow(row, rowScheme)
	p.Int("not_a_field")
	require.Error(t, p.Err())
}
