package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RowMerger accumulates rows from one or more tables under a shared
// key, typically the team abbreviation. a key appearing in several
// tables (the offense and opponent stat tables of a season page) ends
// up with all of its rows concatenated, so one scheme can be evaluated
// across the lot with the first matching cell winning.
//
// a key's rank is the 1-based position of the row that introduced it,
// counted within the introducing table. later tables merge into
// existing groups without touching rank.
type RowMerger struct {
	order  []string
	groups map[string]*RowGroup
}

type RowGroup struct {
	Key  string
	Rank int
	html strings.Builder
}

func NewRowMerger() *RowMerger {
	return &RowMerger{groups: map[string]*RowGroup{}}
}

// AddTable merges one table's rows. key extracts the merge key from a
// row; rows it returns "" for carry no team identity (the league
// average line) and are dropped without consuming a rank.
func (m *RowMerger) AddTable(rows *goquery.Selection, key func(*goquery.Selection) string) error {
	rank := 0
	var outerErr error
	rows.EachWithBreak(func(_ int, row *goquery.Selection) bool {
		k := key(row)
		if k == "" {
			return true
		}
		rank++

		outer, err := goquery.OuterHtml(row)
		if err != nil {
			outerErr = err
			return false
		}

		group, ok := m.groups[k]
		if !ok {
			group = &RowGroup{Key: k, Rank: rank}
			m.groups[k] = group
			m.order = append(m.order, k)
		}
		group.html.WriteString(outer)
		return true
	})
	return outerErr
}

// Groups returns the merged groups in first-seen order.
func (m *RowMerger) Groups() []*RowGroup {
	out := make([]*RowGroup, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.groups[k])
	}
	return out
}

// Selection re-parses the group's concatenated rows, wrapped back into
// a table so the fragment parser keeps the tr elements. the returned
// selection spans every merged row in merge order.
func (g *RowGroup) Selection() (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		"<table><tbody>" + g.html.String() + "</tbody></table>",
	))
	if err != nil {
		return nil, err
	}
	return doc.Find("tbody tr"), nil
}
