package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var ErrTableNotFound = fmt.Errorf("stats table not found")

// Uncomment strips HTML comment markers from a page. the sites ship
// every table past the first inside <!-- --> and reveal it client
// side, so without this the parser sees one table per page.
func Uncomment(page string) string {
	page = strings.ReplaceAll(page, "<!--", "")
	return strings.ReplaceAll(page, "-->", "")
}

// ParseDocument parses page HTML after uncommenting.
func ParseDocument(page string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(Uncomment(page)))
}

// StatsTable returns the data rows of the table wrapped in the
// container div with the given id, e.g. "all_team-stats-base". the
// mid-table header rows the sites repeat every 20 lines are skipped.
func StatsTable(doc *goquery.Document, containerID string) (*goquery.Selection, error) {
	table := doc.Find(fmt.Sprintf("div#%s table", containerID)).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: div#%s", ErrTableNotFound, containerID)
	}
	return dataRows(table), nil
}

// Table returns the data rows of the table with the given element id,
// e.g. "games" for schedule pages.
func Table(doc *goquery.Document, tableID string) (*goquery.Selection, error) {
	table := doc.Find(fmt.Sprintf("table#%s", tableID)).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: table#%s", ErrTableNotFound, tableID)
	}
	return dataRows(table), nil
}

func dataRows(table *goquery.Selection) *goquery.Selection {
	return table.Find("tbody tr").Not(".thead").Not(".over_header")
}
