package scrape

import "fmt"

// Scheme maps logical field names to the CSS selector that locates the
// field's cell within a table row. selectors carry their own cell tag
// since the sites put row labels in th cells and stats in td cells,
// e.g. {"date": `th[data-stat="date_game"]`, "goals": `td[data-stat="goals"]`}.
type Scheme map[string]string

// DataStat builds the selector for a td cell tagged with the given
// data-stat name, the common case in a Scheme.
func DataStat(name string) string {
	return fmt.Sprintf(`td[data-stat=%q]`, name)
}
