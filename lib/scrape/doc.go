// Package scrape holds the shared machinery for turning stat-site HTML
// tables into typed records.
package scrape

// the sports-reference family of sites (basketball-reference,
// hockey-reference, ...) renders every stat table the same way:
// a container div with a well-known id, a table inside it, and every
// cell tagged with a data-stat attribute naming the column. secondary
// tables are shipped inside HTML comments and revealed client side.

// scraping a page therefore decomposes into:
// 1. fetch the document (Client)
// 2. strip comment markers and locate the table (Uncomment, StatsTable)
// 3. walk rows, merging multi-table rows by key (RowMerger)
// 4. extract named fields through a declarative Scheme (RowParser)
// 5. coerce raw cell text into typed values (coerce.go)

// the per-sport packages only contribute their schemes, url templates
// and record types on top of this.
