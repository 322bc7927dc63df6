package scrape

import (
	"errors"
	"fmt"
	"time"

	"sportsref/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// RowParser extracts scheme fields from a table row and coerces them
// into typed values. the first coercion failure sticks and every later
// getter returns its zero value, so record constructors can read all
// their fields and check Err once at the end.
//
// a cell that is missing or empty is not a failure. played/unplayed
// schedule rows share one scheme and unplayed rows simply leave most
// cells blank, so the pointer getters return nil for them and the
// plain getters return zero.
type RowParser struct {
	row    *goquery.Selection
	scheme Scheme
	err    error
}

func ParseRow(row *goquery.Selection, scheme Scheme) *RowParser {
	return &RowParser{row: row, scheme: scheme}
}

// Err reports the first coercion failure, wrapped with the field name.
func (p *RowParser) Err() error {
	return p.err
}

func (p *RowParser) fail(field string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("field %s: %w", field, err)
	}
}

func (p *RowParser) raw(field string) (string, bool) {
	selector, ok := p.scheme[field]
	if !ok {
		p.fail(field, errors.New("not declared in scheme"))
		return "", false
	}
	cell := p.row.Find(selector).First()
	if cell.Length() == 0 {
		return "", false
	}
	text := htmlutil.CleanText(cell)
	return text, text != ""
}

// Str returns the cleaned cell text, "" when the cell is missing or
// empty.
func (p *RowParser) Str(field string) string {
	text, _ := p.raw(field)
	return text
}

func (p *RowParser) Int(field string) int {
	text, ok := p.raw(field)
	if !ok {
		return 0
	}
	v, err := Int(text)
	if err != nil {
		p.fail(field, err)
		return 0
	}
	return v
}

func (p *RowParser) IntPtr(field string) *int {
	text, ok := p.raw(field)
	if !ok {
		return nil
	}
	v, err := Int(text)
	if err != nil {
		p.fail(field, err)
		return nil
	}
	return &v
}

func (p *RowParser) Float(field string) float64 {
	text, ok := p.raw(field)
	if !ok {
		return 0
	}
	v, err := Float(text)
	if err != nil {
		p.fail(field, err)
		return 0
	}
	return v
}

// Pct returns a percentage as a fraction in [0, 1], see the Pct
// coercion.
func (p *RowParser) Pct(field string) float64 {
	text, ok := p.raw(field)
	if !ok {
		return 0
	}
	v, err := Pct(text)
	if err != nil {
		p.fail(field, err)
		return 0
	}
	return v
}

// DurationPtr reads an "H:MM" game clock cell.
func (p *RowParser) DurationPtr(field string) *time.Duration {
	text, ok := p.raw(field)
	if !ok {
		return nil
	}
	v, err := ClockDuration(text)
	if err != nil {
		p.fail(field, err)
		return nil
	}
	return &v
}

// Href returns the href of the first anchor inside the field's cell.
// ok is false when the cell has no link, which is how the sites render
// rows that have nothing to link to yet (future games and the league
// average row).
func (p *RowParser) Href(field string) (string, bool) {
	selector, ok := p.scheme[field]
	if !ok {
		p.fail(field, errors.New("not declared in scheme"))
		return "", false
	}
	return p.row.Find(selector).First().Find("a").First().Attr("href")
}
