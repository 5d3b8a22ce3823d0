package parsers

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Nydauron/trackside/athletics"
	"golang.org/x/net/html"
)

// ParseHTML reads athletes from every table in an HTML page. A row made of
// th cells sets the columns for the rows after it in the same table; tables
// without one are read as bib, name, country.
func ParseHTML(r io.Reader) ([]athletics.Athlete, error) {
	z := html.NewTokenizer(r)
	athletes := []athletics.Athlete{}

	isTable := false
	isTableRow := false
	isTableCell := false
	isHeaderRow := false
	var cols []column
	var cells []string
	var cell strings.Builder
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("reading start list page: %w", err)
			}
			return athletes, nil
		case html.StartTagToken:
			t := z.Token()
			switch t.Data {
			case "table":
				isTable = true
				cols = nil
			case "tr":
				isTableRow = isTable
				isHeaderRow = false
				cells = nil
			case "th", "td":
				isTableCell = isTableRow
				if t.Data == "th" {
					isHeaderRow = true
				}
				cell.Reset()
			}
		case html.TextToken:
			if isTableCell {
				cell.WriteString(z.Token().Data)
			}
		case html.EndTagToken:
			t := z.Token()
			switch t.Data {
			case "th", "td":
				if isTableCell {
					cells = append(cells, strings.Join(strings.Fields(cell.String()), " "))
				}
				isTableCell = false
			case "tr":
				if !isTableRow {
					continue
				}
				isTableRow = false
				if isHeaderRow {
					cols = columnsFor(cells)
					continue
				}
				rowCols := cols
				if rowCols == nil {
					rowCols = defaultColumns
				}
				if a, ok := athleteFromCells(rowCols, cells); ok {
					athletes = append(athletes, a)
				}
			case "table":
				isTable = false
				isTableRow = false
				cols = nil
			}
		}
	}
}
