// Package parsers reads start lists into athletes. A start list is a table
// with one athlete per row; columns are matched by header name.
package parsers

import (
	"regexp"
	"strings"

	"github.com/Nydauron/trackside/athletics"
	"github.com/Nydauron/trackside/prompts"
)

const (
	BibColName     = "Bib"
	NameColName    = "Name"
	CountryColName = "Country"
)

var numberRegex = regexp.MustCompile(`[0-9]+`)

type column int

const (
	colIgnored column = iota
	colBib
	colName
	colCountry
)

// defaultColumns is used for tables that carry no header row.
var defaultColumns = []column{colBib, colName, colCountry}

func columnFor(header string) column {
	switch strings.ToLower(strings.Trim(header, " .#:")) {
	case "bib", "no", "number":
		return colBib
	case "name", "athlete":
		return colName
	case "country", "nat", "noc", "nation":
		return colCountry
	}
	return colIgnored
}

func columnsFor(headers []string) []column {
	cols := make([]column, len(headers))
	for i, h := range headers {
		cols[i] = columnFor(h)
	}
	return cols
}

func hasNameColumn(cols []column) bool {
	for _, c := range cols {
		if c == colName {
			return true
		}
	}
	return false
}

// athleteFromCells maps one row onto an athlete. Rows without a name are
// not athletes.
func athleteFromCells(cols []column, cells []string) (athletics.Athlete, bool) {
	var a athletics.Athlete
	for i, cell := range cells {
		if i >= len(cols) {
			break
		}
		trimmedCell := strings.TrimSpace(cell)
		switch cols[i] {
		case colBib:
			a.Bib = numberRegex.FindString(trimmedCell)
		case colName:
			a.Name = trimmedCell
		case colCountry:
			a.Country = prompts.NormalizeCountry(trimmedCell)
		}
	}
	return a, a.Name != ""
}
