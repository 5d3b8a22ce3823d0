package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/Nydauron/trackside/athletics"
)

// ParseCSV reads a start list whose first record is the header row. Every
// record must have as many cells as the header.
func ParseCSV(r io.Reader) ([]athletics.Athlete, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("start list is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading start list header: %w", err)
	}
	cols := columnsFor(headers)
	if !hasNameColumn(cols) {
		return nil, fmt.Errorf("start list header has no %q column: %v", NameColName, headers)
	}

	athletes := []athletics.Athlete{}
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading start list: %w", err)
		}
		if a, ok := athleteFromCells(cols, cells); ok {
			athletes = append(athletes, a)
		}
	}
	return athletes, nil
}
