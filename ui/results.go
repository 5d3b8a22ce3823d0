package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	"github.com/Nydauron/trackside/athletics"
	"github.com/Nydauron/trackside/export"
	"github.com/Nydauron/trackside/field"
	"github.com/Nydauron/trackside/track"
)

const (
	colRank     = "rank"
	colLane     = "lane"
	colAthlete  = "athlete"
	colCountry  = "country"
	colResult   = "result"
	colAttempts = "attempts"
	colStatus   = "status"
)

// ResultsTable renders a finalized payload, one row per result in rank
// order.
func ResultsTable(p export.Payload) table.Model {
	var cols []table.Column
	switch p.Event.Kind {
	case athletics.KindField:
		cols = []table.Column{
			table.NewColumn(colRank, "#", 3),
			table.NewColumn(colAthlete, "ATHLETE", 20).WithStyle(lipgloss.NewStyle().Align(lipgloss.Left)),
			table.NewColumn(colCountry, "NAT", 5),
			table.NewColumn(colResult, "BEST", 10),
			table.NewColumn(colAttempts, "SERIES", 24),
			table.NewColumn(colStatus, "STATUS", 6),
		}
	default:
		cols = []table.Column{
			table.NewColumn(colRank, "#", 3),
			table.NewColumn(colLane, "LANE", 4),
			table.NewColumn(colAthlete, "ATHLETE", 20).WithStyle(lipgloss.NewStyle().Align(lipgloss.Left)),
			table.NewColumn(colCountry, "NAT", 5),
			table.NewColumn(colResult, "TIME", 10),
			table.NewColumn(colStatus, "STATUS", 6),
		}
	}

	rows := make([]table.Row, 0, len(p.Results))
	for i, r := range p.Results {
		switch r := r.(type) {
		case athletics.LaneAssignment:
			name, country := athleteCells(r.Athlete)
			resultStyle := lipgloss.NewStyle()
			if r.TimeMS != nil {
				resultStyle = styles.Recorded
			}
			rows = append(rows, table.NewRow(table.RowData{
				colRank:    i + 1,
				colLane:    r.Lane,
				colAthlete: name,
				colCountry: country,
				colResult:  table.NewStyledCell(track.FormatTime(r.TimeMS), resultStyle),
				colStatus:  string(r.Status),
			}))
		case athletics.FieldEntry:
			name, country := athleteCells(&r.Athlete)
			rows = append(rows, table.NewRow(table.RowData{
				colRank:     i + 1,
				colAthlete:  name,
				colCountry:  country,
				colResult:   field.FormatMark(r.Best),
				colAttempts: seriesCell(r.Attempts),
				colStatus:   string(r.Status),
			}))
		}
	}

	return table.New(cols).
		WithRows(rows).
		WithBaseStyle(lipgloss.NewStyle().AlignHorizontal(lipgloss.Center))
}

func athleteCells(a *athletics.Athlete) (string, string) {
	if a == nil {
		return "", ""
	}
	return a.Name, a.Country
}

// seriesCell renders the attempts of a field entry compactly: marks with two
// decimals, x for fouls, - for attempts not taken.
func seriesCell(attempts []athletics.Attempt) string {
	parts := make([]string, len(attempts))
	for i, at := range attempts {
		parts[i] = attemptText(at)
	}
	return strings.Join(parts, " ")
}

func attemptText(at athletics.Attempt) string {
	switch {
	case at.Foul:
		return "x"
	case at.ValueMeters != nil:
		return fmt.Sprintf("%.2f", *at.ValueMeters)
	}
	return "-"
}
