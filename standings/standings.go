package standings

import (
	"fmt"
	"io"
	"sort"

	"github.com/Nydauron/results2table/league"
	"gopkg.in/yaml.v3"
)

// Row is one team's final placement in the rendered table.
type Row struct {
	Rank   int    `yaml:"rank"`
	Team   string `yaml:"team"`
	Points uint   `yaml:"points"`
}

// Compute turns an accumulated league table into ranked rows: points
// descending, ties broken by team name ascending. Ranks are contiguous
// from 1. The order is deterministic regardless of map iteration order.
func Compute(table league.Table) []Row {
	rows := make([]Row, 0, len(table))
	for team, points := range table {
		rows = append(rows, Row{Team: team, Points: points})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].Team < rows[j].Team
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// WriteText renders one "<rank>. <team> <points> pt[s]" line per row.
// Exactly 1 point takes the singular unit. No rows writes nothing.
func WriteText(w io.Writer, rows []Row) error {
	for _, row := range rows {
		unit := "pts"
		if row.Points == 1 {
			unit = "pt"
		}
		if _, err := fmt.Fprintf(w, "%d. %s %d %s\n", row.Rank, row.Team, row.Points, unit); err != nil {
			return err
		}
	}
	return nil
}

// WriteYAML renders the rows as a YAML sequence.
func WriteYAML(w io.Writer, rows []Row) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return err
	}
	return enc.Close()
}
