package parsers

import (
	"fmt"
	"io"
	"strings"

	"github.com/Nydauron/results2table/league"
	"golang.org/x/net/html"
)

// ParseHTML extracts match results from the first <table> in an HTML page
// and accumulates them into a league table. Each data row must carry the
// result in either four cells (team, score, team, score) or two cells
// (each cell a full "<name> <score>" half). Header rows (<th> cells) are
// skipped. Every row is rebuilt as a plain result line and run through
// LexLine, so both input modes share the same malformed-input rules; a
// bad row aborts the parse with the 1-indexed data-row number.
func ParseHTML(r io.Reader) (league.Table, error) {
	z := html.NewTokenizer(r)
	table := league.Table{}

	isTable := false
	isRow := false
	isHeaderRow := false
	isCell := false
	var cells []string
	var cellText strings.Builder
	rowNum := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return table, nil
		case html.StartTagToken:
			t := z.Token()
			switch t.Data {
			case "table":
				isTable = true
			case "tr":
				if !isTable {
					continue
				}
				isRow = true
				isHeaderRow = false
				cells = cells[:0]
			case "td", "th":
				if !isRow {
					continue
				}
				isCell = true
				cellText.Reset()
				if t.Data == "th" {
					isHeaderRow = true
				}
			}
		case html.TextToken:
			if isCell {
				cellText.Write(z.Text())
			}
		case html.EndTagToken:
			t := z.Token()
			switch t.Data {
			case "table":
				isTable = false
			case "td", "th":
				if isCell {
					cells = append(cells, strings.TrimSpace(cellText.String()))
					isCell = false
				}
			case "tr":
				if !isRow {
					continue
				}
				isRow = false
				if isHeaderRow || len(cells) == 0 {
					continue
				}
				rowNum++
				line, err := rowToLine(cells)
				if err != nil {
					return nil, fmt.Errorf("invalid table row %d: %w", rowNum, err)
				}
				tokens, err := LexLine(line)
				if err != nil {
					return nil, fmt.Errorf("invalid table row %d: %w", rowNum, err)
				}
				table.Apply(league.Classify(tokens.First, tokens.Second))
			}
		}
	}
}

func rowToLine(cells []string) (string, error) {
	switch len(cells) {
	case 2:
		return cells[0] + ", " + cells[1], nil
	case 4:
		return cells[0] + " " + cells[1] + ", " + cells[2] + " " + cells[3], nil
	default:
		return "", fmt.Errorf("%w: row has %d cells, want 2 or 4", ErrMalformedLine, len(cells))
	}
}
