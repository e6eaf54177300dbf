package parsers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Nydauron/results2table/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `Lions 3, Snakes 3
Tarantulas 1, FC Awesome 0
Lions 1, FC Awesome 1
Tarantulas 3, Snakes 1
Lions 4, Grouches 0

`

const sampleOutput = `1. Tarantulas 6 pts
2. Lions 5 pts
3. FC Awesome 1 pt
4. Snakes 1 pt
5. Grouches 0 pts
`

func TestParseResultsFullLeague(t *testing.T) {
	table, err := ParseResults(strings.NewReader(sampleInput))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, standings.WriteText(&buf, standings.Compute(table)))
	assert.Equal(t, sampleOutput, buf.String())
}

func TestParseResultsNoTrailingBlankLine(t *testing.T) {
	input := strings.TrimSuffix(sampleInput, "\n")
	table, err := ParseResults(strings.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, standings.WriteText(&buf, standings.Compute(table)))
	assert.Equal(t, sampleOutput, buf.String(), "EOF and blank-line termination must be equivalent")
}

func TestParseResultsBlankLineStopsReading(t *testing.T) {
	input := "Lions 3, Snakes 1\n\nthis is not a result line\n"
	table, err := ParseResults(strings.NewReader(input))
	require.NoError(t, err, "lines after the blank terminator must not be consumed")
	assert.Equal(t, uint(3), table["Lions"])
	assert.Equal(t, uint(0), table["Snakes"])
}

func TestParseResultsEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"immediate end of stream", ""},
		{"immediate blank line", "\n"},
		{"whitespace-only line", "   \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseResults(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Empty(t, table)
		})
	}
}

func TestParseResultsMalformedLine(t *testing.T) {
	input := "Lions 3, Snakes 3\nTarantulas one, FC Awesome 0\nLions 1, FC Awesome 1\n"
	_, err := ParseResults(strings.NewReader(input))
	require.ErrorIs(t, err, ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2", "error must name the 1-indexed line")
}
