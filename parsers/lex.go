package parsers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Nydauron/results2table/league"
)

// ErrMalformedLine is wrapped by every lexing failure.
var ErrMalformedLine = errors.New("malformed result line")

// Tokens holds the two (team, score) halves of one result line, in the
// order they appeared.
type Tokens struct {
	First  league.TeamScore
	Second league.TeamScore
}

// LexLine splits one result line of the form
//
//	<Team A name> <ScoreA>, <Team B name> <ScoreB>
//
// into its two (team, score) halves. The team name is every
// whitespace-separated token but the last, joined by single spaces, so
// runs of spaces inside a name collapse. The score is the final token and
// must parse as a non-negative integer.
func LexLine(line string) (Tokens, error) {
	halves := strings.Split(line, ",")
	if len(halves) != 2 {
		return Tokens{}, fmt.Errorf("%w: expected 2 comma-separated halves, got %d", ErrMalformedLine, len(halves))
	}

	var sides [2]league.TeamScore
	for i, half := range halves {
		parts := strings.Fields(half)
		if len(parts) == 0 {
			return Tokens{}, fmt.Errorf("%w: half %d is empty", ErrMalformedLine, i+1)
		}
		score, err := strconv.ParseUint(parts[len(parts)-1], 10, 32)
		if err != nil {
			return Tokens{}, fmt.Errorf("%w: %q is not a non-negative integer score", ErrMalformedLine, parts[len(parts)-1])
		}
		if len(parts) < 2 {
			return Tokens{}, fmt.Errorf("%w: half %d has a score but no team name", ErrMalformedLine, i+1)
		}
		sides[i] = league.TeamScore{
			Name:  strings.Join(parts[:len(parts)-1], " "),
			Score: uint(score),
		}
	}

	return Tokens{First: sides[0], Second: sides[1]}, nil
}
