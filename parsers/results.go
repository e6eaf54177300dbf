package parsers

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Nydauron/results2table/league"
)

// ParseResults reads plain result lines from r and accumulates them into
// a league table. A blank line or the end of the stream terminates the
// read; both are silent, equivalent terminators. A line that fails to lex
// aborts the whole parse with an error naming the 1-indexed line, and no
// partial table is returned.
func ParseResults(r io.Reader) (league.Table, error) {
	buf := bufio.NewReader(r)
	table := league.Table{}
	for lineNum := 1; ; lineNum++ {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		tokens, lexErr := LexLine(line)
		if lexErr != nil {
			return nil, fmt.Errorf("invalid input on line %d: %w", lineNum, lexErr)
		}
		table.Apply(league.Classify(tokens.First, tokens.Second))
		if err == io.EOF {
			break
		}
	}
	return table, nil
}
