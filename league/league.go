package league

// TeamScore is one side of a result line: a team and the goals it scored.
type TeamScore struct {
	Name  string
	Score uint
}

// ResultKind tags a classified result.
type ResultKind int

const (
	Win ResultKind = iota
	Draw
)

// Result is one classified match. For a Win, Winner beat Loser. For a
// Draw, Winner and Loser hold the two participants in input order.
type Result struct {
	Kind   ResultKind
	Winner string
	Loser  string
}

// Table maps a team name to its accumulated league points.
type Table map[string]uint

// Classify compares the two scores of a lexed result line and names the
// winner and loser, or declares a draw on equal scores.
func Classify(first, second TeamScore) Result {
	switch {
	case first.Score > second.Score:
		return Result{Kind: Win, Winner: first.Name, Loser: second.Name}
	case first.Score < second.Score:
		return Result{Kind: Win, Winner: second.Name, Loser: first.Name}
	default:
		return Result{Kind: Draw, Winner: first.Name, Loser: second.Name}
	}
}

// Apply awards the points for one result: 3 to the winner, 1 to each side
// of a draw. A losing team still gets a table entry on its first
// appearance, at 0 points. Points are never removed or decremented.
func (t Table) Apply(r Result) {
	switch r.Kind {
	case Win:
		t[r.Winner] += 3
		if _, ok := t[r.Loser]; !ok {
			t[r.Loser] = 0
		}
	case Draw:
		t[r.Winner]++
		t[r.Loser]++
	}
}
