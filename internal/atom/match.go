package atom

import "regexp"

// Match passes matching lines on to the next atom. Non-matching lines are
// emitted untouched, bypassing the rest of the program, whereas Filter
// discards them.
type Match struct {
	re *regexp.Regexp
}

var _ Atom = (*Match)(nil)

func NewMatch(expr string) (*Match, error) {
	re, err := compileRegex(expr)
	if err != nil {
		return nil, err
	}
	return &Match{re: re}, nil
}

func (m *Match) Apply(line string) Verdict {
	if m.re.MatchString(line) {
		return Continue(line)
	}
	return Emit(line)
}

func (m *Match) Reset() {}
