package atom

import "github.com/marcelocantos/sift/internal/selector"

// Lines keeps the lines whose running count the selector allows and drops
// the rest. The count covers only lines that reach this atom, and restarts
// when an upstream range atom opens a new block. The total line count is
// unknowable here, so from-last indices are rejected at construction.
type Lines struct {
	sel   *selector.Selector
	count int
}

var _ Atom = (*Lines)(nil)

func NewLines(expr string) (*Lines, error) {
	sel, err := selector.Parse(expr, false)
	if err != nil {
		return nil, err
	}
	return &Lines{sel: sel}, nil
}

func (l *Lines) Apply(line string) Verdict {
	l.count++
	// The selector holds no from-last terms, so the total argument is moot.
	if l.sel.Allows(l.count, 0) {
		return Continue(line)
	}
	return Drop()
}

func (l *Lines) Reset() {
	l.count = 0
}
