package atom

import (
	"strings"

	"github.com/marcelocantos/sift/internal/selector"
)

// Fields splits each line on runs of whitespace and keeps the fields whose
// 1-based position the selector allows, re-joined with single spaces in
// their original order. From-last indices like (-1) are legal here because
// the field count of the current line is known.
type Fields struct {
	sel *selector.Selector
}

var _ Atom = (*Fields)(nil)

func NewFields(expr string) (*Fields, error) {
	sel, err := selector.Parse(expr, true)
	if err != nil {
		return nil, err
	}
	return &Fields{sel: sel}, nil
}

func (f *Fields) Apply(line string) Verdict {
	fields := strings.Fields(line)
	kept := make([]string, 0, len(fields))
	for i, field := range fields {
		if f.sel.Allows(i+1, len(fields)) {
			kept = append(kept, field)
		}
	}
	return Continue(strings.Join(kept, " "))
}

func (f *Fields) Reset() {}
