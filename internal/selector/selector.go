// Package selector implements the comma-separated index grammar shared by
// the fields and lines atoms: "1,3-5,(-2)-" and friends. Indices are 1-based.
// A parenthesized negative index counts from the last element, so (-1) is the
// last one. Either bound of a range may be dropped to leave it open.
package selector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFromLast reports a from-last index in a context where the total element
// count is unknowable (line counters). Detected at parse time.
var ErrFromLast = errors.New("from-last index (-n) not allowed here")

// index is one parsed bound. When fromLast is set, n counts backwards from
// the final element (n=1 is the last).
type index struct {
	n        int
	fromLast bool
}

// resolve turns the index into an absolute 1-based position. A from-last
// index beyond the first element resolves to 0, which no position matches.
func (ix index) resolve(total int) int {
	if !ix.fromLast {
		return ix.n
	}
	if total+1 < ix.n {
		return 0
	}
	return total + 1 - ix.n
}

// term is a single inclusive range. A nil bound is open: lo==nil means "from
// the beginning", hi==nil means "to the end".
type term struct {
	lo, hi *index
}

func (t term) contains(pos, total int) bool {
	if t.lo != nil && pos < t.lo.resolve(total) {
		return false
	}
	if t.hi != nil && pos > t.hi.resolve(total) {
		return false
	}
	return true
}

// Selector is an ordered set of terms evaluated with OR semantics.
type Selector struct {
	terms []term
}

// Parse parses the selector text. When allowFromLast is false any (-n) index
// is rejected with an error wrapping ErrFromLast.
func Parse(text string, allowFromLast bool) (*Selector, error) {
	sel := &Selector{}
	if text == "" {
		return sel, nil
	}
	for _, part := range strings.Split(text, ",") {
		t, err := parseTerm(part)
		if err != nil {
			return nil, err
		}
		if !allowFromLast {
			for _, ix := range []*index{t.lo, t.hi} {
				if ix != nil && ix.fromLast {
					return nil, fmt.Errorf("term %q: %w", part, ErrFromLast)
				}
			}
		}
		sel.terms = append(sel.terms, t)
	}
	return sel, nil
}

// Allows reports whether the 1-based position pos is selected out of total
// elements. Terms are independent; one match suffices. Overlapping terms are
// harmless and an inverted range simply never matches.
func (s *Selector) Allows(pos, total int) bool {
	for _, t := range s.terms {
		if t.contains(pos, total) {
			return true
		}
	}
	return false
}

func parseTerm(s string) (term, error) {
	lo, rest, err := parseOptIndex(s)
	if err != nil {
		return term{}, err
	}
	if rest == "" {
		if lo == nil {
			return term{}, fmt.Errorf("empty selector term")
		}
		// Bare index: a closed single-element range.
		return term{lo: lo, hi: lo}, nil
	}
	if rest[0] != '-' {
		return term{}, fmt.Errorf("selector term %q: unexpected %q", s, rest)
	}
	hi, rest, err := parseOptIndex(rest[1:])
	if err != nil {
		return term{}, err
	}
	if rest != "" {
		return term{}, fmt.Errorf("selector term %q: trailing %q", s, rest)
	}
	return term{lo: lo, hi: hi}, nil
}

// parseOptIndex consumes a leading index if present and returns the rest.
// Absence is not an error; it is how open bounds are written.
func parseOptIndex(s string) (*index, string, error) {
	switch {
	case s == "" || s[0] == '-':
		return nil, s, nil
	case s[0] == '(':
		end := strings.IndexByte(s, ')')
		if end < 3 || s[1] != '-' {
			return nil, "", fmt.Errorf("malformed from-last index in %q", s)
		}
		n, err := strconv.Atoi(s[2:end])
		if err != nil {
			return nil, "", fmt.Errorf("malformed from-last index in %q", s)
		}
		return &index{n: n, fromLast: true}, s[end+1:], nil
	default:
		i := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == 0 {
			return nil, "", fmt.Errorf("selector term %q: expected index", s)
		}
		n, err := strconv.Atoi(s[:i])
		if err != nil {
			return nil, "", fmt.Errorf("selector index %q: %w", s[:i], err)
		}
		return &index{n: n}, s[i:], nil
	}
}
