package atom

import "regexp"

// blockState tracks whether a range atom is currently inside a block
// delimited by its start and end patterns.
type blockState int

const (
	outside blockState = iota
	inside
)

// rangeState is the two-state machine shared by FilterRange and MatchRange.
// Both boundary lines belong to the block: the start line transitions
// outside→inside and continues, the end line continues and transitions
// inside→outside afterwards, so the next line is judged from outside again.
// The entering line is never tested against the end pattern, so a start
// pattern whose matches are a subset of the end pattern's (the common
// "section header" case) still opens a multi-line block.
type rangeState struct {
	start, end *regexp.Regexp
	state      blockState
}

func newRangeState(startExpr, endExpr string) (*rangeState, error) {
	start, err := compileRegex(startExpr)
	if err != nil {
		return nil, err
	}
	end, err := compileRegex(endExpr)
	if err != nil {
		return nil, err
	}
	return &rangeState{start: start, end: end}, nil
}

// observe advances the state machine for one line. entered reports the
// outside→inside transition, the unique trigger for downstream resets;
// inBlock reports whether the line belongs to a block.
func (r *rangeState) observe(line string) (entered, inBlock bool) {
	switch r.state {
	case outside:
		if !r.start.MatchString(line) {
			return false, false
		}
		r.state = inside
		return true, true
	default:
		if r.end.MatchString(line) {
			r.state = outside
		}
		return false, true
	}
}

func (r *rangeState) reset() {
	r.state = outside
}

// FilterRange keeps the lines inside blocks delimited by its start and end
// patterns and drops everything outside them. Entering a new block resets
// every atom positioned after this one.
type FilterRange struct {
	rng *rangeState
}

var _ Atom = (*FilterRange)(nil)

func NewFilterRange(startExpr, endExpr string) (*FilterRange, error) {
	rng, err := newRangeState(startExpr, endExpr)
	if err != nil {
		return nil, err
	}
	return &FilterRange{rng: rng}, nil
}

func (f *FilterRange) Apply(line string) Verdict {
	entered, inBlock := f.rng.observe(line)
	switch {
	case entered:
		return ContinueNewBlock(line)
	case inBlock:
		return Continue(line)
	default:
		return Drop()
	}
}

func (f *FilterRange) Reset() {
	f.rng.reset()
}

// MatchRange runs the same state machine as FilterRange, but lines outside a
// block are emitted untouched instead of dropped.
type MatchRange struct {
	rng *rangeState
}

var _ Atom = (*MatchRange)(nil)

func NewMatchRange(startExpr, endExpr string) (*MatchRange, error) {
	rng, err := newRangeState(startExpr, endExpr)
	if err != nil {
		return nil, err
	}
	return &MatchRange{rng: rng}, nil
}

func (m *MatchRange) Apply(line string) Verdict {
	entered, inBlock := m.rng.observe(line)
	switch {
	case entered:
		return ContinueNewBlock(line)
	case inBlock:
		return Continue(line)
	default:
		return Emit(line)
	}
}

func (m *MatchRange) Reset() {
	m.rng.reset()
}
