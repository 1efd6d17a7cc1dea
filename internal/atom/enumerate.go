package atom

import "strconv"

// Enumerate prepends a running count to each line it sees. The count covers
// only lines that reach this atom; lines dropped upstream are never counted.
type Enumerate struct {
	count int
}

var _ Atom = (*Enumerate)(nil)

func NewEnumerate() *Enumerate {
	return &Enumerate{}
}

func (e *Enumerate) Apply(line string) Verdict {
	e.count++
	return Continue(strconv.Itoa(e.count) + " " + line)
}

func (e *Enumerate) Reset() {
	e.count = 0
}
