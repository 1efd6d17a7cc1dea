// Package program owns the ordered atom list a sift invocation runs. It
// drives each input line through the atoms in order, interprets every
// verdict, and propagates the new-block reset signal to downstream atoms.
package program

import "github.com/marcelocantos/sift/internal/atom"

// step pairs an atom with its canonical keyword, kept for trace output.
type step struct {
	name string
	atom atom.Atom
}

// Program is the ordered list of atoms one invocation runs. It is the only
// actor that calls Reset on an atom.
type Program struct {
	steps []step
	hook  Hook
}

// Hook observes every atom application: the 1-based input line number (0
// when the caller has no numbering, as in Run), the atom's position and
// canonical name, and its verdict. Used by trace logging.
type Hook func(lineNo, pos int, name string, v atom.Verdict)

// SetHook installs an observer for atom applications. A nil hook disables
// observation.
func (p *Program) SetHook(h Hook) {
	p.hook = h
}

// Len returns the number of atoms in the program.
func (p *Program) Len() int {
	return len(p.steps)
}

// AtomNames returns the canonical keyword of each atom, in program order.
func (p *Program) AtomNames() []string {
	names := make([]string, len(p.steps))
	for i, st := range p.steps {
		names[i] = st.name
	}
	return names
}

// Run feeds a single line through the program. ok is false when the line was
// dropped; otherwise out is the value to write, whether it was emitted early
// or continued through every atom. Run does not number lines; any installed
// hook sees line number 0. Execute supplies real line numbers.
func (p *Program) Run(line string) (out string, ok bool) {
	return p.run(0, line)
}

func (p *Program) run(lineNo int, line string) (string, bool) {
	cur := line
	reset := false
	for i := range p.steps {
		st := &p.steps[i]
		// A new-block transition upstream resets every later atom before it
		// runs. This is the only cross-atom coupling in the system.
		if reset {
			st.atom.Reset()
		}
		v := st.atom.Apply(cur)
		if p.hook != nil {
			p.hook(lineNo, i, st.name, v)
		}
		if v.StartsBlock() {
			reset = true
		}
		if v.IsDrop() || v.IsEmit() {
			// The line stops here, but a pending block start still resets
			// the rest of the tail: those atoms must see the next surviving
			// line of the new block with fresh state.
			if reset {
				for j := i + 1; j < len(p.steps); j++ {
					p.steps[j].atom.Reset()
				}
			}
			if v.IsDrop() {
				return "", false
			}
			return v.Text(), true
		}
		cur = v.Text()
	}
	return cur, true
}
