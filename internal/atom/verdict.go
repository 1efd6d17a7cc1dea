package atom

type verdictKind int

const (
	kindContinue verdictKind = iota
	kindDrop
	kindEmit
)

// Verdict is the outcome of applying one atom to one line. Exactly one of:
// continue with a (possibly rewritten) value, drop the line, or emit the
// value immediately, bypassing later atoms. A continuing verdict may also
// carry a new-block signal, which tells the program to reset every atom
// positioned after the one that produced it.
type Verdict struct {
	kind     verdictKind
	text     string
	newBlock bool
}

// Continue passes text on to the next atom.
func Continue(text string) Verdict {
	return Verdict{kind: kindContinue, text: text}
}

// ContinueNewBlock passes text on and signals that a new block started here.
func ContinueNewBlock(text string) Verdict {
	return Verdict{kind: kindContinue, text: text, newBlock: true}
}

// Drop discards the line. No output is produced for this input line.
func Drop() Verdict {
	return Verdict{kind: kindDrop}
}

// Emit writes text to the sink immediately; remaining atoms are skipped.
func Emit(text string) Verdict {
	return Verdict{kind: kindEmit, text: text}
}

func (v Verdict) IsContinue() bool { return v.kind == kindContinue }
func (v Verdict) IsDrop() bool     { return v.kind == kindDrop }
func (v Verdict) IsEmit() bool     { return v.kind == kindEmit }

// StartsBlock reports whether this verdict carries the new-block signal.
func (v Verdict) StartsBlock() bool { return v.newBlock }

// Text returns the line value carried by a continue or emit verdict.
func (v Verdict) Text() string { return v.text }

// Kind names the verdict for trace output and error messages.
func (v Verdict) Kind() string {
	switch v.kind {
	case kindDrop:
		return "drop"
	case kindEmit:
		return "emit"
	default:
		return "continue"
	}
}
