package atom

import "regexp"

// Gsub replaces every non-overlapping match of its pattern, left to right,
// with the expanded template.
type Gsub struct {
	re   *regexp.Regexp
	tmpl string
}

var _ Atom = (*Gsub)(nil)

func NewGsub(expr, tmpl string) (*Gsub, error) {
	re, err := compileRegex(expr)
	if err != nil {
		return nil, err
	}
	if err := checkTemplate(re, tmpl); err != nil {
		return nil, err
	}
	return &Gsub{re: re, tmpl: tmpl}, nil
}

func (g *Gsub) Apply(line string) Verdict {
	return Continue(g.re.ReplaceAllString(line, g.tmpl))
}

func (g *Gsub) Reset() {}
