package atom

import "regexp"

// Filter keeps lines matching its pattern and drops everything else.
type Filter struct {
	re *regexp.Regexp
}

var _ Atom = (*Filter)(nil)

func NewFilter(expr string) (*Filter, error) {
	re, err := compileRegex(expr)
	if err != nil {
		return nil, err
	}
	return &Filter{re: re}, nil
}

func (f *Filter) Apply(line string) Verdict {
	if f.re.MatchString(line) {
		return Continue(line)
	}
	return Drop()
}

func (f *Filter) Reset() {}
