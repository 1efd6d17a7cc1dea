package atom

import "regexp"

// Sub replaces the first match of its pattern with the expanded template.
// Lines without a match pass through byte-for-byte.
type Sub struct {
	re   *regexp.Regexp
	tmpl string
}

var _ Atom = (*Sub)(nil)

func NewSub(expr, tmpl string) (*Sub, error) {
	re, err := compileRegex(expr)
	if err != nil {
		return nil, err
	}
	if err := checkTemplate(re, tmpl); err != nil {
		return nil, err
	}
	return &Sub{re: re, tmpl: tmpl}, nil
}

func (s *Sub) Apply(line string) Verdict {
	loc := s.re.FindStringSubmatchIndex(line)
	if loc == nil {
		return Continue(line)
	}
	out := make([]byte, 0, len(line))
	out = append(out, line[:loc[0]]...)
	out = s.re.ExpandString(out, s.tmpl, line, loc)
	out = append(out, line[loc[1]:]...)
	return Continue(string(out))
}

func (s *Sub) Reset() {}
