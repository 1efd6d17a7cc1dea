package program

import (
	"fmt"

	"github.com/marcelocantos/sift/internal/atom"
)

// Parse takes pre-tokenized args (as delivered by the shell) and builds a
// Program. Tokens alternate between an atom keyword (canonical name or any
// alias) and that atom's fixed number of positional arguments. Every
// construction failure (unknown keyword, missing arguments, bad regex or
// selector, bad replacement template) surfaces here, before any line is
// read.
func Parse(tokens []string, reg *atom.Registry) (*Program, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty program")
	}

	p := &Program{}
	for i := 0; i < len(tokens); {
		keyword := tokens[i]
		spec, err := reg.Lookup(keyword)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		if i+1+spec.Arity > len(tokens) {
			return nil, fmt.Errorf("%s: expected %d argument(s), got %d (usage: %s)",
				keyword, spec.Arity, len(tokens)-i-1, spec.Usage)
		}
		args := tokens[i+1 : i+1+spec.Arity]
		a, err := spec.New(args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyword, err)
		}
		p.steps = append(p.steps, step{name: spec.Name, atom: a})
		i += 1 + spec.Arity
	}
	return p, nil
}
