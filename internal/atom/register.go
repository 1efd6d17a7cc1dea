package atom

// Default returns a registry holding all nine atom kinds.
func Default() *Registry {
	r := NewRegistry()
	RegisterAll(r)
	return r
}

// RegisterAll adds every built-in atom kind to the registry.
func RegisterAll(r *Registry) {
	r.Register(&Spec{
		Name:    "filter",
		Aliases: []string{"f"},
		Arity:   1,
		Usage:   "filter REGEX",
		Summary: "keep matching lines, drop the rest",
		New: func(args []string) (Atom, error) {
			return NewFilter(args[0])
		},
	})
	r.Register(&Spec{
		Name:    "match",
		Aliases: []string{"m"},
		Arity:   1,
		Usage:   "match REGEX",
		Summary: "pass matching lines on, emit the rest untouched",
		New: func(args []string) (Atom, error) {
			return NewMatch(args[0])
		},
	})
	r.Register(&Spec{
		Name:    "sub",
		Aliases: []string{"s"},
		Arity:   2,
		Usage:   "sub REGEX TEMPLATE",
		Summary: "replace the first match with the expanded template",
		New: func(args []string) (Atom, error) {
			return NewSub(args[0], args[1])
		},
	})
	r.Register(&Spec{
		Name:    "gsub",
		Aliases: []string{"g"},
		Arity:   2,
		Usage:   "gsub REGEX TEMPLATE",
		Summary: "replace every match with the expanded template",
		New: func(args []string) (Atom, error) {
			return NewGsub(args[0], args[1])
		},
	})
	r.Register(&Spec{
		Name:    "enumerate",
		Aliases: []string{"enum", "e", "#"},
		Arity:   0,
		Usage:   "enumerate",
		Summary: "prepend a running count of the lines seen",
		New: func(args []string) (Atom, error) {
			return NewEnumerate(), nil
		},
	})
	r.Register(&Spec{
		Name:    "fields",
		Aliases: []string{"F"},
		Arity:   1,
		Usage:   "fields SELECTOR",
		Summary: "keep the selected whitespace-separated fields",
		New: func(args []string) (Atom, error) {
			return NewFields(args[0])
		},
	})
	r.Register(&Spec{
		Name:    "lines",
		Aliases: []string{"line", "l"},
		Arity:   1,
		Usage:   "lines SELECTOR",
		Summary: "keep the selected line numbers, drop the rest",
		New: func(args []string) (Atom, error) {
			return NewLines(args[0])
		},
	})
	r.Register(&Spec{
		Name:    "filter-range",
		Aliases: []string{"fr"},
		Arity:   2,
		Usage:   "filter-range START END",
		Summary: "keep blocks delimited by START and END, drop the rest",
		New: func(args []string) (Atom, error) {
			return NewFilterRange(args[0], args[1])
		},
	})
	r.Register(&Spec{
		Name:    "match-range",
		Aliases: []string{"mr"},
		Arity:   2,
		Usage:   "match-range START END",
		Summary: "pass blocks delimited by START and END on, emit the rest untouched",
		New: func(args []string) (Atom, error) {
			return NewMatchRange(args[0], args[1])
		},
	})
}
