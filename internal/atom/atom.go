// Package atom implements the processing units a sift program is built from.
// An atom holds immutable configuration captured at construction and, for the
// counting and range kinds, mutable private state. Two atoms of the same kind
// at different program positions are fully independent instances.
package atom

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
)

// Atom is the interface every processing unit implements.
type Atom interface {
	// Apply feeds one line through the atom and returns its verdict.
	Apply(line string) Verdict

	// Reset reinitializes mutable state to its construction value: counters
	// to zero, range state to outside. Stateless atoms do nothing. Only the
	// program invokes Reset, never an atom on itself.
	Reset()
}

// Spec describes one atom kind: how it is named on the command line, how
// many positional arguments it takes, and how to construct an instance.
type Spec struct {
	Name    string   // canonical keyword
	Aliases []string // alternate keywords
	Arity   int      // number of positional arguments
	Usage   string   // argument synopsis for list/help output
	Summary string   // one-line description
	New     func(args []string) (Atom, error)
}

// Registry maps atom keywords and aliases to their specs.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]*Spec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]*Spec)}
}

// Register adds a spec under its canonical name and all aliases.
func (r *Registry) Register(s *Spec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[s.Name] = s
	for _, a := range s.Aliases {
		r.specs[a] = s
	}
}

// Lookup returns the spec registered under name or any of its aliases.
func (r *Registry) Lookup(name string) (*Spec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.specs[name]
	if !ok {
		return nil, fmt.Errorf("unknown atom: %q", name)
	}
	return s, nil
}

// All returns every registered spec once, sorted by canonical name.
func (r *Registry) All() []*Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	specs := make([]*Spec, 0, len(r.specs))
	for _, s := range r.specs {
		if !seen[s.Name] {
			seen[s.Name] = true
			specs = append(specs, s)
		}
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Name < specs[j].Name
	})
	return specs
}

func compileRegex(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", expr, err)
	}
	return re, nil
}
