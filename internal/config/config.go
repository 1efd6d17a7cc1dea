package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/marcelocantos/sift/internal/atom"
)

// maxMacroDepth bounds recursive macro expansion so a macro cycle fails
// instead of looping.
const maxMacroDepth = 32

// Config holds the global sift configuration.
type Config struct {
	Macros map[string][]string `yaml:"macros"`
	Trace  TraceConfig         `yaml:"trace"`
}

// TraceConfig controls the optional JSONL run trace.
type TraceConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"` // "info" or "debug"; empty means info
}

// DefaultConfig returns the default configuration: no macros, trace disabled.
func DefaultConfig() *Config {
	return &Config{}
}

// Load reads the config from the standard location
// (~/.config/sift/config.yaml). A missing file yields the default config.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(filepath.Join(home, ".config", "sift", "config.yaml"))
}

// LoadFrom reads the config from the given path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Expand ~ in the trace path.
	if cfg.Trace.Path != "" && cfg.Trace.Path[0] == '~' {
		home, _ := os.UserHomeDir()
		cfg.Trace.Path = filepath.Join(home, cfg.Trace.Path[1:])
	}

	return cfg, nil
}

// Validate checks the macro table against the registry: a macro may not
// shadow a builtin keyword or alias, and may not be empty.
func (c *Config) Validate(reg *atom.Registry) error {
	for name, tokens := range c.Macros {
		if _, err := reg.Lookup(name); err == nil {
			return fmt.Errorf("macro %q shadows a builtin atom", name)
		}
		if len(tokens) == 0 {
			return fmt.Errorf("macro %q is empty", name)
		}
	}
	return nil
}

// ExpandMacros rewrites the token stream, splicing in macro bodies wherever
// a macro name appears in keyword position. Atom keywords are skipped along
// with their declared arguments so macro names inside regex or template
// arguments are never touched. Expansion is recursive up to maxMacroDepth.
func (c *Config) ExpandMacros(reg *atom.Registry, tokens []string) ([]string, error) {
	return c.expand(reg, tokens, 0)
}

func (c *Config) expand(reg *atom.Registry, tokens []string, depth int) ([]string, error) {
	if depth > maxMacroDepth {
		return nil, fmt.Errorf("macro expansion exceeds depth %d (cycle?)", maxMacroDepth)
	}

	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if body, ok := c.Macros[tokens[i]]; ok {
			expanded, err := c.expand(reg, body, depth+1)
			if err != nil {
				return nil, fmt.Errorf("macro %q: %w", tokens[i], err)
			}
			out = append(out, expanded...)
			i++
			continue
		}

		spec, err := reg.Lookup(tokens[i])
		if err != nil {
			// Leave the token for the parser to reject with a proper error.
			out = append(out, tokens[i])
			i++
			continue
		}

		end := i + 1 + spec.Arity
		if end > len(tokens) {
			end = len(tokens)
		}
		out = append(out, tokens[i:end]...)
		i = end
	}
	return out, nil
}

// Path returns the standard config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sift", "config.yaml")
}
