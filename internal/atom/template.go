package atom

import (
	"fmt"
	"regexp"
	"strconv"
)

// checkTemplate verifies that every capture-group reference in a replacement
// template resolves against the compiled pattern, so a bad reference is a
// construction-time error instead of silently expanding to nothing on every
// line. References use $name, ${name}, $n or ${n}; $$ inserts a literal $.
func checkTemplate(re *regexp.Regexp, tmpl string) error {
	named := make(map[string]bool)
	for _, n := range re.SubexpNames() {
		if n != "" {
			named[n] = true
		}
	}

	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '$' {
			continue
		}
		i++
		if i >= len(tmpl) {
			break // trailing $ is a literal
		}
		if tmpl[i] == '$' {
			continue // $$ escapes a literal $
		}

		var name string
		if tmpl[i] == '{' {
			end := i + 1
			for end < len(tmpl) && tmpl[end] != '}' {
				end++
			}
			if end == len(tmpl) || end == i+1 {
				return fmt.Errorf("template %q: malformed group reference at offset %d", tmpl, i-1)
			}
			name = tmpl[i+1 : end]
			i = end
		} else {
			end := i
			for end < len(tmpl) && isGroupNameChar(tmpl[end]) {
				end++
			}
			if end == i {
				continue // bare $ before a non-name character is a literal
			}
			name = tmpl[i:end]
			i = end - 1
		}

		if err := checkGroupRef(re, named, name); err != nil {
			return fmt.Errorf("template %q: %w", tmpl, err)
		}
	}
	return nil
}

func checkGroupRef(re *regexp.Regexp, named map[string]bool, name string) error {
	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 || n > re.NumSubexp() {
			return fmt.Errorf("no capture group %d in pattern %q", n, re.String())
		}
		return nil
	}
	if !named[name] {
		return fmt.Errorf("no capture group named %q in pattern %q", name, re.String())
	}
	return nil
}

func isGroupNameChar(c byte) bool {
	return c == '_' ||
		'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9'
}
