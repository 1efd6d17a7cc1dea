package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

// noConfig points config loading at a path that does not exist, so tests
// never pick up a developer's real ~/.config/sift/config.yaml.
func noConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.yaml")
}

func TestRunFilterEnumerate(t *testing.T) {
	opts := &RootOptions{ConfigPath: noConfig(t)}

	var out, errOut bytes.Buffer
	code := Run(context.Background(), opts,
		[]string{"filter", "^keep", "enumerate"},
		strings.NewReader("keep a\ndrop\nkeep b\n"), &out, &errOut)

	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut.String())
	}
	if got := out.String(); got != "1 keep a\n2 keep b\n" {
		t.Errorf("output %q", got)
	}
}

func TestRunMissingProgram(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(context.Background(), &RootOptions{ConfigPath: noConfig(t)},
		nil, strings.NewReader(""), &out, &errOut)

	if code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "missing program") {
		t.Errorf("stderr %q", errOut.String())
	}
}

func TestRunBadProgramExitsBeforeReading(t *testing.T) {
	tests := [][]string{
		{"explode"},
		{"sub", "only-one-arg"},
		{"filter", "("},
		{"lines", "(-1)"},
		{"sub", "(?P<y>a)", "$x"},
	}
	for _, tokens := range tests {
		var out, errOut bytes.Buffer
		code := Run(context.Background(), &RootOptions{ConfigPath: noConfig(t)},
			tokens, strings.NewReader("never touched\n"), &out, &errOut)

		if code != 1 {
			t.Errorf("%v: exit code %d, want 1", tokens, code)
		}
		if out.Len() != 0 {
			t.Errorf("%v: produced partial output %q", tokens, out.String())
		}
		if !strings.HasPrefix(errOut.String(), "sift: ") {
			t.Errorf("%v: stderr %q", tokens, errOut.String())
		}
	}
}

func TestRunMissingInputFile(t *testing.T) {
	opts := &RootOptions{
		ConfigPath: noConfig(t),
		File:       filepath.Join(t.TempDir(), "absent.txt"),
	}

	var out, errOut bytes.Buffer
	code := Run(context.Background(), opts, []string{"enumerate"},
		strings.NewReader(""), &out, &errOut)

	if code != 2 {
		t.Errorf("exit code %d, want 2", code)
	}
}

func TestListCommand(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"list"})

	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"filter", "match-range", "enumerate", "fields"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("list output missing %q:\n%s", name, out.String())
		}
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "sift") {
		t.Errorf("version output %q", out.String())
	}
}
