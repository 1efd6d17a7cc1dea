package atom

import "testing"

func TestSubFirstMatchOnly(t *testing.T) {
	s, err := NewSub("[^01]+", "")
	if err != nil {
		t.Fatal(err)
	}
	if v := s.Apply("1078910a"); v.Text() != "1010a" {
		t.Errorf("got %q, want %q", v.Text(), "1010a")
	}
}

func TestSubNoMatchIsIdentity(t *testing.T) {
	s, err := NewSub("^abc", "X")
	if err != nil {
		t.Fatal(err)
	}
	if v := s.Apply("def"); v.Text() != "def" {
		t.Errorf("got %q, want the line unchanged", v.Text())
	}
}

func TestSubTwiceEqualsGsubOnce(t *testing.T) {
	// With a pattern that matches at most once per application and no
	// overlapping matches, two subs converge on what one gsub does.
	sub, err := NewSub("[ab]", "x")
	if err != nil {
		t.Fatal(err)
	}
	gsub, err := NewGsub("[ab]", "x")
	if err != nil {
		t.Fatal(err)
	}

	line := "a b"
	twice := sub.Apply(sub.Apply(line).Text()).Text()
	once := gsub.Apply(line).Text()
	if twice != once {
		t.Errorf("sub twice = %q, gsub once = %q", twice, once)
	}
}

func TestGsubNamedGroups(t *testing.T) {
	g, err := NewGsub(`(?P<y>\d{4})-(?P<m>\d{2})-(?P<d>\d{2})`, "$m/$d/$y")
	if err != nil {
		t.Fatal(err)
	}
	v := g.Apply("2012-03-14 and 2014-07-05")
	if v.Text() != "03/14/2012 and 07/05/2014" {
		t.Errorf("got %q", v.Text())
	}
}

func TestGsubNumberedGroups(t *testing.T) {
	g, err := NewGsub(`(\w+)=(\w+)`, "${2}:${1}")
	if err != nil {
		t.Fatal(err)
	}
	if v := g.Apply("a=1 b=2"); v.Text() != "1:a 2:b" {
		t.Errorf("got %q", v.Text())
	}
}

func TestTemplateValidation(t *testing.T) {
	tests := []struct {
		pattern, tmpl string
		ok            bool
	}{
		{`(?P<y>\d+)`, "$y", true},
		{`(?P<y>\d+)`, "${y}z", true},
		{`(\d+)`, "$1", true},
		{`(\d+)`, "$0", true},
		{`(\d+)`, "$$1", true}, // $$ is a literal $, the 1 is plain text
		{`(\d+)`, "100$", true},
		{`(\d+)`, "a$ b", true},
		{`(?P<y>\d+)`, "$x", false},
		{`(\d+)`, "$2", false},
		{`\d+`, "$1", false},
		{`(?P<y>\d+)`, "${", false},
		{`(?P<y>\d+)`, "${}", false},
	}
	for _, tt := range tests {
		_, err := NewSub(tt.pattern, tt.tmpl)
		if tt.ok && err != nil {
			t.Errorf("NewSub(%q, %q): unexpected error: %v", tt.pattern, tt.tmpl, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("NewSub(%q, %q): expected error", tt.pattern, tt.tmpl)
		}

		// gsub shares the validator.
		_, err = NewGsub(tt.pattern, tt.tmpl)
		if tt.ok != (err == nil) {
			t.Errorf("NewGsub(%q, %q): ok=%v, err=%v", tt.pattern, tt.tmpl, tt.ok, err)
		}
	}
}
