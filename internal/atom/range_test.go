package atom

import "testing"

var iniLines = []string{
	"",
	"[Header 1]",
	"key1 = header1_value1",
	"key2 = header1_value2",
	"",
	"[Header 2]",
	"key1 = header2_value1",
	"key2 = header2_value2",
}

func TestFilterRange(t *testing.T) {
	fr, err := NewFilterRange(`^\[Header 1`, `^\[`)
	if err != nil {
		t.Fatal(err)
	}

	wantKinds := []string{
		"drop",     // blank line before the block
		"continue", // start boundary, included
		"continue",
		"continue",
		"continue",
		"continue", // end boundary ([Header 2]), included
		"drop",     // outside again
		"drop",
	}
	for i, line := range iniLines {
		v := fr.Apply(line)
		if v.Kind() != wantKinds[i] {
			t.Errorf("line %d %q: got %s, want %s", i+1, line, v.Kind(), wantKinds[i])
		}
		if v.IsContinue() && v.Text() != line {
			t.Errorf("line %d: boundary lines pass through unchanged, got %q", i+1, v.Text())
		}
		if v.StartsBlock() != (i == 1) {
			t.Errorf("line %d: StartsBlock = %v", i+1, v.StartsBlock())
		}
	}
}

func TestMatchRange(t *testing.T) {
	mr, err := NewMatchRange(`^\[Header 1`, `^\[`)
	if err != nil {
		t.Fatal(err)
	}

	wantKinds := []string{
		"emit", // outside: emitted untouched rather than dropped
		"continue",
		"continue",
		"continue",
		"continue",
		"continue",
		"emit",
		"emit",
	}
	for i, line := range iniLines {
		v := mr.Apply(line)
		if v.Kind() != wantKinds[i] {
			t.Errorf("line %d %q: got %s, want %s", i+1, line, v.Kind(), wantKinds[i])
		}
		if v.Text() != line {
			t.Errorf("line %d: got %q, want the line unchanged", i+1, v.Text())
		}
	}
}

// The entering line is never tested against the end pattern, so a start
// pattern whose matches are also end matches still opens a full block.
func TestRangeStartLineNotTestedAgainstEnd(t *testing.T) {
	fr, err := NewFilterRange(`^\[`, `^\[`)
	if err != nil {
		t.Fatal(err)
	}

	wantKinds := []string{"continue", "continue", "continue", "drop"}
	wantStarts := []bool{true, false, false, false}
	for i, line := range []string{"[a]", "x", "[b]", "y"} {
		v := fr.Apply(line)
		if v.Kind() != wantKinds[i] {
			t.Errorf("line %d %q: got %s, want %s", i+1, line, v.Kind(), wantKinds[i])
		}
		if v.StartsBlock() != wantStarts[i] {
			t.Errorf("line %d: StartsBlock = %v, want %v", i+1, v.StartsBlock(), wantStarts[i])
		}
	}
}

func TestRangeReset(t *testing.T) {
	fr, err := NewFilterRange("^start", "^end")
	if err != nil {
		t.Fatal(err)
	}

	if v := fr.Apply("start here"); !v.StartsBlock() {
		t.Fatal("expected a new block")
	}
	// Mid-block reset returns to outside: the next non-start line drops.
	fr.Reset()
	if v := fr.Apply("middle"); !v.IsDrop() {
		t.Errorf("after reset: got %s, want drop", v.Kind())
	}
}

func TestRangeReentersAcrossBlocks(t *testing.T) {
	fr, err := NewFilterRange("^start", "^end")
	if err != nil {
		t.Fatal(err)
	}

	input := []string{"start a", "end a", "skip", "start b", "end b"}
	wantStarts := []bool{true, false, false, true, false}
	for i, line := range input {
		v := fr.Apply(line)
		if v.StartsBlock() != wantStarts[i] {
			t.Errorf("line %d %q: StartsBlock = %v, want %v", i+1, line, v.StartsBlock(), wantStarts[i])
		}
	}
}
