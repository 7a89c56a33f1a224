package cue

import "testing"

func TestParse(t *testing.T) {
	for _, c := range All() {
		got, err := Parse(c.String())
		if err != nil || got != c {
			t.Errorf("Parse(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := Parse("boom"); err == nil {
		t.Error("Parse(boom) should fail")
	}
}

func TestString(t *testing.T) {
	if got := Cue(42).String(); got != "cue(42)" {
		t.Errorf("Cue(42).String() = %q", got)
	}
}
