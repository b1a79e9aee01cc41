package design

import "testing"

func TestDeriveSeedIsStable(t *testing.T) {
	prompts := []string{
		"",
		"procrastination",
		"the feeling of procrastination",
		"a happy little helper",
		"日向ぼっこ",
	}
	for _, prompt := range prompts {
		first := DeriveSeed(prompt)
		second := DeriveSeed(prompt)
		if first != second {
			t.Fatalf("seed for %q unstable: %d vs %d", prompt, first, second)
		}
		if first < 0 || first >= 100 {
			t.Fatalf("seed for %q out of range: %d", prompt, first)
		}
	}
}

// Pinned values lock the hash choice: changing the algorithm is a breaking
// change for reproducibility fingerprints handed to callers.
func TestDeriveSeedKnownValues(t *testing.T) {
	// FNV-1a 32-bit offset basis 2166136261 % 100.
	if got := DeriveSeed(""); got != 61 {
		t.Fatalf("DeriveSeed(\"\") = %d, want 61", got)
	}
	// FNV-1a 32-bit of "a" is 0xE40C292C (3826002220) % 100.
	if got := DeriveSeed("a"); got != 20 {
		t.Fatalf("DeriveSeed(\"a\") = %d, want 20", got)
	}
}

func TestDeriveSeedDependsOnContent(t *testing.T) {
	if DeriveSeed("") == DeriveSeed("a") {
		t.Fatal("expected different seeds for different prompts")
	}
}
