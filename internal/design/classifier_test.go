package design

import "testing"

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	return catalog
}

func TestClassifyMatchesKeyword(t *testing.T) {
	catalog := loadCatalog(t)

	cases := []struct {
		prompt string
		want   string
	}{
		{"a happy little helper", "joyful_character_archetype"},
		{"the feeling of procrastination", "melancholic_character_archetype"},
		{"worry about the deadline", "anxious_character_archetype"},
		{"a drowsy afternoon", "sleepy_character_archetype"},
		{"a sneaky little prankster", "mischievous_character_archetype"},
		{"stargazing on the roof", "dreamy_character_archetype"},
		{"grit and persistence", "determined_character_archetype"},
	}
	for _, tc := range cases {
		if got := Classify(catalog, tc.prompt); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.prompt, got, tc.want)
		}
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	catalog := loadCatalog(t)

	if got := Classify(catalog, "RAIN on the WINDOW"); got != "melancholic_character_archetype" {
		t.Fatalf("Classify uppercase = %q, want melancholic", got)
	}
}

func TestClassifyMatchesSubstringInsideWord(t *testing.T) {
	catalog := loadCatalog(t)

	// "celebrations" contains the keyword "celebration".
	if got := Classify(catalog, "birthday celebrations"); got != "joyful_character_archetype" {
		t.Fatalf("Classify substring = %q, want joyful", got)
	}
}

// TestClassifyPrecedenceFollowsCatalogueOrder locks in the first-match-in-
// catalogue-order tie break: a prompt carrying keywords from two archetypes
// resolves to the one declared earlier in the document.
func TestClassifyPrecedenceFollowsCatalogueOrder(t *testing.T) {
	catalog := loadCatalog(t)

	// "sad" (melancholic) appears in the catalogue before "determined".
	if got := Classify(catalog, "sad but determined"); got != "melancholic_character_archetype" {
		t.Fatalf("Classify two-archetype prompt = %q, want melancholic", got)
	}
	// "happy" (joyful, first in catalogue) wins over "sad".
	if got := Classify(catalog, "sad then happy"); got != "joyful_character_archetype" {
		t.Fatalf("Classify joyful-vs-melancholic = %q, want joyful", got)
	}
}

func TestClassifyFallsBackToDefault(t *testing.T) {
	catalog := loadCatalog(t)

	if got := Classify(catalog, "quarterly budget review"); got != DefaultArchetype {
		t.Fatalf("Classify unmatched = %q, want %q", got, DefaultArchetype)
	}
	if got := Classify(catalog, ""); got != DefaultArchetype {
		t.Fatalf("Classify empty = %q, want %q", got, DefaultArchetype)
	}
}
