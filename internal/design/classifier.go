package design

import "strings"

// Classify infers the dominant emotional archetype for a free-text prompt.
//
// The prompt is lower-cased and archetypes are tested in catalogue order;
// the first archetype with any keyword occurring as a substring wins. This
// first-match-in-catalogue-order policy is a deliberate determinism decision,
// not a best-match heuristic: swapping catalogue order changes observable
// behavior, so the documents own precedence. Prompts matching nothing fall
// back to the default archetype, which load guarantees to exist.
func Classify(catalog *Catalog, prompt string) string {
	lowered := strings.ToLower(prompt)
	for _, rule := range catalog.Archetypes() {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Name
			}
		}
	}
	return DefaultArchetype
}
