package design

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Guidelines carries human-readable guidance for an external image generator.
type Guidelines struct {
	Aesthetic           string   `json:"aesthetic"`
	HeadDescription     string   `json:"head_description"`
	BodyDescription     string   `json:"body_description"`
	FacialDescription   string   `json:"facial_description"`
	SizeNote            string   `json:"size_note"`
	ColorNote           string   `json:"color_note"`
	UniversalPrinciples []string `json:"universal_principles"`
}

// Provenance records which documents and rules produced a specification.
type Provenance struct {
	AestheticDocument      string   `json:"aesthetic_document"`
	IntentionalityDocument string   `json:"intentionality_document"`
	MorphismsApplied       []string `json:"morphisms_applied"`
	DiagramsChecked        []string `json:"commutative_diagrams_checked"`
}

// Specification is the complete resolved design for one prompt.
type Specification struct {
	CharacterName string `json:"character_name"`
	Archetype     string `json:"archetype"`
	Seed          int    `json:"design_seed"`
	UserPrompt    string `json:"user_prompt"`

	Choices

	CoreIntention        string `json:"core_intention"`
	CompositionPrinciple string `json:"composition_principle"`
	DesignRationale      string `json:"design_rationale"`
	WhyThisWorks         string `json:"why_this_works"`

	Guidelines Guidelines `json:"design_guidelines"`
	Provenance Provenance `json:"specification_source"`
}

// Service resolves prompts into design specifications over a loaded catalog.
// Stateless beyond the immutable catalog; safe for concurrent callers.
type Service struct {
	catalog *Catalog
}

// NewService returns a design service over the loaded catalog.
func NewService(catalog *Catalog) *Service {
	return &Service{catalog: catalog}
}

// Catalog exposes the loaded specification tables.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// namePrefixes keys a short literal name prefix by archetype.
var namePrefixes = map[string]string{
	"joyful_character_archetype":      "Joy",
	"melancholic_character_archetype": "Melan",
	"anxious_character_archetype":     "Anx",
	"sleepy_character_archetype":      "Sleep",
	"mischievous_character_archetype": "Misc",
	"dreamy_character_archetype":      "Dream",
	"determined_character_archetype":  "Det",
}

// archetypeDefaultChoices is the fixed choice set used when no intent payload
// accompanies the prompt.
var archetypeDefaultChoices = Choices{
	HeadShape:      "large_round_orb",
	BodyProportion: "balanced_cute_50_50",
	FacialStyle:    "dot_eyes_curved_smile",
	ColorTriad:     "soft_pink_lavender_mint",
	SizeCategory:   "small_plush_toy",
}

var universalPrinciples = []string{
	"Proportion precision: maintain ratio relationships",
	"Feature economy: each feature must earn its existence",
	"Pastel restraint: stay within soft color spectrum",
	"Approachability priority: no sharp edges or judgment",
	"Emotional honesty: character must be authentic to its emotion",
}

var morphismsApplied = []string{
	"design_intent_to_head_shape",
	"design_intent_to_body_proportion",
	"design_intent_to_color_triad",
	"design_intent_to_facial_style",
}

var diagramsChecked = []string{
	"proportional_coherence",
	"emotional_coherence",
	"expressiveness_balance",
}

// GenerateDesign resolves a prompt, and optionally a structured intent, into
// a complete design specification. Resolution is total: it always produces a
// value under a valid catalog, so there is no error path.
func (s *Service) GenerateDesign(prompt string, intent *Intent) Specification {
	archetypeName := Classify(s.catalog, prompt)
	archetype, _ := s.catalog.Archetype(archetypeName)

	var choices Choices
	var rationale string
	if intent != nil {
		choices = Resolve(*intent, archetypeName)
		rationale = Explain(choices, *intent)
	} else {
		choices = archetypeDefaultChoices
		rationale = "Archetype-based selection: " + archetypeName
	}

	return Specification{
		CharacterName:        synthesizeName(archetypeName, prompt),
		Archetype:            archetypeName,
		Seed:                 DeriveSeed(prompt),
		UserPrompt:           prompt,
		Choices:              choices,
		CoreIntention:        archetype.CoreIntention,
		CompositionPrinciple: archetype.CompositionPrinciple,
		DesignRationale:      rationale,
		WhyThisWorks:         archetype.WhyThisWorks,
		Guidelines:           buildGuidelines(choices),
		Provenance: Provenance{
			AestheticDocument:      AestheticDocument,
			IntentionalityDocument: IntentionalityDocument,
			MorphismsApplied:       morphismsApplied,
			DiagramsChecked:        diagramsChecked,
		},
	}
}

// ArchetypeRules returns the design rules for one archetype name.
func (s *Service) ArchetypeRules(name string) (Rule, error) {
	rule, ok := s.catalog.Archetype(name)
	if !ok {
		return Rule{}, fmt.Errorf("%w: %s", ErrUnknownArchetype, name)
	}
	return rule, nil
}

// synthesizeName builds a character name from the archetype prefix and the
// first three characters of the prompt's first token.
func synthesizeName(archetype, prompt string) string {
	prefix, ok := namePrefixes[archetype]
	if !ok {
		prefix = "Mascot"
	}
	tokens := strings.Fields(strings.ToLower(prompt))
	if len(tokens) == 0 {
		return prefix
	}
	token := []rune(tokens[0])
	if len(token) > 3 {
		token = token[:3]
	}
	return prefix + cases.Title(language.English).String(string(token))
}

func buildGuidelines(choices Choices) Guidelines {
	return Guidelines{
		Aesthetic:           "Mascot style: cute, simplified shapes, minimal features, pastel-friendly",
		HeadDescription:     fmt.Sprintf("Use a %s shape for the head", humanize(choices.HeadShape)),
		BodyDescription:     fmt.Sprintf("Body should be %s", humanize(choices.BodyProportion)),
		FacialDescription:   fmt.Sprintf("Face features: %s", humanize(choices.FacialStyle)),
		SizeNote:            fmt.Sprintf("Character size: %s", humanize(choices.SizeCategory)),
		ColorNote:           fmt.Sprintf("Use %s color palette", humanize(choices.ColorTriad)),
		UniversalPrinciples: universalPrinciples,
	}
}

// humanize turns an instance id into readable prose.
func humanize(instance string) string {
	return strings.ReplaceAll(instance, "_", " ")
}
