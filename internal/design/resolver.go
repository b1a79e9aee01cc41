package design

import (
	"fmt"
	"strings"
)

// Intent is the optional structured design analysis accompanying a prompt.
// Absent fields are empty strings and never an error.
type Intent struct {
	Mood            string `json:"mood,omitempty"`
	WeightFeeling   string `json:"weight_feeling,omitempty"`
	ColorFeeling    string `json:"color_feeling,omitempty"`
	SizeImplication string `json:"size_implication,omitempty"`
	PrimaryShape    string `json:"primary_shape,omitempty"`
}

// Choices is one concrete instance per taxonomy dimension. Every value is a
// member of its dimension's declared instance list.
type Choices struct {
	HeadShape      string `json:"head_shape"`
	BodyProportion string `json:"body_proportion"`
	FacialStyle    string `json:"facial_style"`
	ColorTriad     string `json:"color_triad"`
	SizeCategory   string `json:"size_category"`
}

// loweredIntent carries the intent fields the rule chains read, lower-cased
// once so every predicate is a plain substring test.
type loweredIntent struct {
	weight string
	shape  string
	color  string
	size   string
}

func lowerIntent(intent Intent) loweredIntent {
	return loweredIntent{
		weight: strings.ToLower(intent.WeightFeeling),
		shape:  strings.ToLower(intent.PrimaryShape),
		color:  strings.ToLower(intent.ColorFeeling),
		size:   strings.ToLower(intent.SizeImplication),
	}
}

func containsAny(text string, cues ...string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}

// intentRule pairs a predicate over intent text with the instance it selects.
// Chains are evaluated in declaration order and the first match wins; order
// is load-bearing, mirroring the classifier's first-match policy.
type intentRule struct {
	when     func(in loweredIntent) bool
	instance string
}

func firstMatch(rules []intentRule, in loweredIntent, fallback string) string {
	for _, rule := range rules {
		if rule.when(in) {
			return rule.instance
		}
	}
	return fallback
}

var headShapeRules = []intentRule{
	{instance: "elongated_teardrop", when: func(in loweredIntent) bool {
		return containsAny(in.weight, "droop") || containsAny(in.shape, "droop")
	}},
	{instance: "cat_like_curved", when: func(in loweredIntent) bool {
		return containsAny(in.shape, "curved", "flowing")
	}},
	{instance: "minimalist_blob", when: func(in loweredIntent) bool {
		return containsAny(in.shape, "blob", "amorphous")
	}},
	{instance: "simplified_geometric", when: func(in loweredIntent) bool {
		return containsAny(in.shape, "geometric", "sharp")
	}},
	{instance: "wide_and_flat", when: func(in loweredIntent) bool {
		return containsAny(in.shape, "wide", "flat")
	}},
	{instance: "ovoid_with_point", when: func(in loweredIntent) bool {
		return containsAny(in.shape, "pointed", "spike")
	}},
	{instance: "large_round_orb", when: func(in loweredIntent) bool {
		return containsAny(in.weight, "round", "soft")
	}},
}

const headShapeFallback = "large_round_orb"

var bodyProportionRules = []intentRule{
	{instance: "tiny_torso_large_head", when: func(in loweredIntent) bool {
		return containsAny(in.size, "tiny", "insignificant") || containsAny(in.weight, "miniature")
	}},
	{instance: "body_focused_30_70", when: func(in loweredIntent) bool {
		return containsAny(in.weight, "weighted", "heavy", "grounded")
	}},
	{instance: "extended_and_fluid", when: func(in loweredIntent) bool {
		return containsAny(in.weight, "fluid", "flowing", "extended")
	}},
	{instance: "limbless_blob", when: func(in loweredIntent) bool {
		return containsAny(in.weight, "limbless", "blob")
	}},
	{instance: "head_dominant_80_20", when: func(in loweredIntent) bool {
		return containsAny(in.size, "head-heavy") || containsAny(in.weight, "top-heavy")
	}},
}

const bodyProportionFallback = "balanced_cute_50_50"

var sizeCategoryRules = []intentRule{
	{instance: "small_plush_toy", when: func(in loweredIntent) bool {
		return containsAny(in.size, "tiny", "pocket", "miniature")
	}},
	{instance: "small_decorative", when: func(in loweredIntent) bool {
		return containsAny(in.size, "small", "delicate")
	}},
	{instance: "medium_standard", when: func(in loweredIntent) bool {
		return containsAny(in.size, "medium", "standard")
	}},
	{instance: "large_display", when: func(in loweredIntent) bool {
		return containsAny(in.size, "large", "prominent")
	}},
}

const sizeCategoryFallback = "medium_standard"

// colorTriadByFeeling is an exact lookup, not substring matching, so the
// fallback entry and precedence stay statically auditable.
var colorTriadByFeeling = map[string]string{
	"muted":       "dusty_rose_sage_cream",
	"dusty":       "dusty_rose_sage_cream",
	"desaturated": "dusty_rose_sage_cream",
	"warm":        "butter_yellow_peach_blue",
	"cozy":        "butter_yellow_peach_blue",
	"cool":        "lavender_mint_sky_blue",
	"ethereal":    "pale_lavender_pearl_white",
	"vivid":       "coral_mint_cream",
	"pastel":      "soft_pink_lavender_mint",
}

const colorTriadFallback = "soft_pink_lavender_mint"

// facialStyleByArchetype is an exact lookup keyed by resolved archetype name.
var facialStyleByArchetype = map[string]string{
	"joyful_character_archetype":      "dot_eyes_curved_smile",
	"melancholic_character_archetype": "closed_happy_eyes",
	"anxious_character_archetype":     "worried_upturned_eyes",
	"sleepy_character_archetype":      "closed_curved_eyes",
	"mischievous_character_archetype": "sparkle_mischievous_grin",
	"dreamy_character_archetype":      "wide_dreamy_eyes",
	"determined_character_archetype":  "focused_straight_gaze",
}

const facialStyleFallback = "dot_eyes_curved_smile"

// Resolve maps a structured intent and resolved archetype onto one concrete
// instance per taxonomy dimension. Resolution is total: unmatched fields fall
// back to each dimension's fixed default, never to an absent value.
func Resolve(intent Intent, archetype string) Choices {
	in := lowerIntent(intent)

	colorTriad, ok := colorTriadByFeeling[in.color]
	if !ok {
		colorTriad = colorTriadFallback
	}

	facialStyle, ok := facialStyleByArchetype[archetype]
	if !ok {
		facialStyle = facialStyleFallback
	}

	return Choices{
		HeadShape:      firstMatch(headShapeRules, in, headShapeFallback),
		BodyProportion: firstMatch(bodyProportionRules, in, bodyProportionFallback),
		FacialStyle:    facialStyle,
		ColorTriad:     colorTriad,
		SizeCategory:   firstMatch(sizeCategoryRules, in, sizeCategoryFallback),
	}
}

// ruleTargets lists every instance id the rule tables can produce, keyed by
// dimension. validateRuleTargets cross-checks them against the loaded
// taxonomy so resolution satisfies the closure invariant by construction.
func ruleTargets() map[string][]string {
	targets := map[string][]string{
		DimensionHeadShape:      {headShapeFallback},
		DimensionBodyProportion: {bodyProportionFallback},
		DimensionSizeCategory:   {sizeCategoryFallback},
		DimensionColorTriad:     {colorTriadFallback},
		DimensionFacialStyle:    {facialStyleFallback},
	}
	for _, rule := range headShapeRules {
		targets[DimensionHeadShape] = append(targets[DimensionHeadShape], rule.instance)
	}
	for _, rule := range bodyProportionRules {
		targets[DimensionBodyProportion] = append(targets[DimensionBodyProportion], rule.instance)
	}
	for _, rule := range sizeCategoryRules {
		targets[DimensionSizeCategory] = append(targets[DimensionSizeCategory], rule.instance)
	}
	for _, triad := range colorTriadByFeeling {
		targets[DimensionColorTriad] = append(targets[DimensionColorTriad], triad)
	}
	for _, style := range facialStyleByArchetype {
		targets[DimensionFacialStyle] = append(targets[DimensionFacialStyle], style)
	}
	return targets
}

func validateRuleTargets(catalog *Catalog) error {
	for dimensionName, instances := range ruleTargets() {
		dimension, ok := catalog.Dimension(dimensionName)
		if !ok {
			return fmt.Errorf("%w: rule table references unknown dimension %q", ErrInvalidTaxonomyEntry, dimensionName)
		}
		for _, instance := range instances {
			if !dimension.Contains(instance) {
				return fmt.Errorf("%w: rule target %q is not declared by dimension %q", ErrInvalidTaxonomyEntry, instance, dimensionName)
			}
		}
	}
	return nil
}
