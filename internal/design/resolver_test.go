package design

import "testing"

func TestResolveDroopingWeightedIntent(t *testing.T) {
	intent := Intent{
		WeightFeeling: "drooping, weighted",
		PrimaryShape:  "drooping or curved",
	}

	choices := Resolve(intent, "melancholic_character_archetype")
	if choices.HeadShape != "elongated_teardrop" {
		t.Fatalf("head shape = %q, want elongated_teardrop", choices.HeadShape)
	}
	if choices.BodyProportion != "body_focused_30_70" {
		t.Fatalf("body proportion = %q, want body_focused_30_70", choices.BodyProportion)
	}
	if choices.FacialStyle != "closed_happy_eyes" {
		t.Fatalf("facial style = %q, want closed_happy_eyes", choices.FacialStyle)
	}
}

func TestResolveMutedColorFeeling(t *testing.T) {
	choices := Resolve(Intent{ColorFeeling: "muted"}, DefaultArchetype)
	if choices.ColorTriad != "dusty_rose_sage_cream" {
		t.Fatalf("color triad = %q, want dusty_rose_sage_cream", choices.ColorTriad)
	}
}

func TestResolveTinySizeImplication(t *testing.T) {
	choices := Resolve(Intent{SizeImplication: "tiny"}, DefaultArchetype)
	if choices.SizeCategory != "small_plush_toy" {
		t.Fatalf("size category = %q, want small_plush_toy", choices.SizeCategory)
	}
}

func TestResolveHeadShapeChain(t *testing.T) {
	cases := []struct {
		name   string
		intent Intent
		want   string
	}{
		{"droop beats curved", Intent{WeightFeeling: "drooping", PrimaryShape: "curved"}, "elongated_teardrop"},
		{"curved shape", Intent{PrimaryShape: "curved and flowing"}, "cat_like_curved"},
		{"amorphous shape", Intent{PrimaryShape: "an amorphous puddle"}, "minimalist_blob"},
		{"sharp shape", Intent{PrimaryShape: "sharp corners"}, "simplified_geometric"},
		{"wide shape", Intent{PrimaryShape: "wide and squat"}, "wide_and_flat"},
		{"spike shape", Intent{PrimaryShape: "a single spike"}, "ovoid_with_point"},
		{"soft weight", Intent{WeightFeeling: "soft and round"}, "large_round_orb"},
		{"no cues", Intent{}, "large_round_orb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			choices := Resolve(tc.intent, DefaultArchetype)
			if choices.HeadShape != tc.want {
				t.Fatalf("head shape = %q, want %q", choices.HeadShape, tc.want)
			}
		})
	}
}

func TestResolveBodyProportionChain(t *testing.T) {
	cases := []struct {
		name   string
		intent Intent
		want   string
	}{
		{"tiny size beats heavy weight", Intent{SizeImplication: "tiny", WeightFeeling: "heavy"}, "tiny_torso_large_head"},
		{"miniature weight", Intent{WeightFeeling: "miniature"}, "tiny_torso_large_head"},
		{"grounded weight", Intent{WeightFeeling: "grounded"}, "body_focused_30_70"},
		{"fluid weight", Intent{WeightFeeling: "fluid"}, "extended_and_fluid"},
		{"limbless weight", Intent{WeightFeeling: "limbless"}, "limbless_blob"},
		{"top-heavy weight", Intent{WeightFeeling: "top-heavy"}, "head_dominant_80_20"},
		{"head-heavy size", Intent{SizeImplication: "head-heavy"}, "head_dominant_80_20"},
		{"no cues", Intent{}, "balanced_cute_50_50"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			choices := Resolve(tc.intent, DefaultArchetype)
			if choices.BodyProportion != tc.want {
				t.Fatalf("body proportion = %q, want %q", choices.BodyProportion, tc.want)
			}
		})
	}
}

func TestResolveColorTriadLookupIsExact(t *testing.T) {
	cases := []struct {
		feeling string
		want    string
	}{
		{"muted", "dusty_rose_sage_cream"},
		{"dusty", "dusty_rose_sage_cream"},
		{"desaturated", "dusty_rose_sage_cream"},
		{"warm", "butter_yellow_peach_blue"},
		{"cozy", "butter_yellow_peach_blue"},
		{"cool", "lavender_mint_sky_blue"},
		{"ethereal", "pale_lavender_pearl_white"},
		{"vivid", "coral_mint_cream"},
		{"pastel", "soft_pink_lavender_mint"},
		// Exact lookup: a compound feeling is not a key and takes the default.
		{"muted, dusty", "soft_pink_lavender_mint"},
		{"", "soft_pink_lavender_mint"},
	}
	for _, tc := range cases {
		choices := Resolve(Intent{ColorFeeling: tc.feeling}, DefaultArchetype)
		if choices.ColorTriad != tc.want {
			t.Fatalf("color triad for %q = %q, want %q", tc.feeling, choices.ColorTriad, tc.want)
		}
	}
}

func TestResolveFacialStylePerArchetype(t *testing.T) {
	cases := []struct {
		archetype string
		want      string
	}{
		{"joyful_character_archetype", "dot_eyes_curved_smile"},
		{"melancholic_character_archetype", "closed_happy_eyes"},
		{"anxious_character_archetype", "worried_upturned_eyes"},
		{"sleepy_character_archetype", "closed_curved_eyes"},
		{"mischievous_character_archetype", "sparkle_mischievous_grin"},
		{"dreamy_character_archetype", "wide_dreamy_eyes"},
		{"determined_character_archetype", "focused_straight_gaze"},
		{"unrecognized_archetype", "dot_eyes_curved_smile"},
	}
	for _, tc := range cases {
		choices := Resolve(Intent{}, tc.archetype)
		if choices.FacialStyle != tc.want {
			t.Fatalf("facial style for %q = %q, want %q", tc.archetype, choices.FacialStyle, tc.want)
		}
	}
}

func TestResolveSizeCategoryChain(t *testing.T) {
	cases := []struct {
		size string
		want string
	}{
		{"pocket sized", "small_plush_toy"},
		{"small and delicate", "small_decorative"},
		{"medium", "medium_standard"},
		{"standard", "medium_standard"},
		{"large and prominent", "large_display"},
		{"", "medium_standard"},
		{"towering", "medium_standard"},
	}
	for _, tc := range cases {
		choices := Resolve(Intent{SizeImplication: tc.size}, DefaultArchetype)
		if choices.SizeCategory != tc.want {
			t.Fatalf("size category for %q = %q, want %q", tc.size, choices.SizeCategory, tc.want)
		}
	}
}

func TestResolveEmptyIntentUsesDocumentedFallbacks(t *testing.T) {
	choices := Resolve(Intent{}, DefaultArchetype)

	want := Choices{
		HeadShape:      "large_round_orb",
		BodyProportion: "balanced_cute_50_50",
		FacialStyle:    "dot_eyes_curved_smile",
		ColorTriad:     "soft_pink_lavender_mint",
		SizeCategory:   "medium_standard",
	}
	if choices != want {
		t.Fatalf("empty intent choices = %+v, want %+v", choices, want)
	}
}

// TestResolveClosure checks that every resolvable value is a member of its
// dimension's declared instance list, across a grid of cue-bearing intents.
func TestResolveClosure(t *testing.T) {
	catalog := loadCatalog(t)

	intents := []Intent{
		{},
		{WeightFeeling: "drooping, weighted", PrimaryShape: "drooping or curved"},
		{WeightFeeling: "soft", ColorFeeling: "ethereal", SizeImplication: "large"},
		{WeightFeeling: "limbless blob", PrimaryShape: "amorphous", ColorFeeling: "vivid"},
		{WeightFeeling: "top-heavy", PrimaryShape: "pointed", SizeImplication: "medium"},
		{WeightFeeling: "fluid", PrimaryShape: "wide", ColorFeeling: "nonsense", SizeImplication: "pocket"},
	}
	archetypes := append(catalog.Archetypes(), Rule{Name: "unrecognized_archetype"})

	for _, intent := range intents {
		for _, archetype := range archetypes {
			choices := Resolve(intent, archetype.Name)
			assertMember(t, catalog, DimensionHeadShape, choices.HeadShape)
			assertMember(t, catalog, DimensionBodyProportion, choices.BodyProportion)
			assertMember(t, catalog, DimensionFacialStyle, choices.FacialStyle)
			assertMember(t, catalog, DimensionColorTriad, choices.ColorTriad)
			assertMember(t, catalog, DimensionSizeCategory, choices.SizeCategory)
		}
	}
}

func assertMember(t *testing.T, catalog *Catalog, dimensionName, instance string) {
	t.Helper()
	dimension, ok := catalog.Dimension(dimensionName)
	if !ok {
		t.Fatalf("dimension %q missing", dimensionName)
	}
	if !dimension.Contains(instance) {
		t.Fatalf("instance %q is not declared by dimension %q", instance, dimensionName)
	}
}
