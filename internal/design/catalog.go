package design

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Document names inside a specification directory.
const (
	AestheticDocument      = "mascot.olog.yaml"
	IntentionalityDocument = "mascot_intentionality.olog.yaml"
)

// Taxonomy dimension names the resolver depends on.
const (
	DimensionHeadShape      = "HeadShape"
	DimensionBodyProportion = "BodyProportion"
	DimensionFacialStyle    = "FacialStyle"
	DimensionColorTriad     = "ColorTriad"
	DimensionSizeCategory   = "SizeCategory"
)

// DefaultArchetype is the classification fallback. The catalogue must declare
// it; load fails otherwise.
const DefaultArchetype = "joyful_character_archetype"

//go:embed data/mascot.olog.yaml data/mascot_intentionality.olog.yaml
var embeddedDocs embed.FS

// Dimension is one design axis with its closed, ordered instance set.
type Dimension struct {
	Name        string
	Description string
	Instances   []string
	Properties  map[string]any

	instanceSet map[string]struct{}
}

// Contains reports whether the instance id belongs to this dimension.
func (d Dimension) Contains(instance string) bool {
	_, ok := d.instanceSet[instance]
	return ok
}

// Default returns the dimension's documented default instance, falling back
// to the first declared instance.
func (d Dimension) Default() string {
	if value, ok := d.Properties["default"].(string); ok && value != "" {
		return value
	}
	return d.Instances[0]
}

// Rule is one emotional archetype with its keywords and design reasoning.
type Rule struct {
	Name                  string
	CoreIntention         string
	CompositionPrinciple  string
	WhyThisWorks          string
	SensoryPrinciples     []string
	ProportionRules       map[string]string
	Keywords              []string
	ForbiddenCombinations []string
	Examples              []string
}

// Catalog holds the loaded taxonomy and archetype catalogue. It is immutable
// after Load and safe for concurrent readers.
type Catalog struct {
	dimensions     map[string]Dimension
	dimensionOrder []string
	archetypes     map[string]Rule
	archetypeOrder []string
}

// LoadEmbedded loads the specification documents shipped with the binary.
func LoadEmbedded() (*Catalog, error) {
	sub, err := fs.Sub(embeddedDocs, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded documents: %w", err)
	}
	return Load(sub)
}

// Load reads and validates both specification documents from fsys. Loading is
// eager and total: any invariant violation fails the load so no partially
// valid catalog is ever served.
func Load(fsys fs.FS) (*Catalog, error) {
	catalog := &Catalog{
		dimensions: map[string]Dimension{},
		archetypes: map[string]Rule{},
	}

	if err := catalog.loadTaxonomy(fsys); err != nil {
		return nil, err
	}
	if err := catalog.loadArchetypes(fsys); err != nil {
		return nil, err
	}
	if err := validateRuleTargets(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Dimension returns one taxonomy dimension by name.
func (c *Catalog) Dimension(name string) (Dimension, bool) {
	dimension, ok := c.dimensions[name]
	return dimension, ok
}

// Dimensions returns all dimensions in document declaration order.
func (c *Catalog) Dimensions() []Dimension {
	dimensions := make([]Dimension, 0, len(c.dimensionOrder))
	for _, name := range c.dimensionOrder {
		dimensions = append(dimensions, c.dimensions[name])
	}
	return dimensions
}

// Archetype returns one archetype rule by name.
func (c *Catalog) Archetype(name string) (Rule, bool) {
	rule, ok := c.archetypes[name]
	return rule, ok
}

// Archetypes returns all archetype rules in catalogue declaration order.
// The order is load-bearing: classification precedence follows it.
func (c *Catalog) Archetypes() []Rule {
	rules := make([]Rule, 0, len(c.archetypeOrder))
	for _, name := range c.archetypeOrder {
		rules = append(rules, c.archetypes[name])
	}
	return rules
}

type ologDocument struct {
	Olog struct {
		Name        string    `yaml:"name"`
		Description string    `yaml:"description"`
		Types       yaml.Node `yaml:"types"`
		Instances   yaml.Node `yaml:"instances"`
	} `yaml:"olog"`
}

type dimensionDoc struct {
	Description string         `yaml:"description"`
	Instances   []string       `yaml:"instances"`
	Properties  map[string]any `yaml:"properties"`
}

type archetypeDoc struct {
	CoreIntention         string            `yaml:"core_intention"`
	CompositionPrinciple  string            `yaml:"composition_principle"`
	WhyThisWorks          string            `yaml:"why_this_works"`
	SensoryPrinciples     []string          `yaml:"sensory_principles"`
	ProportionRules       map[string]string `yaml:"proportion_rules"`
	DesignIntentKeywords  []string          `yaml:"design_intent_keywords"`
	ForbiddenCombinations []string          `yaml:"forbidden_combinations"`
	Examples              []string          `yaml:"examples"`
}

func readDocument(fsys fs.FS, name string) (ologDocument, error) {
	var doc ologDocument
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return doc, fmt.Errorf("%w: read %s: %v", ErrMalformedSpecification, name, err)
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("%w: parse %s: %v", ErrMalformedSpecification, name, err)
	}
	return doc, nil
}

// mappingPairs returns the key/value node pairs of a YAML mapping in document
// order. Order matters here: dimension declaration order drives rationale
// ordering and catalogue order drives classification precedence.
func mappingPairs(node yaml.Node, document, section string) ([]*yaml.Node, error) {
	if node.Kind == 0 || node.IsZero() {
		return nil, fmt.Errorf("%w: %s is missing required section %q", ErrMalformedSpecification, document, section)
	}
	if node.Kind != yaml.MappingNode || len(node.Content) == 0 {
		return nil, fmt.Errorf("%w: %s section %q is not a non-empty mapping", ErrMalformedSpecification, document, section)
	}
	return node.Content, nil
}

func (c *Catalog) loadTaxonomy(fsys fs.FS) error {
	doc, err := readDocument(fsys, AestheticDocument)
	if err != nil {
		return err
	}

	pairs, err := mappingPairs(doc.Olog.Types, AestheticDocument, "types")
	if err != nil {
		return err
	}

	for i := 0; i+1 < len(pairs); i += 2 {
		name := pairs[i].Value
		var entry dimensionDoc
		if err := pairs[i+1].Decode(&entry); err != nil {
			return fmt.Errorf("%w: decode dimension %q: %v", ErrMalformedSpecification, name, err)
		}
		if len(entry.Instances) == 0 {
			return fmt.Errorf("%w: dimension %q declares no instances", ErrInvalidTaxonomyEntry, name)
		}
		instanceSet := make(map[string]struct{}, len(entry.Instances))
		for _, instance := range entry.Instances {
			if instance == "" {
				return fmt.Errorf("%w: dimension %q declares an empty instance id", ErrInvalidTaxonomyEntry, name)
			}
			if _, dup := instanceSet[instance]; dup {
				return fmt.Errorf("%w: dimension %q declares duplicate instance %q", ErrInvalidTaxonomyEntry, name, instance)
			}
			instanceSet[instance] = struct{}{}
		}
		dimension := Dimension{
			Name:        name,
			Description: entry.Description,
			Instances:   entry.Instances,
			Properties:  entry.Properties,
			instanceSet: instanceSet,
		}
		if !dimension.Contains(dimension.Default()) {
			return fmt.Errorf("%w: dimension %q default %q is not a declared instance", ErrInvalidTaxonomyEntry, name, dimension.Default())
		}
		c.dimensions[name] = dimension
		c.dimensionOrder = append(c.dimensionOrder, name)
	}

	for _, required := range []string{
		DimensionHeadShape,
		DimensionBodyProportion,
		DimensionFacialStyle,
		DimensionColorTriad,
		DimensionSizeCategory,
	} {
		if _, ok := c.dimensions[required]; !ok {
			return fmt.Errorf("%w: %s is missing dimension %q", ErrMalformedSpecification, AestheticDocument, required)
		}
	}
	return nil
}

func (c *Catalog) loadArchetypes(fsys fs.FS) error {
	doc, err := readDocument(fsys, IntentionalityDocument)
	if err != nil {
		return err
	}

	pairs, err := mappingPairs(doc.Olog.Instances, IntentionalityDocument, "instances")
	if err != nil {
		return err
	}

	for i := 0; i+1 < len(pairs); i += 2 {
		name := pairs[i].Value
		var entry archetypeDoc
		if err := pairs[i+1].Decode(&entry); err != nil {
			return fmt.Errorf("%w: decode archetype %q: %v", ErrMalformedSpecification, name, err)
		}
		if len(entry.DesignIntentKeywords) == 0 && name != DefaultArchetype {
			return fmt.Errorf("%w: archetype %q declares no keywords", ErrMalformedSpecification, name)
		}
		c.archetypes[name] = Rule{
			Name:                  name,
			CoreIntention:         entry.CoreIntention,
			CompositionPrinciple:  entry.CompositionPrinciple,
			WhyThisWorks:          entry.WhyThisWorks,
			SensoryPrinciples:     entry.SensoryPrinciples,
			ProportionRules:       entry.ProportionRules,
			Keywords:              entry.DesignIntentKeywords,
			ForbiddenCombinations: entry.ForbiddenCombinations,
			Examples:              entry.Examples,
		}
		c.archetypeOrder = append(c.archetypeOrder, name)
	}

	if _, ok := c.archetypes[DefaultArchetype]; !ok {
		return fmt.Errorf("%w: %s does not declare default archetype %q", ErrMalformedSpecification, IntentionalityDocument, DefaultArchetype)
	}
	return nil
}
