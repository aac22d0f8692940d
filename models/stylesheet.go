package models

// Specificity is the (id, class+attribute, element) selector precedence
// triple. A rule's specificity is the component-wise max over its
// comma-separated selectors.
type Specificity struct {
	IDs      int `json:"ids" yaml:"ids"`
	Classes  int `json:"classes" yaml:"classes"`
	Elements int `json:"elements" yaml:"elements"`
}

// Weight collapses the triple into the single cascade comparison value.
func (s Specificity) Weight() int {
	return s.IDs*100 + s.Classes*10 + s.Elements
}

// Max returns the component-wise maximum of two specificities.
func (s Specificity) Max(o Specificity) Specificity {
	if o.IDs > s.IDs {
		s.IDs = o.IDs
	}
	if o.Classes > s.Classes {
		s.Classes = o.Classes
	}
	if o.Elements > s.Elements {
		s.Elements = o.Elements
	}
	return s
}

// Stylesheet is the parsed form of one CSS text. Produced fresh per parse
// call and never mutated afterward.
type Stylesheet struct {
	SourceURL    string          `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	Rules        []Rule          `json:"rules,omitempty" yaml:"rules,omitempty"`
	MediaQueries []MediaQuery    `json:"media_queries,omitempty" yaml:"media_queries,omitempty"`
	Keyframes    []Keyframe      `json:"keyframes,omitempty" yaml:"keyframes,omitempty"`
	Variables    []Variable      `json:"variables,omitempty" yaml:"variables,omitempty"`
	Imports      []Import        `json:"imports,omitempty" yaml:"imports,omitempty"`
	Stats        StylesheetStats `json:"stats" yaml:"stats"`
}

// VariableMap indexes the stylesheet's custom properties by name
// (including the leading dashes).
func (ss *Stylesheet) VariableMap() map[string]string {
	m := make(map[string]string, len(ss.Variables))
	for _, v := range ss.Variables {
		m[v.Name] = v.Value
	}
	return m
}

type Rule struct {
	Selectors    []Selector    `json:"selectors" yaml:"selectors"`
	Declarations []Declaration `json:"declarations" yaml:"declarations"`
	Specificity  Specificity   `json:"specificity" yaml:"specificity"`
	Source       string        `json:"source,omitempty" yaml:"source,omitempty"`
}

type Selector struct {
	Raw            string              `json:"raw" yaml:"raw"`
	Type           string              `json:"type" yaml:"type"` // id, class, element, attribute, pseudo, universal
	Specificity    Specificity         `json:"specificity" yaml:"specificity"`
	PseudoClasses  []string            `json:"pseudo_classes,omitempty" yaml:"pseudo_classes,omitempty"`
	PseudoElements []string            `json:"pseudo_elements,omitempty" yaml:"pseudo_elements,omitempty"`
	Attributes     []AttributeSelector `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Combinators    []string            `json:"combinators,omitempty" yaml:"combinators,omitempty"`
}

type AttributeSelector struct {
	Name     string `json:"name" yaml:"name"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
	Operator string `json:"operator" yaml:"operator"` // equals, contains, starts_with, prefix, suffix, substring
}

type Declaration struct {
	Property  string `json:"property" yaml:"property"`
	Value     string `json:"value" yaml:"value"`
	Important bool   `json:"important,omitempty" yaml:"important,omitempty"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	Shorthand bool   `json:"shorthand,omitempty" yaml:"shorthand,omitempty"`
}

type MediaQuery struct {
	Query      string         `json:"query" yaml:"query"`
	Features   []MediaFeature `json:"features,omitempty" yaml:"features,omitempty"`
	MediaTypes []string       `json:"media_types,omitempty" yaml:"media_types,omitempty"`
	Rules      []Rule         `json:"rules,omitempty" yaml:"rules,omitempty"`
}

type MediaFeature struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

type Keyframe struct {
	Name  string         `json:"name" yaml:"name"`
	Steps []KeyframeStep `json:"steps,omitempty" yaml:"steps,omitempty"`
}

type KeyframeStep struct {
	Selector     string        `json:"selector" yaml:"selector"` // percentage, from, to
	Declarations []Declaration `json:"declarations,omitempty" yaml:"declarations,omitempty"`
}

type Variable struct {
	Name  string `json:"name" yaml:"name"` // includes the leading dashes
	Value string `json:"value" yaml:"value"`
	Scope string `json:"scope" yaml:"scope"` // always "root"; cascade scoping is not modeled
}

type Import struct {
	URL         string `json:"url" yaml:"url"`
	AbsoluteURL string `json:"absolute_url" yaml:"absolute_url"`
	Type        string `json:"type" yaml:"type"` // from the target's extension
}

type StylesheetStats struct {
	RuleCount          int            `json:"rule_count" yaml:"rule_count"`
	SelectorCount      int            `json:"selector_count" yaml:"selector_count"`
	DeclarationCount   int            `json:"declaration_count" yaml:"declaration_count"`
	PropertyUsage      map[string]int `json:"property_usage,omitempty" yaml:"property_usage,omitempty"`
	SelectorTypes      map[string]int `json:"selector_types,omitempty" yaml:"selector_types,omitempty"`
	SpecificityBuckets map[string]int `json:"specificity_buckets,omitempty" yaml:"specificity_buckets,omitempty"`
}
