package models

import "strings"

// ElementDescriptor is the minimal element shape the style resolver works
// from. Callers holding a richer DOM representation map their nodes down to
// this before asking for a computed style.
type ElementDescriptor struct {
	TagName    string            `json:"tag_name" yaml:"tag_name"`
	ID         string            `json:"id,omitempty" yaml:"id,omitempty"`
	ClassList  []string          `json:"class_list,omitempty" yaml:"class_list,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// HasClass reports whether the element carries the given class.
func (e ElementDescriptor) HasClass(name string) bool {
	for _, c := range e.ClassList {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// Attr returns an attribute value and whether it is present. The id and
// class attributes are answered from the dedicated fields as well.
func (e ElementDescriptor) Attr(name string) (string, bool) {
	if v, ok := e.Attributes[name]; ok {
		return v, true
	}
	switch name {
	case "id":
		if e.ID != "" {
			return e.ID, true
		}
	case "class":
		if len(e.ClassList) > 0 {
			return strings.Join(e.ClassList, " "), true
		}
	}
	return "", false
}

// StyleValue is the winning cascade entry for one property.
type StyleValue struct {
	Value       string `json:"value" yaml:"value"`
	Important   bool   `json:"important,omitempty" yaml:"important,omitempty"`
	Specificity int    `json:"specificity" yaml:"specificity"` // collapsed weight
	Source      string `json:"source" yaml:"source"`           // winning selector, "inherited" or "default"
}

// ComputedStyle is the final property map for one element after cascade,
// inheritance and defaulting.
type ComputedStyle map[string]StyleValue

// Values collapses the computed style to a plain property→value map for
// consumers that do not care about cascade provenance.
func (cs ComputedStyle) Values() map[string]string {
	out := make(map[string]string, len(cs))
	for prop, v := range cs {
		out[prop] = v.Value
	}
	return out
}
