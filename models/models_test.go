package models

import "testing"

func TestSpecificityWeight(t *testing.T) {
	tests := []struct {
		s    Specificity
		want int
	}{
		{Specificity{}, 0},
		{Specificity{Elements: 1}, 1},
		{Specificity{Classes: 1}, 10},
		{Specificity{IDs: 1}, 100},
		{Specificity{IDs: 2, Classes: 3, Elements: 4}, 234},
	}
	for _, tt := range tests {
		if got := tt.s.Weight(); got != tt.want {
			t.Errorf("Weight(%+v) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestSpecificityMax(t *testing.T) {
	a := Specificity{IDs: 1, Elements: 2}
	b := Specificity{Classes: 3, Elements: 1}

	got := a.Max(b)
	want := Specificity{IDs: 1, Classes: 3, Elements: 2}
	if got != want {
		t.Errorf("Max = %+v, want %+v", got, want)
	}
}

func TestElementDescriptorHasClass(t *testing.T) {
	el := ElementDescriptor{TagName: "div", ClassList: []string{"Nav", "active"}}

	if !el.HasClass("nav") {
		t.Error("class match should be case-insensitive")
	}
	if el.HasClass("missing") {
		t.Error("absent class reported present")
	}
}

func TestElementDescriptorAttr(t *testing.T) {
	el := ElementDescriptor{
		TagName:    "input",
		ID:         "q",
		ClassList:  []string{"a", "b"},
		Attributes: map[string]string{"type": "text"},
	}

	if v, ok := el.Attr("type"); !ok || v != "text" {
		t.Errorf("Attr(type) = %q, %v", v, ok)
	}
	// id and class are answered from the dedicated fields.
	if v, ok := el.Attr("id"); !ok || v != "q" {
		t.Errorf("Attr(id) = %q, %v", v, ok)
	}
	if v, ok := el.Attr("class"); !ok || v != "a b" {
		t.Errorf("Attr(class) = %q, %v", v, ok)
	}
	if _, ok := el.Attr("name"); ok {
		t.Error("absent attribute reported present")
	}
}

func TestVariableMap(t *testing.T) {
	sheet := &Stylesheet{Variables: []Variable{
		{Name: "--main", Value: "teal", Scope: "root"},
		{Name: "--gap", Value: "8px", Scope: "root"},
	}}

	m := sheet.VariableMap()
	if len(m) != 2 || m["--main"] != "teal" || m["--gap"] != "8px" {
		t.Errorf("VariableMap = %v", m)
	}
}

func TestComputedStyleValues(t *testing.T) {
	cs := ComputedStyle{
		"color":   {Value: "red", Specificity: 10, Source: ".a"},
		"display": {Value: "block", Source: "default"},
	}

	got := cs.Values()
	if len(got) != 2 || got["color"] != "red" || got["display"] != "block" {
		t.Errorf("Values = %v", got)
	}
}
