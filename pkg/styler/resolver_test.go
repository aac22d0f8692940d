package styler

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Hamish-Leahy/Prism-sub000/models"
	"github.com/Hamish-Leahy/Prism-sub000/pkg/cssparser"
)

func mustValue(t *testing.T, style models.ComputedStyle, prop string) models.StyleValue {
	t.Helper()
	v, ok := style[prop]
	if !ok {
		t.Fatalf("computed style missing %q", prop)
	}
	return v
}

func TestComputeCascade(t *testing.T) {
	sheet := cssparser.Parse(".a { color: red; } #b { color: blue; }", "")
	el := models.ElementDescriptor{TagName: "div", ID: "b", ClassList: []string{"a"}}

	style, err := Compute(sheet, el, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	got := mustValue(t, style, "color")
	if got.Value != "blue" {
		t.Errorf("color = %q, want %q", got.Value, "blue")
	}
	if got.Specificity != 100 {
		t.Errorf("specificity = %d, want 100", got.Specificity)
	}
	if got.Source != "#b" {
		t.Errorf("source = %q, want %q", got.Source, "#b")
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	sheet := cssparser.Parse(`
		p { color: red; margin: 1em; }
		.note { color: green !important; }
	`, "")
	el := models.ElementDescriptor{TagName: "p", ClassList: []string{"note"}}
	parent := models.ComputedStyle{"font-size": {Value: "20px", Source: "default"}}

	first, err := Compute(sheet, el, parent)
	if err != nil {
		t.Fatalf("first Compute: %v", err)
	}
	second, err := Compute(sheet, el, parent)
	if err != nil {
		t.Fatalf("second Compute: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Compute diverged:\nfirst  %v\nsecond %v", first, second)
	}
}

func TestMissingTagName(t *testing.T) {
	_, err := Compute(&models.Stylesheet{}, models.ElementDescriptor{ID: "x"}, nil)
	if !errors.Is(err, ErrMissingTagName) {
		t.Fatalf("err = %v, want ErrMissingTagName", err)
	}
}

func TestSpecificityOrdering(t *testing.T) {
	sheet := cssparser.Parse(`
		p { color: red; }
		p.note { color: green; }
		#lead { color: blue; }
	`, "")

	tests := []struct {
		name string
		el   models.ElementDescriptor
		want string
	}{
		{"element only", models.ElementDescriptor{TagName: "p"}, "red"},
		{"class beats element", models.ElementDescriptor{TagName: "p", ClassList: []string{"note"}}, "green"},
		{"id beats class", models.ElementDescriptor{TagName: "p", ID: "lead", ClassList: []string{"note"}}, "blue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, err := Compute(sheet, tt.el, nil)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			if got := mustValue(t, style, "color").Value; got != tt.want {
				t.Errorf("color = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpecificityBeatsSourceOrder(t *testing.T) {
	// The id rule comes first in the sheet but still wins.
	sheet := cssparser.Parse("#lead { color: blue; } p.note { color: green; }", "")
	el := models.ElementDescriptor{TagName: "p", ID: "lead", ClassList: []string{"note"}}

	style, err := Compute(sheet, el, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got := mustValue(t, style, "color").Value; got != "blue" {
		t.Errorf("color = %q, want %q", got, "blue")
	}
}

func TestImportantOverride(t *testing.T) {
	sheet := cssparser.Parse(".a { color: red !important; } #b { color: blue; }", "")
	el := models.ElementDescriptor{TagName: "div", ID: "b", ClassList: []string{"a"}}

	style, err := Compute(sheet, el, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	got := mustValue(t, style, "color")
	if got.Value != "red" {
		t.Errorf("color = %q, want %q (important beats specificity)", got.Value, "red")
	}
	if !got.Important {
		t.Error("winning value should keep its important flag")
	}
}

func TestImportantSpecificityTie(t *testing.T) {
	sheet := cssparser.Parse("#b { color: blue !important; } .a { color: red !important; }", "")
	el := models.ElementDescriptor{TagName: "div", ID: "b", ClassList: []string{"a"}}

	style, err := Compute(sheet, el, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// Both important: the higher-specificity one holds.
	if got := mustValue(t, style, "color").Value; got != "blue" {
		t.Errorf("color = %q, want %q", got, "blue")
	}
}

func TestEqualSpecificityLastWins(t *testing.T) {
	sheet := cssparser.Parse("p { color: red; } p { color: green; }", "")
	el := models.ElementDescriptor{TagName: "p"}

	style, err := Compute(sheet, el, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got := mustValue(t, style, "color").Value; got != "green" {
		t.Errorf("color = %q, want %q", got, "green")
	}
}

func TestInheritanceChain(t *testing.T) {
	sheet := cssparser.Parse("div { color: purple; }", "")

	root, err := Compute(sheet, models.ElementDescriptor{TagName: "div"}, nil)
	if err != nil {
		t.Fatalf("root Compute: %v", err)
	}
	child, err := Compute(sheet, models.ElementDescriptor{TagName: "span"}, root)
	if err != nil {
		t.Fatalf("child Compute: %v", err)
	}
	grandchild, err := Compute(sheet, models.ElementDescriptor{TagName: "b"}, child)
	if err != nil {
		t.Fatalf("grandchild Compute: %v", err)
	}

	for name, style := range map[string]models.ComputedStyle{"child": child, "grandchild": grandchild} {
		got := mustValue(t, style, "color")
		if got.Value != "purple" {
			t.Errorf("%s color = %q, want %q", name, got.Value, "purple")
		}
		if got.Source != "inherited" {
			t.Errorf("%s color source = %q, want %q", name, got.Source, "inherited")
		}
	}

	// background-color is not inherited: the child falls back to its default
	// even when the parent carries one.
	if got := mustValue(t, child, "background-color"); got.Source != "default" {
		t.Errorf("background-color source = %q, want %q", got.Source, "default")
	}
}

func TestDefaults(t *testing.T) {
	style, err := Compute(&models.Stylesheet{}, models.ElementDescriptor{TagName: "div"}, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	tests := []struct {
		prop string
		want string
	}{
		{"display", "block"},
		{"color", "#000000"},
		{"font-size", "16px"},
		{"margin", "0"},
		{"background-color", "transparent"},
	}
	for _, tt := range tests {
		got := mustValue(t, style, tt.prop)
		if got.Value != tt.want {
			t.Errorf("%s = %q, want %q", tt.prop, got.Value, tt.want)
		}
		if got.Source != "default" {
			t.Errorf("%s source = %q, want %q", tt.prop, got.Source, "default")
		}
	}
}

func TestVariableSubstitution(t *testing.T) {
	sheet := cssparser.Parse(`
		:root { --main: teal; --chain: var(--main); }
		p {
			color: var(--main);
			background-color: var(--missing, navy);
			border: var(--nope);
			outline: var(--chain);
		}
	`, "")
	el := models.ElementDescriptor{TagName: "p"}

	style, err := Compute(sheet, el, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	tests := []struct {
		prop string
		want string
	}{
		{"color", "teal"},
		{"background-color", "navy"},
		{"border", "var(--nope)"},
		// Substitution is single-pass: a variable holding another var()
		// reference is not chased.
		{"outline", "var(--main)"},
	}
	for _, tt := range tests {
		if got := mustValue(t, style, tt.prop).Value; got != tt.want {
			t.Errorf("%s = %q, want %q", tt.prop, got, tt.want)
		}
	}
}

func TestRelativeUnitRewrite(t *testing.T) {
	sheet := cssparser.Parse(`
		p {
			font-size: 2em;
			line-height: 1.5rem;
			width: 50%;
			margin: 10px;
		}
	`, "")
	el := models.ElementDescriptor{TagName: "p"}

	style, err := Compute(sheet, el, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	tests := []struct {
		prop string
		want string
	}{
		{"font-size", "32px"},
		{"line-height", "24px"},
		{"width", "8px"},
		{"margin", "10px"},
	}
	for _, tt := range tests {
		if got := mustValue(t, style, tt.prop).Value; got != tt.want {
			t.Errorf("%s = %q, want %q", tt.prop, got, tt.want)
		}
	}
}

func TestImportantMarkerStripped(t *testing.T) {
	sheet := cssparser.Parse("p { color: red !important; }", "")
	style, err := Compute(sheet, models.ElementDescriptor{TagName: "p"}, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	got := mustValue(t, style, "color")
	if got.Value != "red" {
		t.Errorf("color = %q, want the marker stripped to %q", got.Value, "red")
	}
	if !got.Important {
		t.Error("important flag should survive the value rewrite")
	}
}

func TestAttributeSelectorMatching(t *testing.T) {
	sheet := cssparser.Parse(`
		input[type=text] { color: green; }
		a[data-tags~="promo"] { color: orange; }
	`, "")

	tests := []struct {
		name string
		el   models.ElementDescriptor
		want string
	}{
		{
			"equals match",
			models.ElementDescriptor{TagName: "input", Attributes: map[string]string{"type": "text"}},
			"green",
		},
		{
			"equals mismatch falls to default",
			models.ElementDescriptor{TagName: "input", Attributes: map[string]string{"type": "email"}},
			"#000000",
		},
		{
			"word match",
			models.ElementDescriptor{TagName: "a", Attributes: map[string]string{"data-tags": "sale promo new"}},
			"orange",
		},
		{
			"substring is not a word match",
			models.ElementDescriptor{TagName: "a", Attributes: map[string]string{"data-tags": "promotion"}},
			"#000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, err := Compute(sheet, tt.el, nil)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			if got := mustValue(t, style, "color").Value; got != tt.want {
				t.Errorf("color = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMediaRulesDoNotApply(t *testing.T) {
	sheet := cssparser.Parse(`
		p { color: black; }
		@media print { p { color: gray; } }
	`, "")
	style, err := Compute(sheet, models.ElementDescriptor{TagName: "p"}, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got := mustValue(t, style, "color").Value; got != "black" {
		t.Errorf("color = %q, want %q", got, "black")
	}
}

func TestUniversalSelector(t *testing.T) {
	sheet := cssparser.Parse("* { cursor: pointer; }", "")
	style, err := Compute(sheet, models.ElementDescriptor{TagName: "td"}, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got := mustValue(t, style, "cursor").Value; got != "pointer" {
		t.Errorf("cursor = %q, want %q", got, "pointer")
	}
}
