// Package styler computes per-element styles from a parsed stylesheet via
// cascade, inheritance and defaulting.
//
// Matching is selector-text scraping, single-level and non-structural:
// combinators recorded by the CSS parser are not enforced here, so "div p"
// matches any element its rightmost pieces describe. That limitation is
// pinned behavior; upgrading it would silently change observable results.
package styler

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Hamish-Leahy/Prism-sub000/models"
)

// ErrMissingTagName reports an ElementDescriptor without a tag name. This is
// caller misuse, not input noise, so it surfaces instead of degrading.
var ErrMissingTagName = errors.New("element descriptor missing tag name")

// inheritedProperties is the fixed set that falls back to the parent's
// resolved value when unset.
var inheritedProperties = []string{
	"color",
	"font-family",
	"font-size",
	"font-weight",
	"font-style",
	"line-height",
	"text-align",
	"text-decoration",
	"text-transform",
	"letter-spacing",
	"word-spacing",
	"visibility",
	"cursor",
}

// defaultStyles supplies values for properties that neither the cascade nor
// inheritance filled in. They apply at specificity zero with source
// "default".
var defaultStyles = map[string]string{
	"display":          "block",
	"position":         "static",
	"float":            "none",
	"clear":            "none",
	"visibility":       "visible",
	"overflow":         "visible",
	"z-index":          "auto",
	"width":            "auto",
	"height":           "auto",
	"margin":           "0",
	"padding":          "0",
	"border":           "none",
	"color":            "#000000",
	"background-color": "transparent",
	"font-family":      "sans-serif",
	"font-size":        "16px",
	"font-weight":      "normal",
	"font-style":       "normal",
	"line-height":      "normal",
	"text-align":       "left",
	"text-decoration":  "none",
	"text-transform":   "none",
	"letter-spacing":   "normal",
	"word-spacing":     "normal",
	"cursor":           "auto",
	"opacity":          "1",
}

// Compute resolves the final style for one element. parent is the element's
// parent's already-computed style (nil for the root). The result is
// deterministic for identical inputs and independent of any parser state.
func Compute(sheet *models.Stylesheet, el models.ElementDescriptor, parent models.ComputedStyle) (models.ComputedStyle, error) {
	if strings.TrimSpace(el.TagName) == "" {
		return nil, fmt.Errorf("compute style for %q: %w", el.ID, ErrMissingTagName)
	}

	computed := models.ComputedStyle{}

	if sheet != nil {
		for _, rule := range sheet.Rules {
			sel, ok := matchRule(rule, el)
			if !ok {
				continue
			}
			weight := rule.Specificity.Weight()
			for _, decl := range rule.Declarations {
				applyDeclaration(computed, decl, weight, sel.Raw)
			}
		}
	}

	for _, prop := range inheritedProperties {
		if _, ok := computed[prop]; ok {
			continue
		}
		if pv, ok := parent[prop]; ok {
			computed[prop] = models.StyleValue{Value: pv.Value, Source: "inherited"}
		}
	}

	for prop, def := range defaultStyles {
		if _, ok := computed[prop]; !ok {
			computed[prop] = models.StyleValue{Value: def, Source: "default"}
		}
	}

	var variables map[string]string
	if sheet != nil {
		variables = sheet.VariableMap()
	}
	for prop, v := range computed {
		v.Value = postProcessValue(v.Value, variables)
		computed[prop] = v
	}

	return computed, nil
}

// applyDeclaration installs decl as the property winner when the cascade
// says so: no winner yet, an !important declaration not already beaten by a
// higher-specificity !important winner, or strictly greater specificity.
// Equal specificity and importance means last-applied wins.
func applyDeclaration(computed models.ComputedStyle, decl models.Declaration, weight int, source string) {
	next := models.StyleValue{
		Value:       decl.Value,
		Important:   decl.Important,
		Specificity: weight,
		Source:      source,
	}

	current, ok := computed[decl.Property]
	if !ok {
		computed[decl.Property] = next
		return
	}

	if decl.Important {
		if current.Important && current.Specificity > weight {
			return
		}
		computed[decl.Property] = next
		return
	}
	if current.Important {
		return
	}
	if weight >= current.Specificity {
		computed[decl.Property] = next
	}
}

// matchRule reports whether any of the rule's selectors matches the element
// and returns the first one that does.
func matchRule(rule models.Rule, el models.ElementDescriptor) (models.Selector, bool) {
	for _, sel := range rule.Selectors {
		if selectorMatches(sel, el) {
			return sel, true
		}
	}
	return models.Selector{}, false
}

var (
	leadingTagRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*`)
	idTokenRe    = regexp.MustCompile(`#([A-Za-z0-9_-]+)`)
	classTokenRe = regexp.MustCompile(`\.([A-Za-z0-9_-]+)`)
)

// selectorMatches checks the pieces scraped from the selector text: the
// leading tag name, the first #id token, the first .class token and every
// attribute predicate. Pseudo-classes and combinators are ignored.
func selectorMatches(sel models.Selector, el models.ElementDescriptor) bool {
	raw := strings.TrimSpace(sel.Raw)
	if raw == "" {
		return false
	}
	if raw == "*" {
		return true
	}

	if tag := leadingTagRe.FindString(raw); tag != "" {
		if !strings.EqualFold(tag, el.TagName) {
			return false
		}
	}

	if m := idTokenRe.FindStringSubmatch(raw); m != nil {
		if m[1] != el.ID {
			return false
		}
	}

	if m := classTokenRe.FindStringSubmatch(raw); m != nil {
		if !el.HasClass(m[1]) {
			return false
		}
	}

	for _, attr := range sel.Attributes {
		if !attributeMatches(attr, el) {
			return false
		}
	}

	return true
}

func attributeMatches(attr models.AttributeSelector, el models.ElementDescriptor) bool {
	actual, ok := el.Attr(attr.Name)
	if !ok {
		return false
	}
	if attr.Value == "" {
		return true
	}

	switch attr.Operator {
	case "contains":
		for _, word := range strings.Fields(actual) {
			if word == attr.Value {
				return true
			}
		}
		return false
	case "starts_with":
		return actual == attr.Value || strings.HasPrefix(actual, attr.Value+"-")
	case "prefix":
		return strings.HasPrefix(actual, attr.Value)
	case "suffix":
		return strings.HasSuffix(actual, attr.Value)
	case "substring":
		return strings.Contains(actual, attr.Value)
	default: // equals
		return actual == attr.Value
	}
}

var (
	varRefRe      = regexp.MustCompile(`var\((--[A-Za-z0-9_-]+)(?:,([^)]*))?\)`)
	relativeNumRe = regexp.MustCompile(`^(-?\d*\.?\d+)(em|rem|%)$`)
)

// postProcessValue strips the !important marker, substitutes var()
// references once (non-recursively) and rewrites relative units to a coarse
// px approximation against a 16px base. This is explicitly not true unit
// conversion.
func postProcessValue(value string, variables map[string]string) string {
	value = strings.TrimSpace(strings.ReplaceAll(value, "!important", ""))

	value = varRefRe.ReplaceAllStringFunc(value, func(ref string) string {
		m := varRefRe.FindStringSubmatch(ref)
		if v, ok := variables[m[1]]; ok {
			return v
		}
		if fallback := strings.TrimSpace(m[2]); fallback != "" {
			return fallback
		}
		return ref
	})

	if m := relativeNumRe.FindStringSubmatch(value); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			switch m[2] {
			case "em", "rem":
				n *= 16
			case "%":
				n = n / 100 * 16
			}
			return strconv.FormatFloat(n, 'f', -1, 64) + "px"
		}
	}

	return value
}
