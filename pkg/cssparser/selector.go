package cssparser

import (
	"regexp"
	"strings"

	"github.com/Hamish-Leahy/Prism-sub000/models"
)

var (
	elementTokenRe = regexp.MustCompile(`(?:^|[\s>+~,])([A-Za-z][A-Za-z0-9_-]*)`)
	pseudoClassRe  = regexp.MustCompile(`(^|[^:]):([A-Za-z-]+)`)
	pseudoElemRe   = regexp.MustCompile(`::([A-Za-z-]+)`)
	attributeRe    = regexp.MustCompile(`\[([A-Za-z-][A-Za-z0-9_-]*)(?:([~|^$*]?=)["']?([^"'\]]*)["']?)?\]`)
)

// attributeOperators maps selector tokens to the operator names recorded on
// attribute predicates. A bare "=" (or no operator at all) is "equals".
var attributeOperators = map[string]string{
	"=":  "equals",
	"~=": "contains",
	"|=": "starts_with",
	"^=": "prefix",
	"$=": "suffix",
	"*=": "substring",
}

// parseSelector classifies one comma-free selector and scrapes its
// specificity and metadata from the raw text.
func parseSelector(raw string) models.Selector {
	sel := models.Selector{
		Raw:         raw,
		Type:        classifySelector(raw),
		Specificity: selectorSpecificity(raw),
	}

	for _, m := range pseudoClassRe.FindAllStringSubmatch(raw, -1) {
		sel.PseudoClasses = append(sel.PseudoClasses, m[2])
	}
	for _, m := range pseudoElemRe.FindAllStringSubmatch(raw, -1) {
		sel.PseudoElements = append(sel.PseudoElements, m[1])
	}

	for _, m := range attributeRe.FindAllStringSubmatch(raw, -1) {
		op := attributeOperators[m[2]]
		if op == "" {
			op = "equals"
		}
		sel.Attributes = append(sel.Attributes, models.AttributeSelector{
			Name:     m[1],
			Value:    m[3],
			Operator: op,
		})
	}

	sel.Combinators = detectCombinators(raw)
	return sel
}

// classifySelector buckets a selector by first-match priority: leading "#"
// is id, leading "." is class, a leading letter is element, then attribute,
// then pseudo, else universal. Compound selectors such as "div.active"
// classify as "element" because the tag check runs first; that behavior is
// pinned and relied on elsewhere.
func classifySelector(raw string) string {
	switch {
	case strings.HasPrefix(raw, "#"):
		return "id"
	case strings.HasPrefix(raw, "."):
		return "class"
	case len(raw) > 0 && isLetter(raw[0]):
		return "element"
	case strings.Contains(raw, "["):
		return "attribute"
	case strings.Contains(raw, ":"):
		return "pseudo"
	default:
		return "universal"
	}
}

// selectorSpecificity counts "#" occurrences as ids, "." and "[" as
// class/attribute, and bare tag-name tokens as elements. This is the
// simplified text count, not per-spec simple-selector analysis.
func selectorSpecificity(raw string) models.Specificity {
	return models.Specificity{
		IDs:      strings.Count(raw, "#"),
		Classes:  strings.Count(raw, ".") + strings.Count(raw, "["),
		Elements: len(elementTokenRe.FindAllString(raw, -1)),
	}
}

// detectCombinators reports which combinators appear anywhere in the
// selector, by character presence.
func detectCombinators(raw string) []string {
	var combinators []string
	if strings.Contains(strings.TrimSpace(raw), " ") {
		combinators = append(combinators, "descendant")
	}
	if strings.Contains(raw, ">") {
		combinators = append(combinators, "child")
	}
	if strings.Contains(raw, "+") {
		combinators = append(combinators, "adjacent_sibling")
	}
	if strings.Contains(raw, "~") {
		combinators = append(combinators, "general_sibling")
	}
	return combinators
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
