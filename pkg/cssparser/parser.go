// Package cssparser parses raw CSS text into a Stylesheet model.
//
// The parser is a flat, regex-driven scan rather than a spec-grade CSS
// engine: malformed fragments are excluded from the result, never failed.
// Selector handling keeps deliberate simplifications (documented on the
// classify and specificity functions) that downstream style resolution
// depends on.
package cssparser

import (
	"regexp"
	"strings"

	"github.com/Hamish-Leahy/Prism-sub000/models"
)

var (
	commentRe    = regexp.MustCompile(`(?s)/\*.*?\*/`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	tightenRe    = regexp.MustCompile(`\s*([{}:;,>+~])\s*`)
	ruleRe       = regexp.MustCompile(`([^{}]+)\{([^{}]*)\}`)
)

// Parse turns CSS text into a Stylesheet. It never fails: fragments the
// scanner cannot place are left out of the result.
func Parse(css, baseURL string) *models.Stylesheet {
	sheet := &models.Stylesheet{SourceURL: baseURL}

	pre := preprocess(css)

	sheet.Variables = extractVariables(pre)

	pre, sheet.Imports = extractImports(pre, baseURL)
	pre, sheet.MediaQueries = extractMediaQueries(pre, baseURL)
	pre, sheet.Keyframes = extractKeyframes(pre)

	sheet.Rules = extractRules(pre, ruleSource(baseURL))

	sheet.Stats = computeStats(sheet)
	return sheet
}

// preprocess normalizes line endings, strips comments, collapses whitespace
// runs and tightens spacing around CSS punctuation. Descendant-combinator
// spaces between simple selectors survive as single spaces.
func preprocess(css string) string {
	out := strings.ReplaceAll(css, "\r\n", "\n")
	out = strings.ReplaceAll(out, "\r", "\n")
	out = commentRe.ReplaceAllString(out, "")
	out = whitespaceRe.ReplaceAllString(out, " ")
	out = tightenRe.ReplaceAllString(out, "$1")
	return strings.TrimSpace(out)
}

func ruleSource(baseURL string) string {
	if baseURL == "" {
		return "inline"
	}
	return baseURL
}

// extractRules runs the flat selector-list{declarations} scan. At-rule
// fragments that survived block extraction are excluded here.
func extractRules(css, source string) []models.Rule {
	var rules []models.Rule

	for _, m := range ruleRe.FindAllStringSubmatch(css, -1) {
		selectorText := strings.TrimSpace(m[1])
		if selectorText == "" || strings.HasPrefix(selectorText, "@") {
			continue
		}

		rule := models.Rule{
			Declarations: parseDeclarations(m[2]),
			Source:       source,
		}
		for _, raw := range strings.Split(selectorText, ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			sel := parseSelector(raw)
			rule.Specificity = rule.Specificity.Max(sel.Specificity)
			rule.Selectors = append(rule.Selectors, sel)
		}
		if len(rule.Selectors) == 0 {
			continue
		}
		rules = append(rules, rule)
	}

	return rules
}

// parseDeclarations splits a declaration block on semicolons into
// property/value pairs. The !important marker stays in the value text; only
// the flag is lifted out here.
func parseDeclarations(body string) []models.Declaration {
	var decls []models.Declaration

	for _, chunk := range strings.Split(body, ";") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		parts := strings.SplitN(chunk, ":", 2)
		if len(parts) != 2 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if prop == "" || value == "" {
			continue
		}

		decls = append(decls, models.Declaration{
			Property:  prop,
			Value:     value,
			Important: strings.Contains(value, "!important"),
			Type:      propertyType(prop),
			Shorthand: isShorthand(prop),
		})
	}

	return decls
}
