package cssparser

import (
	"path"
	"regexp"
	"strings"

	"github.com/Hamish-Leahy/Prism-sub000/models"
	"github.com/Hamish-Leahy/Prism-sub000/pkg/urlresolver"
)

var (
	importRe   = regexp.MustCompile(`@import\s+(?:url\()?["']?([^"'()\s;]+)["']?\)?[^;]*;`)
	variableRe = regexp.MustCompile(`(--[A-Za-z][A-Za-z0-9_-]*):([^;}{]+)`)
	featureRe  = regexp.MustCompile(`\(([^:()]+)(?::([^()]*))?\)`)
)

type atBlock struct {
	header string
	body   string
}

// cutAtBlocks removes every "<atName> header { body }" block from css and
// returns the remainder plus the extracted blocks. Brace matching tolerates
// nested rule blocks; an unterminated block is dropped rather than failed.
func cutAtBlocks(css, atName string) (string, []atBlock) {
	var blocks []atBlock
	var out strings.Builder
	i := 0

	for {
		idx := strings.Index(css[i:], atName)
		if idx < 0 {
			out.WriteString(css[i:])
			break
		}
		idx += i

		open := strings.IndexByte(css[idx:], '{')
		if open < 0 {
			out.WriteString(css[i:idx])
			break
		}
		open += idx

		depth := 1
		j := open + 1
		for j < len(css) && depth > 0 {
			switch css[j] {
			case '{':
				depth++
			case '}':
				depth--
			}
			j++
		}
		if depth != 0 {
			out.WriteString(css[i:idx])
			break
		}

		out.WriteString(css[i:idx])
		blocks = append(blocks, atBlock{
			header: strings.TrimSpace(css[idx+len(atName) : open]),
			body:   css[open+1 : j-1],
		})
		i = j
	}

	return out.String(), blocks
}

// extractImports records @import targets with resolved URLs. Targets are not
// fetched or recursively parsed here; dereferencing is the fetch layer's
// job.
func extractImports(css, baseURL string) (string, []models.Import) {
	var imports []models.Import

	for _, m := range importRe.FindAllStringSubmatch(css, -1) {
		target := m[1]
		imports = append(imports, models.Import{
			URL:         target,
			AbsoluteURL: urlresolver.Resolve(target, baseURL),
			Type:        importType(target),
		})
	}

	return importRe.ReplaceAllString(css, ""), imports
}

func importType(target string) string {
	ext := strings.TrimPrefix(path.Ext(target), ".")
	if ext == "" {
		return "css"
	}
	return strings.ToLower(ext)
}

// extractMediaQueries lifts @media blocks out of the text. The query splits
// into (name: value) feature tests and bare media-type tokens; the nested
// body goes back through the flat rule extractor.
func extractMediaQueries(css, baseURL string) (string, []models.MediaQuery) {
	remaining, blocks := cutAtBlocks(css, "@media")

	var queries []models.MediaQuery
	for _, b := range blocks {
		mq := models.MediaQuery{
			Query: b.header,
			Rules: extractRules(b.body, ruleSource(baseURL)),
		}

		for _, f := range featureRe.FindAllStringSubmatch(b.header, -1) {
			mq.Features = append(mq.Features, models.MediaFeature{
				Name:  strings.TrimSpace(f[1]),
				Value: strings.TrimSpace(f[2]),
			})
		}

		bare := featureRe.ReplaceAllString(b.header, "")
		bare = strings.ReplaceAll(bare, ",", " ")
		for _, tok := range strings.Fields(bare) {
			switch strings.ToLower(tok) {
			case "and", "or", "not", "only":
				continue
			}
			mq.MediaTypes = append(mq.MediaTypes, strings.ToLower(tok))
		}

		queries = append(queries, mq)
	}

	return remaining, queries
}

// extractKeyframes lifts @keyframes blocks into Keyframe entries whose steps
// carry the percentage/from/to selector and its declarations.
func extractKeyframes(css string) (string, []models.Keyframe) {
	remaining, blocks := cutAtBlocks(css, "@keyframes")

	var keyframes []models.Keyframe
	for _, b := range blocks {
		kf := models.Keyframe{Name: b.header}
		for _, m := range ruleRe.FindAllStringSubmatch(b.body, -1) {
			selector := strings.TrimSpace(m[1])
			if selector == "" {
				continue
			}
			kf.Steps = append(kf.Steps, models.KeyframeStep{
				Selector:     selector,
				Declarations: parseDeclarations(m[2]),
			})
		}
		keyframes = append(keyframes, kf)
	}

	return remaining, keyframes
}

// extractVariables collects --name: value custom properties from anywhere in
// the text. Cascade scoping is not modeled; every variable reports scope
// "root".
func extractVariables(css string) []models.Variable {
	var vars []models.Variable
	for _, m := range variableRe.FindAllStringSubmatch(css, -1) {
		value := strings.TrimSpace(m[2])
		if value == "" {
			continue
		}
		vars = append(vars, models.Variable{
			Name:  m[1],
			Value: value,
			Scope: "root",
		})
	}
	return vars
}
