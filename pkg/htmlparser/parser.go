// Package htmlparser extracts a structured DocumentModel from raw HTML.
//
// Parsing is maximally tolerant: malformed markup degrades the extraction
// but never fails it. The parser performs no network I/O; the caller supplies
// the page text and the final (post-redirect) URL to resolve references
// against.
package htmlparser

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Hamish-Leahy/Prism-sub000/models"
	"github.com/Hamish-Leahy/Prism-sub000/pkg/analytics"
)

// Options tunes optional extraction passes.
type Options struct {
	// Readability runs the go-readability main-content pass and attaches
	// its enrichment to the model.
	Readability bool
	// Keywords, when positive, mines the top-N stopword-filtered content
	// words into ContentInfo.TopKeywords.
	Keywords int
	// CollapseWhitespace squeezes horizontal whitespace runs in the input
	// before parsing.
	CollapseWhitespace bool
	// DetectLanguage enables the language-detection fallback for documents
	// without an html[lang] attribute.
	DetectLanguage bool
}

var (
	doctypeRe   = regexp.MustCompile(`(?i)<!doctype`)
	voidCloseRe = regexp.MustCompile(`(?i)<(area|base|br|col|embed|hr|img|input|link|meta|param|source|track|wbr)(\b[^>]*?)\s*/>`)
	hspaceRunRe = regexp.MustCompile(`[ \t]{2,}`)
)

const wordsPerMinute = 200.0

// Parse extracts a DocumentModel from raw HTML with default options.
func Parse(rawHTML, baseURL string) *models.DocumentModel {
	return ParseWithOptions(rawHTML, baseURL, Options{DetectLanguage: true})
}

// ParseWithOptions extracts a DocumentModel from raw HTML. Invalid markup
// degrades the result; a truly unusable input yields an empty but valid
// model.
func ParseWithOptions(rawHTML, baseURL string, opts Options) *models.DocumentModel {
	model := &models.DocumentModel{URL: baseURL}

	pre := preprocess(rawHTML, opts)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pre))
	if err != nil {
		return model
	}

	extractBasicInfo(doc, model, opts)
	extractMetadata(doc, model)
	extractStructure(doc, model)
	extractContent(doc, model, opts)
	extractForms(doc, model)
	extractMedia(doc, model, baseURL)
	extractLinks(doc, model, baseURL)
	extractScriptsAndStyles(doc, model, baseURL)
	extractAccessibility(doc, model)
	extractMicrodata(doc, model)
	extractJSONLD(doc, model)
	extractPerformance(doc, model)

	if opts.Readability {
		model.Readability = readabilityEnrichment(rawHTML, baseURL)
	}

	return model
}

// preprocess repairs the common markup quirks before the tree parse: a
// missing doctype and XML-style self-closing syntax on HTML void elements.
func preprocess(rawHTML string, opts Options) string {
	out := rawHTML
	if !doctypeRe.MatchString(out) {
		out = "<!DOCTYPE html>\n" + out
	}
	out = voidCloseRe.ReplaceAllString(out, "<$1$2>")
	if opts.CollapseWhitespace {
		out = hspaceRunRe.ReplaceAllString(out, " ")
	}
	return out
}

// normalizeText trims each line and joins non-empty lines with single
// spaces.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}

func miningKeywords(text string, n int) []string {
	if n <= 0 || text == "" {
		return nil
	}
	return analytics.TopN(analytics.WordFrequency(text), n)
}
