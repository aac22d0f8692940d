package htmlparser

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/pemistahl/lingua-go"

	"github.com/Hamish-Leahy/Prism-sub000/models"
)

// extractBasicInfo fills the head-level essentials: title, bucketed meta
// fields, charset, canonical link and document language.
func extractBasicInfo(doc *goquery.Document, model *models.DocumentModel, opts Options) {
	info := &model.BasicInfo

	info.Title = normalizeText(doc.Find("title").First().Text())
	info.Charset = doc.Find("meta[charset]").First().AttrOr("charset", "")
	info.Canonical = doc.Find(`link[rel="canonical"]`).First().AttrOr("href", "")
	info.Language = strings.TrimSpace(doc.Find("html").AttrOr("lang", ""))

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name := metaName(s)
		content := strings.TrimSpace(s.AttrOr("content", ""))
		if name == "" || content == "" {
			return
		}
		switch name {
		case "description":
			info.Description = content
		case "keywords":
			info.Keywords = content
		case "author":
			info.Author = content
		case "viewport":
			info.Viewport = content
		case "robots":
			info.Robots = content
		case "canonical":
			if info.Canonical == "" {
				info.Canonical = content
			}
		}
	})

	if info.Language == "" && opts.DetectLanguage {
		detectLanguage(doc, info)
	}
}

// extractMetadata buckets meta tags by vocabulary prefix: og:* is Open
// Graph, twitter:* is Twitter Card, dc.*/dc:* is Dublin Core, schema.* is
// schema.org and everything else lands in the custom bucket.
func extractMetadata(doc *goquery.Document, model *models.DocumentModel) {
	bag := &model.Metadata

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name := metaName(s)
		content := strings.TrimSpace(s.AttrOr("content", ""))
		if name == "" || content == "" {
			return
		}
		switch {
		case strings.HasPrefix(name, "og:"):
			if bag.OpenGraph == nil {
				bag.OpenGraph = map[string]string{}
			}
			bag.OpenGraph[name] = content
		case strings.HasPrefix(name, "twitter:"):
			if bag.TwitterCard == nil {
				bag.TwitterCard = map[string]string{}
			}
			bag.TwitterCard[name] = content
		case strings.HasPrefix(name, "dc.") || strings.HasPrefix(name, "dc:"):
			if bag.DublinCore == nil {
				bag.DublinCore = map[string]string{}
			}
			bag.DublinCore[name] = content
		case strings.HasPrefix(name, "schema."):
			if bag.SchemaOrg == nil {
				bag.SchemaOrg = map[string]string{}
			}
			bag.SchemaOrg[name] = content
		default:
			if isBasicMetaName(name) {
				return
			}
			if bag.Custom == nil {
				bag.Custom = map[string]string{}
			}
			bag.Custom[name] = content
		}
	})
}

// metaName returns the lowercased name or property attribute of a meta tag.
func metaName(s *goquery.Selection) string {
	name := s.AttrOr("name", "")
	if name == "" {
		name = s.AttrOr("property", "")
	}
	return strings.ToLower(strings.TrimSpace(name))
}

func isBasicMetaName(name string) bool {
	switch name {
	case "description", "keywords", "author", "viewport", "robots", "canonical", "charset":
		return true
	}
	return false
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// languageDetector is built lazily; constructing the lingua models is far
// more expensive than a parse call.
func languageDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Spanish,
				lingua.French,
				lingua.German,
				lingua.Portuguese,
				lingua.Italian,
				lingua.Dutch,
				lingua.Russian,
				lingua.Japanese,
				lingua.Chinese,
				lingua.Korean,
				lingua.Arabic,
			).
			Build()
	})
	return detector
}

// detectLanguage guesses the document language from body text when the
// html[lang] attribute is absent. Short texts are skipped; the detector has
// nothing reliable to work with.
func detectLanguage(doc *goquery.Document, info *models.BasicInfo) {
	text := normalizeText(doc.Find("body").Text())
	if len(text) < 40 {
		return
	}
	if len(text) > 2048 {
		text = text[:2048]
	}

	det := languageDetector()
	lang, ok := det.DetectLanguageOf(text)
	if !ok {
		return
	}
	info.Language = strings.ToLower(lang.IsoCode639_1().String())
	info.LanguageDetected = true
	info.LanguageConfidence = det.ComputeLanguageConfidence(text, lang)
}
