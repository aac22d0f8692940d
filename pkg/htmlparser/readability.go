package htmlparser

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"github.com/Hamish-Leahy/Prism-sub000/models"
)

// readabilityEnrichment runs the go-readability main-content pass over the
// original markup. Any failure is absorbed: enrichment is best effort and
// never degrades the structural parse.
func readabilityEnrichment(rawHTML, baseURL string) *models.ReadabilityInfo {
	pageURL, err := url.Parse(baseURL)
	if err != nil {
		pageURL = &url.URL{}
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil
	}

	info := &models.ReadabilityInfo{
		Excerpt:      article.Excerpt,
		Byline:       article.Byline,
		SiteName:     article.SiteName,
		Image:        article.Image,
		Favicon:      article.Favicon,
		ReadableText: normalizeText(article.TextContent),
	}
	if article.PublishedTime != nil {
		info.PublishedTime = article.PublishedTime.Format("2006-01-02")
	}
	return info
}
