package htmlparser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Hamish-Leahy/Prism-sub000/models"
	"github.com/Hamish-Leahy/Prism-sub000/pkg/urlresolver"
)

// extractLinks describes every href-bearing anchor. AbsoluteURL always falls
// back to the raw href when the base is empty or unresolvable.
func extractLinks(doc *goquery.Document, model *models.DocumentModel, baseURL string) {
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		model.Links = append(model.Links, models.LinkDescriptor{
			Href:        href,
			AbsoluteURL: urlresolver.Resolve(href, baseURL),
			Text:        normalizeText(s.Text()),
			Title:       s.AttrOr("title", ""),
			Target:      s.AttrOr("target", ""),
			Rel:         s.AttrOr("rel", ""),
			Type:        urlresolver.Classify(href),
		})
	})
}

// extractScriptsAndStyles describes script elements and stylesheet
// references (external links and inline style blocks).
func extractScriptsAndStyles(doc *goquery.Document, model *models.DocumentModel, baseURL string) {
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		script := models.ScriptDescriptor{
			Src:  s.AttrOr("src", ""),
			Type: s.AttrOr("type", ""),
		}
		if script.Src != "" {
			script.AbsoluteURL = urlresolver.Resolve(script.Src, baseURL)
		} else {
			script.Inline = strings.TrimSpace(s.Text())
		}
		_, script.Async = s.Attr("async")
		_, script.Defer = s.Attr("defer")
		model.Scripts = append(model.Scripts, script)
	})

	doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		model.Styles = append(model.Styles, models.StyleDescriptor{
			Href:        href,
			AbsoluteURL: urlresolver.Resolve(href, baseURL),
			Media:       s.AttrOr("media", ""),
			Type:        s.AttrOr("type", "text/css"),
		})
	})

	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		inline := strings.TrimSpace(s.Text())
		if inline == "" {
			return
		}
		model.Styles = append(model.Styles, models.StyleDescriptor{
			Type:   s.AttrOr("type", "text/css"),
			Media:  s.AttrOr("media", ""),
			Inline: inline,
		})
	})
}
