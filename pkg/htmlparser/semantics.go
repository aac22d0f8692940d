package htmlparser

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Hamish-Leahy/Prism-sub000/models"
)

// landmarkRoles is the ARIA landmark subset reported separately from plain
// role-bearing elements.
var landmarkRoles = map[string]struct{}{
	"banner":        {},
	"navigation":    {},
	"main":          {},
	"complementary": {},
	"contentinfo":   {},
}

func extractAccessibility(doc *goquery.Document, model *models.DocumentModel) {
	a11y := &model.Accessibility

	doc.Find("[aria-label]").Each(func(_ int, s *goquery.Selection) {
		a11y.AriaLabels = append(a11y.AriaLabels, models.AriaLabel{
			Tag:   goquery.NodeName(s),
			Label: s.AttrOr("aria-label", ""),
		})
	})

	doc.Find("[role]").Each(func(_ int, s *goquery.Selection) {
		el := models.RoleElement{
			Tag:  goquery.NodeName(s),
			Role: strings.ToLower(s.AttrOr("role", "")),
		}
		a11y.Roles = append(a11y.Roles, el)
		if _, ok := landmarkRoles[el.Role]; ok {
			a11y.Landmarks = append(a11y.Landmarks, el)
		}
	})

	doc.Find("img[alt]").Each(func(_ int, s *goquery.Selection) {
		a11y.ImageAlts = append(a11y.ImageAlts, models.ImageAlt{
			Src: s.AttrOr("src", ""),
			Alt: s.AttrOr("alt", ""),
		})
	})
}

// extractMicrodata walks itemscope elements and gathers their nested
// itemprop values.
func extractMicrodata(doc *goquery.Document, model *models.DocumentModel) {
	doc.Find("[itemscope]").Each(func(_ int, s *goquery.Selection) {
		item := models.MicrodataItem{ItemType: s.AttrOr("itemtype", "")}
		s.Find("[itemprop]").Each(func(_ int, prop *goquery.Selection) {
			item.Properties = append(item.Properties, models.MicrodataProperty{
				Name:    prop.AttrOr("itemprop", ""),
				Value:   normalizeText(prop.Text()),
				Content: prop.AttrOr("content", ""),
			})
		})
		model.Microdata = append(model.Microdata, item)
	})
}

// extractJSONLD decodes each application/ld+json block independently.
// A body that fails to decode is dropped; it never aborts the parse.
func extractJSONLD(doc *goquery.Document, model *models.DocumentModel) {
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var decoded any
		if err := json.Unmarshal([]byte(s.Text()), &decoded); err != nil {
			return
		}
		model.JSONLD = append(model.JSONLD, decoded)
	})
}
