package htmlparser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Hamish-Leahy/Prism-sub000/models"
)

// extractForms describes each form and its fields. Method defaults to "get"
// and field type to "text", matching browser behavior.
func extractForms(doc *goquery.Document, model *models.DocumentModel) {
	doc.Find("form").Each(func(_ int, f *goquery.Selection) {
		form := models.FormDescriptor{
			Action:  f.AttrOr("action", ""),
			Method:  strings.ToLower(f.AttrOr("method", "get")),
			Enctype: f.AttrOr("enctype", ""),
		}

		f.Find("input,textarea,select").Each(func(_ int, el *goquery.Selection) {
			field := models.FormField{
				Name:        el.AttrOr("name", ""),
				ID:          el.AttrOr("id", ""),
				Class:       el.AttrOr("class", ""),
				Placeholder: el.AttrOr("placeholder", ""),
			}
			_, field.Required = el.Attr("required")

			switch goquery.NodeName(el) {
			case "textarea":
				field.Type = "textarea"
				field.Value = strings.TrimSpace(el.Text())
			case "select":
				field.Type = "select"
				field.Value = el.Find("option[selected]").First().AttrOr("value", "")
			default:
				field.Type = el.AttrOr("type", "text")
				field.Value = el.AttrOr("value", "")
			}

			form.Fields = append(form.Fields, field)
		})

		model.Forms = append(model.Forms, form)
	})
}
