package htmlparser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Hamish-Leahy/Prism-sub000/models"
)

var semanticTags = []string{"header", "nav", "main", "section", "article", "aside", "footer"}

// extractStructure collects the heading outline and the HTML5 landmark
// regions.
func extractStructure(doc *goquery.Document, model *models.DocumentModel) {
	doc.Find("h1,h2,h3,h4,h5,h6").Each(func(_ int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		model.Structure.Headings = append(model.Structure.Headings, models.Heading{
			Level: int(tag[1] - '0'),
			Text:  normalizeText(s.Text()),
			ID:    s.AttrOr("id", ""),
			Class: s.AttrOr("class", ""),
		})
	})

	doc.Find(strings.Join(semanticTags, ",")).Each(func(_ int, s *goquery.Selection) {
		model.Structure.Regions = append(model.Structure.Regions, models.SemanticRegion{
			Tag:   goquery.NodeName(s),
			Text:  normalizeText(s.Text()),
			ID:    s.AttrOr("id", ""),
			Class: s.AttrOr("class", ""),
			Role:  s.AttrOr("role", ""),
		})
	})
}

// extractContent collects the flat content views: paragraphs, lists, tables,
// blockquotes, code blocks and the whole-document text.
func extractContent(doc *goquery.Document, model *models.DocumentModel, opts Options) {
	content := &model.Content

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			content.Paragraphs = append(content.Paragraphs, text)
		}
	})

	doc.Find("ul,ol,dl").Each(func(_ int, s *goquery.Selection) {
		list := models.List{Type: goquery.NodeName(s)}
		itemSel := "li"
		if list.Type == "dl" {
			itemSel = "dt,dd"
		}
		s.Find(itemSel).Each(func(_ int, item *goquery.Selection) {
			if text := normalizeText(item.Text()); text != "" {
				list.Items = append(list.Items, text)
			}
		})
		if len(list.Items) > 0 {
			content.Lists = append(content.Lists, list)
		}
	})

	doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		if table := extractTable(s); len(table.Rows) > 0 {
			content.Tables = append(content.Tables, table)
		}
	})

	doc.Find("blockquote").Each(func(_ int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			content.Blockquotes = append(content.Blockquotes, text)
		}
	})

	doc.Find("pre").Each(func(_ int, s *goquery.Selection) {
		if code := strings.TrimSpace(s.Text()); code != "" {
			content.CodeBlocks = append(content.CodeBlocks, code)
		}
	})
	// Standalone code elements; code nested in pre is already covered.
	doc.Find("code").Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered("pre").Length() > 0 {
			return
		}
		if code := strings.TrimSpace(s.Text()); code != "" {
			content.CodeBlocks = append(content.CodeBlocks, code)
		}
	})

	body := doc.Find("body")
	if body.Length() > 0 {
		content.TextContent = normalizeText(body.Text())
	} else {
		content.TextContent = normalizeText(doc.Text())
	}

	content.WordCount = len(strings.Fields(content.TextContent))
	if content.WordCount > 0 {
		content.EstimatedReadMin = float64(content.WordCount) / wordsPerMinute
	}
	content.TopKeywords = miningKeywords(content.TextContent, opts.Keywords)
}

// extractTable flattens a table into a row-major text matrix. Header and
// body rows are not distinguished; each tr becomes one row of cell texts.
func extractTable(s *goquery.Selection) models.Table {
	var table models.Table
	s.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, normalizeText(cell.Text()))
		})
		if len(row) > 0 {
			table.Rows = append(table.Rows, row)
		}
	})
	return table
}
