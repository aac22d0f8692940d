package htmlparser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/Hamish-Leahy/Prism-sub000/models"
)

// extractPerformance walks the raw node tree behind the goquery document and
// records size heuristics: element count, non-blank text nodes, maximum
// element depth and the elements×depth complexity figure.
func extractPerformance(doc *goquery.Document, model *models.DocumentModel) {
	nodes := doc.Selection.Nodes
	if len(nodes) == 0 {
		return
	}

	perf := &model.Performance
	var walk func(n *html.Node, depth int)
	walk = func(n *html.Node, depth int) {
		switch n.Type {
		case html.ElementNode:
			perf.DOMElements++
			depth++
			if depth > perf.Depth {
				perf.Depth = depth
			}
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				perf.TextNodes++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, depth)
		}
	}
	for _, n := range nodes {
		walk(n, 0)
	}

	perf.Complexity = perf.DOMElements * perf.Depth
}
