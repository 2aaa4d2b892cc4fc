package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kapu/paderewski-ai-go/internal/domain"
	"golang.org/x/net/html"
)

// Shape selects the element scan used for a page.
type Shape int

const (
	ShapeParticipants Shape = iota
	ShapeJury
	ShapeGeneric
)

// Element selectors per shape, scanned in order. Each matched element
// contributes one chunk of text.
var shapeSelectors = map[Shape][]string{
	ShapeParticipants: {"ul", "ol", "li", "p", "h2", "h3", ".wp-block-list li", "strong", "a"},
	ShapeJury:         {"ul", "ol", "li", "p", "h2", "h3", "a", "strong", ".wp-block-list li"},
	ShapeGeneric:      {"ul", "ol", "li", "p", "h2", "h3", "a", "span", "strong", ".wp-block-list li"},
}

// Main content candidates, most specific first.
var contentSelectors = []string{".entry-content", "article"}

// ShapeFor returns the dedicated shape of a profile.
func ShapeFor(profile domain.Profile) Shape {
	if profile == domain.ProfileJury {
		return ShapeJury
	}
	return ShapeParticipants
}

// ParsePersons extracts person records from raw HTML. Malformed markup is
// parsed best-effort; the result is never nil.
func ParsePersons(rawHTML string, shape Shape, profile domain.Profile) []domain.Person {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return []domain.Person{}
	}

	text := collectText(mainContent(doc), shapeSelectors[shape])
	return domain.NewPersons(ExtractNames(text), profile)
}

func mainContent(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return doc.Selection
}

func collectText(container *goquery.Selection, selectors []string) string {
	chunks := make([]string, 0)
	for _, selector := range selectors {
		container.Find(selector).Each(func(_ int, el *goquery.Selection) {
			if text := elementText(el, " "); text != "" {
				chunks = append(chunks, text)
			}
		})
	}
	return strings.Join(chunks, "\n")
}

// elementText joins the trimmed, non-empty text nodes under sel with sep.
func elementText(sel *goquery.Selection, sep string) string {
	parts := make([]string, 0)
	for _, node := range sel.Nodes {
		walkText(node, func(text string) {
			if trimmed := strings.TrimSpace(text); trimmed != "" {
				parts = append(parts, trimmed)
			}
		})
	}
	return strings.Join(parts, sep)
}

func walkText(node *html.Node, visit func(string)) {
	switch node.Type {
	case html.TextNode:
		visit(node.Data)
		return
	case html.ElementNode:
		switch node.Data {
		case "script", "style", "noscript", "template":
			return
		}
	case html.CommentNode, html.DoctypeNode:
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walkText(child, visit)
	}
}
