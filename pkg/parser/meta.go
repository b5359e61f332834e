package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/product-page-parser/models"
	"golang.org/x/net/html/atom"
)

// titleSeparator splits "Product — Shop" style titles.
const titleSeparator = "—"

func parseHeader(doc *goquery.Document) models.Meta {
	meta := models.Meta{}
	meta.Language, _ = doc.Find("html").First().Attr("lang")

	doc.Find("head").First().Children().Each(func(_ int, elem *goquery.Selection) {
		switch elem.Nodes[0].DataAtom {
		case atom.Title:
			meta.Title = beforeSeparator(elem.Text())
		case atom.Meta:
			content := elem.AttrOr("content", "")
			switch elem.AttrOr("name", "") {
			case "description":
				meta.Description = content
			case "keywords":
				meta.Keywords = splitKeywords(content)
			}
			switch elem.AttrOr("property", "") {
			case "og:title":
				meta.OpenGraph.Title = beforeSeparator(content)
			case "og:image":
				meta.OpenGraph.Image = content
			case "og:type":
				meta.OpenGraph.Type = content
			}
		}
	})

	return meta
}

func beforeSeparator(s string) string {
	before, _, _ := strings.Cut(s, titleSeparator)
	return strings.TrimSpace(before)
}

func splitKeywords(content string) []string {
	parts := strings.Split(content, ",")
	keywords := make([]string, len(parts))
	for i, part := range parts {
		keywords[i] = strings.TrimSpace(part)
	}
	return keywords
}
