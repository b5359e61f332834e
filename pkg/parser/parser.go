// Package parser extracts product-page data from an already loaded document.
//
// Every lookup is driven by the page's fixed markup (.product, .preview,
// .tags, .price, .properties, .description, .suggested, .reviews). Markup
// that does not match simply leaves the corresponding field empty; the
// extractor never fails on a parsed document.
package parser

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/product-page-parser/models"
)

// LanguageGuesser guesses the language of free text. It is consulted only
// when the document does not declare <html lang>.
type LanguageGuesser interface {
	Detect(text string) (code string, confidence float64, ok bool)
}

type Parser struct {
	// Sections limits which parts of the result are filled. Zero means all.
	Sections models.SectionSet
	// Language is optional.
	Language LanguageGuesser
}

// Parse reads req.HTML into a document and extracts it.
func (p *Parser) Parse(req models.ParseRequest) (*models.ParseResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(req.HTML))
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", req.Source, err)
	}
	return p.ParseDocument(doc), nil
}

// ParseDocument extracts meta, product, suggested offers and reviews from doc.
// Calling it twice on the same document yields equal results.
func (p *Parser) ParseDocument(doc *goquery.Document) *models.ParseResult {
	result := models.NewParseResult()

	if p.Sections.Has(models.SectionMeta) {
		result.Meta = parseHeader(doc)
	}
	if p.Sections.Has(models.SectionProduct) {
		result.Product = parseProduct(doc)
	}
	if p.Sections.Has(models.SectionSuggested) {
		result.Suggested = parseSuggested(doc)
	}
	if p.Sections.Has(models.SectionReviews) {
		result.Reviews = parseReviews(doc)
	}

	if p.Language != nil && p.Sections.Has(models.SectionMeta) && result.Meta.Language == "" {
		p.guessLanguage(doc, &result.Meta)
	}

	return result
}

func (p *Parser) guessLanguage(doc *goquery.Document, meta *models.Meta) {
	product := doc.Find(productSelector).First()
	sample := normalizeText(product.Find("h1").First().Text() + "\n" + product.Find(".description").First().Text())
	if sample == "" {
		sample = normalizeText(meta.Title + "\n" + meta.Description)
	}
	if sample == "" {
		return
	}
	if code, confidence, ok := p.Language.Detect(sample); ok {
		meta.DetectedLanguage = code
		meta.LanguageConfidence = confidence
	}
}

// text returns the trimmed text content of the selection.
func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
