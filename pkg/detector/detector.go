// Package detector checks whether a document follows the product-page markup
// the parser relies on, and guesses page language when <html lang> is absent.
package detector

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/product-page-parser/pkg/parser"
)

// Marker is one selector of the product-page structural contract.
type Marker struct {
	Name     string `json:"name" yaml:"name"`
	Selector string `json:"selector" yaml:"selector"`
	Required bool   `json:"required" yaml:"required"`
	Count    int    `json:"count" yaml:"count"`
}

// Present reports whether the marker matched at least one node.
func (m Marker) Present() bool {
	return m.Count > 0
}

// Markers is the structural contract, in page order.
var Markers = []Marker{
	{Name: "language", Selector: "html[lang]"},
	{Name: "title", Selector: "head > title"},
	{Name: "product", Selector: ".product", Required: true},
	{Name: "product_name", Selector: ".product h1", Required: true},
	{Name: "gallery", Selector: ".product .preview nav img", Required: true},
	{Name: "displayed_image", Selector: ".product .preview figure img", Required: true},
	{Name: "like_button", Selector: ".product .preview figure button"},
	{Name: "tags", Selector: ".product .tags span"},
	{Name: "price", Selector: ".product .price", Required: true},
	{Name: "properties", Selector: ".product .properties li"},
	{Name: "description", Selector: ".product .description"},
	{Name: "suggested", Selector: ".suggested article"},
	{Name: "reviews", Selector: ".reviews article"},
}

// Report is the outcome of inspecting one document.
type Report struct {
	Source       string   `json:"source,omitempty" yaml:"source,omitempty"`
	Markers      []Marker `json:"markers" yaml:"markers"`
	PriceMatched bool     `json:"price_matched" yaml:"price_matched"`
	Confidence   float64  `json:"confidence" yaml:"confidence"` // 0-10, share of markers present
}

// Inspect counts every contract marker in doc.
func Inspect(doc *goquery.Document) *Report {
	report := &Report{Markers: make([]Marker, len(Markers))}

	present := 0
	for i, m := range Markers {
		m.Count = doc.Find(m.Selector).Length()
		if m.Present() {
			present++
		}
		report.Markers[i] = m
	}

	if price := doc.Find(".product .price").First(); price.Length() > 0 {
		if markup, err := price.Html(); err == nil {
			_, report.PriceMatched = parser.ParsePrice(markup)
		}
	}

	report.Confidence = float64(present) / float64(len(Markers)) * 10
	return report
}

// Missing lists the names of markers with no matching node.
func (r *Report) Missing() []string {
	var missing []string
	for _, m := range r.Markers {
		if !m.Present() {
			missing = append(missing, m.Name)
		}
	}
	return missing
}

// MissingRequired lists required markers with no matching node.
func (r *Report) MissingRequired() []string {
	var missing []string
	for _, m := range r.Markers {
		if m.Required && !m.Present() {
			missing = append(missing, m.Name)
		}
	}
	return missing
}

// Conforms is true when every required marker is present and the price
// block has the expected shape.
func (r *Report) Conforms() bool {
	return len(r.MissingRequired()) == 0 && r.PriceMatched
}
