package parser

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/product-page-parser/models"
	"golang.org/x/net/html/atom"
)

// offerPricePattern matches "₽199" style prices inside an offer card.
var offerPricePattern = regexp.MustCompile(`([^\s])(\d+\.?\d*)`)

func parseSuggested(doc *goquery.Document) []models.Offer {
	suggested := []models.Offer{}
	doc.Find(".suggested article").Each(func(_ int, article *goquery.Selection) {
		suggested = append(suggested, parseOffer(article))
	})
	return suggested
}

// parseOffer reads the direct children of one card; a later child of the
// same kind overrides an earlier one.
func parseOffer(article *goquery.Selection) models.Offer {
	offer := models.Offer{}
	article.Children().Each(func(_ int, elem *goquery.Selection) {
		switch elem.Nodes[0].DataAtom {
		case atom.Img:
			offer.Image = elem.AttrOr("src", "")
		case atom.H3:
			offer.Name = text(elem)
		case atom.B:
			if match := offerPricePattern.FindStringSubmatch(elem.Text()); match != nil {
				offer.Price = match[2]
				offer.Currency = CurrencyCode(match[1])
			}
		case atom.P:
			offer.Description = text(elem)
		}
	})
	return offer
}
