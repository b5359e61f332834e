package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/product-page-parser/models"
	"github.com/shopspring/decimal"
	"golang.org/x/net/html"
)

// pricePattern matches "₽199.99<span>₽249.99</span>": currency glyph,
// current price, then the old price inside a nested span.
var pricePattern = regexp.MustCompile(`([^\s])(\d+\.?\d*)\s*<span>\s*[^\s](\d+\.?\d*)\s*</span>`)

var hundred = decimal.NewFromInt(100)

// PriceInfo is the outcome of matching a price block.
type PriceInfo struct {
	Currency        string
	Price           decimal.Decimal
	OldPrice        decimal.Decimal
	Discount        decimal.Decimal
	DiscountPercent string // empty when OldPrice is zero
}

// ParsePrice matches the inner markup of a price block. ok is false when the
// markup does not have the expected shape; callers must then leave every
// price field unset.
func ParsePrice(markup string) (info PriceInfo, ok bool) {
	match := pricePattern.FindStringSubmatch(markup)
	if match == nil {
		return PriceInfo{}, false
	}

	price, err := parseAmount(match[2])
	if err != nil {
		return PriceInfo{}, false
	}
	oldPrice, err := parseAmount(match[3])
	if err != nil {
		return PriceInfo{}, false
	}

	info = PriceInfo{
		Currency: CurrencyCode(match[1]),
		Price:    price,
		OldPrice: oldPrice,
		Discount: oldPrice.Sub(price),
	}
	if !oldPrice.IsZero() {
		info.DiscountPercent = info.Discount.Div(oldPrice).Mul(hundred).StringFixed(2) + "%"
	}
	return info, true
}

func applyPrice(product *models.Product, block *goquery.Selection) {
	if block.Length() == 0 {
		return
	}
	markup, err := innerHTML(block)
	if err != nil {
		return
	}
	info, ok := ParsePrice(markup)
	if !ok {
		return
	}

	price := info.Price.InexactFloat64()
	oldPrice := info.OldPrice.InexactFloat64()
	discount := info.Discount.InexactFloat64()
	product.Price = &price
	product.OldPrice = &oldPrice
	product.Discount = &discount
	product.DiscountPercent = info.DiscountPercent
	product.Currency = info.Currency
}

// parseAmount accepts the "199." form the pattern allows.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSuffix(s, "."))
}

// innerHTML renders the children of the first node in s.
func innerHTML(s *goquery.Selection) (string, error) {
	var b strings.Builder
	for c := s.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}
