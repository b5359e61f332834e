package models

// ParseResult represents everything extracted from a single product page.
type ParseResult struct {
	Meta      Meta     `json:"meta" yaml:"meta"`
	Product   Product  `json:"product" yaml:"product"`
	Suggested []Offer  `json:"suggested" yaml:"suggested"`
	Reviews   []Review `json:"reviews" yaml:"reviews"`
}

// Product is the main item shown on the page.
type Product struct {
	ID          string  `json:"id" yaml:"id"`
	Images      []Photo `json:"images" yaml:"images"`
	IsLiked     bool    `json:"isLiked" yaml:"isLiked"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Tags        Tags    `json:"tags" yaml:"tags"`

	// Price fields are nil when the price block could not be matched.
	Price           *float64 `json:"price,omitempty" yaml:"price,omitempty"`
	OldPrice        *float64 `json:"oldPrice,omitempty" yaml:"oldPrice,omitempty"`
	Discount        *float64 `json:"discount,omitempty" yaml:"discount,omitempty"` // oldPrice - price, currency units
	DiscountPercent string   `json:"discountPercent,omitempty" yaml:"discountPercent,omitempty"`
	Currency        string   `json:"currency,omitempty" yaml:"currency,omitempty"`

	Properties Properties `json:"properties" yaml:"properties"`
}

// Photo is one gallery image. The displayed image is always first in Product.Images.
type Photo struct {
	Preview string `json:"preview" yaml:"preview"`
	Full    string `json:"full" yaml:"full"`
	Alt     string `json:"alt" yaml:"alt"`
}

// Tags groups tag labels by their colour marker.
type Tags struct {
	Category []string `json:"category" yaml:"category"` // green
	Discount []string `json:"discount" yaml:"discount"` // red
	Label    []string `json:"label" yaml:"label"`       // blue
}

// Offer is one suggested-product card.
type Offer struct {
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Price       string `json:"price,omitempty" yaml:"price,omitempty"`
	Currency    string `json:"currency,omitempty" yaml:"currency,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Author identifies who wrote a review.
type Author struct {
	Avatar string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Review is one customer review card.
type Review struct {
	Author      Author `json:"author" yaml:"author"`
	Rating      int    `json:"rating" yaml:"rating"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Date        string `json:"date,omitempty" yaml:"date,omitempty"` // DD.MM.YYYY
}

// NewProduct returns a Product with every collection initialised, so an
// empty page still serialises to [] and {} rather than null.
func NewProduct() Product {
	return Product{
		Images: []Photo{},
		Tags: Tags{
			Category: []string{},
			Discount: []string{},
			Label:    []string{},
		},
		Properties: NewProperties(),
	}
}

// NewParseResult returns an empty result ready to be filled.
func NewParseResult() *ParseResult {
	return &ParseResult{
		Product:   NewProduct(),
		Suggested: []Offer{},
		Reviews:   []Review{},
	}
}
