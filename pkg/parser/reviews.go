package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/product-page-parser/models"
	"golang.org/x/net/html/atom"
)

// reviewDatePattern matches DD/MM/YYYY.
var reviewDatePattern = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`)

func parseReviews(doc *goquery.Document) []models.Review {
	reviews := []models.Review{}
	doc.Find(".reviews article").Each(func(_ int, article *goquery.Selection) {
		reviews = append(reviews, parseReview(article))
	})
	return reviews
}

func parseReview(article *goquery.Selection) models.Review {
	review := models.Review{
		Rating: countRating(article.Find(".rating span")),
	}

	article.Find(".author").First().Children().Each(func(_ int, elem *goquery.Selection) {
		switch elem.Nodes[0].DataAtom {
		case atom.Img:
			review.Author.Avatar = elem.AttrOr("src", "")
		case atom.Span:
			review.Author.Name = text(elem)
		case atom.I:
			if date := FormatReviewDate(elem.Text()); date != "" {
				review.Date = date
			}
		}
	})

	title := article.Find(".title").First()
	review.Title = text(title)
	review.Description = reviewDescription(article, title)

	return review
}

// countRating counts leading "filled" indicators and stops at the first gap.
func countRating(indicators *goquery.Selection) int {
	rating := 0
	for i := range indicators.Nodes {
		if strings.TrimSpace(indicators.Eq(i).AttrOr("class", "")) != "filled" {
			break
		}
		rating++
	}
	return rating
}

// reviewDescription prefers an explicit .description element and falls back
// to the element right after the title.
func reviewDescription(article, title *goquery.Selection) string {
	if explicit := article.Find(".description").First(); explicit.Length() > 0 {
		return text(explicit)
	}
	if title.Length() == 0 {
		return ""
	}
	return text(title.Next())
}

// FormatReviewDate turns the first DD/MM/YYYY in s into DD.MM.YYYY.
// It returns "" when s has no such date.
func FormatReviewDate(s string) string {
	match := reviewDatePattern.FindStringSubmatch(s)
	if match == nil {
		return ""
	}
	return match[1] + "." + match[2] + "." + match[3]
}
