package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/product-page-parser/models"
)

const productSelector = ".product"

// openingTagPattern matches an opening tag together with its attributes.
var openingTagPattern = regexp.MustCompile(`<(\w+)[^>]*>`)

// textEscapes undoes quote escaping done by the HTML renderer inside text
// nodes, so descriptions read the same as a browser's innerHTML.
var textEscapes = strings.NewReplacer("&#39;", "'", "&#34;", `"`)

func parseProduct(doc *goquery.Document) models.Product {
	product := models.NewProduct()

	section := doc.Find(productSelector).First()
	if section.Length() == 0 {
		return product
	}

	product.ID = section.AttrOr("data-id", "")
	product.Name = text(section.Find("h1").First())
	product.Images = parseImages(section)
	product.IsLiked = section.Find(".preview figure button").First().HasClass("active")
	product.Tags = parseTags(section)
	applyPrice(&product, section.Find(".price").First())
	product.Properties = parseProperties(section)
	product.Description = parseDescription(section.Find(".description").First())

	return product
}

// parseImages collects gallery thumbnails in DOM order and moves the image
// currently shown in the figure to the front.
func parseImages(section *goquery.Selection) []models.Photo {
	images := []models.Photo{}
	section.Find(".preview nav img").Each(func(_ int, img *goquery.Selection) {
		images = append(images, models.Photo{
			Full:    img.AttrOr("data-src", ""),
			Preview: img.AttrOr("src", ""),
			Alt:     img.AttrOr("alt", ""),
		})
	})

	general, ok := section.Find(".preview figure img").First().Attr("src")
	if !ok {
		return images
	}
	for i, image := range images {
		if image.Full == general {
			return moveToFront(images, i)
		}
	}
	return images
}

// moveToFront relocates images[index] to position 0 keeping the relative
// order of everything else.
func moveToFront(images []models.Photo, index int) []models.Photo {
	if index <= 0 || index >= len(images) {
		return images
	}
	out := make([]models.Photo, 0, len(images))
	out = append(out, images[index])
	out = append(out, images[:index]...)
	out = append(out, images[index+1:]...)
	return out
}

func parseTags(section *goquery.Selection) models.Tags {
	tags := models.NewProduct().Tags
	section.Find(".tags span").Each(func(_ int, tag *goquery.Selection) {
		tagText := text(tag)
		switch strings.TrimSpace(tag.AttrOr("class", "")) {
		case "green":
			tags.Category = append(tags.Category, tagText)
		case "blue":
			tags.Label = append(tags.Label, tagText)
		case "red":
			tags.Discount = append(tags.Discount, tagText)
		}
	})
	return tags
}

func parseProperties(section *goquery.Selection) models.Properties {
	properties := models.NewProperties()
	section.Find(".properties li").Each(func(_ int, item *goquery.Selection) {
		children := item.Children()
		if children.Length() == 0 {
			return
		}
		properties.Set(text(children.First()), text(children.Last()))
	})
	return properties
}

// parseDescription keeps the description markup but drops every attribute
// from opening tags: <p class="x"> becomes <p>.
func parseDescription(block *goquery.Selection) string {
	if block.Length() == 0 {
		return ""
	}
	inner, err := innerHTML(block)
	if err != nil {
		return ""
	}
	inner = textEscapes.Replace(strings.TrimSpace(inner))
	return openingTagPattern.ReplaceAllString(inner, "<$1>")
}
