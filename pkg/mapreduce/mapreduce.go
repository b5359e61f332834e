// Package mapreduce aggregates term counts across a batch of parsed pages.
package mapreduce

import (
	"strings"

	"github.com/dtnitsch/product-page-parser/models"
)

// Map counts the tags and meta keywords of a single page. Terms are
// lowercased so "Sale" and "sale" land in the same bucket.
func Map(result *models.ParseResult) map[string]int {
	counts := make(map[string]int)
	if result == nil {
		return counts
	}

	add := func(terms []string) {
		for _, term := range terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if term != "" {
				counts[term]++
			}
		}
	}
	add(result.Product.Tags.Category)
	add(result.Product.Tags.Label)
	add(result.Product.Tags.Discount)
	add(result.Meta.Keywords)
	return counts
}

// Reduce aggregates a slice of term frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for term, count := range counts {
			finalResults[term] += count
		}
	}

	return finalResults
}
