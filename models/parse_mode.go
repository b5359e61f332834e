package models

import (
	"fmt"
	"strings"
)

// Section names one top-level part of a ParseResult.
type Section int

const (
	SectionMeta Section = 1 << iota
	SectionProduct
	SectionSuggested
	SectionReviews

	SectionAll = SectionMeta | SectionProduct | SectionSuggested | SectionReviews
)

// SectionSet is a bit set of sections to extract. The zero value means all.
type SectionSet Section

var sectionNames = map[string]Section{
	"meta":      SectionMeta,
	"product":   SectionProduct,
	"suggested": SectionSuggested,
	"reviews":   SectionReviews,
	"all":       SectionAll,
}

// ParseSections converts a comma-separated list like "meta,reviews".
// An empty string selects every section.
func ParseSections(s string) (SectionSet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SectionSet(SectionAll), nil
	}

	var set SectionSet
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		sec, ok := sectionNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown section: %s", part)
		}
		set |= SectionSet(sec)
	}
	if set == 0 {
		return SectionSet(SectionAll), nil
	}
	return set, nil
}

// Has reports whether sec is selected.
func (s SectionSet) Has(sec Section) bool {
	if s == 0 {
		return true
	}
	return Section(s)&sec != 0
}
