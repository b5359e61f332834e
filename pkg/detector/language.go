package detector

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// LanguageDetector wraps a lingua detector restricted to a set of languages.
type LanguageDetector struct {
	detector lingua.LanguageDetector
}

// NewLanguageDetector builds a detector for the given ISO 639-1 codes.
// With no codes every language lingua knows is considered.
func NewLanguageDetector(codes []string) (*LanguageDetector, error) {
	builder := lingua.NewLanguageDetectorBuilder()

	if len(codes) == 0 {
		return &LanguageDetector{detector: builder.FromAllLanguages().Build()}, nil
	}

	languages := make([]lingua.Language, 0, len(codes))
	for _, code := range codes {
		iso := lingua.GetIsoCode639_1FromValue(strings.ToUpper(strings.TrimSpace(code)))
		language := lingua.GetLanguageFromIsoCode639_1(iso)
		if language == lingua.Unknown {
			return nil, fmt.Errorf("unknown language code: %s", code)
		}
		languages = append(languages, language)
	}
	if len(languages) < 2 {
		return nil, fmt.Errorf("at least two languages are required, got %d", len(languages))
	}

	return &LanguageDetector{detector: builder.FromLanguages(languages...).Build()}, nil
}

// Detect returns the lowercase ISO 639-1 code of the most likely language of
// text and lingua's confidence in it.
func (d *LanguageDetector) Detect(text string) (string, float64, bool) {
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", 0, false
	}
	confidence := d.detector.ComputeLanguageConfidence(text, language)
	return strings.ToLower(language.IsoCode639_1().String()), confidence, true
}
