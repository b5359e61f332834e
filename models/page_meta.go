package models

// Meta holds what the document head says about the page.
type Meta struct {
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Keywords    []string  `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Language    string    `json:"language" yaml:"language"` // <html lang>, empty when absent
	OpenGraph   OpenGraph `json:"opengraph" yaml:"opengraph"`
	Title       string    `json:"title,omitempty" yaml:"title,omitempty"`

	// Language fallback (from pkg/detector), only set when <html lang> is empty
	DetectedLanguage   string  `json:"detectedLanguage,omitempty" yaml:"detectedLanguage,omitempty"`
	LanguageConfidence float64 `json:"languageConfidence,omitempty" yaml:"languageConfidence,omitempty"`
}

// OpenGraph carries the og:* link-preview fields.
type OpenGraph struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}
