package manifest

// SummaryManifest gives a lightweight overview of a batch parse run:
// one entry per input with its status and a few headline numbers, so the
// per-page files do not have to be opened to see what happened.
type SummaryManifest struct {
	GeneratedAt string         `json:"generated_at" yaml:"generated_at"`
	TotalInputs int            `json:"total_inputs" yaml:"total_inputs"`
	Successful  int            `json:"successful" yaml:"successful"`
	Failed      int            `json:"failed" yaml:"failed"`
	TopTerms    []string       `json:"top_terms,omitempty" yaml:"top_terms,omitempty"` // "term:count" over tags and meta keywords
	Results     []InputSummary `json:"results" yaml:"results"`
}

// InputSummary represents summary information for a single input document.
type InputSummary struct {
	Input          string   `json:"input" yaml:"input"`
	FilePath       string   `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	Status         string   `json:"status" yaml:"status"` // "success" or "error"
	ErrorType      string   `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	ErrorMessage   string   `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	SizeBytes      int64    `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
	ContentHash    string   `json:"content_hash,omitempty" yaml:"content_hash,omitempty"`
	ProductID      string   `json:"product_id,omitempty" yaml:"product_id,omitempty"`
	ProductName    string   `json:"product_name,omitempty" yaml:"product_name,omitempty"`
	ImageCount     int      `json:"image_count,omitempty" yaml:"image_count,omitempty"`
	OfferCount     int      `json:"offer_count,omitempty" yaml:"offer_count,omitempty"`
	ReviewCount    int      `json:"review_count,omitempty" yaml:"review_count,omitempty"`
	AverageRating  float64  `json:"average_rating,omitempty" yaml:"average_rating,omitempty"`
	MissingMarkers []string `json:"missing_markers,omitempty" yaml:"missing_markers,omitempty"`
}
