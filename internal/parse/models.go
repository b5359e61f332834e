package parse

import (
	"github.com/dtnitsch/product-page-parser/models"
	"github.com/dtnitsch/product-page-parser/pkg/detector"
)

type Job struct {
	Input string
}

// Result holds the outcome of a processed job.
type Result struct {
	Input         string
	FilePath      string
	Result        *models.ParseResult
	Report        *detector.Report
	Data          interface{} // result after field filtering
	Output        []byte      // Data marshalled in the requested format
	Error         error
	ErrorType     string
	ContentHash   string
	FileSizeBytes int64
}

// ResultOutput is the structured output for a single input when several
// inputs are printed together.
type ResultOutput struct {
	Input     string      `json:"input" yaml:"input"`
	FilePath  string      `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	Status    string      `json:"status" yaml:"status"`
	Error     string      `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType string      `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Data      interface{} `json:"data,omitempty" yaml:"data,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string         `json:"status" yaml:"status"`
	Results []ResultOutput `json:"results" yaml:"results"`
	Stats   Stats          `json:"stats" yaml:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalInputs      int     `json:"total_inputs" yaml:"total_inputs"`
	Successful       int     `json:"successful" yaml:"successful"`
	Failed           int     `json:"failed" yaml:"failed"`
	TotalTimeSeconds float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
}
