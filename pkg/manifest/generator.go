package manifest

import (
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/dtnitsch/product-page-parser/models"
	"github.com/dtnitsch/product-page-parser/pkg/detector"
	"github.com/dtnitsch/product-page-parser/pkg/mapreduce"
	"github.com/dtnitsch/product-page-parser/pkg/storage"
	"gopkg.in/yaml.v3"
)

// InputResult is the outcome of parsing one input.
// It is passed in by the parse command to avoid an import cycle.
type InputResult struct {
	Input         string
	FilePath      string
	Result        *models.ParseResult
	Report        *detector.Report
	Error         error
	ErrorType     string
	ContentHash   string
	FileSizeBytes int64
}

// topTermsLimit caps SummaryManifest.TopTerms.
const topTermsLimit = 25

// Build aggregates results into a manifest stamped with now.
func Build(results []InputResult, now time.Time) SummaryManifest {
	manifest := SummaryManifest{
		GeneratedAt: now.Format(time.RFC3339),
		TotalInputs: len(results),
		Results:     make([]InputSummary, 0, len(results)),
	}
	var termCounts []map[string]int

	for _, result := range results {
		summary := InputSummary{
			Input:       result.Input,
			ContentHash: result.ContentHash,
		}

		if result.Error != nil {
			manifest.Failed++
			summary.Status = "error"
			summary.ErrorType = result.ErrorType
			summary.ErrorMessage = result.Error.Error()
		} else {
			manifest.Successful++
			summary.Status = "success"
			summary.FilePath = result.FilePath
			summary.SizeBytes = result.FileSizeBytes

			if r := result.Result; r != nil {
				summary.ProductID = r.Product.ID
				summary.ProductName = r.Product.Name
				summary.ImageCount = len(r.Product.Images)
				summary.OfferCount = len(r.Suggested)
				summary.ReviewCount = len(r.Reviews)
				summary.AverageRating = averageRating(r.Reviews)
				termCounts = append(termCounts, mapreduce.Map(r))
			}
		}
		if result.Report != nil {
			summary.MissingMarkers = result.Report.Missing()
		}

		manifest.Results = append(manifest.Results, summary)
	}

	manifest.TopTerms = mapreduce.TopTerms(mapreduce.Reduce(termCounts), topTermsLimit)
	return manifest
}

// GenerateSummary builds the manifest and writes it to
// dir/summary-<date>.<format>. Returns the path written.
func GenerateSummary(results []InputResult, dir, format string, s *storage.Storage) (string, error) {
	now := time.Now()
	manifest := Build(results, now)

	var data []byte
	var err error
	switch format {
	case "yaml":
		data, err = yaml.Marshal(manifest)
	default:
		format = "json"
		data, err = json.MarshalIndent(manifest, "", "  ")
	}
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	manifestPath := filepath.Join(dir, fmt.Sprintf("summary-%s.%s", now.Format("2006-01-02"), format))
	if err := s.SaveFile(manifestPath, data); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}

	return manifestPath, nil
}

// averageRating is rounded to two decimals; zero when there are no reviews.
func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return math.Round(float64(total)/float64(len(reviews))*100) / 100
}
