package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/dtnitsch/product-page-parser/models"
	"github.com/dtnitsch/product-page-parser/pkg/storage"
)

func sampleResults() []InputResult {
	result := models.NewParseResult()
	result.Product.ID = "zen-14"
	result.Product.Name = "Ноутбук"
	result.Product.Images = []models.Photo{{Full: "a"}, {Full: "b"}}
	result.Reviews = []models.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}
	result.Product.Tags.Category = []string{"Ноутбуки"}
	result.Meta.Keywords = []string{"ноутбуки", "zen"}

	return []InputResult{
		{Input: "a.html", FilePath: "out/a.json", Result: result, FileSizeBytes: 120, ContentHash: "abc"},
		{Input: "b.html", Error: errors.New("boom"), ErrorType: "read_error"},
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	m := Build(sampleResults(), now)

	if m.GeneratedAt != "2026-10-19T12:00:00Z" {
		t.Errorf("GeneratedAt = %q", m.GeneratedAt)
	}
	if m.TotalInputs != 2 || m.Successful != 1 || m.Failed != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", m.TotalInputs, m.Successful, m.Failed)
	}

	ok := m.Results[0]
	if ok.Status != "success" || ok.ProductID != "zen-14" || ok.ImageCount != 2 || ok.ReviewCount != 3 {
		t.Errorf("success summary = %+v", ok)
	}
	if ok.AverageRating != 4.33 {
		t.Errorf("AverageRating = %v, want 4.33", ok.AverageRating)
	}

	if got := strings.Join(m.TopTerms, ","); got != "ноутбуки:2,zen:1" {
		t.Errorf("TopTerms = %q, want %q", got, "ноутбуки:2,zen:1")
	}

	failed := m.Results[1]
	if failed.Status != "error" || failed.ErrorType != "read_error" || failed.ErrorMessage != "boom" {
		t.Errorf("error summary = %+v", failed)
	}
}

func TestGenerateSummary_WritesFile(t *testing.T) {
	dir := t.TempDir()
	path, err := GenerateSummary(sampleResults(), dir, "json", &storage.Storage{})
	if err != nil {
		t.Fatalf("GenerateSummary() error = %v", err)
	}
	if !strings.HasSuffix(path, ".json") {
		t.Errorf("path = %q, want .json suffix", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	var m SummaryManifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if m.TotalInputs != 2 {
		t.Errorf("TotalInputs = %d, want 2", m.TotalInputs)
	}
}

func TestGenerateSummary_YAML(t *testing.T) {
	path, err := GenerateSummary(sampleResults(), t.TempDir(), "yaml", &storage.Storage{})
	if err != nil {
		t.Fatalf("GenerateSummary() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	if !strings.Contains(string(data), "total_inputs: 2") {
		t.Errorf("manifest = %s, want total_inputs: 2", data)
	}
}
