package detector

import (
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
)

func loadDocument(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return doc
}

func TestInspect_ConformingPage(t *testing.T) {
	data, err := os.ReadFile("../parser/testdata/product.html")
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	report := Inspect(loadDocument(t, string(data)))
	if !report.Conforms() {
		t.Errorf("Conforms() = false, missing required %v, price matched %v", report.MissingRequired(), report.PriceMatched)
	}
	if missing := report.Missing(); len(missing) != 0 {
		t.Errorf("Missing() = %v, want none", missing)
	}
	if report.Confidence != 10 {
		t.Errorf("Confidence = %v, want 10", report.Confidence)
	}

	counts := map[string]int{}
	for _, m := range report.Markers {
		counts[m.Name] = m.Count
	}
	if counts["gallery"] != 3 || counts["reviews"] != 2 || counts["suggested"] != 2 {
		t.Errorf("counts = %v, want gallery=3 reviews=2 suggested=2", counts)
	}
}

func TestInspect_MissingMarkers(t *testing.T) {
	report := Inspect(loadDocument(t, `<html><head><title>Shop</title></head><body>
<div class="product"><h1>Thing</h1><div class="price">нет цены</div></div>
</body></html>`))

	if report.Conforms() {
		t.Error("Conforms() = true, want false")
	}
	if report.PriceMatched {
		t.Error("PriceMatched = true, want false")
	}

	want := []string{"gallery", "displayed_image"}
	if diff := cmp.Diff(want, report.MissingRequired()); diff != "" {
		t.Errorf("MissingRequired() mismatch (-want +got):\n%s", diff)
	}

	missing := report.Missing()
	if len(missing) != len(Markers)-4 {
		t.Errorf("len(Missing()) = %d, want %d (%v)", len(missing), len(Markers)-4, missing)
	}
}

func TestInspect_EmptyDocument(t *testing.T) {
	report := Inspect(loadDocument(t, ``))
	if report.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", report.Confidence)
	}
	if len(report.Missing()) != len(Markers) {
		t.Errorf("Missing() = %v, want every marker", report.Missing())
	}
}

func TestNewLanguageDetector_Errors(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
	}{
		{name: "unknown code", codes: []string{"en", "xx"}},
		{name: "single language", codes: []string{"ru"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLanguageDetector(tt.codes); err == nil {
				t.Errorf("NewLanguageDetector(%v) error = nil, want error", tt.codes)
			}
		})
	}
}

func TestLanguageDetector_Detect(t *testing.T) {
	d, err := NewLanguageDetector([]string{"en", "ru"})
	if err != nil {
		t.Fatalf("NewLanguageDetector() error = %v", err)
	}

	tests := []struct {
		text string
		want string
	}{
		{text: "Тонкий и лёгкий ноутбук для работы и учёбы", want: "ru"},
		{text: "A thin and light laptop for work and study", want: "en"},
	}

	for _, tt := range tests {
		code, confidence, ok := d.Detect(tt.text)
		if !ok {
			t.Errorf("Detect(%q) ok = false, want true", tt.text)
			continue
		}
		if code != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.text, code, tt.want)
		}
		if confidence <= 0 || confidence > 1 {
			t.Errorf("Detect(%q) confidence = %v, want (0, 1]", tt.text, confidence)
		}
	}
}
