package parse

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/product-page-parser/internal/common"
	"github.com/dtnitsch/product-page-parser/pkg/detector"
	"github.com/dtnitsch/product-page-parser/pkg/parser"
	"github.com/dtnitsch/product-page-parser/pkg/storage"
)

// runOptions carries the per-run settings every worker needs.
type runOptions struct {
	workers   int
	format    string
	fields    string
	outputDir string
}

type job struct {
	Job
	index      int
	outputPath string
}

// run parses every input with a pool of workers. Results come back in
// input order. The error is non-nil when at least one input failed.
func run(logger *slog.Logger, inputs []string, p *parser.Parser, s *storage.Storage, opts runOptions) ([]Result, error) {
	workerCount := opts.workers
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(inputs) {
		workerCount = len(inputs)
	}

	logger.Info("Starting parse phase", "input_count", len(inputs), "workers", workerCount, "format", opts.format)
	var wg sync.WaitGroup
	jobs := make(chan job, len(inputs))
	results := make(chan indexedResult, len(inputs))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, p, s, opts, &wg, jobs, results)
	}

	paths := outputPaths(inputs, opts)
	for i, input := range inputs {
		jobs <- job{Job: Job{Input: input}, index: i, outputPath: paths[i]}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All parse workers finished")

	allResults := make([]Result, len(inputs))
	var runErr error
	for r := range results {
		allResults[r.index] = r.Result
		if r.Error != nil {
			runErr = fmt.Errorf("one or more inputs failed")
		}
	}
	return allResults, runErr
}

type indexedResult struct {
	Result
	index int
}

func worker(id int, logger *slog.Logger, p *parser.Parser, s *storage.Storage, opts runOptions, wg *sync.WaitGroup, jobs <-chan job, results chan<- indexedResult) {
	defer wg.Done()
	for j := range jobs {
		logger.Debug("Worker started job", "worker_id", id, "input", j.Input)
		result := processInput(id, logger, j, p, s, opts)
		if result.Error != nil {
			logger.Error("Input failed", "worker_id", id, "input", j.Input, "error_type", result.ErrorType, "error", result.Error)
		} else {
			logger.Info("Worker finished processing", "worker_id", id, "input", j.Input)
		}
		results <- indexedResult{Result: result, index: j.index}
	}
}

func processInput(id int, logger *slog.Logger, j job, p *parser.Parser, s *storage.Storage, opts runOptions) Result {
	result := Result{Input: j.Input}

	rawHTML, err := s.ReadInput(j.Input)
	if err != nil {
		result.Error = err
		result.ErrorType = "read_error"
		return result
	}
	result.ContentHash = common.ContentHash(rawHTML)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rawHTML))
	if err != nil {
		result.Error = fmt.Errorf("failed to read document: %w", err)
		result.ErrorType = "parse_error"
		return result
	}

	report := detector.Inspect(doc)
	report.Source = j.Input
	result.Report = report
	for _, name := range report.MissingRequired() {
		logger.Warn("Required marker missing", "worker_id", id, "input", j.Input, "marker", name)
	}
	if !report.PriceMatched {
		logger.Warn("Price block not recognised, price fields left empty", "worker_id", id, "input", j.Input)
	}

	result.Result = p.ParseDocument(doc)

	filtered, err := common.FilterResultFields(result.Result, opts.fields)
	if err != nil {
		result.Error = err
		result.ErrorType = "marshal_error"
		return result
	}
	data, err := common.Marshal(filtered, opts.format)
	if err != nil {
		result.Error = fmt.Errorf("failed to marshal result: %w", err)
		result.ErrorType = "marshal_error"
		return result
	}
	result.Data = filtered
	result.Output = data
	result.FileSizeBytes = int64(len(data))

	if j.outputPath != "" {
		if err := s.SaveFile(j.outputPath, data); err != nil {
			result.Error = err
			result.ErrorType = "save_error"
			return result
		}
		result.FilePath = j.outputPath
	}

	return result
}

// outputPaths assigns each input a file under opts.outputDir, adding a
// numeric suffix when two inputs share a base name.
func outputPaths(inputs []string, opts runOptions) []string {
	paths := make([]string, len(inputs))
	if opts.outputDir == "" {
		return paths
	}

	used := make(map[string]int)
	for i, input := range inputs {
		name := common.OutputName(input, opts.format)
		used[name]++
		if n := used[name]; n > 1 {
			ext := filepath.Ext(name)
			name = strings.TrimSuffix(name, ext) + "-" + strconv.Itoa(n) + ext
		}
		paths[i] = filepath.Join(opts.outputDir, name)
	}
	return paths
}
