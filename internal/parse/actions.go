package parse

import (
	"fmt"
	"strings"
	"time"

	"github.com/dtnitsch/product-page-parser/internal/common"
	"github.com/dtnitsch/product-page-parser/models"
	"github.com/dtnitsch/product-page-parser/pkg/detector"
	"github.com/dtnitsch/product-page-parser/pkg/manifest"
	"github.com/dtnitsch/product-page-parser/pkg/parser"
	"github.com/dtnitsch/product-page-parser/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Command returns the "parse" CLI command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Extract product data from saved product pages",
		ArgsUsage: "[FILE|DIR|-]...",
		Flags: append(common.SharedFlags(),
			&cli.StringSliceFlag{Name: "input", Aliases: []string{"i"}, Usage: "HTML file, directory of *.html files, or - for stdin (repeatable)"},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "number of concurrent parse workers", EnvVars: []string{"PPP_WORKERS"}},
			&cli.StringFlag{Name: "sections", Usage: "sections to extract: meta,product,suggested,reviews or all", EnvVars: []string{"PPP_SECTIONS"}},
			&cli.StringFlag{Name: "fields", Usage: "top-level fields to print, e.g. product,reviews"},
			&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Usage: "write one file per input plus a summary manifest here", EnvVars: []string{"PPP_OUTPUT_DIR"}},
			&cli.BoolFlag{Name: "detect-language", Usage: "guess the page language when <html lang> is missing", EnvVars: []string{"PPP_DETECT_LANGUAGE"}},
			&cli.StringSliceFlag{Name: "languages", Usage: "ISO 639-1 candidates for --detect-language (default: all)"},
		),
		Action: ParseAction,
	}
}

// ParseAction runs the parse command. Exit codes: 0 all inputs parsed,
// 1 some failed or bad usage, 2 all failed or setup error.
func ParseAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	startTime := time.Now()

	config, err := common.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return cli.Exit("", 2)
	}
	applyFlags(c, config)
	if err := config.Validate(); err != nil {
		fmt.Fprintf(c.App.ErrWriter, "Error: %s\n", err)
		return cli.Exit("", 1)
	}

	fields := c.String("fields")
	if _, err := common.FilterResultFields(models.NewParseResult(), fields); err != nil {
		fmt.Fprintf(c.App.ErrWriter, "Error: %s\n", err)
		return cli.Exit("", 1)
	}

	inputs, err := common.ExpandInputs(config.Inputs)
	if err != nil {
		fmt.Fprintf(c.App.ErrWriter, "Error: %s\n", err)
		return cli.Exit("", 1)
	}
	if len(inputs) == 0 {
		fmt.Fprintln(c.App.ErrWriter, "Error: No inputs provided")
		fmt.Fprintln(c.App.ErrWriter, "")
		fmt.Fprintln(c.App.ErrWriter, "Usage:")
		fmt.Fprintln(c.App.ErrWriter, `  product-page-parser parse page.html`)
		fmt.Fprintln(c.App.ErrWriter, `  product-page-parser parse --output-dir results pages/`)
		fmt.Fprintln(c.App.ErrWriter, `  curl -s https://shop.example/item | product-page-parser parse -`)
		return cli.Exit("", 1)
	}

	sections, _ := models.ParseSections(config.Sections)
	p := &parser.Parser{Sections: sections}
	if config.DetectLanguage {
		languageDetector, err := detector.NewLanguageDetector(config.Languages)
		if err != nil {
			logger.Error("failed to build language detector", "error", err)
			return cli.Exit("", 2)
		}
		p.Language = languageDetector
	}
	logger.Info("Parse settings", "sections", config.Sections, "format", config.Format, "detect_language", config.DetectLanguage)

	s := &storage.Storage{Stdin: c.App.Reader}
	opts := runOptions{
		workers:   config.WorkerCount,
		format:    config.Format,
		fields:    fields,
		outputDir: config.OutputDir,
	}
	results, runErr := run(logger, inputs, p, s, opts)

	stats := Stats{
		TotalInputs:      len(results),
		TotalTimeSeconds: time.Since(startTime).Seconds(),
	}
	for _, r := range results {
		if r.Error != nil {
			stats.Failed++
		} else {
			stats.Successful++
		}
	}

	switch {
	case config.OutputDir != "":
		manifestPath, err := manifest.GenerateSummary(toManifestResults(results), config.OutputDir, config.Format, s)
		if err != nil {
			logger.Error("Error generating summary manifest", "error", err)
			return cli.Exit("", 2)
		}
		fmt.Fprintf(c.App.Writer, "Parsed %d/%d inputs\nSummary manifest saved to: %s\n", stats.Successful, stats.TotalInputs, manifestPath)
	case len(results) == 1 && results[0].Error == nil:
		fmt.Fprintln(c.App.Writer, strings.TrimRight(string(results[0].Output), "\n"))
	default:
		final := buildFinalOutput(results, stats, runErr)
		data, err := common.Marshal(final, config.Format)
		if err != nil {
			logger.Error("failed to marshal final output", "error", err)
			return cli.Exit("", 2)
		}
		fmt.Fprintln(c.App.Writer, strings.TrimRight(string(data), "\n"))
	}

	if stats.Failed == stats.TotalInputs {
		return cli.Exit("", 2)
	}
	if stats.Failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// applyFlags lets explicitly set flags and arguments override the config file.
func applyFlags(c *cli.Context, config *models.Config) {
	config.Inputs = append(config.Inputs, c.StringSlice("input")...)
	config.Inputs = append(config.Inputs, c.Args().Slice()...)

	if c.IsSet("workers") {
		config.WorkerCount = c.Int("workers")
	}
	if c.IsSet("format") {
		config.Format = strings.ToLower(c.String("format"))
	}
	if c.IsSet("sections") {
		config.Sections = c.String("sections")
	}
	if c.IsSet("output-dir") {
		config.OutputDir = c.String("output-dir")
	}
	if c.IsSet("detect-language") {
		config.DetectLanguage = c.Bool("detect-language")
	}
	if c.IsSet("languages") {
		config.Languages = c.StringSlice("languages")
	}
}

func buildFinalOutput(results []Result, stats Stats, runErr error) FinalOutput {
	final := FinalOutput{
		Status:  "success",
		Results: make([]ResultOutput, 0, len(results)),
		Stats:   stats,
	}
	if runErr != nil {
		final.Status = "partial_failure"
	}

	for _, r := range results {
		out := ResultOutput{Input: r.Input, FilePath: r.FilePath}
		if r.Error != nil {
			out.Status = "failed"
			out.Error = r.Error.Error()
			out.ErrorType = r.ErrorType
		} else {
			out.Status = "success"
			out.Data = r.Data
		}
		final.Results = append(final.Results, out)
	}
	return final
}

// toManifestResults converts Result types to manifest.InputResult.
// This adapter prevents a dependency from pkg/manifest on this package.
func toManifestResults(results []Result) []manifest.InputResult {
	out := make([]manifest.InputResult, len(results))
	for i, r := range results {
		out[i] = manifest.InputResult{
			Input:         r.Input,
			FilePath:      r.FilePath,
			Result:        r.Result,
			Report:        r.Report,
			Error:         r.Error,
			ErrorType:     r.ErrorType,
			ContentHash:   r.ContentHash,
			FileSizeBytes: r.FileSizeBytes,
		}
	}
	return out
}
