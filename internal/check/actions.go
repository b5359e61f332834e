package check

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/product-page-parser/internal/common"
	"github.com/dtnitsch/product-page-parser/pkg/detector"
	"github.com/dtnitsch/product-page-parser/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Command returns the "check" CLI command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report whether saved pages follow the product-page markup",
		ArgsUsage: "FILE|DIR|-...",
		Flags:     common.SharedFlags(),
		Action:    CheckAction,
	}
}

// CheckOutput is printed by the check command.
type CheckOutput struct {
	Conforming int                `json:"conforming" yaml:"conforming"`
	Total      int                `json:"total" yaml:"total"`
	Reports    []*detector.Report `json:"reports" yaml:"reports"`
}

// CheckAction inspects every input. Exit 1 when any document does not
// conform, 2 when an input cannot be read.
func CheckAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	config, err := common.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return cli.Exit("", 2)
	}
	if c.IsSet("format") {
		config.Format = strings.ToLower(c.String("format"))
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(c.App.ErrWriter, "Error: %s\n", err)
		return cli.Exit("", 1)
	}

	inputs, err := common.ExpandInputs(append(config.Inputs, c.Args().Slice()...))
	if err != nil {
		fmt.Fprintf(c.App.ErrWriter, "Error: %s\n", err)
		return cli.Exit("", 1)
	}
	if len(inputs) == 0 {
		fmt.Fprintln(c.App.ErrWriter, "Error: No inputs provided")
		fmt.Fprintln(c.App.ErrWriter, "Usage: product-page-parser check page.html [page2.html ...]")
		return cli.Exit("", 1)
	}

	s := &storage.Storage{Stdin: c.App.Reader}
	out := CheckOutput{Total: len(inputs), Reports: make([]*detector.Report, 0, len(inputs))}
	for _, input := range inputs {
		data, err := s.ReadInput(input)
		if err != nil {
			logger.Error("failed to read input", "input", input, "error", err)
			return cli.Exit("", 2)
		}
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
		if err != nil {
			logger.Error("failed to read document", "input", input, "error", err)
			return cli.Exit("", 2)
		}

		report := detector.Inspect(doc)
		report.Source = input
		if report.Conforms() {
			out.Conforming++
		} else {
			logger.Warn("Document does not conform", "input", input, "missing", report.MissingRequired(), "price_matched", report.PriceMatched)
		}
		out.Reports = append(out.Reports, report)
	}

	data, err := common.Marshal(out, config.Format)
	if err != nil {
		logger.Error("failed to marshal reports", "error", err)
		return cli.Exit("", 2)
	}
	fmt.Fprintln(c.App.Writer, strings.TrimRight(string(data), "\n"))

	if out.Conforming < out.Total {
		return cli.Exit("", 1)
	}
	return nil
}
