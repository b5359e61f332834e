package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dtnitsch/product-page-parser/internal/check"
	"github.com/dtnitsch/product-page-parser/internal/parse"
	"github.com/dtnitsch/product-page-parser/pkg/help"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "product-page-parser",
		Usage: "Extract product, offer and review data from saved product pages",
		Commands: []*cli.Command{
			parse.Command(),
			check.Command(),
			{
				Name:  "quickstart",
				Usage: "Print a quick start guide",
				Action: func(c *cli.Context) error {
					fmt.Fprint(c.App.Writer, help.QuickstartYAML)
					return nil
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
