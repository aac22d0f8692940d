package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Hamish-Leahy/Prism-sub000/internal/inspect"
)

func main() {
	app := &cli.App{
		Name:  "prism-doccore",
		Usage: "inspect HTML documents, stylesheets and computed styles",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "html",
				Usage:  "parse an HTML file into a document model",
				Action: inspect.HTMLAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Required: true, Usage: "path to the HTML file"},
					&cli.StringFlag{Name: "base-url", Usage: "base URL for reference resolution"},
					&cli.StringFlag{Name: "format", Value: "json", Usage: "output format: json or yaml"},
					&cli.BoolFlag{Name: "readability", Usage: "attach readability enrichment"},
					&cli.IntFlag{Name: "keywords", Usage: "mine the top-N content keywords"},
					&cli.BoolFlag{Name: "no-detect-language", Usage: "skip the language detection fallback"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
			},
			{
				Name:   "css",
				Usage:  "parse a CSS file into a stylesheet model",
				Action: inspect.CSSAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Required: true, Usage: "path to the CSS file"},
					&cli.StringFlag{Name: "base-url", Usage: "base URL for @import resolution"},
					&cli.StringFlag{Name: "format", Value: "json", Usage: "output format: json or yaml"},
					&cli.IntFlag{Name: "top-properties", Usage: "report the N most used properties"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
			},
			{
				Name:   "style",
				Usage:  "compute the style of one element against a CSS file",
				Action: inspect.StyleAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "css", Required: true, Usage: "path to the CSS file"},
					&cli.StringFlag{Name: "base-url", Usage: "base URL for @import resolution"},
					&cli.StringFlag{Name: "tag", Required: true, Usage: "element tag name"},
					&cli.StringFlag{Name: "id", Usage: "element id"},
					&cli.StringFlag{Name: "class", Usage: "comma-separated class list"},
					&cli.StringSliceFlag{Name: "attr", Usage: "element attribute as key=value (repeatable)"},
					&cli.StringFlag{Name: "format", Value: "json", Usage: "output format: json or yaml"},
					&cli.BoolFlag{Name: "provenance", Usage: "include cascade provenance per property"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
