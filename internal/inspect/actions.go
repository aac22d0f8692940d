// Package inspect holds the CLI actions of the prism-doccore tool. The tool
// is a thin consumer of the parsing libraries: it reads local files, runs a
// parse or style computation and prints the result.
package inspect

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/Hamish-Leahy/Prism-sub000/models"
	"github.com/Hamish-Leahy/Prism-sub000/pkg/cssparser"
	"github.com/Hamish-Leahy/Prism-sub000/pkg/htmlparser"
	"github.com/Hamish-Leahy/Prism-sub000/pkg/styler"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// HTMLAction parses an HTML file into a DocumentModel and prints it.
func HTMLAction(c *cli.Context) error {
	logger := newLogger(c)

	raw, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read HTML file: %w", err)
	}

	opts := htmlparser.Options{
		Readability:    c.Bool("readability"),
		Keywords:       c.Int("keywords"),
		DetectLanguage: !c.Bool("no-detect-language"),
	}
	logger.Info("Parsing HTML document",
		"file", c.String("file"),
		"base_url", c.String("base-url"),
		"readability", opts.Readability)

	model := htmlparser.ParseWithOptions(string(raw), c.String("base-url"), opts)
	logger.Info("Parsed document",
		"elements", model.Performance.DOMElements,
		"links", len(model.Links),
		"headings", len(model.Structure.Headings))

	return printResult(c, model)
}

// CSSAction parses a CSS file into a Stylesheet and prints it.
func CSSAction(c *cli.Context) error {
	logger := newLogger(c)

	raw, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read CSS file: %w", err)
	}

	sheet := cssparser.Parse(string(raw), c.String("base-url"))
	logger.Info("Parsed stylesheet",
		"rules", sheet.Stats.RuleCount,
		"selectors", sheet.Stats.SelectorCount,
		"declarations", sheet.Stats.DeclarationCount)

	if n := c.Int("top-properties"); n > 0 {
		for _, line := range cssparser.TopProperties(sheet, n) {
			fmt.Fprintln(os.Stderr, line)
		}
	}

	return printResult(c, sheet)
}

// StyleAction computes the style of one element described by flags against a
// CSS file and prints the collapsed property map.
func StyleAction(c *cli.Context) error {
	logger := newLogger(c)

	raw, err := os.ReadFile(c.String("css"))
	if err != nil {
		return fmt.Errorf("failed to read CSS file: %w", err)
	}
	sheet := cssparser.Parse(string(raw), c.String("base-url"))

	el, err := elementFromFlags(c)
	if err != nil {
		return err
	}

	computed, err := styler.Compute(sheet, el, nil)
	if err != nil {
		return fmt.Errorf("failed to compute style: %w", err)
	}
	logger.Info("Computed style", "tag", el.TagName, "properties", len(computed))

	if c.Bool("provenance") {
		return printResult(c, computed)
	}
	return printResult(c, computed.Values())
}

// elementFromFlags assembles the ElementDescriptor from --tag, --id,
// --class and repeatable --attr key=value flags.
func elementFromFlags(c *cli.Context) (models.ElementDescriptor, error) {
	el := models.ElementDescriptor{
		TagName: c.String("tag"),
		ID:      c.String("id"),
	}

	if classes := c.String("class"); classes != "" {
		for _, cls := range strings.Split(classes, ",") {
			if cls = strings.TrimSpace(cls); cls != "" {
				el.ClassList = append(el.ClassList, cls)
			}
		}
	}

	for _, pair := range c.StringSlice("attr") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || strings.TrimSpace(kv[0]) == "" {
			return el, fmt.Errorf("invalid attr flag %q, expected key=value", pair)
		}
		if el.Attributes == nil {
			el.Attributes = map[string]string{}
		}
		el.Attributes[strings.TrimSpace(kv[0])] = kv[1]
	}

	return el, nil
}

// printResult marshals v as indented JSON (default) or YAML to stdout.
func printResult(c *cli.Context, v any) error {
	var (
		data []byte
		err  error
	)
	if strings.ToLower(c.String("format")) == "yaml" {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
