package main

import (
	"fmt"

	"github.com/glosslabs/gloss/internal/output"
	"github.com/glosslabs/gloss/pkg/review"
	"github.com/urfave/cli/v2"
)

func reviewCmd() *cli.Command {
	return &cli.Command{
		Name:      "review",
		Aliases:   []string{"rv"},
		Usage:     "Explain a snippet, suggest improvements, and draft docs",
		ArgsUsage: "[file]",
		Description: `Reads a snippet from the given file, or from stdin when no file
(or "-") is given, and prints all three analysis artifacts.`,
		Action: runReviewCmd,
	}
}

func runReviewCmd(c *cli.Context) error {
	result, err := analyzeSnippet(c)
	if err != nil {
		return err
	}

	formatter, err := newFormatterFor(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	report := &output.Report{
		Title: "Snippet Review",
		Sections: []output.Renderable{
			signatureTable(result),
			&output.Section{Title: "Explanation", Content: result.Explanation},
			&output.Section{Title: "Suggestions", Content: result.Suggestions},
			&output.Section{Title: "Documentation", Content: result.Documentation},
			&output.Section{Title: "Snippet", Content: result.Input},
		},
		Data: result,
	}
	if err := formatter.Output(report); err != nil {
		return err
	}

	if c.Bool("verbose") && formatter.Format() == output.FormatText {
		tokens := output.EstimateTokens(
			result.Explanation + result.Suggestions + result.Documentation,
		)
		formatter.Info("Artifacts are roughly %s tokens of context", output.FormatTokenCount(tokens))
	}
	return nil
}

func explainCmd() *cli.Command {
	return &cli.Command{
		Name:      "explain",
		Aliases:   []string{"ex"},
		Usage:     "Describe the functions defined in a snippet",
		ArgsUsage: "[file]",
		Action:    runExplainCmd,
	}
}

func runExplainCmd(c *cli.Context) error {
	result, err := analyzeSnippet(c)
	if err != nil {
		return err
	}

	formatter, err := newFormatterFor(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	report := &output.Report{
		Title: "Explanation",
		Sections: []output.Renderable{
			signatureTable(result),
			&output.Section{Content: result.Explanation},
		},
		Data: map[string]any{
			"explanation": result.Explanation,
			"signatures":  result.Signatures,
		},
	}
	return formatter.Output(report)
}

func suggestCmd() *cli.Command {
	return &cli.Command{
		Name:      "suggest",
		Aliases:   []string{"sg"},
		Usage:     "Run the heuristic checks and print advisories",
		ArgsUsage: "[file]",
		Action:    runSuggestCmd,
	}
}

func runSuggestCmd(c *cli.Context) error {
	result, err := analyzeSnippet(c)
	if err != nil {
		return err
	}

	formatter, err := newFormatterFor(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	for _, adv := range result.Advisories {
		severity := string(adv.Severity)
		if formatter.Colored() && formatter.Format() == output.FormatText {
			severity = output.SeverityColor(severity, severity)
		}
		rows = append(rows, []string{string(adv.Kind), severity, adv.Message})
	}

	table := output.NewTable(
		"Suggestions",
		[]string{"Kind", "Severity", "Advisory"},
		rows,
		[]string{fmt.Sprintf("Total: %d", len(result.Advisories)), "", ""},
		map[string]any{
			"suggestions": result.Suggestions,
			"advisories":  result.Advisories,
		},
	)
	return formatter.Output(table)
}

func docCmd() *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Aliases:   []string{"docs"},
		Usage:     "Generate a documentation skeleton for a snippet",
		ArgsUsage: "[file]",
		Action:    runDocCmd,
	}
}

func runDocCmd(c *cli.Context) error {
	result, err := analyzeSnippet(c)
	if err != nil {
		return err
	}

	formatter, err := newFormatterFor(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	report := &output.Report{
		Title: "Documentation",
		Sections: []output.Renderable{
			&output.Section{Content: result.Documentation},
		},
		Data: map[string]any{
			"documentation": result.Documentation,
		},
	}
	return formatter.Output(report)
}

// analyzeSnippet reads the snippet per the CLI contract and runs the full
// review with the configured thresholds.
func analyzeSnippet(c *cli.Context) (*review.Review, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	text, err := readSnippet(c)
	if err != nil {
		return nil, err
	}

	result, err := newReviewer(cfg).Review(text)
	if err != nil {
		return nil, fmt.Errorf("nothing to analyze: %w", err)
	}
	return result, nil
}

// newFormatterFor rebuilds the config and formatter for a command.
func newFormatterFor(c *cli.Context) (*output.Formatter, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return newFormatter(c, cfg)
}

// signatureTable renders the discovered signatures as a table.
func signatureTable(result *review.Review) *output.Table {
	var rows [][]string
	for _, sig := range result.Signatures {
		rows = append(rows, []string{
			sig.Name,
			string(sig.Dialect),
			string(sig.Form),
			truncate(sig.Params, 40),
		})
	}

	return output.NewTable(
		"Functions",
		[]string{"Name", "Dialect", "Form", "Params"},
		rows,
		[]string{fmt.Sprintf("Total: %d", len(result.Signatures)), "", "", ""},
		result.Signatures,
	)
}
