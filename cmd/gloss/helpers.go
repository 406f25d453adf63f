package main

import (
	"fmt"
	"io"
	"os"

	"github.com/glosslabs/gloss/internal/output"
	"github.com/glosslabs/gloss/pkg/analyzer/advice"
	"github.com/glosslabs/gloss/pkg/config"
	"github.com/glosslabs/gloss/pkg/review"
	"github.com/urfave/cli/v2"
)

// loadConfig loads the config named by --config, or searches the standard
// locations.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return cfg, nil
	}
	return config.LoadOrDefault(), nil
}

// newFormatter builds the output formatter from the global flags.
func newFormatter(c *cli.Context, cfg *config.Config) (*output.Formatter, error) {
	format := c.String("format")
	if !c.IsSet("format") && cfg.Output.Format != "" {
		format = cfg.Output.Format
	}
	return output.NewFormatter(output.ParseFormat(format), c.String("output"), cfg.Output.Color)
}

// newReviewer builds a reviewer honoring the configured thresholds.
func newReviewer(cfg *config.Config) *review.Reviewer {
	return review.New(review.WithAdvisor(
		advice.New(advice.WithLongFunctionThreshold(cfg.Thresholds.LongFunctionLines)),
	))
}

// readSnippet reads the snippet from the first positional argument (a file
// path, or "-" for stdin) or from stdin when no argument is given.
func readSnippet(c *cli.Context) (string, error) {
	arg := c.Args().First()
	if arg == "" || arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", arg, err)
	}
	return string(data), nil
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
