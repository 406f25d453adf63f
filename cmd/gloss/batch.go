package main

import (
	"fmt"
	"os"

	"github.com/glosslabs/gloss/internal/output"
	"github.com/glosslabs/gloss/internal/progress"
	"github.com/glosslabs/gloss/internal/scanner"
	"github.com/glosslabs/gloss/pkg/config"
	"github.com/glosslabs/gloss/pkg/review"
	"github.com/urfave/cli/v2"
)

func batchCmd() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Aliases:   []string{"b"},
		Usage:     "Review every Python and JavaScript file under the given paths",
		ArgsUsage: "[paths...]",
		Description: `Walks the given directories (default "."), skipping excluded and
gitignored paths, and reviews each supported file. Files with identical
contents are analyzed once; later copies reference the first.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Worker pool size (0 = 2x CPU count)",
			},
			&cli.BoolFlag{
				Name:  "full",
				Usage: "Include the full review for each file in json/toon output",
			},
		},
		Action: runBatchCmd,
	}
}

func runBatchCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	paths := c.Args().Slice()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectFiles(cfg, paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no supported files found under %v", paths)
	}

	files, oversized := scanner.FilterBySize(files, cfg.Batch.MaxFileSize)

	workers := cfg.Batch.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}

	tracker := progress.NewTracker("Reviewing files", len(files))
	batch := review.NewBatch(
		review.WithWorkers(workers),
		review.WithReviewer(newReviewer(cfg)),
	)
	analysis := batch.Run(files, tracker.Tick)
	tracker.FinishSuccess()

	if !c.Bool("full") {
		for i := range analysis.Files {
			analysis.Files[i].Review = nil
		}
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if err := formatter.Output(batchReport(analysis)); err != nil {
		return err
	}

	if oversized > 0 && formatter.Format() == output.FormatText {
		formatter.Warning("Skipped %d file(s) over %d bytes", oversized, cfg.Batch.MaxFileSize)
	}
	return nil
}

// collectFiles expands the given paths into the list of reviewable files.
// Directories are walked; explicit file arguments bypass the dialect and
// exclusion filters only when named directly.
func collectFiles(cfg *config.Config, paths []string) ([]string, error) {
	sc := scanner.New(cfg)

	var files []string
	seen := make(map[string]bool)
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := sc.ScanDir(path)
			if err != nil {
				return nil, fmt.Errorf("failed to scan %s: %w", path, err)
			}
			for _, f := range found {
				if !seen[f] {
					seen[f] = true
					files = append(files, f)
				}
			}
			continue
		}

		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}
	return files, nil
}

// batchReport renders a batch analysis as a table plus summary.
func batchReport(analysis *review.BatchAnalysis) *output.Report {
	rows := make([][]string, 0, len(analysis.Files))
	for _, f := range analysis.Files {
		note := f.DuplicateOf
		if note != "" {
			note = "dup of " + note
		}
		rows = append(rows, []string{
			truncate(f.Path, 60),
			fmt.Sprintf("%d", f.Functions),
			fmt.Sprintf("%d", f.Advisories),
			note,
		})
	}

	s := analysis.Summary
	table := output.NewTable(
		"",
		[]string{"File", "Functions", "Advisories", "Notes"},
		rows,
		[]string{
			fmt.Sprintf("Total: %d", s.TotalFiles),
			fmt.Sprintf("%d", s.TotalFunctions),
			"",
			"",
		},
		nil,
	)

	summary := &output.Section{
		Title: "Summary",
		Content: fmt.Sprintf(
			"Analyzed %d of %d file(s): %d duplicate(s), %d skipped.\nFunctions per file: mean %.2f, stddev %.2f.",
			s.AnalyzedFiles, s.TotalFiles, s.DuplicateFiles, s.SkippedFiles,
			s.MeanFunctions, s.StdDevFunctions,
		),
	}

	return &output.Report{
		Title:    "Batch Review",
		Sections: []output.Renderable{table, summary},
		Data:     analysis,
	}
}
