package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/glosslabs/gloss/pkg/review"
	"github.com/glosslabs/gloss/pkg/watch"
	"github.com/urfave/cli/v2"
)

func watchCmd() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Aliases:   []string{"w"},
		Usage:     "Re-review files as they change",
		ArgsUsage: "[path]",
		Description: `Watches the given directory (default ".") and reviews each supported
file when it is written. Output always goes to the terminal in text
form; use the batch command for machine-readable results.`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "debounce",
				Aliases: []string{"d"},
				Value:   500 * time.Millisecond,
				Usage:   "Wait this long after the last write before reviewing",
			},
		},
		Action: runWatchCmd,
	}
}

func runWatchCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	path := c.Args().First()
	if path == "" {
		path = "."
	}
	if info, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot access %s: %w", path, err)
	} else if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}

	watcher, err := watch.NewWatcher(path, cfg, c.Duration("debounce"))
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Stop()

	reviewer := newReviewer(cfg)
	watcher.SetCallback(func(changed string) {
		data, err := os.ReadFile(changed)
		if err != nil {
			color.Red("failed to read %s: %v", changed, err)
			return
		}

		result, err := reviewer.Review(string(data))
		if err != nil {
			if review.IsEmptyInput(err) {
				color.Yellow("%s is empty, skipping", changed)
				return
			}
			color.Red("failed to review %s: %v", changed, err)
			return
		}

		fmt.Println(result.Explanation)
		for _, adv := range result.Advisories {
			fmt.Printf("  [%s] %s\n", adv.Severity, adv.Message)
		}
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := watcher.Start(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
