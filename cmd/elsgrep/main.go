// Copyright 2026 Tzofnat Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	"github.com/tzofnat/elsgrep"
	"github.com/tzofnat/elsgrep/core"
	"github.com/tzofnat/elsgrep/corpus"
	"github.com/tzofnat/elsgrep/export"
	"github.com/tzofnat/elsgrep/hebrew"
	"github.com/tzofnat/elsgrep/search"
	"github.com/tzofnat/elsgrep/tui"
)

func main() {
	app := &cli.App{
		Name:  "elsgrep",
		Usage: "Equidistant letter sequence search over Hebrew texts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "fetch",
				Usage:     "Prefetch documents into the local chapter cache",
				ArgsUsage: "[document ...]",
				Action:    fetchCommand,
				Flags: append(libraryFlags(),
					&cli.IntFlag{
						Name:  "fetch-concurrency",
						Usage: "Concurrent chapter fetches per document",
						Value: 4,
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Run one search and print the hits",
				ArgsUsage: "PATTERN",
				Action:    searchCommand,
				Flags: append(libraryFlags(),
					&cli.IntFlag{
						Name:  "skip-min",
						Usage: "Smallest skip to scan",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  "skip-max",
						Usage: "Largest skip to scan",
						Value: 100,
					},
					&cli.BoolFlag{
						Name:  "forward",
						Usage: "Scan forward (positive skips)",
						Value: true,
					},
					&cli.BoolFlag{
						Name:  "backward",
						Usage: "Scan backward (negative skips)",
						Value: true,
					},
					&cli.IntFlag{
						Name:  "max-hits",
						Usage: "Stop after this many hits",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size for parallel skip scanning (0 = sequential)",
					},
					&cli.IntFlag{
						Name:  "pad",
						Usage: "Context letters on each side of a hit",
						Value: search.DefaultContextPad,
					},
					&cli.StringFlag{
						Name:  "csv",
						Usage: "Write hits as CSV to this file instead of styled output",
					},
				),
			},
			{
				Name:   "tui",
				Usage:  "Browse hits interactively",
				Action: tuiCommand,
				Flags: append(libraryFlags(),
					&cli.IntFlag{
						Name:  "skip-min",
						Usage: "Smallest skip to scan",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  "skip-max",
						Usage: "Largest skip to scan",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size for parallel skip scanning (0 = sequential)",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func libraryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to the BadgerDB chapter cache directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "Library API root",
			Value: "https://www.sefaria.org",
		},
		&cli.StringFlag{
			Name:    "corpus",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML corpus catalog (default: the Torah)",
		},
	}
}

func openLibrary(c *cli.Context) (*elsgrep.Library, error) {
	lib, err := elsgrep.OpenLibrary(c.String("db"),
		elsgrep.WithBaseURL(c.String("base-url")))
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	return lib, nil
}

// documents resolves the document list: command arguments win, then the
// catalog flag, then the default catalog.
func documents(c *cli.Context) ([]string, error) {
	if c.Args().Len() > 0 {
		return c.Args().Slice(), nil
	}
	return catalogDocuments(c)
}

func fetchCommand(c *cli.Context) error {
	ctx := context.Background()

	docs, err := documents(c)
	if err != nil {
		return err
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	_, stats, err := lib.BuildCorpus(ctx, docs,
		corpus.WithFetchConcurrency(c.Int("fetch-concurrency")))
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Documents: %d\n", stats.Documents)
	fmt.Fprintf(os.Stderr, "Chapters:  %d\n", stats.Chapters)
	fmt.Fprintf(os.Stderr, "Verses:    %d\n", stats.Verses)
	fmt.Fprintf(os.Stderr, "Letters:   %d\n", stats.Letters)
	fmt.Fprintf(os.Stderr, "Dropped:   %d\n", stats.DroppedMarks)
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.Args().Len() != 1 {
		return fmt.Errorf("exactly one pattern argument is required")
	}
	pattern, dropped := encodePattern(c.Args().First())
	if dropped > 0 {
		fmt.Fprintf(os.Stderr, "Note: %d pattern characters had no mapping\n", dropped)
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	docs, err := catalogDocuments(c)
	if err != nil {
		return err
	}

	built, _, err := lib.BuildCorpus(ctx, docs)
	if err != nil {
		return fmt.Errorf("corpus build failed: %w", err)
	}

	searcher, err := lib.NewSearcher(built,
		search.WithWorkers(c.Int("workers")),
		search.WithContextPad(c.Int("pad")))
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}
	defer searcher.Release()

	hits, err := searcher.Find(ctx, &core.Request{
		Pattern:  pattern,
		SkipMin:  c.Int("skip-min"),
		SkipMax:  c.Int("skip-max"),
		Forward:  c.Bool("forward"),
		Backward: c.Bool("backward"),
		MaxHits:  c.Int("max-hits"),
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if path := c.String("csv"); path != "" {
		return writeCSVFile(path, hits)
	}
	printHits(os.Stdout, string(pattern), hits)
	return nil
}

func tuiCommand(c *cli.Context) error {
	ctx := context.Background()

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	docs, err := catalogDocuments(c)
	if err != nil {
		return err
	}

	built, _, err := lib.BuildCorpus(ctx, docs)
	if err != nil {
		return fmt.Errorf("corpus build failed: %w", err)
	}

	workers := c.Int("workers")
	searcher, err := lib.NewSearcher(built, search.WithWorkers(workers))
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}
	defer searcher.Release()

	return tui.Run(searcher,
		tui.WithContext(ctx),
		tui.WithSkipRange(c.Int("skip-min"), c.Int("skip-max")))
}

// catalogDocuments is documents without positional-argument override, for
// commands whose arguments mean something else.
func catalogDocuments(c *cli.Context) ([]string, error) {
	catalog := corpus.DefaultCatalog()
	if path := c.String("corpus"); path != "" {
		var err error
		catalog, err = corpus.LoadCatalog(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
	}
	return catalog.Documents, nil
}

// encodePattern accepts Hebrew input as-is (normalized) and transliterates
// anything else.
func encodePattern(raw string) ([]rune, int) {
	for _, r := range raw {
		if hebrew.IsLetter(r) {
			return hebrew.Normalize(raw)
		}
	}
	return hebrew.Encode(raw)
}

func writeCSVFile(path string, hits []*core.Hit) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer f.Close()
	if err := export.WriteCSV(f, hits); err != nil {
		return fmt.Errorf("csv export failed: %w", err)
	}
	return nil
}

func printHits(w *os.File, pattern string, hits []*core.Hit) {
	header := lipgloss.NewStyle().Bold(true)
	ref := lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	match := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	fmt.Fprintln(w, header.Render(fmt.Sprintf("%d hits for %s", len(hits), pattern)))
	for _, hit := range hits {
		direction := "forward"
		skip := hit.Skip
		if skip < 0 {
			direction = "backward"
			skip = -skip
		}
		fmt.Fprintf(w, "\n%s  %s\n",
			ref.Render(fmt.Sprintf("%s %d:%d", hit.Ref.Document, hit.Ref.Chapter, hit.Ref.Verse)),
			muted.Render(fmt.Sprintf("skip %d %s, start %d", skip, direction, hit.Start)))

		var b strings.Builder
		for _, cell := range hit.Window {
			if cell.Match {
				b.WriteString(match.Render(string(cell.Letter)))
			} else {
				b.WriteRune(cell.Letter)
			}
		}
		fmt.Fprintln(w, b.String())
	}
}
