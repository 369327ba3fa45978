// Copyright 2025 The FundingMatch Authors
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
	"time"

	"github.com/urfave/cli/v2"

	fundingmatch "github.com/altitut/FundingMatch-sub001"
	"github.com/altitut/FundingMatch-sub001/ai"
	"github.com/altitut/FundingMatch-sub001/core"
	"github.com/altitut/FundingMatch-sub001/ingest"
	"github.com/altitut/FundingMatch-sub001/match"
	"github.com/altitut/FundingMatch-sub001/profile"
)

func main() {
	app := &cli.App{
		Name:  "fundingmatch",
		Usage: "Match researchers with funding opportunities using semantic search",
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
				Name:   "ingest",
				Usage:  "Ingest funding opportunity CSV files from a directory",
				Action: ingestCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "dir",
						Usage:    "Directory containing funding opportunity CSV files",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent embedding workers",
						Value: 4,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of opportunities to store in each batch",
						Value: 20,
					},
				}, aiFlags()...),
			},
			{
				Name:   "profile",
				Usage:  "Add or update a researcher profile from a person JSON file",
				Action: profileCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "person",
						Aliases:  []string{"p"},
						Usage:    "Path to person JSON file",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "doc",
						Usage: "Supporting document text file (repeatable)",
					},
				}, aiFlags()...),
			},
			{
				Name:   "match",
				Usage:  "Rank stored opportunities for a researcher profile",
				Action: matchCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Researcher name as given in the person JSON",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Maximum number of matches to return",
						Value: 20,
					},
					&cli.Float64Flag{
						Name:  "min-similarity",
						Usage: "Minimum cosine similarity for a match",
						Value: 0.0,
					},
					&cli.IntFlag{
						Name:  "explain",
						Usage: "Generate explanations for the top N matches",
						Value: 5,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the markdown report to this file instead of stdout",
					},
				}, aiFlags()...),
			},
			{
				Name:   "stats",
				Usage:  "Show counts of stored opportunities, profiles, and checkpoints",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "agency",
						Usage: "Restrict opportunity counts to one agency",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// aiFlags returns the flags shared by every command that talks to Gemini.
func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "Gemini API key",
			EnvVars: []string{"GEMINI_API_KEY"},
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "gemini-embedding-001",
		},
		&cli.StringFlag{
			Name:  "generation-model",
			Usage: "Generation model name for match explanations",
			Value: "gemini-2.5-pro",
		},
		&cli.IntFlag{
			Name:  "calls-per-minute",
			Usage: "API rate limit shared by embedding and generation",
			Value: 10,
		},
		&cli.IntFlag{
			Name:  "max-attempts",
			Usage: "Maximum attempts per API call when rate limited",
			Value: 3,
		},
	}
}

func aiConfig(c *cli.Context) *ai.Config {
	return ai.NewConfig(
		ai.WithAPIKey(c.String("api-key")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithGenerationModel(c.String("generation-model")),
		ai.WithCallsPerMinute(c.Int("calls-per-minute")),
		ai.WithMaxAttempts(c.Int("max-attempts")),
	)
}

func openDatabase(ctx context.Context, c *cli.Context) (*fundingmatch.Database, error) {
	cfg := aiConfig(c)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	db, err := fundingmatch.NewDatabase(ctx, c.String("db"), fundingmatch.WithAIConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(ctx, c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline(
		ingest.WithPoolSize(c.Int("pool-size")),
		ingest.WithBatchSize(c.Int("batch-size")),
		ingest.WithProgressWriter(os.Stderr),
	)
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Source directory: %s\n\n", c.String("dir"))

	summary, err := pipeline.ProcessDirectory(ctx, c.String("dir"))
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\nProcessed files: %d\n", len(summary.ProcessedFiles))
	fmt.Fprintf(os.Stderr, "New opportunities: %d\n", summary.NewOpportunities)
	fmt.Fprintf(os.Stderr, "Duplicates skipped: %d\n", summary.DuplicateSkipped)
	fmt.Fprintf(os.Stderr, "Expired skipped: %d\n", summary.ExpiredSkipped)
	fmt.Fprintf(os.Stderr, "Failed embeddings: %d\n", summary.FailedEmbeddings)
	if summary.PurgedCheckpoints > 0 || summary.ExpiredRemoved > 0 {
		fmt.Fprintf(os.Stderr, "Purged checkpoints: %d\n", summary.PurgedCheckpoints)
		fmt.Fprintf(os.Stderr, "Expired opportunities removed: %d\n", summary.ExpiredRemoved)
	}
	for _, msg := range summary.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}

	return nil
}

func profileCommand(c *cli.Context) error {
	ctx := context.Background()

	person, err := profile.LoadPersonFile(c.String("person"))
	if err != nil {
		return fmt.Errorf("failed to load person file: %w", err)
	}

	extras, err := loadSupportingDocs(c.StringSlice("doc"))
	if err != nil {
		return err
	}

	researcher, err := profile.Build(person, extras)
	if err != nil {
		return fmt.Errorf("failed to build profile: %w", err)
	}

	db, err := openDatabase(ctx, c)
	if err != nil {
		return err
	}
	defer db.Close()

	vector, err := db.AIProvider().Embedder().EmbedText(ctx, researcher.CombinedText)
	if err != nil {
		return fmt.Errorf("failed to embed profile: %w", err)
	}
	researcher.Vector = vector

	stored, err := db.ProfileRepository().PutProfile(ctx, researcher)
	if err != nil {
		return fmt.Errorf("failed to store profile: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Stored profile %q (id %d)\n", stored.Name, stored.Id)
	return nil
}

// loadSupportingDocs concatenates supporting document text files.
func loadSupportingDocs(paths []string) (profile.Extras, error) {
	var extras profile.Extras
	if len(paths) == 0 {
		return extras, nil
	}

	var parts []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return extras, fmt.Errorf("failed to read supporting document: %w", err)
		}
		parts = append(parts, string(data))
	}
	extras.SupportingText = strings.Join(parts, "\n\n")
	return extras, nil
}

func matchCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(ctx, c)
	if err != nil {
		return err
	}
	defer db.Close()

	matcher, err := db.NewMatcher()
	if err != nil {
		return fmt.Errorf("failed to create matcher: %w", err)
	}

	profileID := core.IDFromContent(c.String("name"))
	researcher, err := db.ProfileRepository().GetProfile(ctx, profileID)
	if err != nil {
		return fmt.Errorf("profile %q not found: %w", c.String("name"), err)
	}

	results, err := matcher.Match(ctx, profileID, c.Int("top-k"), float32(c.Float64("min-similarity")))
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	if n := c.Int("explain"); n > 0 {
		matcher.ExplainTop(ctx, researcher, results, n)
	}

	out := os.Stdout
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return match.WriteReport(out, researcher, results, time.Now().UTC())
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()

	// Stats never calls the AI service, so skip provider construction.
	db, err := fundingmatch.NewDatabase(ctx, c.String("db"),
		fundingmatch.WithAIProvider(noopProvider{}))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var opps []*core.Opportunity
	if agency := c.String("agency"); agency != "" {
		opps, err = db.OpportunityRepository().GetOpportunitiesByAgency(ctx, agency)
	} else {
		opps, err = db.OpportunityRepository().GetAllOpportunities(ctx)
	}
	if err != nil {
		return err
	}
	profiles, err := db.ProfileRepository().ListProfiles(ctx)
	if err != nil {
		return err
	}
	checkpoints, err := db.CheckpointRepository().ListCheckpoints(ctx)
	if err != nil {
		return err
	}

	embedded := 0
	for _, opp := range opps {
		if len(opp.Vector) > 0 {
			embedded++
		}
	}

	fmt.Printf("Opportunities: %d (%d embedded)\n", len(opps), embedded)
	fmt.Printf("Profiles: %d\n", len(profiles))
	fmt.Printf("Ingest checkpoints: %d\n", len(checkpoints))
	return nil
}

// noopProvider satisfies ai.AIProvider for commands that never reach the
// AI service.
type noopProvider struct{}

func (noopProvider) Embedder() ai.Embedder   { return nil }
func (noopProvider) Generator() ai.Generator { return nil }
func (noopProvider) Close() error            { return nil }

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
