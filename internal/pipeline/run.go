// Package pipeline provides the high-level orchestration for matching a CV
// against a job posting and tailoring the CV document.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-tailor/internal/cvparse"
	"github.com/jonathan/cv-tailor/internal/docxedit"
	"github.com/jonathan/cv-tailor/internal/ingestion"
	"github.com/jonathan/cv-tailor/internal/matching"
	"github.com/jonathan/cv-tailor/internal/observability"
	"github.com/jonathan/cv-tailor/internal/posting"
	"github.com/jonathan/cv-tailor/internal/store"
	"github.com/jonathan/cv-tailor/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for a pipeline run.
type RunOptions struct {
	CVPath      string
	JobPath     string
	JobURL      string
	UseBrowser  bool
	Verbose     bool
	DatabaseURL string
	OnProgress  ProgressCallback
}

// Outcome bundles everything a match run produces.
type Outcome struct {
	RunID        uuid.UUID
	Profile      *types.ResumeProfile
	Requirements *types.JobRequirements
	Result       *types.MatchResult
}

func emitProgress(opts *RunOptions, step, message string, runID uuid.UUID) {
	if opts.OnProgress != nil {
		event := ProgressEvent{Step: step, Message: message}
		if runID != uuid.Nil {
			event.RunID = runID.String()
		}
		opts.OnProgress(event)
	}
}

// RunMatch parses the CV and analyzes the posting concurrently, then scores
// the match. History is persisted when a database URL is configured; a
// failed database connection degrades to a warning, never a failed run.
func RunMatch(ctx context.Context, opts RunOptions) (*Outcome, error) {
	runID := uuid.New()
	printer := observability.NewPrinter(os.Stdout)

	var history *store.Store
	if opts.DatabaseURL != "" {
		var err error
		history, err = store.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without history persistence...\n")
		} else {
			defer history.Close()
			if err := history.Migrate(ctx); err != nil {
				fmt.Printf("Warning: failed to prepare history tables: %v\n", err)
				history = nil
			}
		}
	}

	var profile *types.ResumeProfile
	var requirements *types.JobRequirements

	// The CV and the posting are independent inputs; process both at once.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		emitProgress(&opts, "parse_cv", fmt.Sprintf("Parsing CV: %s", opts.CVPath), runID)
		parsed, err := cvparse.ParseFile(opts.CVPath)
		if err != nil {
			return fmt.Errorf("cv parsing failed: %w", err)
		}
		profile = parsed
		return nil
	})
	g.Go(func() error {
		text, err := ingestPosting(gctx, &opts, runID)
		if err != nil {
			return err
		}
		emitProgress(&opts, "analyze_posting", "Analyzing job posting", runID)
		requirements = posting.Analyze(text)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	emitProgress(&opts, "score", "Scoring match", runID)
	result := matching.Score(profile, requirements)

	if opts.Verbose {
		printer.PrintProfile(profile)
		printer.PrintRequirements(requirements)
		printer.PrintMatchResult(result)
	}

	if history != nil {
		if err := history.SaveMatch(ctx, runID, opts.CVPath, requirements, result); err != nil {
			fmt.Printf("Warning: failed to save match history: %v\n", err)
		}
	}

	return &Outcome{
		RunID:        runID,
		Profile:      profile,
		Requirements: requirements,
		Result:       result,
	}, nil
}

// RunTailor runs a match and then rewrites the skills section of the CV
// document with the tailored skill list, writing the result to outputPath.
func RunTailor(ctx context.Context, opts RunOptions, outputPath string) (*Outcome, error) {
	outcome, err := RunMatch(ctx, opts)
	if err != nil {
		return nil, err
	}

	emitProgress(&opts, "tailor", fmt.Sprintf("Rewriting skills section: %s", outputPath), outcome.RunID)
	data, err := docxedit.ExportFile(opts.CVPath, outcome.Result.TailoredSkills())
	if err != nil {
		return nil, fmt.Errorf("skills rewrite failed: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write tailored cv: %w", err)
	}
	return outcome, nil
}

func ingestPosting(ctx context.Context, opts *RunOptions, runID uuid.UUID) (string, error) {
	if opts.JobURL != "" {
		emitProgress(opts, "ingest", fmt.Sprintf("Fetching job posting from %s", opts.JobURL), runID)
		text, _, err := ingestion.FromURL(ctx, opts.JobURL, opts.UseBrowser)
		if err != nil {
			return "", fmt.Errorf("job ingestion from URL failed: %w", err)
		}
		return text, nil
	}

	emitProgress(opts, "ingest", fmt.Sprintf("Reading job posting from %s", opts.JobPath), runID)
	text, _, err := ingestion.FromFile(opts.JobPath)
	if err != nil {
		return "", fmt.Errorf("job ingestion from file failed: %w", err)
	}
	return text, nil
}
