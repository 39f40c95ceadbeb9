package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sourceplane/litedsl/internal/git"
	"github.com/sourceplane/litedsl/internal/loader"
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/render"
)

// maxParallelLoads bounds concurrent document loads
const maxParallelLoads = 8

// loaded is the outcome of loading one document
type loaded struct {
	path string
	cfg  *model.Configuration
	err  error
}

// discoverDocuments expands the inputs into document paths, optionally keeping
// only documents changed in git
func discoverDocuments(ctx context.Context, inputs []string) ([]string, error) {
	if len(inputs) == 0 {
		inputs = []string{"."}
	}
	paths, err := loader.Discover(inputs...)
	if err != nil {
		return nil, err
	}
	if !changedOnly {
		return paths, nil
	}

	changed, err := git.NewChangeDetector(baseBranch).ChangedFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to detect changed files: %w", err)
	}
	filtered := git.Filter(paths, changed)
	zerolog.Ctx(ctx).Debug().Int("documents", len(paths)).Int("changed", len(filtered)).Msg("Filtered changed documents")
	return filtered, nil
}

// loadDocuments loads every path concurrently. Load failures are kept per
// document so one broken file does not hide the findings of the others.
func loadDocuments(ctx context.Context, paths []string) ([]loaded, error) {
	l, err := loader.New(loader.WithStrict(settings.Strict))
	if err != nil {
		return nil, err
	}

	results := make([]loaded, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, path := range paths {
		g.Go(func() error {
			cfg, err := l.Load(gCtx, path)
			results[i] = loaded{path: path, cfg: cfg, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	return results, nil
}

// reportsOf validates loaded documents
func reportsOf(results []loaded, lint bool) []render.Report {
	reports := make([]render.Report, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			reports = append(reports, render.Report{Source: r.path, Err: r.err})
			continue
		}
		reports = append(reports, render.Report{
			Source:      r.path,
			Descriptors: len(r.cfg.Descriptors),
			Findings:    r.cfg.Check(lint),
		})
	}
	return reports
}

// loadOne loads a single document
func loadOne(ctx context.Context, path string) (*model.Configuration, error) {
	l, err := loader.New(loader.WithStrict(settings.Strict))
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, path)
}
