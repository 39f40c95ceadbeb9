package git

import (
	"context"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// runFunc executes git with args and returns its stdout
type runFunc func(ctx context.Context, args ...string) ([]byte, error)

func runGit(ctx context.Context, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, "git", args...).Output()
}

// ChangeDetector detects files that have changed in git
type ChangeDetector struct {
	baseBranch string // branch to compare against (e.g., "main", "develop")
	run        runFunc
}

// NewChangeDetector creates a new change detector
func NewChangeDetector(baseBranch string) *ChangeDetector {
	if baseBranch == "" {
		baseBranch = "main"
	}
	return &ChangeDetector{baseBranch: baseBranch, run: runGit}
}

// ChangedFiles returns files that differ from the base branch, combined with
// staged and unstaged changes. Paths are relative to the repository root.
func (cd *ChangeDetector) ChangedFiles(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	files := make(map[string]struct{})
	collect := func(output []byte) {
		for _, f := range strings.Split(strings.TrimSpace(string(output)), "\n") {
			if f = strings.TrimSpace(f); f != "" {
				files[f] = struct{}{}
			}
		}
	}

	// Unstaged modifications
	if output, err := cd.run(ctx, "diff", "--name-only"); err == nil {
		collect(output)
	}
	// Staged changes
	if output, err := cd.run(ctx, "diff", "--cached", "--name-only"); err == nil {
		collect(output)
	}

	// Branch changes, falling back to origin/<base> (common in CI) and then merge-base
	output, err := cd.run(ctx, "diff", "--name-only", cd.baseBranch)
	if err != nil || len(output) == 0 {
		output, err = cd.run(ctx, "diff", "--name-only", "origin/"+cd.baseBranch)
	}
	if err != nil || len(output) == 0 {
		if base, ok := cd.mergeBase(ctx); ok {
			output, err = cd.run(ctx, "diff", "--name-only", base)
		}
	}
	if err == nil {
		collect(output)
	} else {
		logger.Debug().Err(err).Str("base", cd.baseBranch).Msg("Could not diff against base branch")
	}

	result := make([]string, 0, len(files))
	for f := range files {
		result = append(result, f)
	}
	sort.Strings(result)
	logger.Debug().Int("count", len(result)).Str("base", cd.baseBranch).Msg("Detected changed files")
	return result, nil
}

func (cd *ChangeDetector) mergeBase(ctx context.Context) (string, bool) {
	attempts := [][]string{
		{"merge-base", "--fork-point", cd.baseBranch},
		{"merge-base", "HEAD", cd.baseBranch},
		{"merge-base", "HEAD", "origin/" + cd.baseBranch},
	}
	for _, args := range attempts {
		output, err := cd.run(ctx, args...)
		if err == nil && len(output) > 0 {
			return strings.TrimSpace(string(output)), true
		}
	}
	return "", false
}

// Filter keeps the paths matching a changed file. Changed files are relative
// to the repository root, so a path matches when either ends with the other.
func Filter(paths, changed []string) []string {
	var result []string
	for _, p := range paths {
		clean := filepath.ToSlash(filepath.Clean(p))
		for _, c := range changed {
			c = filepath.ToSlash(filepath.Clean(c))
			if clean == c || strings.HasSuffix(clean, "/"+c) || strings.HasSuffix(c, "/"+clean) {
				result = append(result, p)
				break
			}
		}
	}
	return result
}
