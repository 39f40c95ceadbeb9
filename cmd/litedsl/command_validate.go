package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/render"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path...]",
	Short: "Validate configuration documents",
	Long:  "Load documents (files, directories or globs), check them against the document schema and report missing mandatory properties of every descriptor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateDocuments(cmd.Context(), cmd.OutOrStdout(), append(inputFiles, args...))
	},
}

func registerValidateCommand(root *cobra.Command) {
	root.AddCommand(validateCmd)

	validateCmd.Flags().StringSliceVarP(&inputFiles, "file", "f", nil, "Document file, directory or glob (repeatable)")
	validateCmd.Flags().BoolVar(&noLint, "no-lint", false, "Skip reporting undecodable values")
	validateCmd.Flags().BoolVar(&changedOnly, "changed", false, "Validate only documents changed in git")
	validateCmd.Flags().StringVar(&baseBranch, "base", "main", "Base branch for change detection")
}

func validateDocuments(ctx context.Context, out io.Writer, inputs []string) error {
	paths, err := discoverDocuments(ctx, inputs)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintln(out, "No changed documents")
		return nil
	}

	results, err := loadDocuments(ctx, paths)
	if err != nil {
		return err
	}
	reports := reportsOf(results, settings.Lint)

	viewer := render.NewReportViewer(render.NewPalette(settings.Color))
	fmt.Fprint(out, viewer.View(reports))

	failed := 0
	for _, r := range reports {
		if r.Err != nil || model.HasErrors(r.Findings) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents: %w", failed, len(reports), dslerrors.ErrValidationFailed)
	}
	return nil
}
