package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/normalize"
	"github.com/sourceplane/litedsl/internal/render"
)

var renderFile string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a normalized document",
	Long:  "Load a document, assign missing descriptor IDs and write it back as JSON or YAML.",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := settings.OutputFormat
		if cmd.Flags().Changed("format") {
			format = outputFormat
		}
		return renderDocument(cmd.Context(), cmd.OutOrStdout(), renderFile, outputFile, format)
	},
}

func registerRenderCommand(root *cobra.Command) {
	root.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "Document file path")
	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (default stdout)")
	renderCmd.Flags().StringVar(&outputFormat, "format", "yaml", "Output format (json/yaml)")
	_ = renderCmd.MarkFlagRequired("file")
}

func renderDocument(ctx context.Context, out io.Writer, path, output, format string) error {
	logger := zerolog.Ctx(ctx)

	cfg, err := loadOne(ctx, path)
	if err != nil {
		return err
	}
	if findings := cfg.Check(false); model.HasErrors(findings) {
		logger.Warn().Int("findings", len(findings)).Str("path", path).Msg("Document has validation errors")
	}

	doc, err := normalize.Document(cfg.Document())
	if err != nil {
		return fmt.Errorf("normalization failed: %w", err)
	}

	r := render.NewRenderer()
	if output == "" {
		data, err := r.Render(doc, format)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	if err := r.WriteDocumentAs(doc, output, render.FormatFor(output, format)); err != nil {
		return err
	}
	logger.Info().Str("output", output).Int("descriptors", doc.Spec.Len()).Msg("Document rendered")
	return nil
}
