package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sourceplane/litedsl/internal/render"
)

var debugFile string

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Dump the parameter bags of a document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return debugDocument(cmd.Context(), cmd.OutOrStdout(), debugFile)
	},
}

func registerDebugCommand(root *cobra.Command) {
	root.AddCommand(debugCmd)

	debugCmd.Flags().StringVarP(&debugFile, "file", "f", "", "Document file path")
	_ = debugCmd.MarkFlagRequired("file")
}

func debugDocument(ctx context.Context, out io.Writer, path string) error {
	fmt.Fprintln(out, "□ Loading document...")
	cfg, err := loadOne(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, render.NewRenderer().DebugDump(cfg))
	return nil
}
