package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sourceplane/litedsl/internal/chain"
	"github.com/sourceplane/litedsl/internal/model"
)

var chainCmd = &cobra.Command{
	Use:   "chain [path...]",
	Short: "Show the build chain formed by finish-build triggers",
	Long:  "Link build configurations through their finish-build triggers and print them in trigger order. Fails on cycles.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showChain(cmd.Context(), cmd.OutOrStdout(), append(inputFiles, args...))
	},
}

func registerChainCommand(root *cobra.Command) {
	root.AddCommand(chainCmd)

	chainCmd.Flags().StringSliceVarP(&inputFiles, "file", "f", nil, "Document file, directory or glob (repeatable)")
}

func showChain(ctx context.Context, out io.Writer, inputs []string) error {
	paths, err := discoverDocuments(ctx, inputs)
	if err != nil {
		return err
	}
	results, err := loadDocuments(ctx, paths)
	if err != nil {
		return err
	}

	configs := make([]*model.Configuration, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return r.err
		}
		configs = append(configs, r.cfg)
	}

	g, err := chain.Build(configs)
	if err != nil {
		return err
	}
	order, err := g.Order()
	if err != nil {
		return err
	}

	for i, name := range order {
		line := fmt.Sprintf("%d. %s (%s)", i+1, name, g.Source(name))
		if deps := g.Dependencies(name); len(deps) > 0 {
			line += " after " + strings.Join(deps, ", ")
		}
		fmt.Fprintln(out, line)
	}
	for _, ref := range g.External() {
		fmt.Fprintf(out, "external: %s %s watches %s\n", ref.From, ref.TriggerID, ref.BuildType)
	}
	return nil
}
