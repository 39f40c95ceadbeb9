package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sourceplane/litedsl/internal/catalog"
	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/render"
)

var typesCmd = &cobra.Command{
	Use:     "types [kind]",
	Aliases: []string{"type"},
	Short:   "List descriptor types",
	Long:    "List the descriptor types known to litedsl, optionally for one kind (e.g. buildStep or steps).",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := ""
		if len(args) > 0 {
			kind = args[0]
		}
		return listTypes(cmd.OutOrStdout(), kind)
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe TYPE",
	Short: "Describe the fields of a descriptor type",
	Long:  "Show fields, parameter keys, mandatory flags, enum values and compound variants of a descriptor type. TYPE is a type or short name.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return describeType(cmd.OutOrStdout(), args[0], kindFilter)
	},
}

func registerTypesCommand(root *cobra.Command) {
	root.AddCommand(typesCmd)
}

func registerDescribeCommand(root *cobra.Command) {
	root.AddCommand(describeCmd)

	describeCmd.Flags().StringVarP(&kindFilter, "kind", "k", "", "Descriptor kind when the name is ambiguous")
}

func listTypes(out io.Writer, kindName string) error {
	var kind model.Kind
	if kindName != "" {
		k, err := model.ParseKind(kindName)
		if err != nil {
			return err
		}
		kind = k
	}

	viewer := render.NewTypeViewer(render.NewPalette(settings.Color))
	fmt.Fprintln(out, viewer.List(catalog.Default().List(kind)))
	if kindName == "" {
		fmt.Fprintln(out, "Run 'litedsl describe <type>' for detailed information")
	}
	return nil
}

func describeType(out io.Writer, name, kindName string) error {
	var kind model.Kind
	if kindName != "" {
		k, err := model.ParseKind(kindName)
		if err != nil {
			return err
		}
		kind = k
	}

	matches := catalog.Default().Find(kind, name)
	switch len(matches) {
	case 0:
		return fmt.Errorf("%s: %w", name, dslerrors.ErrUnknownType)
	case 1:
		viewer := render.NewTypeViewer(render.NewPalette(settings.Color))
		fmt.Fprint(out, viewer.Describe(matches[0]))
		return nil
	}

	kinds := make([]string, 0, len(matches))
	for _, m := range matches {
		kinds = append(kinds, string(m.Kind))
	}
	return fmt.Errorf("%s is ambiguous, pass --kind (one of %s)", name, strings.Join(kinds, ", "))
}
