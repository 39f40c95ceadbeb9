package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sourceplane/litedsl/internal/config"
	"github.com/sourceplane/litedsl/internal/logging"
)

var (
	configFile   string
	logLevel     string
	noColor      bool
	strictMode   bool
	noLint       bool
	inputFiles   []string
	outputFile   string
	outputFormat string
	kindFilter   string
	changedOnly  bool
	baseBranch   string
)

// settings is populated before any command runs
var settings = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:          "litedsl",
	Short:        "Typed CI configuration: documents → validated descriptors",
	Long:         "litedsl loads CI configuration documents, decodes their parameter bags into typed descriptors and reports missing mandatory properties",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		overrides := make(map[string]any)
		if cmd.Flags().Changed("log-level") {
			overrides[config.KeyLogLevel] = logLevel
		}
		if cmd.Flags().Changed("no-color") {
			overrides[config.KeyColor] = !noColor
		}
		if cmd.Flags().Changed("strict") {
			overrides[config.KeyStrict] = strictMode
		}
		if cmd.Flags().Changed("no-lint") {
			overrides[config.KeyLint] = !noLint
		}

		cfg, err := config.Load(cmd.Context(), config.Options{File: configFile, Overrides: overrides})
		if err != nil {
			return err
		}
		settings = cfg

		logger, err := logging.New(cfg.LogLevel, os.Stderr, cfg.Color)
		if err != nil {
			return err
		}
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default .litedsl.yaml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace/debug/info/warn/error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&strictMode, "strict", false, "Fail on descriptor types missing from the catalog")

	registerValidateCommand(rootCmd)
	registerRenderCommand(rootCmd)
	registerTypesCommand(rootCmd)
	registerDescribeCommand(rootCmd)
	registerDebugCommand(rootCmd)
	registerChainCommand(rootCmd)
}
