// Package main provides the CLI entry point for exchart-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/exchart-go/internal/config"
	"github.com/ukaji3/exchart-go/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	verbose    bool
	configPath string
	settings   = config.Defaults()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exchart",
		Short: "Turn spreadsheets into chart-ready data",
		Long: `exchart-go reads the first sheet of an .xlsx or .xls file and
builds bar, line, pie or scatter series from two of its columns.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadSettings,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.exchart/config.toml)")

	rootCmd.AddCommand(
		newInspectCmd(),
		newChartCmd(),
		newWatchCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func loadSettings(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(verbose)

	path, err := settingsPath()
	if err != nil {
		logger.Warn("%v, using defaults", err)
		settings = config.Defaults()
		return nil
	}

	s, err := config.Load(path)
	if err != nil {
		return err
	}
	settings = s
	logger.Debug("settings loaded from %s", path)
	return nil
}

func settingsPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "exchart %s\n", version)
		},
	}
}
