package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/ukaji3/exchart-go/internal/config"
)

var forceInit bool

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage exchart settings",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := toml.Marshal(settings)
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), data)
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("config already exists: %s (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.Defaults()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
