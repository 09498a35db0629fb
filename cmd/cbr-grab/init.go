package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/cbr-grabber/internal/config"
	ioutils "github.com/handiism/cbr-grabber/internal/io"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default settings file",
		Long: `Init writes settings.ini with the default values to the current directory.

Examples:
  # Create settings.ini in the current directory
  cbr-grab init

  # Create the file at a specific path
  cbr-grab init -o comics/settings.ini

  # Overwrite an existing file
  cbr-grab init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultFileName,
		"Output file path for the settings")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite an existing settings file")

	return cmd
}

func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("settings file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := ioutils.EnsureDir(dir); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := config.WriteDefaults(outputPath); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created settings file: %s\n", outputPath)
	return nil
}
