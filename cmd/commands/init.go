package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/files"
	"github.com/pluqqy/fieldgroups/pkg/models"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new field groups project",
		Long:  `Creates the .fieldgroups folder structure and default settings in the current directory`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine current directory: %w", err)
			}

			cli.PrintInfo("Initializing field groups project in %s...", cwd)

			if err := files.InitProjectStructure(); err != nil {
				return fmt.Errorf("failed to initialize project structure: %w", err)
			}

			if _, err := os.Stat(filepath.Join(files.ProjectDir, files.SettingsFile)); os.IsNotExist(err) {
				if err := files.WriteSettings(models.DefaultSettings()); err != nil {
					return err
				}
			}

			cli.PrintSuccess("Created %s folder structure", files.ProjectDir)
			cli.PrintInfo("Import a content type with 'fieldgroups schema import <file>'")
			return nil
		},
	}
}
