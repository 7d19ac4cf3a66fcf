package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/files"
)

// NewSettingsCommand creates the settings command
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the effective settings",
		Long: `Show the settings in effect, after defaults are applied to
.fieldgroups/settings.yaml. Output is YAML unless -o json is given.`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := files.ReadSettings()
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("output")
			if format == "text" {
				format = "yaml"
			}
			return cli.OutputResults(cmd.OutOrStdout(), format, settings)
		},
	}

	return cmd
}
