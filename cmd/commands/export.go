package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/files"
)

var (
	exportFile         string
	exportInstallation bool
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the saved field groups as JSON",
		Long: `Export the persisted field groups blob as JSON, the shape the host stores as
installation parameters.

With --installation the blob is wrapped in the payload the configuration
screen hands back on install, assigning the editor to every content type.

Examples:
  # Print the blob
  fieldgroups export

  # Write the installation payload to a file
  fieldgroups export --installation -f install.json

  # Write to the configured export path
  fieldgroups export -f ""`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runExport,
	}

	cmd.Flags().StringVarP(&exportFile, "file", "f", "-", `Output file ("-" for stdout, "" for the configured export path)`)
	cmd.Flags().BoolVar(&exportInstallation, "installation", false, "Wrap the blob in the installation payload")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := exportPayload(exportInstallation)
	if err != nil {
		return err
	}

	target := exportFile
	if target == "" {
		target = cli.NewCommandContext().LoadSettingsWithDefault().Output.ExportPath
	}
	if target == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := files.AtomicWriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to export to %s: %w", target, err)
	}
	cli.PrintSuccess("Exported field groups to %s", target)
	return nil
}

// exportPayload renders the persisted config, optionally as the installation payload.
func exportPayload(installation bool) ([]byte, error) {
	cfg, err := files.ReadConfig()
	if err != nil {
		return nil, err
	}

	var v interface{} = cfg
	if installation {
		ids, err := files.ListContentTypes()
		if err != nil {
			return nil, fmt.Errorf("failed to list content types: %w", err)
		}
		v = files.NewInstallationPayload(cfg, ids)
	}

	var buf bytes.Buffer
	if err := files.ExportJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
