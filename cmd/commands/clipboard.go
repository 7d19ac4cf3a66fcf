package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/fieldgroups/internal/cli"
)

var clipboardInstallation bool

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clipboard",
		Aliases: []string{"clip", "copy"},
		Short:   "Copy the saved field groups JSON to the clipboard",
		Long: `Copy the persisted field groups blob to the system clipboard, ready to paste
into the host's installation parameters.

Examples:
  # Copy the blob
  fieldgroups clipboard

  # Copy the installation payload
  fieldgroups clipboard --installation`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runClipboard,
	}

	cmd.Flags().BoolVar(&clipboardInstallation, "installation", false, "Copy the installation payload instead of the bare blob")

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	data, err := exportPayload(clipboardInstallation)
	if err != nil {
		return err
	}

	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("Copied field groups to clipboard (%d bytes)", len(data))
	return nil
}
