package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/tui"
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [content-type]",
		Short: "Edit field groups in the interactive editor",
		Long: `Open the interactive field group editor.

Without an argument the editor starts on the content type list. Changes are
only written when you save with ctrl+s.

Examples:
  # Pick a content type in the editor
  fieldgroups edit

  # Edit blogPost directly
  fieldgroups edit blogPost`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: requireProject,
		RunE:    LaunchEditor,
	}

	return cmd
}

// LaunchEditor runs the TUI, opening args[0] directly when given.
func LaunchEditor(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	if err := ctx.ValidateProject(); err != nil {
		return err
	}
	settings := ctx.LoadSettingsWithDefault()

	app := tui.NewApp(settings)
	if len(args) == 1 {
		s, err := ctx.OpenSession(args[0])
		if err != nil {
			return err
		}
		app = tui.NewEditorApp(settings, s)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}
