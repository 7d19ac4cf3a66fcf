package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/fieldgroups/internal/cli"
)

var (
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
	flagDebug   bool
)

// NewRootCommand builds the fieldgroups command tree. run handles the bare
// root invocation, which launches the editor.
func NewRootCommand(version string, run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	root := &cobra.Command{
		Use:   "fieldgroups",
		Short: "Group content type fields into named, collapsible sections",
		Long: `fieldgroups organises the fields of a content type into named, ordered groups
that the entry editor renders as collapsible sections.

Content type schemas live in .fieldgroups/content_types and the saved groupings
in .fieldgroups/config.yaml. When a schema changes, saved groups drop the
fields that no longer exist the next time they are opened.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
			cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
			cli.SetupLogging(flagDebug)
		},
		RunE: run,
	}

	root.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")
	root.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable symbols and color in output")
	root.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to stderr")

	root.AddCommand(
		NewInitCommand(),
		NewListCommand(),
		NewShowCommand(),
		NewGroupCommand(),
		NewFieldCommand(),
		NewReconcileCommand(),
		NewSchemaCommand(),
		NewExportCommand(),
		NewImportCommand(),
		NewClipboardCommand(),
		NewEditCommand(),
		NewSettingsCommand(),
		newVersionCommand(version),
	)

	return root
}

// outputFormat resolves the -o flag against the configured default.
func outputFormat(cmd *cobra.Command, ctx *cli.CommandContext) (string, error) {
	value, _ := cmd.Flags().GetString("output")
	return ctx.OutputFormat(value, cmd.Flags().Changed("output"))
}

func requireProject(cmd *cobra.Command, args []string) error {
	return cli.NewCommandContext().ValidateProject()
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of fieldgroups",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fieldgroups version %s\n", version)
		},
	}
}
