package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/files"
)

var schemaImportID string

// NewSchemaCommand creates the schema command and its subcommands
func NewSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Import and inspect content type schemas",
		Long: `Manage the content type schema snapshots field groups are built against.

A schema is a content type definition as the host exports it, in JSON or YAML.
Importing a newer version replaces the snapshot; saved field groups are
reconciled against it the next time they are opened.

Examples:
  # Import a content type exported from the host
  fieldgroups schema import blogPost.json

  # Print the stored snapshot
  fieldgroups schema show blogPost`,
	}

	cmd.AddCommand(newSchemaImportCommand(), newSchemaShowCommand())
	return cmd
}

func newSchemaImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "import <file>",
		Short:   "Import a content type schema from a JSON or YAML file",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			ct, err := files.ParseContentType(content)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}
			if schemaImportID != "" {
				ct.Sys.ID = schemaImportID
			}
			if err := cli.ValidateContentTypeID(ct.ID()); err != nil {
				return err
			}

			if err := files.WriteContentType(ct); err != nil {
				return err
			}

			cli.PrintSuccess("Imported content type %s (%d fields, version %s)", ct.ID(), len(ct.Fields), ct.Version())
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaImportID, "id", "", "Store under this content type id instead of sys.id")
	return cmd
}

func newSchemaShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "show <content-type>",
		Short:   "Print a stored content type schema",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cli.NewCommandContext()
			format, err := outputFormat(cmd, ctx)
			if err != nil {
				return err
			}
			if err := cli.ValidateContentTypeID(args[0]); err != nil {
				return err
			}

			ct, err := files.ReadContentType(args[0])
			if err != nil {
				return err
			}
			if format != "text" {
				return cli.OutputResults(cmd.OutOrStdout(), format, ct)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", ct.Name, ct.ID())
			fmt.Fprintf(out, "Version: %s\n\n", ct.Version())

			table := cli.NewTableFormatter(out)
			table.Header("ID", "NAME", "TYPE", "FLAGS")
			for _, f := range ct.Fields {
				table.Row(f.ID, cli.TruncateString(f.Name, 30), f.Type, fieldFlags(f.Required, f.Disabled, f.Omitted))
			}
			table.Flush()
			return nil
		},
	}
}

func fieldFlags(required, disabled, omitted bool) string {
	var flags []string
	if required {
		flags = append(flags, "required")
	}
	if disabled {
		flags = append(flags, "disabled")
	}
	if omitted {
		flags = append(flags, "omitted")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}
