package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/files"
)

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the saved field groups with a JSON or YAML blob",
		Long: `Replace the persisted field groups with the contents of a blob, for example
installation parameters exported from the host. Use "-" to read stdin.

The whole config is replaced. Entries are reconciled against their schemas the
next time they are opened.

Examples:
  # Import a blob exported earlier
  fieldgroups import field-groups.json

  # Import from stdin without confirmation
  cat params.json | fieldgroups import - --yes`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runImport,
	}

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	current, err := files.ReadConfig()
	if err != nil {
		return err
	}
	if len(current) > 0 {
		ok, err := cli.Confirm(fmt.Sprintf("Replace %d saved field group entr(ies)?", len(current)), false)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("import cancelled")
		}
	}

	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	cfg, err := files.ImportConfig(r)
	if err != nil {
		return err
	}

	cli.PrintSuccess("Imported field groups for %d key(s)", len(cfg))
	return nil
}
