package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/grouping"
	"github.com/pluqqy/fieldgroups/pkg/session"
)

// NewFieldCommand creates the field command and its subcommands
func NewFieldCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Assign, remove and reorder fields within a group",
		Long: `Manage which fields belong to a field group and in what order.

A field can belong to one group at most. Positions are zero-based.

Examples:
  # Put title and slug into the Main group
  fieldgroups field add blogPost Main title slug

  # Move the first field of Main to the third position
  fieldgroups field move blogPost Main 0 2

  # Take slug out of Main again
  fieldgroups field remove blogPost Main slug`,
	}

	cmd.AddCommand(
		newFieldAddCommand(),
		newFieldRemoveCommand(),
		newFieldMoveCommand(),
	)

	return cmd
}

func newFieldAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "add <content-type> <group> <field-id>...",
		Short:   "Append ungrouped fields to a group",
		Args:    cobra.MinimumNArgs(3),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editSession(args[0], func(s *session.Session) (string, error) {
				id, err := findGroup(s, args[1])
				if err != nil {
					return "", err
				}

				for _, fieldID := range args[2:] {
					detail, ok := s.ContentType.Field(fieldID)
					if !ok {
						return "", fmt.Errorf("field %q is not in content type %s", fieldID, s.ContentType.ID())
					}
					if err := apply(s, grouping.AddField{GroupID: id, FieldID: detail.ID, FieldName: detail.Name}); err != nil {
						return "", err
					}
				}

				return fmt.Sprintf("Added %s to group %s", strings.Join(args[2:], ", "), groupName(s, id)), nil
			})
		},
	}
}

func newFieldRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <content-type> <group> <field-id>...",
		Aliases: []string{"rm"},
		Short:   "Remove fields from a group",
		Args:    cobra.MinimumNArgs(3),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editSession(args[0], func(s *session.Session) (string, error) {
				id, err := findGroup(s, args[1])
				if err != nil {
					return "", err
				}

				for _, fieldID := range args[2:] {
					if err := apply(s, grouping.RemoveField{GroupID: id, FieldID: fieldID}); err != nil {
						return "", err
					}
				}

				return fmt.Sprintf("Removed %s from group %s", strings.Join(args[2:], ", "), groupName(s, id)), nil
			})
		},
	}
}

func newFieldMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <content-type> <group> <from> <to>",
		Short: "Move a field to another position within its group",
		Long: `Move the field at position <from> to position <to>.

The field is taken out first and then inserted at <to>, so moving position 0
to 2 in [A B C D] gives [B C A D].`,
		Args:    cobra.ExactArgs(4),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := cli.ParseIndex(args[2])
			if err != nil {
				return err
			}
			to, err := cli.ParseIndex(args[3])
			if err != nil {
				return err
			}

			return editSession(args[0], func(s *session.Session) (string, error) {
				id, err := findGroup(s, args[1])
				if err != nil {
					return "", err
				}
				if err := apply(s, grouping.MoveField{GroupID: id, OldIndex: from, NewIndex: to}); err != nil {
					return "", err
				}
				return fmt.Sprintf("Moved field %d to %d in group %s", from, to, groupName(s, id)), nil
			})
		},
	}
}
