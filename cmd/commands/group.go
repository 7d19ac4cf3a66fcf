package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/grouping"
	"github.com/pluqqy/fieldgroups/pkg/session"
)

// NewGroupCommand creates the group command and its subcommands
func NewGroupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Create, rename, delete and reorder field groups",
		Long: `Manage the field groups of a content type.

Groups are referenced by id or, when unique, by name.

Examples:
  # Create a group called SEO
  fieldgroups group create blogPost SEO

  # Rename it
  fieldgroups group rename blogPost SEO "Search & Social"

  # Move it one position up
  fieldgroups group up blogPost "Search & Social"

  # Delete it; its fields become ungrouped
  fieldgroups group delete blogPost "Search & Social"`,
	}

	cmd.AddCommand(
		newGroupCreateCommand(),
		newGroupRenameCommand(),
		newGroupDeleteCommand(),
		newGroupMoveCommand("up", "Move a group one position up", func(id string) grouping.Action {
			return grouping.MoveGroupUp{GroupID: id}
		}),
		newGroupMoveCommand("down", "Move a group one position down", func(id string) grouping.Action {
			return grouping.MoveGroupDown{GroupID: id}
		}),
	)

	return cmd
}

func newGroupCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "create <content-type> [name]",
		Short:   "Append a new field group",
		Args:    cobra.RangeArgs(1, 2),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 1 {
				name = args[1]
			}
			if err := cli.ValidateGroupName(name); err != nil {
				return err
			}

			return editSession(args[0], func(s *session.Session) (string, error) {
				if err := apply(s, grouping.CreateGroup{}); err != nil {
					return "", err
				}
				created, _ := s.Store.GroupAt(s.Store.Len() - 1)
				if name != "" {
					if err := apply(s, grouping.RenameGroup{GroupID: created.ID, Name: name}); err != nil {
						return "", err
					}
				}
				return fmt.Sprintf("Created group %s (%s)", cli.GroupLabel(name), created.ID), nil
			})
		},
	}
}

func newGroupRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rename <content-type> <group> <name>",
		Short:   "Rename a field group",
		Long:    `Rename a field group. An empty name ("") is allowed.`,
		Args:    cobra.ExactArgs(3),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateGroupName(args[2]); err != nil {
				return err
			}

			return editSession(args[0], func(s *session.Session) (string, error) {
				id, err := findGroup(s, args[1])
				if err != nil {
					return "", err
				}
				old := groupName(s, id)
				if err := apply(s, grouping.RenameGroup{GroupID: id, Name: args[2]}); err != nil {
					return "", err
				}
				return fmt.Sprintf("Renamed group %s to %s", old, cli.GroupLabel(args[2])), nil
			})
		},
	}
}

func newGroupDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <content-type> <group>",
		Aliases: []string{"rm"},
		Short:   "Delete a field group; its fields become ungrouped",
		Args:    cobra.ExactArgs(2),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := cli.NewCommandContext().LoadSettingsWithDefault()

			return editSession(args[0], func(s *session.Session) (string, error) {
				id, err := findGroup(s, args[1])
				if err != nil {
					return "", err
				}
				g, _ := s.Store.Group(id)

				if settings.Editor.ConfirmDelete && len(g.Fields) > 0 {
					ok, err := cli.Confirm(fmt.Sprintf("Delete group %s with %d field(s)?", cli.GroupLabel(g.Name), len(g.Fields)), false)
					if err != nil {
						return "", err
					}
					if !ok {
						return "", fmt.Errorf("delete cancelled")
					}
				}

				if err := apply(s, grouping.DeleteGroup{GroupID: id}); err != nil {
					return "", err
				}
				return fmt.Sprintf("Deleted group %s; %d field(s) are now ungrouped", cli.GroupLabel(g.Name), len(g.Fields)), nil
			})
		},
	}
}

func newGroupMoveCommand(direction, short string, action func(id string) grouping.Action) *cobra.Command {
	return &cobra.Command{
		Use:     direction + " <content-type> <group>",
		Short:   short,
		Args:    cobra.ExactArgs(2),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editSession(args[0], func(s *session.Session) (string, error) {
				id, err := findGroup(s, args[1])
				if err != nil {
					return "", err
				}
				if err := apply(s, action(id)); err != nil {
					return "", err
				}
				return fmt.Sprintf("Moved group %s %s", groupName(s, id), direction), nil
			})
		},
	}
}
