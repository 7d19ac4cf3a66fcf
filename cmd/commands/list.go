package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/files"
	"github.com/pluqqy/fieldgroups/pkg/session"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Items []ListItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
}

// ListItem represents a single content type in the list
type ListItem struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Key        string `json:"key" yaml:"key"`
	Fields     int    `json:"fields" yaml:"fields"`
	Groups     int    `json:"groups" yaml:"groups"`
	Unassigned int    `json:"unassigned" yaml:"unassigned"`
	Status     string `json:"status" yaml:"status"`
}

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List content types and the state of their field groups",
		Long: `List every content type in the project with its grouping status.

Status:
  unconfigured  - no field groups have been saved yet
  synced        - saved field groups match the current schema version
  drifted       - the schema changed since the field groups were saved

Examples:
  # List content types
  fieldgroups list

  # List as JSON
  fieldgroups list -o json`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	format, err := outputFormat(cmd, ctx)
	if err != nil {
		return err
	}

	ids, err := files.ListContentTypes()
	if err != nil {
		return fmt.Errorf("failed to list content types: %w", err)
	}

	cfg, err := files.ReadConfig()
	if err != nil {
		return err
	}

	var result ListResult
	for _, id := range ids {
		ct, err := files.ReadContentType(id)
		if err != nil {
			cli.PrintWarning("Failed to load content type %s: %v", id, err)
			continue
		}

		s := session.New(ct, cfg, ctx.LoadSettingsWithDefault())
		result.Items = append(result.Items, ListItem{
			ID:         ct.ID(),
			Name:       ct.Name,
			Key:        s.Key.String(),
			Fields:     len(ct.Fields),
			Groups:     s.Store.Len(),
			Unassigned: len(s.Store.Unassigned()),
			Status:     string(s.Status()),
		})
	}
	result.Count = len(result.Items)

	switch format {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	default:
		return outputListText(cmd, result)
	}
}

func outputListText(cmd *cobra.Command, result ListResult) error {
	if result.Count == 0 {
		cli.PrintInfo("No content types found. Add one with 'fieldgroups schema import <file>'")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("ID", "NAME", "KEY", "FIELDS", "GROUPS", "UNASSIGNED", "STATUS")
	for _, item := range result.Items {
		table.Row(
			item.ID,
			cli.TruncateString(item.Name, 30),
			item.Key,
			strconv.Itoa(item.Fields),
			strconv.Itoa(item.Groups),
			strconv.Itoa(item.Unassigned),
			item.Status,
		)
	}
	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d content type(s)\n", result.Count)
	return nil
}
