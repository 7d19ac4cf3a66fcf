package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/files"
)

// ReconcileResult reports what reconciling one content type changed
type ReconcileResult struct {
	ContentType string          `json:"contentType" yaml:"contentType"`
	Key         string          `json:"key" yaml:"key"`
	Status      string          `json:"status" yaml:"status"`
	Dropped     []DroppedReport `json:"dropped" yaml:"dropped"`
	Saved       bool            `json:"saved" yaml:"saved"`
}

type DroppedReport struct {
	GroupID string `json:"groupId" yaml:"groupId"`
	FieldID string `json:"fieldId" yaml:"fieldId"`
	Name    string `json:"name" yaml:"name"`
}

var reconcileDryRun bool

// NewReconcileCommand creates the reconcile command
func NewReconcileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile [content-type...]",
		Short: "Drop grouped fields that no longer exist in the schema",
		Long: `Reconcile saved field groups with the current content type schemas.

Groups saved against an older schema version keep their order, but fields that
were removed from the schema are taken out. Groups that end up empty are kept.
Without arguments every content type is reconciled.

Examples:
  # Reconcile everything
  fieldgroups reconcile

  # See what would change for blogPost
  fieldgroups reconcile blogPost --dry-run`,
		PreRunE: requireProject,
		RunE:    runReconcile,
	}

	cmd.Flags().BoolVar(&reconcileDryRun, "dry-run", false, "Report changes without saving")

	return cmd
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	format, err := outputFormat(cmd, ctx)
	if err != nil {
		return err
	}

	ids := args
	if len(ids) == 0 {
		ids, err = files.ListContentTypes()
		if err != nil {
			return fmt.Errorf("failed to list content types: %w", err)
		}
	}

	results := make([]ReconcileResult, 0, len(ids))
	for _, id := range ids {
		s, err := ctx.OpenSession(id)
		if err != nil {
			return err
		}

		result := ReconcileResult{
			ContentType: id,
			Key:         s.Key.String(),
			Status:      string(s.Status()),
			Dropped:     []DroppedReport{},
		}
		for _, d := range s.Store.Dropped() {
			result.Dropped = append(result.Dropped, DroppedReport{GroupID: d.GroupID, FieldID: d.Field.ID, Name: d.Field.Name})
		}

		// Unconfigured content types have nothing saved to reconcile.
		if s.NeedsSave() && result.Status != "unconfigured" && !reconcileDryRun {
			if err := s.Save(); err != nil {
				return err
			}
			result.Saved = true
		}
		results = append(results, result)
	}

	if format != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), format, results)
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		switch {
		case r.Status != "drifted":
			fmt.Fprintf(out, "%s: %s\n", r.ContentType, r.Status)
		case len(r.Dropped) == 0:
			fmt.Fprintf(out, "%s: schema changed, no grouped fields removed\n", r.ContentType)
		default:
			fmt.Fprintf(out, "%s: removed %d field(s)\n", r.ContentType, len(r.Dropped))
			for _, d := range r.Dropped {
				fmt.Fprintf(out, "   - %s (%s) from group %s\n", d.Name, d.FieldID, d.GroupID)
			}
		}
		if r.Saved {
			cli.PrintSuccess("Saved %s", r.Key)
		}
	}
	if reconcileDryRun {
		cli.PrintInfo("Dry run: nothing was saved")
	}
	return nil
}
