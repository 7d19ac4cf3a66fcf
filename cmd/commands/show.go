package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/models"
	"github.com/pluqqy/fieldgroups/pkg/session"
)

// ShowResult is the structured form of show output
type ShowResult struct {
	Key         string              `json:"key" yaml:"key"`
	Status      string              `json:"status" yaml:"status"`
	UpdatedAt   string              `json:"updatedAt" yaml:"updatedAt"`
	FieldGroups []models.FieldGroup `json:"fieldGroups" yaml:"fieldGroups"`
	Unassigned  []models.Field      `json:"unassigned" yaml:"unassigned"`
}

var showLayout bool

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <content-type>",
		Short: "Show the field groups of a content type",
		Long: `Show the field groups of a content type and the fields no group holds.

The groups are reconciled against the current schema first, so fields that
were removed from the content type are not shown. Nothing is saved.

Examples:
  # Show the groups of blogPost
  fieldgroups show blogPost

  # Show what the entry editor renders
  fieldgroups show blogPost --layout

  # Show as YAML
  fieldgroups show blogPost -o yaml`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runShow,
	}

	cmd.Flags().BoolVar(&showLayout, "layout", false, "Show the entry editor layout instead of the stored groups")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	format, err := outputFormat(cmd, ctx)
	if err != nil {
		return err
	}

	s, err := ctx.OpenSession(args[0])
	if err != nil {
		return err
	}
	for _, dropped := range s.Store.Dropped() {
		cli.PrintWarning("Field %q in group %s is no longer in the schema", dropped.Field.ID, dropped.GroupID)
	}

	if showLayout {
		layout := s.Layout()
		if format != "text" {
			return cli.OutputResults(cmd.OutOrStdout(), format, layout)
		}
		outputLayoutText(cmd.OutOrStdout(), layout)
		return nil
	}

	state := s.Store.State()
	result := ShowResult{
		Key:         s.Key.String(),
		Status:      string(s.Status()),
		UpdatedAt:   state.UpdatedAt,
		FieldGroups: state.FieldGroups,
		Unassigned:  s.Store.Unassigned(),
	}
	if result.FieldGroups == nil {
		result.FieldGroups = []models.FieldGroup{}
	}
	if format != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	showTypes := ctx.LoadSettingsWithDefault().Editor.ShowFieldTypes
	outputShowText(cmd.OutOrStdout(), s, result, showTypes)
	return nil
}

func outputShowText(w io.Writer, s *session.Session, result ShowResult, showTypes bool) {
	fmt.Fprintf(w, "Content type: %s (%s)\n", s.ContentType.Name, s.ContentType.ID())
	fmt.Fprintf(w, "Key:          %s\n", result.Key)
	fmt.Fprintf(w, "Status:       %s\n", result.Status)

	if len(result.FieldGroups) == 0 {
		fmt.Fprintln(w, "\nNo field groups")
	}
	for i, g := range result.FieldGroups {
		fmt.Fprintf(w, "\n%d. %s [%s]\n", i+1, cli.GroupLabel(g.Name), g.ID)
		if len(g.Fields) == 0 {
			fmt.Fprintln(w, "   (empty)")
		}
		for j, f := range g.Fields {
			fmt.Fprintf(w, "   %d  %s\n", j, describeField(s.ContentType, f, showTypes))
		}
	}

	fmt.Fprintf(w, "\nUnassigned (%d)\n", len(result.Unassigned))
	for _, f := range result.Unassigned {
		fmt.Fprintf(w, "   -  %s\n", describeField(s.ContentType, f, showTypes))
	}
}

func describeField(ct *models.ContentType, f models.Field, showTypes bool) string {
	line := fmt.Sprintf("%s (%s)", f.Name, f.ID)
	detail, ok := ct.Field(f.ID)
	if !ok {
		return line
	}
	if showTypes && detail.Type != "" {
		line += " " + detail.Type
	}
	if detail.Required {
		line += " (required)"
	}
	return line
}

func outputLayoutText(w io.Writer, layout []session.LayoutSection) {
	for _, section := range layout {
		if section.GroupID == "" {
			if len(section.Fields) == 0 {
				continue
			}
			fmt.Fprintln(w, "Ungrouped")
		} else {
			fmt.Fprintf(w, "▸ %s\n", cli.GroupLabel(section.Name))
		}
		for _, f := range section.Fields {
			marker := ""
			if f.Required {
				marker = " *"
			}
			fmt.Fprintf(w, "    %s%s\n", f.Name, marker)
		}
	}
}
