package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/models"
)

func (m *EditorModel) View() string {
	title := fmt.Sprintf("%s (%s)", m.session.ContentType.Name, m.session.ContentType.ID())
	if m.session.NeedsSave() {
		title += " *"
	}
	status := string(m.session.Status())
	header := renderHeader(m.width, title, GetStatusBadgeStyle(status).Render(status))

	var body string
	switch {
	case m.confirm.Active() && m.confirm.config.Type == ConfirmTypeDialog:
		body = lipgloss.Place(m.width, m.paneHeight()+2, lipgloss.Center, lipgloss.Center, m.confirm.View())
	case m.showPreview:
		body = ActiveBorderStyle.Render(m.preview.View())
	default:
		body = m.renderPanes()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, m.renderFooter())
}

func (m *EditorModel) paneHeight() int {
	return max(m.height-8, 3)
}

func (m *EditorModel) renderPanes() string {
	paneWidth := max((m.width-6)/3, 16)
	height := m.paneHeight()
	state := m.state()

	groupLines := make([]string, 0, len(state.FieldGroups))
	for _, g := range state.FieldGroups {
		groupLines = append(groupLines, fmt.Sprintf("%s (%d)", cli.GroupLabel(g.Name), len(g.Fields)))
	}

	g, hasGroup := m.selectedGroup()
	fieldsTitle := "Fields"
	var fieldLines []string
	if hasGroup {
		fieldsTitle = "Fields in " + cli.GroupLabel(g.Name)
		for _, f := range g.Fields {
			fieldLines = append(fieldLines, m.fieldLabel(f))
		}
	}

	var unassignedLines []string
	for _, f := range m.session.Store.Unassigned() {
		unassignedLines = append(unassignedLines, m.fieldLabel(f))
	}

	empty := map[pane]string{
		groupsPane:     "No groups. Press n to create one.",
		fieldsPane:     "No fields. Add some from Ungrouped.",
		unassignedPane: "Every field is grouped.",
	}
	if !hasGroup {
		empty[fieldsPane] = "Select a group."
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPane(groupsPane, "Groups", groupLines, m.groupCursor, empty[groupsPane], paneWidth, height),
		m.renderPane(fieldsPane, fieldsTitle, fieldLines, m.fieldCursor, empty[fieldsPane], paneWidth, height),
		m.renderPane(unassignedPane, "Ungrouped", unassignedLines, m.unassignedCursor, empty[unassignedPane], paneWidth, height),
	)
}

// renderPane draws a bordered list, scrolled so the cursor stays visible.
func (m *EditorModel) renderPane(p pane, title string, lines []string, cursor int, empty string, width, height int) string {
	active := m.activePane == p
	inner := width - 2

	var b strings.Builder
	b.WriteString(GetActiveHeaderStyle(active).Render(cli.TruncateString(title, inner)))
	b.WriteString("\n")

	visible := max(height-1, 1)
	if len(lines) == 0 {
		style := EmptyInactiveStyle
		if active {
			style = EmptyActiveStyle
		}
		b.WriteString(style.Render(cli.TruncateString(empty, inner)))
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	for i := start; i < len(lines) && i < start+visible; i++ {
		line := cli.TruncateString(lines[i], inner-2)
		if i == cursor && active {
			b.WriteString(SelectedStyle.Render("▸ " + line))
		} else if i == cursor {
			b.WriteString(NormalStyle.Render("› " + line))
		} else {
			b.WriteString(NormalStyle.Render("  " + line))
		}
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	return paneStyle(active).Width(inner).Height(height).Render(b.String())
}

func (m *EditorModel) fieldLabel(f models.Field) string {
	label := f.Name
	detail, ok := m.session.ContentType.Field(f.ID)
	if !ok {
		return label
	}
	if m.settings.Editor.ShowFieldTypes && detail.Type != "" {
		label += " " + DescriptionStyle.Render(detail.Type)
	}
	if detail.Required {
		label += RequiredStyle.Render(" *")
	}
	return label
}

func (m *EditorModel) renderFooter() string {
	if m.renaming {
		input := InputStyle.Render(m.nameInput.View())
		if m.renameErr != "" {
			return lipgloss.JoinVertical(lipgloss.Left, input, ErrorStyle.Render(" "+m.renameErr))
		}
		return input
	}
	if m.confirm.Active() {
		return " " + m.confirm.View()
	}

	var help string
	switch {
	case m.showPreview:
		help = "pgup/pgdn scroll • p/esc close preview"
	case m.activePane == groupsPane:
		help = "n new • r rename • d delete • K/J reorder • enter fields • tab pane • p preview • ctrl+s save • y copy • R revert • q quit"
	case m.activePane == fieldsPane:
		help = "x remove • K/J reorder • tab pane • p preview • ctrl+s save • q quit"
	default:
		help = "enter add to selected group • tab pane • p preview • ctrl+s save • q quit"
	}
	return HelpStyle.Render(wordwrap.String(help, max(m.width-2, 20)))
}

// refreshPreview renders the entry editor layout: groups in order, then the
// fields no group holds.
func (m *EditorModel) refreshPreview() {
	if !m.showPreview {
		return
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Entry editor preview"))
	b.WriteString("\n\n")

	for _, section := range m.session.Layout() {
		if section.GroupID == "" {
			if len(section.Fields) == 0 {
				continue
			}
			b.WriteString(TypeHeaderStyle.Render("Ungrouped"))
		} else {
			b.WriteString(TypeHeaderStyle.Render("▾ " + cli.GroupLabel(section.Name)))
		}
		b.WriteString("\n")
		if len(section.Fields) == 0 {
			b.WriteString(EmptyInactiveStyle.Render("    (empty)"))
			b.WriteString("\n")
		}
		for _, f := range section.Fields {
			line := "    " + f.Name
			if f.Required {
				line += RequiredStyle.Render(" *")
			}
			if m.settings.Editor.ShowFieldTypes && f.Type != "" {
				line += DescriptionStyle.Render("  " + f.Type)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	m.preview.SetContent(wordwrap.String(b.String(), m.preview.Width))
	m.preview.GotoTop()
}
