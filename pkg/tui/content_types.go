package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/files"
	"github.com/pluqqy/fieldgroups/pkg/models"
	"github.com/pluqqy/fieldgroups/pkg/session"
)

type contentTypeItem struct {
	id         string
	name       string
	groups     int
	unassigned int
	status     session.Status
}

// ContentTypeListModel lists the project's content types to pick one for editing.
type ContentTypeListModel struct {
	settings *models.Settings
	items    []contentTypeItem
	cursor   int
	err      error
	width    int
	height   int
}

func NewContentTypeListModel(settings *models.Settings) *ContentTypeListModel {
	m := &ContentTypeListModel{settings: settings}
	m.load()
	return m
}

func (m *ContentTypeListModel) Init() tea.Cmd {
	m.load()
	return nil
}

func (m *ContentTypeListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ContentTypeListModel) load() {
	m.items = nil
	m.err = nil

	ids, err := files.ListContentTypes()
	if err != nil {
		m.err = err
		return
	}
	cfg, err := files.ReadConfig()
	if err != nil {
		m.err = err
		return
	}

	for _, id := range ids {
		ct, err := files.ReadContentType(id)
		if err != nil {
			continue
		}
		s := session.New(ct, cfg, m.settings)
		m.items = append(m.items, contentTypeItem{
			id:         ct.ID(),
			name:       ct.Name,
			groups:     s.Store.Len(),
			unassigned: len(s.Store.Unassigned()),
			status:     s.Status(),
		})
	}

	if m.cursor >= len(m.items) {
		m.cursor = max(len(m.items)-1, 0)
	}
}

func (m *ContentTypeListModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "r":
		m.load()
	case "enter", "e":
		if len(m.items) == 0 {
			return nil
		}
		id := m.items[m.cursor].id
		return func() tea.Msg {
			return SwitchViewMsg{view: editorView, contentType: id}
		}
	}
	return nil
}

func (m *ContentTypeListModel) View() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.width, "Content types", ""))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("  Failed to load content types: %v", m.err)))
		b.WriteString("\n")
	case len(m.items) == 0:
		b.WriteString(EmptyActiveStyle.Render("  No content types yet."))
		b.WriteString("\n")
		b.WriteString(DescriptionStyle.Render("  Import one with 'fieldgroups schema import <file>'."))
		b.WriteString("\n")
	}

	nameWidth := max(m.width-50, 20)
	for i, item := range m.items {
		line := fmt.Sprintf("%s %s %3d groups %3d ungrouped ",
			cli.PadRight(cli.TruncateString(item.id, 20), 20),
			cli.PadRight(cli.TruncateString(item.name, nameWidth), nameWidth),
			item.groups,
			item.unassigned)
		badge := GetStatusBadgeStyle(string(item.status)).Render(string(item.status))
		if i == m.cursor {
			b.WriteString(SelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(NormalStyle.Render("  " + line))
		}
		b.WriteString(badge)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/↓ select • enter edit • r reload • q quit"))
	return b.String()
}
