package tui

import (
	"bytes"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/files"
	"github.com/pluqqy/fieldgroups/pkg/grouping"
	"github.com/pluqqy/fieldgroups/pkg/models"
	"github.com/pluqqy/fieldgroups/pkg/session"
)

type pane int

const (
	groupsPane pane = iota
	fieldsPane
	unassignedPane
	paneCount
)

// EditorModel edits the field groups of one session. Nothing is written
// until ctrl+s.
type EditorModel struct {
	session  *session.Session
	settings *models.Settings

	activePane       pane
	groupCursor      int
	fieldCursor      int
	unassignedCursor int

	renaming      bool
	renameGroupID string
	nameInput     textinput.Model
	renameErr     string

	confirm *ConfirmationModel

	showPreview bool
	preview     viewport.Model

	width  int
	height int
}

func NewEditorModel(s *session.Session, settings *models.Settings) *EditorModel {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	input := textinput.New()
	input.Placeholder = "Group name"
	input.CharLimit = 100
	input.Prompt = "Name: "

	return &EditorModel{
		session:   s,
		settings:  settings,
		nameInput: input,
		confirm:   NewConfirmation(),
		preview:   viewport.New(80, 20),
		width:     80,
		height:    24,
	}
}

func (m *EditorModel) Init() tea.Cmd {
	if dropped := len(m.session.Store.Dropped()); dropped > 0 {
		return statusCmd(fmt.Sprintf("⚠ Schema changed: %d field(s) no longer exist and were removed from their groups", dropped))
	}
	return nil
}

func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.preview.Width = max(width-4, 10)
	m.preview.Height = max(height-8, 3)
	m.refreshPreview()
}

func (m *EditorModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.renaming {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return cmd
		}
		return nil
	}

	if m.confirm.Active() {
		return m.confirm.Update(key)
	}
	if m.renaming {
		return m.handleRenameKey(key)
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "esc":
		return m.back()
	case "ctrl+s":
		return m.save()
	case "tab":
		m.activePane = (m.activePane + 1) % paneCount
	case "shift+tab":
		m.activePane = (m.activePane + paneCount - 1) % paneCount
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "pgup", "pgdown":
		if m.showPreview {
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(key)
			return cmd
		}
	case "K", "shift+up":
		return m.reorder(-1)
	case "J", "shift+down":
		return m.reorder(1)
	case "n":
		return m.createGroup()
	case "r":
		if m.activePane == groupsPane {
			return m.startRename()
		}
	case "d":
		if m.activePane == groupsPane {
			return m.deleteGroup()
		}
	case "enter", "a":
		switch m.activePane {
		case unassignedPane:
			return m.addField()
		case groupsPane:
			m.activePane = fieldsPane
		}
	case "x", "backspace", "delete":
		if m.activePane == fieldsPane {
			return m.removeField()
		}
	case "p":
		m.showPreview = !m.showPreview
		m.refreshPreview()
	case "y":
		return m.copyToClipboard()
	case "R":
		return m.revert()
	}
	return nil
}

func (m *EditorModel) state() models.GroupingState {
	return m.session.Store.State()
}

func (m *EditorModel) selectedGroup() (models.FieldGroup, bool) {
	return m.session.Store.GroupAt(m.groupCursor)
}

func (m *EditorModel) moveCursor(delta int) {
	switch m.activePane {
	case groupsPane:
		m.groupCursor += delta
		m.fieldCursor = 0
	case fieldsPane:
		m.fieldCursor += delta
	case unassignedPane:
		m.unassignedCursor += delta
	}
	m.clampCursors()
}

func (m *EditorModel) clampCursors() {
	clamp := func(v, n int) int {
		if v >= n {
			v = n - 1
		}
		if v < 0 {
			v = 0
		}
		return v
	}

	m.groupCursor = clamp(m.groupCursor, m.session.Store.Len())
	g, _ := m.selectedGroup()
	m.fieldCursor = clamp(m.fieldCursor, len(g.Fields))
	m.unassignedCursor = clamp(m.unassignedCursor, len(m.session.Store.Unassigned()))
}

// apply runs an action and reports a rejected precondition in the status bar.
func (m *EditorModel) apply(action grouping.Action) tea.Cmd {
	if err := m.session.Apply(action); err != nil {
		return statusCmd("✗ " + err.Error())
	}
	m.clampCursors()
	m.refreshPreview()
	return nil
}

func (m *EditorModel) createGroup() tea.Cmd {
	if cmd := m.apply(grouping.CreateGroup{}); cmd != nil {
		return cmd
	}
	m.activePane = groupsPane
	m.groupCursor = m.session.Store.Len() - 1
	m.fieldCursor = 0
	return m.startRename()
}

func (m *EditorModel) startRename() tea.Cmd {
	g, ok := m.selectedGroup()
	if !ok {
		return nil
	}
	m.renaming = true
	m.renameGroupID = g.ID
	m.renameErr = ""
	m.nameInput.SetValue(g.Name)
	m.nameInput.CursorEnd()
	return m.nameInput.Focus()
}

func (m *EditorModel) handleRenameKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.stopRename()
		return nil
	case "enter":
		name := m.nameInput.Value()
		if err := cli.ValidateGroupName(name); err != nil {
			m.renameErr = err.Error()
			return nil
		}
		id := m.renameGroupID
		m.stopRename()
		return m.apply(grouping.RenameGroup{GroupID: id, Name: name})
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(key)
	m.renameErr = ""
	if err := cli.ValidateGroupName(m.nameInput.Value()); err != nil {
		m.renameErr = err.Error()
	}
	return cmd
}

func (m *EditorModel) stopRename() {
	m.renaming = false
	m.renameGroupID = ""
	m.renameErr = ""
	m.nameInput.Blur()
}

func (m *EditorModel) deleteGroup() tea.Cmd {
	g, ok := m.selectedGroup()
	if !ok {
		return nil
	}

	remove := func() tea.Cmd {
		if cmd := m.apply(grouping.DeleteGroup{GroupID: g.ID}); cmd != nil {
			return cmd
		}
		return statusCmd(fmt.Sprintf("Deleted group %s", cli.GroupLabel(g.Name)))
	}

	if !m.settings.Editor.ConfirmDelete || len(g.Fields) == 0 {
		return remove()
	}

	details := make([]string, 0, len(g.Fields))
	for _, f := range g.Fields {
		details = append(details, f.Name)
	}
	m.confirm.Show(ConfirmationConfig{
		Title:       "Delete group",
		Message:     fmt.Sprintf("Delete %s?", cli.GroupLabel(g.Name)),
		Warning:     fmt.Sprintf("%d field(s) will become ungrouped", len(g.Fields)),
		Details:     details,
		Destructive: true,
		Type:        ConfirmTypeDialog,
		Width:       min(max(m.width-10, 30), 60),
	}, remove, nil)
	return nil
}

func (m *EditorModel) addField() tea.Cmd {
	unassigned := m.session.Store.Unassigned()
	if len(unassigned) == 0 {
		return nil
	}
	g, ok := m.selectedGroup()
	if !ok {
		return statusCmd("Create a group first (n)")
	}

	f := unassigned[m.unassignedCursor]
	return m.apply(grouping.AddField{GroupID: g.ID, FieldID: f.ID, FieldName: f.Name})
}

func (m *EditorModel) removeField() tea.Cmd {
	g, ok := m.selectedGroup()
	if !ok || len(g.Fields) == 0 {
		return nil
	}
	return m.apply(grouping.RemoveField{GroupID: g.ID, FieldID: g.Fields[m.fieldCursor].ID})
}

func (m *EditorModel) reorder(delta int) tea.Cmd {
	g, ok := m.selectedGroup()
	if !ok {
		return nil
	}

	switch m.activePane {
	case groupsPane:
		var action grouping.Action = grouping.MoveGroupUp{GroupID: g.ID}
		if delta > 0 {
			action = grouping.MoveGroupDown{GroupID: g.ID}
		}
		if cmd := m.apply(action); cmd != nil {
			return cmd
		}
		m.groupCursor += delta
	case fieldsPane:
		to := m.fieldCursor + delta
		if to < 0 || to >= len(g.Fields) {
			return nil
		}
		if cmd := m.apply(grouping.MoveField{GroupID: g.ID, OldIndex: m.fieldCursor, NewIndex: to}); cmd != nil {
			return cmd
		}
		m.fieldCursor = to
	}
	m.clampCursors()
	return nil
}

func (m *EditorModel) save() tea.Cmd {
	if err := m.session.Save(); err != nil {
		return statusCmd("✗ " + err.Error())
	}
	return statusCmd(fmt.Sprintf("✓ Saved field groups for %s", m.session.Key))
}

func (m *EditorModel) revert() tea.Cmd {
	if !m.session.Store.Dirty() {
		return nil
	}
	m.confirm.ShowInline("Discard all changes since the last save?", true, func() tea.Cmd {
		m.session.Store.Reset()
		m.clampCursors()
		m.refreshPreview()
		return statusCmd("Changes discarded")
	}, nil)
	return nil
}

func (m *EditorModel) quit() tea.Cmd {
	if !m.session.NeedsSave() {
		return tea.Quit
	}
	m.confirm.ShowInline("Quit without saving?", true, func() tea.Cmd {
		return tea.Quit
	}, nil)
	return nil
}

func (m *EditorModel) back() tea.Cmd {
	if m.showPreview {
		m.showPreview = false
		return nil
	}

	toList := func() tea.Cmd {
		return func() tea.Msg { return SwitchViewMsg{view: contentTypeListView} }
	}
	if !m.session.NeedsSave() {
		return toList()
	}
	m.confirm.ShowInline("Leave without saving?", true, toList, nil)
	return nil
}

// copyToClipboard copies this session's current state as a one-key config blob.
func (m *EditorModel) copyToClipboard() tea.Cmd {
	state := m.state()
	blob := models.PersistedConfig{m.session.Key.String(): &state}

	var buf bytes.Buffer
	if err := files.ExportJSON(&buf, blob); err != nil {
		return statusCmd("✗ " + err.Error())
	}
	if err := clipboard.WriteAll(buf.String()); err != nil {
		return statusCmd("✗ Failed to copy to clipboard: " + err.Error())
	}
	return statusCmd("✓ Copied field groups to clipboard")
}

func statusCmd(msg string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(msg) }
}
