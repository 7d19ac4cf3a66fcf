package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/fieldgroups/pkg/models"
	"github.com/pluqqy/fieldgroups/pkg/session"
)

type sessionState int

const (
	contentTypeListView sessionState = iota
	editorView
)

type App struct {
	state     sessionState
	settings  *models.Settings
	list      *ContentTypeListModel
	editor    *EditorModel
	width     int
	height    int
	statusMsg string
}

// NewApp starts on the content type list.
func NewApp(settings *models.Settings) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return &App{
		state:    contentTypeListView,
		settings: settings,
		list:     NewContentTypeListModel(settings),
	}
}

// NewEditorApp starts directly in the editor for an open session.
func NewEditorApp(settings *models.Settings, s *session.Session) *App {
	a := NewApp(settings)
	a.state = editorView
	a.editor = NewEditorModel(s, a.settings)
	return a
}

func (a *App) Init() tea.Cmd {
	if a.state == editorView {
		return a.editor.Init()
	}
	return a.list.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, a.contentHeight())
		if a.editor != nil {
			a.editor.SetSize(msg.Width, a.contentHeight())
		}
		return a, nil

	case tea.KeyMsg:
		// The editor guards ctrl+c itself so unsaved changes are not lost.
		if msg.Type == tea.KeyCtrlC && a.state != editorView {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		a.statusMsg = ""
		switch msg.view {
		case contentTypeListView:
			a.state = contentTypeListView
			a.editor = nil
			return a, a.list.Init()
		case editorView:
			s, err := session.Open(msg.contentType, a.settings)
			if err != nil {
				a.statusMsg = "✗ " + err.Error()
				return a, nil
			}
			a.state = editorView
			a.editor = NewEditorModel(s, a.settings)
			a.editor.SetSize(a.width, a.contentHeight())
			return a, a.editor.Init()
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case contentTypeListView:
		cmd = a.list.Update(msg)
	case editorView:
		cmd = a.editor.Update(msg)
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case contentTypeListView:
		content = a.list.View()
	case editorView:
		content = a.editor.View()
	}

	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, StatusBarStyle.Render(a.statusMsg))
	}
	return content
}

// contentHeight leaves one row for the status bar.
func (a *App) contentHeight() int {
	return a.height - 1
}

// Messages for communication between views
type StatusMsg string

type SwitchViewMsg struct {
	view        sessionState
	contentType string
}
