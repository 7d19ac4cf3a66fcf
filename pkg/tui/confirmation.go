package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationType defines the visual style of the confirmation
type ConfirmationType int

const (
	ConfirmTypeInline ConfirmationType = iota // one line above the help bar
	ConfirmTypeDialog                         // bordered box
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string
	Message     string
	Warning     string   // shown in orange below the message
	Details     []string // e.g. the fields of a group about to be deleted
	Destructive bool     // Yes is red, No is green
	Type        ConfirmationType
	Width       int
}

// ConfirmationModel asks a yes/no question and runs a callback for the answer.
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// ShowInline is Show for a single-line prompt.
func (m *ConfirmationModel) ShowInline(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Message:     message,
		Destructive: destructive,
		Type:        ConfirmTypeInline,
	}, onConfirm, onCancel)
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events while the confirmation is shown. Keys other than
// y, n and esc are swallowed.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

// View renders the confirmation based on its type
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}
	if m.config.Type == ConfirmTypeDialog {
		return m.renderDialog()
	}
	return m.renderInline()
}

func (m *ConfirmationModel) renderInline() string {
	style := ConfirmWarningStyle
	if m.config.Destructive {
		style = ConfirmDangerStyle
	}
	return style.Render(m.config.Message) + " " + formatConfirmOptions(m.config.Destructive)
}

func (m *ConfirmationModel) renderDialog() string {
	width := m.config.Width
	if width == 0 {
		width = 60
	}
	center := lipgloss.NewStyle().Width(width - 4).Align(lipgloss.Center)

	var b strings.Builder
	if m.config.Title != "" {
		b.WriteString(center.Render(TypeHeaderStyle.Render(m.config.Title)))
		b.WriteString("\n\n")
	}
	b.WriteString(center.Render(m.config.Message))
	b.WriteString("\n")

	if m.config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(center.Render(WarningStyle.Render(m.config.Warning)))
		b.WriteString("\n")
	}

	if len(m.config.Details) > 0 {
		b.WriteString("\n")
		for _, detail := range m.config.Details {
			b.WriteString(DescriptionStyle.Render("  • " + detail))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(center.Render(formatConfirmOptions(m.config.Destructive)))

	return ActiveBorderStyle.Width(width).Padding(0, 1).Render(b.String())
}

func formatConfirmOptions(destructive bool) string {
	yes, no := SuccessStyle, ErrorStyle
	if destructive {
		yes, no = ErrorStyle, SuccessStyle
	}
	return fmt.Sprintf("[%s]es / [%s]o", yes.Render("y"), no.Render("n"))
}
