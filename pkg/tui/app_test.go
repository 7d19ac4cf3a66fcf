package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/fieldgroups/pkg/files"
	"github.com/pluqqy/fieldgroups/pkg/models"
)

func TestContentTypeListOpensEditor(t *testing.T) {
	chdirProject(t)
	require.NoError(t, files.WriteContentType(blogPost()))

	app := NewApp(nil)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	require.Len(t, app.list.items, 1)
	assert.Equal(t, "unconfigured", string(app.list.items[0].status))
	assert.Contains(t, app.View(), "blogPost")

	_, cmd := app.Update(key("enter"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(SwitchViewMsg)
	require.True(t, ok)
	assert.Equal(t, "blogPost", msg.contentType)

	app.Update(msg)
	assert.Equal(t, editorView, app.state)
	require.NotNil(t, app.editor)
	assert.Equal(t, 120, app.editor.width)
}

func TestAppReturnsToListAfterSave(t *testing.T) {
	chdirProject(t)
	require.NoError(t, files.WriteContentType(blogPost()))

	app := NewApp(models.DefaultSettings())
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	app.Update(SwitchViewMsg{view: editorView, contentType: "blogPost"})
	require.Equal(t, editorView, app.state)

	app.Update(key("n"))
	app.Update(key("esc"))
	_, cmd := app.Update(key("ctrl+s"))
	app.Update(cmd())
	assert.Contains(t, app.View(), "Saved field groups")

	_, cmd = app.Update(key("esc"))
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.Equal(t, contentTypeListView, app.state)
	require.Len(t, app.list.items, 1)
	assert.Equal(t, "synced", string(app.list.items[0].status))
	assert.Equal(t, 1, app.list.items[0].groups)
}

func TestAppOpenMissingContentType(t *testing.T) {
	chdirProject(t)

	app := NewApp(nil)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	app.Update(SwitchViewMsg{view: editorView, contentType: "missing"})

	assert.Equal(t, contentTypeListView, app.state)
	assert.Contains(t, app.statusMsg, "content type not found")
}

func TestAppCtrlCQuitsFromList(t *testing.T) {
	chdirProject(t)

	app := NewApp(nil)
	_, cmd := app.Update(key("ctrl+c"))
	assert.True(t, isQuit(cmd))
}

func TestNewEditorAppStartsInEditor(t *testing.T) {
	m := newTestEditor(t, nil, nil)

	app := NewEditorApp(nil, m.session)
	assert.Equal(t, editorView, app.state)
	assert.Nil(t, app.Init())
	assert.Equal(t, "Loading...", app.View())
}
