package prompt

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m inputModel, msg tea.Msg) (inputModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(inputModel)
	require.True(t, ok, "Update returned %T", next)
	return got, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestInputModel_TypedValue(t *testing.T) {
	m := newInputModel("Project Name", "work", true)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("demo")})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, isQuit(cmd))
	assert.Equal(t, "demo", m.value)
	assert.False(t, m.cancelled)
}

func TestInputModel_EnterTakesDefault(t *testing.T) {
	m := newInputModel("Project Name", "work", true)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, isQuit(cmd))
	assert.Equal(t, "work", m.value)
}

func TestInputModel_EmptyRejected(t *testing.T) {
	m := newInputModel("The command to open your editor", "", false)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, "a value is required", m.errMsg)
	assert.Contains(t, m.View(), "a value is required")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("vim")})
	assert.Empty(t, m.errMsg)

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "vim", m.value)
}

func TestInputModel_Cancel(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newInputModel("Project Name", "work", true)

		m, cmd := update(t, m, tea.KeyMsg{Type: key})

		assert.True(t, isQuit(cmd))
		assert.True(t, m.cancelled)
		assert.Empty(t, m.value)
	}
}

func TestInputModel_View(t *testing.T) {
	m := newInputModel("Project Name", "work", true)

	view := m.View()
	assert.True(t, strings.Contains(view, "Project Name"))
	assert.Contains(t, view, "(work)")
}
