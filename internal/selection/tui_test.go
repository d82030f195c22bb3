package selection

import (
	"testing"

	"rdprint/internal/report"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m model, keys ...string) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(model)
	}
	return m, cmd
}

func testItems() []Item {
	return []Item{
		{Date: "03-09-2024", Files: 2},
		{Date: "04-01-2024", Files: 1},
		{Date: "05-01-2024", Files: 3},
	}
}

func TestModelToggleAndDone(t *testing.T) {
	m, cmd := press(t, initialModel(testItems()), "down", "down", "x", "up", "up", "x", "enter")

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.done)
	assert.Equal(t, []string{"05-01-2024", "03-09-2024"}, m.selected.Dates())
}

func TestModelUntoggle(t *testing.T) {
	m, _ := press(t, initialModel(testItems()), "x", "j", "x", "k", "x")
	assert.Equal(t, []string{"04-01-2024"}, m.selected.Dates())
}

func TestModelCloseKeepsSelection(t *testing.T) {
	for _, closeKey := range []string{"q", "esc", "ctrl+c"} {
		t.Run(closeKey, func(t *testing.T) {
			m, cmd := press(t, initialModel(testItems()), "j", "x", closeKey)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.False(t, m.done)
			assert.Equal(t, []string{"04-01-2024"}, m.selected.Dates())
		})
	}
}

func TestModelDoneWithNothingSelected(t *testing.T) {
	m, cmd := press(t, initialModel(testItems()), "d")
	require.NotNil(t, cmd)
	assert.Empty(t, m.selected.Dates())
}

func TestModelCursorStaysInBounds(t *testing.T) {
	m, _ := press(t, initialModel(testItems()), "up", "k")
	assert.Equal(t, 0, m.cursor)

	m, _ = press(t, m, "down", "down", "down", "j")
	assert.Equal(t, 2, m.cursor)
}

func TestModelToggleWithNoItems(t *testing.T) {
	m, cmd := press(t, initialModel(nil), "x")
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.selected.Len())
}

func TestView(t *testing.T) {
	m, _ := press(t, initialModel(testItems()), "j", "x")
	view := m.View()

	assert.Contains(t, view, "Select Dates to Print")
	assert.Contains(t, view, "[ ] 03-09-2024  (2 files)")
	assert.Contains(t, view, "[x] 04-01-2024  (1 file)")
	assert.Contains(t, view, "Selected: 1/3")
}

func TestItemsChronological(t *testing.T) {
	batches := report.Group([]string{
		"RDInstallmentReport04-01-2024.xls",
		"RDInstallmentReport03-09-2024_A.xlsx",
		"RDInstallmentReport03-09-2024_B.xlsx",
	})

	assert.Equal(t, []Item{
		{Date: "03-09-2024", Files: 2},
		{Date: "04-01-2024", Files: 1},
	}, Items(batches))
}
