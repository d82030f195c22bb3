package selection

import (
	"fmt"
	"strings"

	"rdprint/internal/report"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is one checkbox in the prompt.
type Item struct {
	Date  string
	Files int
}

// Model represents the TUI model
type model struct {
	items    []Item
	cursor   int
	selected Set
	done     bool

	// Screen dimensions
	width int

	// Styling
	titleStyle    lipgloss.Style
	cursorStyle   lipgloss.Style
	normalStyle   lipgloss.Style
	checkedStyle  lipgloss.Style
	helpStyle     lipgloss.Style
	progressStyle lipgloss.Style
}

func initialModel(items []Item) model {
	return model{
		items: items,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		cursorStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")),
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		checkedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		progressStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ", "space", "x":
			if m.cursor < len(m.items) {
				m.selected = m.selected.Toggle(m.items[m.cursor].Date)
			}
		case "enter", "d":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			// Closing keeps the current selection, same as Done.
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("Select Dates to Print"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		box := "[ ]"
		style := m.normalStyle
		if m.selected.Contains(item.Date) {
			box = "[x]"
			style = m.checkedStyle
		}
		if i == m.cursor {
			style = m.cursorStyle
		}

		files := "files"
		if item.Files == 1 {
			files = "file"
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %s  (%d %s)", box, item.Date, item.Files, files)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.progressStyle.Render(fmt.Sprintf("Selected: %d/%d", m.selected.Len(), len(m.items))))
	b.WriteString("\n\n")

	help := "↑↓: navigate | space/x: toggle | Enter/d: done | q: close"
	b.WriteString(m.helpStyle.Render(help))

	return b.String()
}

// Items lists the batches in chronological order.
func Items(batches *report.BatchMap) []Item {
	var items []Item
	for _, date := range batches.SortedDates() {
		items = append(items, Item{Date: date, Files: len(batches.Files(date))})
	}
	return items
}

// Prompt shows the checkbox list and blocks until the operator presses Done
// or closes it. The dates checked at that point are returned in the order
// they were checked.
func Prompt(batches *report.BatchMap, opts ...tea.ProgramOption) ([]string, error) {
	p := tea.NewProgram(initialModel(Items(batches)), opts...)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running TUI: %w", err)
	}

	final := finalModel.(model)
	return final.selected.Dates(), nil
}
