// Package selector implements the interactive single-choice prompt used to
// pick a session or a variant. It is a small Bubbletea model: type to
// filter, arrows to move, enter to confirm, esc to cancel.
package selector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vimtools/vsm/internal/errors"
	"github.com/vimtools/vsm/internal/tui/styles"
)

// maxVisible caps how many choices render at once; the cursor scrolls the
// window over longer lists.
const maxVisible = 12

// Item is one selectable row.
type Item struct {
	// Label is the identifier shown and matched against the filter.
	Label string
	// Detail is optional muted context rendered after the label.
	Detail string
}

// Model is the Bubbletea model for the selection prompt.
type Model struct {
	title     string
	items     []Item
	filtered  []int // indexes into items matching the current filter
	cursor    int   // position within filtered
	offset    int   // first visible position within filtered
	input     textinput.Model
	choice    int // index into items; -1 until confirmed
	cancelled bool
}

// NewModel creates a selection model over items.
func NewModel(title string, items []Item) Model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	m := Model{
		title:  title,
		items:  items,
		input:  ti,
		choice: -1,
	}
	m.refilter()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 {
				m.choice = m.filtered[m.cursor]
				return m, tea.Quit
			}
			return m, nil

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			m.scroll()
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			m.scroll()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

// refilter recomputes the visible item set from the filter text and resets
// the cursor.
func (m *Model) refilter() {
	query := strings.ToLower(m.input.Value())
	m.filtered = m.filtered[:0]
	for i, item := range m.items {
		if query == "" || strings.Contains(strings.ToLower(item.Label), query) {
			m.filtered = append(m.filtered, i)
		}
	}
	m.cursor = 0
	m.offset = 0
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+maxVisible {
		m.offset = m.cursor - maxVisible + 1
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.cancelled || m.choice >= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(styles.Muted.Render("no matches"))
		b.WriteString("\n")
	}

	end := m.offset + maxVisible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	for pos := m.offset; pos < end; pos++ {
		item := m.items[m.filtered[pos]]

		line := "  " + styles.Item.Render(item.Label)
		if pos == m.cursor {
			line = styles.Cursor.Render("➜ ") + styles.SelectedItem.Render(item.Label)
		}
		if item.Detail != "" {
			line += "  " + styles.Detail.Render(item.Detail)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.filtered) > maxVisible {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("  …%d more", len(m.filtered)-maxVisible)))
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpBar.Render(
		styles.HelpKey.Render("↑/↓") + " move  " +
			styles.HelpKey.Render("enter") + " select  " +
			styles.HelpKey.Render("esc") + " cancel  type to filter",
	))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected item index, or -1 when nothing was confirmed.
func (m Model) Choice() int {
	return m.choice
}

// Cancelled reports whether the user backed out of the prompt.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Choose runs the prompt on the terminal and returns the index of the chosen
// item. An empty item slice fails with ErrNoCandidates before any terminal
// I/O; user cancellation fails with ErrSelectionCancelled.
func Choose(title string, items []Item) (int, error) {
	if len(items) == 0 {
		return -1, errors.ErrNoCandidates
	}

	p := tea.NewProgram(NewModel(title, items))
	final, err := p.Run()
	if err != nil {
		return -1, errors.Wrap(err, "selection prompt failed")
	}

	m, ok := final.(Model)
	if !ok || m.Cancelled() || m.Choice() < 0 {
		return -1, errors.ErrSelectionCancelled
	}
	return m.Choice(), nil
}
