package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tzofnat/elsgrep/core"
)

// listHeight caps how many hit summary rows are shown at once.
const listHeight = 10

// View renders the browser.
func (m *Model) View() string {
	sections := []string{m.styles.Title.Render("elsgrep"), ""}

	if m.mode == modeForm {
		sections = append(sections, m.renderForm()...)
	} else {
		sections = append(sections, m.renderResults()...)
	}

	if m.err != nil {
		sections = append(sections, "", m.styles.Error.Render("error: "+m.err.Error()))
	}

	sections = append(sections, "", m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderForm() []string {
	lines := []string{
		m.styles.Label.Render("pattern") + "   " + m.inputs[fieldPattern].View(),
		m.styles.Label.Render("skip min") + "  " + m.inputs[fieldSkipMin].View(),
		m.styles.Label.Render("skip max") + "  " + m.inputs[fieldSkipMax].View(),
	}
	if m.searching {
		lines = append(lines, "", m.styles.Muted.Render("searching..."))
	}
	return lines
}

func (m *Model) renderResults() []string {
	if len(m.hits) == 0 {
		return []string{m.styles.Muted.Render("no hits")}
	}

	lines := []string{
		m.styles.Label.Render(fmt.Sprintf("%d hits", len(m.hits))),
		"",
	}

	// Keep the selection inside the visible slice of the list.
	first := 0
	if m.selected >= listHeight {
		first = m.selected - listHeight + 1
	}
	last := first + listHeight
	if last > len(m.hits) {
		last = len(m.hits)
	}

	for i := first; i < last; i++ {
		row := m.summarize(m.hits[i])
		if i == m.selected {
			row = m.styles.Selected.Render("> " + row)
		} else {
			row = m.styles.Normal.Render("  " + row)
		}
		lines = append(lines, row)
	}

	if hit := m.SelectedHit(); hit != nil {
		lines = append(lines, "", m.renderWindow(hit))
	}
	return lines
}

func (m *Model) summarize(hit *core.Hit) string {
	direction := "→"
	if hit.Skip < 0 {
		direction = "←"
	}
	return fmt.Sprintf("%s %d:%d  skip %s%d  start %d",
		hit.Ref.Document, hit.Ref.Chapter, hit.Ref.Verse,
		direction, abs(hit.Skip), hit.Start)
}

// renderWindow draws the context window of one hit. Letters are emitted in
// stream order with the matched positions highlighted; the terminal's own
// bidi handling lays the Hebrew run out right to left.
func (m *Model) renderWindow(hit *core.Hit) string {
	var b strings.Builder
	for _, cell := range hit.Window {
		letter := string(cell.Letter)
		if cell.Match {
			b.WriteString(m.styles.Match.Render(letter))
		} else {
			b.WriteString(m.styles.Muted.Render(letter))
		}
	}

	width := m.width - 4
	if width < 10 {
		width = 10
	}
	return m.styles.Window.Width(width).Render(b.String())
}

func (m *Model) renderHelp() string {
	if m.mode == modeForm {
		return m.styles.Help.Render("tab: next field • enter: search • esc: quit")
	}
	return m.styles.Help.Render("j/k: move • n: new search • esc: back • q: quit")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
