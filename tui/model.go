// Package tui provides an interactive terminal browser for letter sequence
// searches: a pattern form, a navigable hit list, and a context window with
// the matched letters highlighted.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tzofnat/elsgrep/core"
	"github.com/tzofnat/elsgrep/hebrew"
)

// Finder runs one search. *search.Searcher satisfies it.
type Finder interface {
	Find(ctx context.Context, req *core.Request) ([]*core.Hit, error)
}

type mode int

const (
	modeForm mode = iota
	modeResults
)

const (
	fieldPattern = iota
	fieldSkipMin
	fieldSkipMax
	fieldCount
)

// searchDone delivers the outcome of an asynchronous search.
type searchDone struct {
	hits []*core.Hit
	err  error
}

// Model is the bubbletea model for the hit browser.
type Model struct {
	styles *Styles
	finder Finder
	ctx    context.Context

	inputs [fieldCount]textinput.Model
	focus  int

	mode      mode
	searching bool
	hits      []*core.Hit
	selected  int
	err       error

	width  int
	height int
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithStyles sets a custom style set.
func WithStyles(s *Styles) ModelOption {
	return func(m *Model) {
		if s != nil {
			m.styles = s
		}
	}
}

// WithContext sets the context used for searches.
func WithContext(ctx context.Context) ModelOption {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// WithSkipRange pre-fills the skip range form fields.
func WithSkipRange(skipMin, skipMax int) ModelOption {
	return func(m *Model) {
		m.inputs[fieldSkipMin].SetValue(strconv.Itoa(skipMin))
		m.inputs[fieldSkipMax].SetValue(strconv.Itoa(skipMax))
	}
}

// NewModel creates the browser model over a finder.
func NewModel(finder Finder, opts ...ModelOption) *Model {
	m := &Model{
		styles: DefaultStyles(),
		finder: finder,
		ctx:    context.Background(),
		width:  80,
		height: 24,
	}

	pattern := textinput.New()
	pattern.Placeholder = "pattern (Hebrew or Latin)"
	pattern.CharLimit = 64
	pattern.Focus()
	m.inputs[fieldPattern] = pattern

	skipMin := textinput.New()
	skipMin.Placeholder = "1"
	skipMin.SetValue("1")
	skipMin.CharLimit = 8
	m.inputs[fieldSkipMin] = skipMin

	skipMax := textinput.New()
	skipMax.Placeholder = "100"
	skipMax.SetValue("100")
	skipMax.CharLimit = 8
	m.inputs[fieldSkipMax] = skipMax

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init starts the input cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchDone:
		m.searching = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.hits = msg.hits
		m.selected = 0
		m.mode = modeResults
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.mode == modeForm {
		return m.handleFormKey(msg)
	}
	return m.handleResultsKey(msg)
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	}

	return m.updateFocused(msg)
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeForm
		m.setFocus(fieldPattern)
		return m, nil
	case tea.KeyUp:
		m.moveSelection(-1)
		return m, nil
	case tea.KeyDown:
		m.moveSelection(1)
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "k":
		m.moveSelection(-1)
	case "j":
		m.moveSelection(1)
	case "g":
		m.selected = 0
	case "G":
		if len(m.hits) > 0 {
			m.selected = len(m.hits) - 1
		}
	case "n":
		m.mode = modeForm
		m.setFocus(fieldPattern)
	}
	return m, nil
}

func (m *Model) moveSelection(delta int) {
	next := m.selected + delta
	if next >= 0 && next < len(m.hits) {
		m.selected = next
	}
}

func (m *Model) setFocus(field int) {
	m.focus = field
	for i := range m.inputs {
		if i == field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit validates the form and launches the search.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	req, err := m.buildRequest()
	if err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.searching = true
	return m, func() tea.Msg {
		hits, err := m.finder.Find(m.ctx, req)
		return searchDone{hits: hits, err: err}
	}
}

// buildRequest turns the form fields into a search request. Input already in
// the Hebrew alphabet is normalized in place; anything else goes through the
// transliterator.
func (m *Model) buildRequest() (*core.Request, error) {
	raw := strings.TrimSpace(m.inputs[fieldPattern].Value())
	if raw == "" {
		return nil, core.ErrEmptyPattern
	}

	var pattern []rune
	if hasHebrew(raw) {
		pattern, _ = hebrew.Normalize(raw)
	} else {
		pattern, _ = hebrew.Encode(raw)
	}

	skipMin, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldSkipMin].Value()))
	if err != nil {
		return nil, fmt.Errorf("skip min: %w", err)
	}
	skipMax, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldSkipMax].Value()))
	if err != nil {
		return nil, fmt.Errorf("skip max: %w", err)
	}

	r := &core.Request{
		Pattern:  pattern,
		SkipMin:  skipMin,
		SkipMax:  skipMax,
		Forward:  true,
		Backward: true,
		MaxHits:  500,
	}
	if err := core.ValidateRequest(r); err != nil {
		return nil, err
	}
	return r, nil
}

func hasHebrew(s string) bool {
	for _, r := range s {
		if hebrew.IsLetter(r) {
			return true
		}
	}
	return false
}

// SelectedHit returns the currently selected hit, or nil.
func (m *Model) SelectedHit() *core.Hit {
	if m.mode != modeResults || m.selected >= len(m.hits) {
		return nil
	}
	return m.hits[m.selected]
}

// Run starts the browser and blocks until it exits.
func Run(finder Finder, opts ...ModelOption) error {
	program := tea.NewProgram(NewModel(finder, opts...), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
