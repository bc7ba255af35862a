// Package browser is the interactive card browser: a search bar, filter
// tabs and a scrolling result list with an animated result count.
package browser

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcanaland/cardbook/internal/card"
	"github.com/arcanaland/cardbook/internal/counter"
	"github.com/arcanaland/cardbook/internal/search"
)

// frameMsg asks the result counter to advance. gen ties it to the counter
// that scheduled it so ticks from a replaced counter are dropped.
type frameMsg struct {
	gen int
}

// Option configures a Model
type Option func(*Model)

// WithReducedMotion shows result counts without animating them
func WithReducedMotion(reduced bool) Option {
	return func(m *Model) {
		m.reducedMotion = reduced
	}
}

// WithTitle sets the header text
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// Model is the bubbletea model of the browser
type Model struct {
	index *search.Index
	input textinput.Model
	title string

	state    search.State
	results  []search.Result
	cursor   int
	offset   int
	expanded bool

	count         *counter.Counter
	gen           int
	reducedMotion bool

	width  int
	height int
}

// New creates a browser over idx showing every card
func New(idx *search.Index, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search cards..."
	ti.CharLimit = 100
	ti.Width = 50
	ti.Focus()

	m := &Model{
		index:  idx,
		input:  ti,
		title:  "Card Database",
		state:  search.State{Filter: card.All},
		width:  80,
		height: 24,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.refresh()
	return m
}

// Init starts the cursor blink and the first count animation
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.nextFrame())
}

// Update handles tea messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-12, 10)
		m.clampScroll()
		return m, nil

	case frameMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.count.Tick()
		return m, m.nextFrame()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.count.Stop()
			return m, tea.Quit
		case "tab":
			m.cycleFilter(1)
			return m, m.nextFrame()
		case "shift+tab":
			m.cycleFilter(-1)
			return m, m.nextFrame()
		case "up", "ctrl+p":
			m.moveCursor(-1)
			return m, nil
		case "down", "ctrl+n":
			m.moveCursor(1)
			return m, nil
		case "pgup":
			m.moveCursor(-m.listHeight())
			return m, nil
		case "pgdown":
			m.moveCursor(m.listHeight())
			return m, nil
		case "enter":
			m.expanded = !m.expanded
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.state.Query {
		m.state.Query = m.input.Value()
		m.refresh()
		return m, tea.Batch(cmd, m.nextFrame())
	}
	return m, cmd
}

// State returns the current search state
func (m *Model) State() search.State {
	return m.state
}

// Results returns the cards currently listed
func (m *Model) Results() []search.Result {
	return m.results
}

// Selected returns the card under the cursor
func (m *Model) Selected() (card.Card, bool) {
	if len(m.results) == 0 {
		return card.Card{}, false
	}
	return m.results[m.cursor].Card, true
}

// SetFilter replaces the active filter
func (m *Model) SetFilter(f card.Filter) tea.Cmd {
	m.state.Filter = f
	m.refresh()
	return m.nextFrame()
}

// cycleFilter moves to the next or previous filter tab
func (m *Model) cycleFilter(step int) {
	current := 0
	for i, f := range card.Filters {
		if f == m.state.Filter || (f.IsAll() && m.state.Filter.IsAll()) {
			current = i
			break
		}
	}
	n := len(card.Filters)
	m.state.Filter = card.Filters[((current+step)%n+n)%n]
	m.refresh()
}

// refresh recomputes the results and restarts the count animation
func (m *Model) refresh() {
	m.results = m.index.Search(m.state)
	m.cursor = 0
	m.offset = 0
	m.expanded = false

	if m.count != nil {
		m.count.Stop()
	}
	m.gen++
	m.count = counter.New(len(m.results),
		counter.Immediate(),
		counter.WithReducedMotion(m.reducedMotion),
	)
}

// nextFrame schedules the next counter frame while it is animating
func (m *Model) nextFrame() tea.Cmd {
	if !m.count.Running() {
		return nil
	}
	gen := m.gen
	return tea.Tick(counter.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func (m *Model) moveCursor(delta int) {
	if len(m.results) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.results)-1)
	m.expanded = false
	m.clampScroll()
}

// clampScroll keeps the cursor inside the visible window
func (m *Model) clampScroll() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

// listHeight is the number of result rows that fit on screen
func (m *Model) listHeight() int {
	// title, search bar (3), tabs, count, help and spacing
	return max(m.height-10, 1)
}
