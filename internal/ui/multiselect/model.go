// Package multiselect implements a searchable multi-select dropdown.
//
// The widget does not own the selection. It receives the option set and the
// current selection from its host and reports every change through
// Config.OnSelectionChange with the complete new selection; the host decides
// what the widget shows next by calling SetSelected.
//
// Interaction state (open/closed, search text, focused row) is local. While
// open, the widget holds one subscription on the host's listen.Registry to
// see navigation keys and clicks that land outside of it; every path that
// closes the dropdown releases that subscription.
package multiselect

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tzpick/internal/domain"
	"tzpick/internal/ui/listen"
	"tzpick/internal/ui/logic"
	"tzpick/internal/ui/views"
)

// DefaultPlaceholder is shown when nothing is selected and nothing is typed
const DefaultPlaceholder = "Select..."

const (
	defaultDropdownHeight = 10
	defaultWidth          = 60
	minInputWidth         = 24
)

// Config configures a widget
type Config struct {
	Options           []domain.Option
	Selected          []string
	OnSelectionChange func(selected []string)
	Placeholder       string
	DropdownHeight    int
	Width             int
	Listeners         *listen.Registry
	Styles            *views.Styles
	KeyMap            *KeyMap
}

// Model is the widget state
type Model struct {
	options     []domain.Option
	selected    []string
	onChange    func([]string)
	placeholder string
	width       int

	open     bool
	input    textinput.Model
	focused  int
	viewport logic.Viewport
	filter   *logic.SearchFilter

	listeners *listen.Registry
	release   func()

	originX int
	originY int

	keys   KeyMap
	styles *views.Styles
}

// New creates a closed, unfocused widget
func New(cfg Config) *Model {
	if cfg.Placeholder == "" {
		cfg.Placeholder = DefaultPlaceholder
	}
	if cfg.DropdownHeight < 1 {
		cfg.DropdownHeight = defaultDropdownHeight
	}
	if cfg.Width < 1 {
		cfg.Width = defaultWidth
	}
	if cfg.Listeners == nil {
		cfg.Listeners = listen.NewRegistry()
	}
	if cfg.Styles == nil {
		cfg.Styles = views.NewStyles()
	}
	keys := DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = max(minInputWidth, len([]rune(cfg.Placeholder))+1)

	m := &Model{
		options:     cfg.Options,
		onChange:    cfg.OnSelectionChange,
		placeholder: cfg.Placeholder,
		width:       cfg.Width,
		input:       ti,
		focused:     logic.NoFocus,
		viewport:    logic.Viewport{Height: cfg.DropdownHeight},
		filter:      logic.NewSearchFilter(),
		listeners:   cfg.Listeners,
		keys:        keys,
		styles:      cfg.Styles,
	}
	m.SetSelected(cfg.Selected)
	return m
}

// SetOptions replaces the option set
func (m *Model) SetOptions(options []domain.Option) {
	m.options = options
	m.viewport.Follow(m.focused, len(m.Filtered()))
}

// SetSelected replaces the selection shown by the widget
func (m *Model) SetSelected(selected []string) {
	m.selected = append([]string(nil), selected...)
	if len(m.selected) > 0 {
		m.input.Placeholder = ""
	} else {
		m.input.Placeholder = m.placeholder
	}
}

// SetOrigin tells the widget where its top-left cell is on screen
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// Listeners returns the registry the widget subscribes to while open
func (m *Model) Listeners() *listen.Registry {
	return m.listeners
}

// KeyMap returns the active key bindings
func (m *Model) KeyMap() KeyMap {
	return m.keys
}

// Selected returns the selection currently shown
func (m *Model) Selected() []string {
	return append([]string(nil), m.selected...)
}

// IsOpen reports whether the dropdown is shown
func (m *Model) IsOpen() bool {
	return m.open
}

// Focused reports whether the search input has focus
func (m *Model) Focused() bool {
	return m.input.Focused()
}

// FocusedIndex returns the highlighted row in the filtered list, or logic.NoFocus
func (m *Model) FocusedIndex() int {
	return m.focused
}

// Search returns the current search text
func (m *Model) Search() string {
	return m.input.Value()
}

// Filtered returns the options whose label contains the search text
func (m *Model) Filtered() []domain.Option {
	return m.filter.Filter(m.options, m.input.Value())
}

// Focus gives the search input focus. Opening is the only way into the
// open state and always starts without a highlighted row.
func (m *Model) Focus() tea.Cmd {
	cmd := m.input.Focus()
	if !m.open {
		m.open = true
		m.focused = logic.NoFocus
		m.viewport.Offset = 0
		m.release = m.listeners.Subscribe(m.handleGlobal)
	}
	return cmd
}

// Blur removes focus from the search input and closes the dropdown
func (m *Model) Blur() {
	m.input.Blur()
	m.Close()
}

// Close hides the dropdown. Search text and the focused row are kept.
func (m *Model) Close() {
	m.open = false
	if m.release != nil {
		m.release()
		m.release = nil
	}
}

// Update handles messages routed to the widget by its host: mouse events
// inside the widget, keys while it has focus, and cursor blinks.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.MouseMsg); ok {
		return m.handleMouse(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.viewport.Follow(m.focused, len(m.Filtered()))
	return cmd
}

// handleGlobal sees every key and mouse message while the dropdown is open
func (m *Model) handleGlobal(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		filtered := m.Filtered()
		switch {
		case key.Matches(msg, m.keys.Down):
			m.focused = logic.MoveDown(m.focused, len(filtered))
			m.viewport.Follow(m.focused, len(filtered))
			return true, nil
		case key.Matches(msg, m.keys.Up):
			m.focused = logic.MoveUp(m.focused)
			m.viewport.Follow(m.focused, len(filtered))
			return true, nil
		case key.Matches(msg, m.keys.Toggle):
			if logic.InRange(m.focused, len(filtered)) {
				return true, m.toggle(filtered[m.focused].Value)
			}
			return true, nil
		case key.Matches(msg, m.keys.Close):
			m.Close()
			return true, nil
		case key.Matches(msg, m.keys.Leave):
			// Close, but let the host move focus as usual
			m.Close()
			return false, nil
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && !tea.MouseEvent(msg).IsWheel() {
			if !m.contains(msg.X-m.originX, msg.Y-m.originY) {
				m.Close()
			}
		}
	}
	return false, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x, y := msg.X-m.originX, msg.Y-m.originY
	z, ok := m.render().hit(x, y)
	if !ok {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if z.kind == zoneOption {
			m.focused = z.index
		}
		return nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		switch z.kind {
		case zoneTagRemove:
			m.RemoveValue(z.value)
		case zoneClearAll:
			m.ClearAll()
		case zoneOption:
			return m.toggle(z.value)
		case zoneControl:
			return m.Focus()
		}
	}
	return nil
}

// Toggle selects value if it is not selected and deselects it otherwise,
// then clears the search text and returns focus to the input.
func (m *Model) Toggle(value string) tea.Cmd {
	return m.toggle(value)
}

func (m *Model) toggle(value string) tea.Cmd {
	m.emit(logic.Toggle(m.selected, value))
	m.input.SetValue("")
	m.viewport.Follow(m.focused, len(m.Filtered()))
	return m.input.Focus()
}

// RemoveValue deselects exactly one value. It does not touch focus or the
// open state.
func (m *Model) RemoveValue(value string) {
	m.emit(logic.Remove(m.selected, value))
}

// ClearAll deselects everything. It does not touch focus or the open state.
func (m *Model) ClearAll() {
	m.emit(logic.Clear())
}

func (m *Model) emit(selected []string) {
	if m.onChange != nil {
		m.onChange(selected)
	}
}
