package ui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"tzpick/internal/config"
	"tzpick/internal/domain"
	"tzpick/internal/eventbus"
	"tzpick/internal/timezones"
	"tzpick/internal/ui/listen"
	"tzpick/internal/ui/logic"
	"tzpick/internal/ui/multiselect"
	"tzpick/internal/ui/views"
)

// LoadingMessage is shown until the options arrive
const LoadingMessage = "Loading timezones..."

// widgetTop is the screen row of the dropdown: title, then a blank line
const widgetTop = 2

// OptionsLoader produces the option set once at startup
type OptionsLoader interface {
	Load(ctx context.Context) (timezones.Result, error)
}

type loadState int

const (
	stateLoading loadState = iota
	stateReady
	stateFailed
)

type focusArea int

const (
	focusWidget focusArea = iota
	focusSummary
)

// Model represents the UI state. It owns the option set and the selection;
// the dropdown only reports changes through setSelection.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	loader OptionsLoader

	state     loadState
	err       error
	options   []domain.Option
	selection []string
	fallback  bool
	confirmed bool

	focus  focusArea
	cursor int // summary tag under the cursor

	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode

	spinner   spinner.Model
	help      help.Model
	keys      KeyMap
	styles    *views.Styles
	listeners *listen.Registry
	widget    *multiselect.Model

	helpOps *HelpOps
	program *tea.Program
}

// NewModel creates a new UI model. bus may be nil.
func NewModel(cfg *config.Config, loader OptionsLoader, bus eventbus.EventBus) *Model {
	styles := views.NewStyles()

	m := &Model{
		bus:       bus,
		config:    cfg,
		loader:    loader,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.StatusLoading)),
		help:      help.New(),
		keys:      DefaultKeyMap(),
		styles:    styles,
		listeners: listen.NewRegistry(),
	}

	m.widget = multiselect.New(multiselect.Config{
		OnSelectionChange: m.setSelection,
		Placeholder:       cfg.UI.Placeholder,
		DropdownHeight:    cfg.UI.DropdownHeight,
		Listeners:         m.listeners,
		Styles:            styles,
	})
	m.widget.SetOrigin(0, widgetTop)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Selection returns the current selection
func (m *Model) Selection() []string {
	return append([]string{}, m.selection...)
}

// Confirmed reports whether the user confirmed the selection before quitting
func (m *Model) Confirmed() bool {
	return m.confirmed
}

// Err returns the load failure, if the options could not be loaded
func (m *Model) Err() error {
	return m.err
}

// Fallback reports whether the built-in option set is in use
func (m *Model) Fallback() bool {
	return m.fallback
}

// Init starts the spinner and the options load
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadOptions())
}

func (m *Model) loadOptions() tea.Cmd {
	loader := m.loader
	timeout := time.Duration(m.config.Source.TimeoutSeconds) * time.Second

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		result, err := loader.Load(ctx)
		return optionsLoadedMsg{result: result, err: err}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case optionsLoadedMsg:
		return m, m.handleOptionsLoaded(msg)

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if m.inPagerMode || m.state != stateReady {
			return m, nil
		}
		return m, m.handleMouse(msg)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// Cursor blinks and the like belong to the search input
	if m.state == stateReady {
		return m, m.widget.Update(msg)
	}
	return m, nil
}

func (m *Model) handleOptionsLoaded(msg optionsLoadedMsg) tea.Cmd {
	if m.state != stateLoading {
		return nil
	}
	if msg.err != nil {
		log.Printf("Failed to load options: %v", msg.err)
		m.state = stateFailed
		m.err = msg.err
		m.publish(eventbus.OptionsFailedEvent{Err: msg.err})
		return nil
	}

	m.state = stateReady
	m.options = msg.result.Options
	m.fallback = msg.result.Fallback
	m.widget.SetOptions(m.options)
	log.Printf("Loaded %d options (fallback=%t)", len(m.options), m.fallback)
	m.publish(eventbus.OptionsLoadedEvent{Count: len(m.options), Fallback: m.fallback})

	return m.focusWidget()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}
	if m.state != stateReady {
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		return nil
	}

	handled, cmd := m.listeners.Dispatch(msg)
	if handled {
		return cmd
	}
	cmds := []tea.Cmd{cmd}

	if key.Matches(msg, m.keys.NextFocus) {
		if m.focus == focusWidget {
			m.focusSummary()
		} else {
			cmds = append(cmds, m.focusWidget())
		}
		return tea.Batch(cmds...)
	}

	if m.focus == focusWidget {
		cmds = append(cmds, m.widget.Update(msg))
	} else {
		cmds = append(cmds, m.handleSummaryKey(msg))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleSummaryKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Left):
		if len(m.selection) > 0 {
			m.cursor = logic.MoveUp(m.cursor)
		}
	case key.Matches(msg, m.keys.Right):
		if len(m.selection) > 0 {
			m.cursor = logic.MoveDown(m.cursor, len(m.selection))
		}
	case key.Matches(msg, m.keys.Remove):
		if logic.InRange(m.cursor, len(m.selection)) {
			m.removeValue(m.selection[m.cursor])
		}
	case key.Matches(msg, m.keys.ClearAll):
		if len(m.selection) > 0 {
			m.clearAll()
		}
	case key.Matches(msg, m.keys.Confirm):
		return m.confirm()
	case key.Matches(msg, m.keys.Help):
		return m.showHelp()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	// Hit-test against the frame the user clicked on; listeners may close the
	// dropdown and shift everything below it.
	inWidget := m.widget.Contains(msg.X, msg.Y)
	summary := m.summaryFrame()

	handled, cmd := m.listeners.Dispatch(msg)
	if handled {
		return cmd
	}
	cmds := []tea.Cmd{cmd}

	if inWidget {
		cmds = append(cmds, m.widget.Update(msg))
		if m.widget.Focused() {
			m.focus = focusWidget
		}
		return tea.Batch(cmds...)
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || !summary.contains(msg.Y) {
		return tea.Batch(cmds...)
	}

	m.focusSummary()
	if z, ok := summary.hit(msg.X, msg.Y); ok {
		switch z.kind {
		case summaryTag:
			m.cursor = z.index
		case summaryRemove:
			m.removeValue(z.value)
		case summaryClearAll:
			m.clearAll()
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) focusWidget() tea.Cmd {
	m.focus = focusWidget
	return m.widget.Focus()
}

func (m *Model) focusSummary() {
	m.focus = focusSummary
	m.widget.Blur()
	m.clampCursor()
}

// setSelection is the single path through which the selection changes
func (m *Model) setSelection(selected []string) {
	m.selection = append([]string{}, selected...)
	m.widget.SetSelected(m.selection)
	m.clampCursor()

	log.Printf("Selection changed: %v", m.selection)
	m.publish(eventbus.SelectionChangedEvent{Selection: m.Selection()})
}

func (m *Model) removeValue(value string) {
	m.setSelection(logic.Remove(m.selection, value))
}

func (m *Model) clearAll() {
	m.setSelection(logic.Clear())
}

func (m *Model) clampCursor() {
	m.cursor = min(m.cursor, len(m.selection)-1)
	m.cursor = max(m.cursor, 0)
}

func (m *Model) confirm() tea.Cmd {
	m.confirmed = true
	log.Printf("Selection confirmed: %v", m.selection)
	m.publish(eventbus.SelectionConfirmedEvent{Selection: m.Selection()})
	return m.quit()
}

func (m *Model) quit() tea.Cmd {
	m.widget.Blur()
	return tea.Quit
}

// showHelp returns a command that shows help using ov pager
func (m *Model) showHelp() tea.Cmd {
	if m.program == nil || m.helpOps == nil {
		log.Printf("Help pager unavailable: program not set")
		return nil
	}
	content := NewHelpRenderer(m.config.UI.Title).RenderHelpContent(m.widget.KeyMap(), m.keys)

	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

func (m *Model) summaryFrame() summaryFrame {
	f := m.renderSummary()
	f.top = widgetTop + m.widget.Height() + 1
	return f
}

func (m *Model) shortHelp() bindings {
	if m.focus == focusWidget {
		w := m.widget.KeyMap()
		return bindings{w.Up, w.Down, w.Toggle, w.Close, m.keys.NextFocus, m.keys.ForceQuit}
	}
	return bindings{m.keys.Left, m.keys.Right, m.keys.Remove, m.keys.ClearAll, m.keys.Confirm, m.keys.NextFocus, m.keys.Help, m.keys.Quit}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	switch m.state {
	case stateLoading:
		return m.spinner.View() + " " + m.styles.StatusLoading.Render(LoadingMessage)
	case stateFailed:
		return m.styles.StatusError.Render("Error: " + m.err.Error())
	}

	lines := []string{m.styles.Title.Render(m.config.UI.Title), ""}
	lines = append(lines, m.widget.View(), "")
	lines = append(lines, m.summaryFrame().lines...)
	lines = append(lines, "", m.styles.Help.Render(m.help.View(m.shortHelp())))
	return strings.Join(lines, "\n")
}
