package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logpane/logpane/internal/display"
	"github.com/logpane/logpane/internal/logstore"
	"github.com/logpane/logpane/internal/memwatch"
	"github.com/logpane/logpane/internal/prefs"
)

// levelFilter narrows which records the console shows.
type levelFilter int

const (
	filterAll levelFilter = iota
	filterWarnAndUp
	filterErrorOnly
)

func (f levelFilter) String() string {
	switch f {
	case filterWarnAndUp:
		return "warn+"
	case filterErrorOnly:
		return "error"
	default:
		return "all"
	}
}

// Options configures the console UI.
type Options struct {
	Context   context.Context
	Store     *logstore.Store
	Pool      *logstore.Pool
	Monitor   *memwatch.Monitor
	Optimizer *display.Optimizer
	ThemeName string
	Follow    bool
	PrefsPath string
	Tick      time.Duration
}

// Model is the root console state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *logstore.Store
	pool      *logstore.Pool
	monitor   *memwatch.Monitor
	optimizer *display.Optimizer
	prefsPath string
	tick      time.Duration

	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	follow   bool
	filter   levelFilter
	showHelp bool

	viewport viewport.Model
}

// New creates a console model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	tick := opts.Tick
	if tick <= 0 {
		tick = 500 * time.Millisecond
	}
	return Model{
		ctx:       ctx,
		store:     opts.Store,
		pool:      opts.Pool,
		monitor:   opts.Monitor,
		optimizer: opts.Optimizer,
		prefsPath: opts.PrefsPath,
		tick:      tick,
		theme:     GetTheme(opts.ThemeName),
		keys:      DefaultKeyMap(),
		follow:    opts.Follow,
		filter:    filterAll,
	}
}

// Run blocks until the user quits or the context is cancelled.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a capture store")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := program.Run()
	return err
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), m.contentHeight())
			m.ready = true
		} else {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = m.contentHeight()
		}
		m.refreshContent()
		return m, nil

	case tickMsg:
		m.refreshContent()
		return m, tickCmd(m.tick)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) contentWidth() int  { return max(m.width-2, 1) }
func (m *Model) contentHeight() int { return max(m.height-4, 1) }

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		m.savePrefs()
		if m.follow {
			m.viewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleFilter):
		m.filter = (m.filter + 1) % 3
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		if m.store != nil {
			m.store.Clear()
		}
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Cleanup):
		if m.store != nil {
			m.store.ForceCleanup()
		}
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.MemCheck):
		if m.monitor != nil {
			m.monitor.ForceCheck()
		}
		return m, nil
	}

	// Manual scrolling implies the user wants to stop following.
	var cmd tea.Cmd
	before := m.viewport.YOffset
	m.viewport, cmd = m.viewport.Update(msg)
	if m.viewport.YOffset != before {
		m.follow = false
	}
	return m, cmd
}

func (m *Model) savePrefs() {
	// An empty path resolves to the default prefs file inside Save.
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Follow: m.follow})
}

// refreshContent rebuilds the viewport from the store, shaping the text to
// the configured display budgets before colorizing.
func (m *Model) refreshContent() {
	if !m.ready || m.store == nil {
		return
	}
	text := m.plainContent()
	if m.optimizer != nil {
		text = m.optimizer.Optimize(text)
	}
	m.viewport.SetContent(colorizeLines(text, m.theme.Styles()))
	if m.follow {
		m.viewport.GotoBottom()
	}
}

func (m *Model) plainContent() string {
	if m.filter == filterAll {
		return m.store.FormattedText()
	}
	min := logstore.LevelWarn
	if m.filter == filterErrorOnly {
		min = logstore.LevelError
	}
	return formatRecords(m.store.All(), min)
}
