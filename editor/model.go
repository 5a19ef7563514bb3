package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/inkwell/document"
	"github.com/iw2rmb/inkwell/surface"
	"github.com/iw2rmb/inkwell/toolbar"
)

// Model is a Bubble Tea component that edits a rich-text document with a
// toolbar attached to its selection.
type Model struct {
	cfg Config
	log zerolog.Logger

	model   *surface.Model
	surface *Surface
	toolbar *toolbar.Toolbar

	focused        bool
	toolbarFocused bool

	width    int
	height   int
	viewport viewport.Model

	// status holds the last error reported to the user.
	status string

	lastVersion uint64
}

func New(cfg Config) Model {
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	cfg.Style = normalizeStyle(cfg.Style)

	sm := surface.New(cfg.Document, surface.Options{HistoryLimit: cfg.HistoryLimit})
	surf := newSurface(sm)
	tb := toolbar.New(surf, cfg.Toolbar, cfg.Registry,
		toolbar.WithLogger(log.With().Str("component", "toolbar").Logger()),
		toolbar.WithStyle(cfg.Style.Toolbar),
	)
	if cfg.OnChange != nil {
		onChange := cfg.OnChange
		sm.OnChange(func(ch surface.Change) {
			onChange(buildChangeEvent(sm, ch))
		})
	}

	m := Model{
		cfg:      cfg,
		log:      log,
		model:    sm,
		surface:  surf,
		toolbar:  tb,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	// The toolbar only reacts to changes, so the initial caret is what
	// gives the tools their first state.
	sm.Select(document.Caret(sm.Document().NearestContentOffset(0)))
	m.lastVersion = sm.Version()
	m.rebuildContent()
	return m
}

func (m Model) Surface() *surface.Model { return m.model }

func (m Model) Toolbar() *toolbar.Toolbar { return m.toolbar }

// Context returns the context view the surface currently shows.
func (m Model) Context() ContextView { return m.surface.Context() }

// Status returns the last error shown on the status line.
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width, m.height = width, height
	m.viewport.Width = width
	m.viewport.Height = max(height-m.chromeHeight(), 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.toolbarFocused = false
		m.toolbar.Blur()
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// ToolbarFocused reports whether keys go to the toolbar instead of the text.
func (m Model) ToolbarFocused() bool { return m.toolbarFocused }

// Close detaches the toolbar from the surface model.
func (m Model) Close() { m.toolbar.Close() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
		m.sync()
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	default:
		// Hosts may drive the surface model directly.
		m.sync()
		return m, nil
	}
}

func (m Model) View() string {
	return m.renderView()
}

// sync re-renders after the surface model moved on.
func (m *Model) sync() {
	ver := m.model.Version()
	if ver == m.lastVersion {
		return
	}
	m.lastVersion = ver
	m.rebuildContent()
	m.followCursor()
}

func (m *Model) rebuildContent() {
	lines, _ := m.renderDocument()
	m.viewport.SetContent(joinLines(lines))
}

func (m *Model) followCursor() {
	_, row := m.renderDocument()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 || row < 0 {
		return
	}
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

// chromeHeight counts the rows drawn around the document.
func (m Model) chromeHeight() int {
	h := 2 // toolbar and status
	if m.cfg.ShowContext {
		h++
	}
	return h
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}

func normalizeStyle(st Style) Style {
	if reflect.DeepEqual(st, Style{}) {
		return DefaultStyle()
	}
	return st
}
