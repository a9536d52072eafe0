package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/engine"
	"github.com/vovakirdan/gravflip/internal/input"
)

// Options configures a terminal game session.
type Options struct {
	Width    int // Initial terminal width in characters
	Height   int // Initial terminal height in characters
	TickRate int // Frames per second
	MaxDelta time.Duration
	Logger   *log.Logger
}

// Model is the Bubble Tea model running one game.
type Model struct {
	engine   *engine.Engine
	clock    *engine.FrameClock
	screen   *core.Screen
	snap     engine.Snapshot
	keys     KeyMap
	help     help.Model
	opts     Options
	logger   *log.Logger
	ticking  bool // A TickMsg is scheduled
	quitting bool
}

// NewModel creates a model driving the given engine.
func NewModel(eng *engine.Engine, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		engine:  eng,
		clock:   engine.NewFrameClock(opts.MaxDelta),
		screen:  core.NewScreen(opts.Width, screenHeight(opts.Height)),
		snap:    eng.Snapshot(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		opts:    opts,
		logger:  logger,
		ticking: true, // Init starts the loop
	}
	m.keys.setOver(m.snap.Over)
	return m
}

// screenHeight leaves the last terminal line for the help footer.
func screenHeight(termH int) int {
	return core.Max(termH-1, 0)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, screenHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleMouse treats any button press as a click. The restart button is hit
// tested in cells against the box drawGameOver draws.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || tea.MouseEvent(msg).IsWheel() {
		return m, nil
	}
	vp := NewViewport(m.screen.Width(), m.screen.Height(), m.snap.CanvasW, m.snap.CanvasH)
	return m.apply(input.PressAction(m.engine.IsOver(), vp.OnButton(msg.X, msg.Y)))
}

// apply runs an action against the engine and re-arms the loop on restart.
func (m Model) apply(action input.Action) (tea.Model, tea.Cmd) {
	outcome := input.Apply(m.engine, action)

	switch outcome {
	case input.OutcomeQuit:
		m.quitting = true
		return m, tea.Quit

	case input.OutcomeFlipped:
		m.snap = m.engine.Snapshot()

	case input.OutcomeRestarted:
		m.logger.Debug("game restarted")
		m.clock.Reset()
		m.snap = m.engine.Snapshot()
		m.keys.setOver(false)
		if !m.ticking {
			m.ticking = true
			return m, tickCmd(m.opts.TickRate)
		}
	}

	return m, nil
}

// handleTick runs one frame. The next tick is only scheduled while the game
// is running, so nothing keeps firing after game over.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.ticking = false
	if m.engine.IsOver() {
		return m, nil
	}

	snap, err := m.engine.Frame(m.clock.Delta(now))
	if err != nil {
		m.logger.Warn("frame skipped", "error", err)
	}
	m.snap = snap

	if snap.Over {
		m.keys.setOver(true)
		m.logger.Info("game over",
			"score", snap.DisplayScore(),
			"elapsed", time.Duration(snap.Elapsed*float64(time.Millisecond)).Round(time.Millisecond),
			"flips", snap.Flips,
		)
		return m, nil
	}

	m.ticking = true
	return m, tickCmd(m.opts.TickRate)
}

// View renders the last snapshot to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.snap)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Snapshot returns the state shown by the last frame.
func (m Model) Snapshot() engine.Snapshot {
	return m.snap
}

// Ticking reports whether the frame loop is scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

// IsQuitting returns true if the player asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the given engine.
func Run(eng *engine.Engine, opts Options) error {
	p := tea.NewProgram(
		NewModel(eng, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
