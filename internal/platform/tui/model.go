package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-animate/internal/anim"
	"github.com/vovakirdan/tui-animate/internal/config"
	"github.com/vovakirdan/tui-animate/internal/core"
	"github.com/vovakirdan/tui-animate/internal/registry"
	"github.com/vovakirdan/tui-animate/internal/render"
)

// hudHeight is the number of terminal rows below the canvas.
const hudHeight = 1

var (
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
)

// Options configures the player.
type Options struct {
	Settings  config.Settings
	Logger    *log.Logger
	Clock     core.Clock // nil uses the system clock
	MaxFrames uint64     // Stop after this many frames; 0 runs until quit
}

// Model is the Bubble Tea model for playing a scene.
type Model struct {
	scene      registry.Scene
	anim       *anim.Animation
	compositor *render.Compositor
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	help       help.Model
	inspector  table.Model
	inspecting bool
	paused     bool
	stepOnce   bool
	quitting   bool
	last       anim.Report
	err        error
}

// NewModel creates a player for the given scene and populates it.
// cfg holds the terminal size; the canvas is the terminal minus the HUD.
func NewModel(scene registry.Scene, cfg core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		scene:      scene,
		compositor: render.NewCompositor(cfg.ScreenW, canvasHeight(cfg.ScreenH)),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inspector:  newInspectorTable(cfg.ScreenH),
	}
	m.help.Width = cfg.ScreenW
	if err := m.reset(); err != nil {
		return m, err
	}
	return m, nil
}

// reset builds a fresh animation and populates it from the scene.
func (m *Model) reset() error {
	rc := m.config
	rc.ScreenH = canvasHeight(rc.ScreenH)

	m.anim = anim.New(rc,
		anim.WithLogger(m.opts.Logger),
		anim.WithClock(m.opts.Clock),
		anim.WithRenderer(m.compositor),
		anim.WithBackground(m.opts.Settings.BackgroundColor()),
		anim.WithFramerateTracking(m.opts.Settings.TrackFramerate),
	)
	m.last = anim.Report{}
	if err := m.scene.Populate(m.anim); err != nil {
		return fmt.Errorf("populate %s: %w", m.scene.ID(), err)
	}
	m.opts.Logger.Info("scene started", "scene", m.scene.ID(), "entities", m.anim.Len(),
		"width", rc.ScreenW, "height", rc.ScreenH, "assumed", rc.Assumed)
	return nil
}

func canvasHeight(termHeight int) int {
	return max(1, termHeight-hudHeight)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	if m.inspecting {
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Inspect), key.Matches(msg, keys.Pause):
			m.inspecting = false
			return m, nil
		}
		// Pass navigation to the table
		var cmd tea.Cmd
		m.inspector, cmd = m.inspector.Update(msg)
		return m, cmd
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action {
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionStep:
		if m.paused {
			m.stepOnce = true
		}
	case core.ActionInspect:
		m.inspecting = true
		m.paused = true
		m.inspector.SetRows(inspectorRows(m.anim.Entities()))
		m.inspector.GotoTop()
	case core.ActionRestart:
		if err := m.reset(); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The animation keeps running
// with the new bounds.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.config.Assumed = false
	m.anim.Resize(msg.Width, canvasHeight(msg.Height))
	m.help.Width = msg.Width
	m.inspector = newInspectorTable(msg.Height)
	if m.inspecting {
		m.inspector.SetRows(inspectorRows(m.anim.Entities()))
	}
	return m, nil
}

// handleTick advances the animation by one frame unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused && !m.stepOnce {
		return m, tickCmd(m.config.TickRate)
	}
	m.stepOnce = false

	m.anim.SetInput(m.inputFrame)
	report, err := m.anim.Animate()

	// Clear input for next frame
	m.inputFrame.Clear()

	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.last = report

	if m.opts.MaxFrames > 0 && report.Frame >= m.opts.MaxFrames {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.inspecting {
		var b strings.Builder
		title := fmt.Sprintf("%s - %d entities at frame %d", m.scene.Title(), m.anim.Len(), m.anim.Frame())
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
		b.WriteString(m.inspector.View())
		b.WriteString("\n")
		b.WriteString(hudStyle.Render("↑/↓ scroll  i/p back  q quit"))
		return b.String()
	}

	if m.help.ShowAll {
		var b strings.Builder
		b.WriteString(titleStyle.Render(m.scene.Title()))
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keyMapper.Keys()))
		return b.String()
	}

	return RenderScreen(m.compositor.Screen()) + "\n" + m.hud()
}

// hud renders the status line below the canvas.
func (m Model) hud() string {
	fps := "-"
	if m.opts.Settings.TrackFramerate {
		fps = fmt.Sprintf("%d", m.anim.Framerate())
	}
	status := fmt.Sprintf(" %s  frame %d  entities %d  fps %s", m.scene.Title(), m.anim.Frame(), m.anim.Len(), fps)
	if m.anim.AssumedSize() {
		status += "  (size assumed)"
	}
	if n := len(m.last.Errors); n > 0 {
		status += fmt.Sprintf("  %d errors", n)
	}

	line := hudStyle.Render(status)
	if m.paused {
		line += " " + pausedStyle.Render("PAUSED")
	}
	return line + "  " + hudStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Err returns the fatal error that stopped the player, if any.
func (m Model) Err() error {
	return m.err
}

// Animation returns the running animation.
func (m Model) Animation() *anim.Animation {
	return m.anim
}

// Paused reports whether the animation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program with a player for the given scene.
func Run(scene registry.Scene, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(scene, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
