package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-animate/internal/anim"
	"github.com/vovakirdan/tui-animate/internal/behavior"
	"github.com/vovakirdan/tui-animate/internal/config"
	"github.com/vovakirdan/tui-animate/internal/core"
	"github.com/vovakirdan/tui-animate/internal/entity"
)

type testScene struct {
	populated int
	fail      error
}

func (s *testScene) ID() string          { return "test" }
func (s *testScene) Title() string       { return "Test" }
func (s *testScene) Description() string { return "" }

func (s *testScene) Populate(a *anim.Animation) error {
	s.populated++
	if s.fail != nil {
		return s.fail
	}
	ship, err := entity.New(entity.Config{
		Name:     "ship",
		Frames:   []entity.Sprite{entity.ParseSprite("=>", "", core.ColorDefault)},
		Pos:      core.Point{X: 2, Y: 2},
		Behavior: behavior.Steer{Speed: 1},
	})
	if err != nil {
		return err
	}
	return a.Add(ship)
}

func newTestModel(t *testing.T, opts Options) (Model, *testScene) {
	t.Helper()
	if opts.Settings.FPS == 0 {
		opts.Settings = config.DefaultSettings()
	}
	scene := &testScene{}
	m, err := NewModel(scene, core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 30, Seed: 1}, opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m, scene
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model, cmd
}

func shipPos(t *testing.T, m Model) core.Point {
	t.Helper()
	e, ok := m.Animation().Get("ship")
	if !ok {
		t.Fatal("ship missing")
	}
	return e.Pos()
}

func TestModelTickAppliesInput(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	if m.Animation().Height() != 7 {
		t.Errorf("Canvas height = %d, expected terminal height minus HUD", m.Animation().Height())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("Tick should schedule the next tick")
	}
	if got := shipPos(t, m); got.X != 3 {
		t.Errorf("ship x = %d, expected 3", got.X)
	}

	// Input is cleared after each frame.
	m, _ = update(t, m, TickMsg{})
	if got := shipPos(t, m); got.X != 3 {
		t.Errorf("ship x = %d after idle frame, expected 3", got.X)
	}
	if m.Animation().Frame() != 2 {
		t.Errorf("Frame() = %d, expected 2", m.Animation().Frame())
	}

	view := m.View()
	if !strings.Contains(view, "=>") || !strings.Contains(view, "frame 2") {
		t.Errorf("View() is missing the sprite or HUD:\n%s", view)
	}
}

func TestModelPauseAndStep(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = update(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("p should pause")
	}
	m, _ = update(t, m, TickMsg{})
	if m.Animation().Frame() != 0 {
		t.Errorf("Frame() = %d while paused, expected 0", m.Animation().Frame())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() should show PAUSED")
	}

	m, _ = update(t, m, runeKey('n'))
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})
	if m.Animation().Frame() != 1 {
		t.Errorf("Frame() = %d after one step, expected 1", m.Animation().Frame())
	}

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	if m.Animation().Frame() != 2 {
		t.Errorf("Frame() = %d after resume, expected 2", m.Animation().Frame())
	}
}

func TestModelRestart(t *testing.T) {
	m, scene := newTestModel(t, Options{})
	m, _ = update(t, m, TickMsg{})
	before := m.Animation()

	m, _ = update(t, m, runeKey('r'))

	if scene.populated != 2 {
		t.Errorf("Populate called %d times, expected 2", scene.populated)
	}
	if m.Animation() == before || m.Animation().Frame() != 0 {
		t.Error("Restart should start a fresh animation")
	}
}

func TestModelInspect(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = update(t, m, runeKey('i'))
	if !m.Paused() {
		t.Error("Inspecting should pause the animation")
	}
	view := m.View()
	if !strings.Contains(view, "ship") || !strings.Contains(view, "1 entities") {
		t.Errorf("Inspector view is missing the entity:\n%s", view)
	}

	m, _ = update(t, m, runeKey('i'))
	if strings.Contains(m.View(), "1 entities") {
		t.Error("Second i should close the inspector")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 12})

	if m.Animation().Width() != 50 || m.Animation().Height() != 11 {
		t.Errorf("Canvas = %dx%d, expected 50x11", m.Animation().Width(), m.Animation().Height())
	}
	m, _ = update(t, m, TickMsg{})
	if got := len(strings.Split(RenderScreen(m.compositor.Screen()), "\n")); got != 11 {
		t.Errorf("Rendered %d rows, expected 11", got)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelMaxFrames(t *testing.T) {
	m, _ := newTestModel(t, Options{MaxFrames: 2})

	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, TickMsg{})

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Player should quit after MaxFrames")
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v, expected nil", m.Err())
	}
}

func TestModelFatalFrame(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	boom, err := entity.New(entity.Config{
		Name:   "boom",
		Frames: []entity.Sprite{entity.ParseSprite("!", "", core.ColorDefault)},
		Behavior: entity.BehaviorFunc(func(e *entity.Entity, w entity.World) entity.Result {
			panic("broken behavior")
		}),
	})
	if err != nil {
		t.Fatalf("entity.New() failed: %v", err)
	}
	if err := m.Animation().Add(boom); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	m, _ = update(t, m, TickMsg{})

	var cbErr *anim.CallbackError
	if !errors.As(m.Err(), &cbErr) {
		t.Errorf("Err() = %v, expected *anim.CallbackError", m.Err())
	}
}

func TestNewModelPopulateError(t *testing.T) {
	scene := &testScene{fail: errors.New("bad scene")}
	_, err := NewModel(scene, core.DefaultConfig(), Options{Settings: config.DefaultSettings()})
	if err == nil || !strings.Contains(err.Error(), "bad scene") {
		t.Errorf("NewModel() error = %v, expected the populate error", err)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(1, 0, "><>", core.ColorYellow)
	s.Set(0, 1, '~')

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", got)
	}
	if !strings.Contains(out, "><>") || !strings.Contains(out, "~") {
		t.Errorf("RenderScreen() = %q, expected the drawn runes", out)
	}
}

func TestCanvasSizeFallback(t *testing.T) {
	w, h, assumed := canvasSize(-1)
	if w != FallbackWidth || h != FallbackHeight || !assumed {
		t.Errorf("canvasSize(-1) = %d, %d, %v, expected fallback", w, h, assumed)
	}
}
