package tcellview

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-animate/internal/anim"
	"github.com/vovakirdan/tui-animate/internal/config"
	"github.com/vovakirdan/tui-animate/internal/core"
	"github.com/vovakirdan/tui-animate/internal/registry"
)

// hudHeight is the number of rows below the canvas.
const hudHeight = 1

// Options configures the tcell player.
type Options struct {
	Settings  config.Settings
	Logger    *log.Logger
	Clock     core.Clock // nil uses the system clock
	MaxFrames uint64     // Stop after this many frames; 0 runs until quit
}

// Play opens the terminal with tcell and runs the scene until the user
// quits or ctx is cancelled.
func Play(ctx context.Context, scene registry.Scene, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	defer screen.Fini()

	return Run(ctx, screen, scene, opts)
}

// player is the state of one Run call.
type player struct {
	screen   tcell.Screen
	scene    registry.Scene
	opts     Options
	seed     int64
	anim     *anim.Animation
	renderer *Renderer
	input    core.InputFrame
	paused   bool
	stepOnce bool
}

// Run plays scene on an initialized screen. It returns nil when the user
// quits, ctx is cancelled or MaxFrames is reached, and the fatal frame
// error otherwise.
//
// The caller owns the screen and must call Fini on it after Run returns:
// the event goroutine blocks in PollEvent until the screen is finalized.
func Run(ctx context.Context, screen tcell.Screen, scene registry.Scene, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	p := &player{
		screen:   screen,
		scene:    scene,
		opts:     opts,
		seed:     opts.Settings.Seed,
		renderer: NewRenderer(screen),
		input:    core.NewInputFrame(),
	}
	if p.seed == 0 {
		p.seed = time.Now().UnixNano()
	}
	if err := p.reset(); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	fps := opts.Settings.FPS
	if fps <= 0 {
		fps = config.DefaultSettings().FPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Cancellation is a normal stop.
			return nil

		case ev := <-events:
			quit, err := p.handleEvent(ev)
			if err != nil || quit {
				return err
			}

		case <-ticker.C:
			finished, err := p.frame()
			if err != nil || finished {
				return err
			}
		}
	}
}

// reset builds a fresh animation sized to the screen.
func (p *player) reset() error {
	w, h := p.screen.Size()
	rc := p.opts.Settings.Runtime(w, max(1, h-hudHeight), false)
	rc.Seed = p.seed

	p.anim = anim.New(rc,
		anim.WithLogger(p.opts.Logger),
		anim.WithClock(p.opts.Clock),
		anim.WithRenderer(p.renderer),
		anim.WithBackground(p.opts.Settings.BackgroundColor()),
		anim.WithFramerateTracking(p.opts.Settings.TrackFramerate),
	)
	if err := p.scene.Populate(p.anim); err != nil {
		return fmt.Errorf("populate %s: %w", p.scene.ID(), err)
	}
	p.opts.Logger.Info("scene started", "scene", p.scene.ID(), "entities", p.anim.Len(), "backend", config.BackendTcell)
	return nil
}

// handleEvent reacts to input and resizes. quit is true when the user
// asked to leave.
func (p *player) handleEvent(ev tcell.Event) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := MapKey(ev)
		switch action {
		case core.ActionQuit:
			return true, nil
		case core.ActionPause:
			p.paused = !p.paused
		case core.ActionStep:
			if p.paused {
				p.stepOnce = true
			}
		case core.ActionRestart:
			return false, p.reset()
		case core.ActionNone, core.ActionInspect:
		default:
			p.input.Set(action)
		}

	case *tcell.EventResize:
		w, h := p.screen.Size()
		p.anim.Resize(w, max(1, h-hudHeight))
		p.screen.Sync()
	}
	return false, nil
}

// frame advances the animation once and shows the result. finished is
// true once MaxFrames frames have been played.
func (p *player) frame() (finished bool, err error) {
	if p.paused && !p.stepOnce {
		p.drawHUD()
		p.screen.Show()
		return false, nil
	}
	p.stepOnce = false

	p.anim.SetInput(p.input)
	report, err := p.anim.Animate()
	p.input.Clear()
	if err != nil {
		return false, err
	}

	p.drawHUD()
	p.screen.Show()
	return p.opts.MaxFrames > 0 && report.Frame >= p.opts.MaxFrames, nil
}

// drawHUD writes the status line below the canvas.
func (p *player) drawHUD() {
	w, h := p.screen.Size()
	y := h - 1
	status := fmt.Sprintf(" %s  frame %d  entities %d", p.scene.Title(), p.anim.Frame(), p.anim.Len())
	if p.opts.Settings.TrackFramerate {
		status += fmt.Sprintf("  fps %d", p.anim.Framerate())
	}
	if p.paused {
		status += "  PAUSED"
	}
	status += "  p pause  n step  r restart  q quit"

	style := tcell.StyleDefault.Foreground(tcell.PaletteColor(245))
	x := 0
	for _, r := range status {
		if x >= w {
			break
		}
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		p.screen.SetContent(x, y, ' ', nil, style)
	}
}

// MapKey translates a tcell key event to a player action.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEnter:
		return core.ActionFire
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return core.ActionQuit
		case 'w':
			return core.ActionUp
		case 's':
			return core.ActionDown
		case 'a':
			return core.ActionLeft
		case 'd':
			return core.ActionRight
		case ' ':
			return core.ActionFire
		case 'p':
			return core.ActionPause
		case 'n', '.':
			return core.ActionStep
		case 'r':
			return core.ActionRestart
		}
	}
	return core.ActionNone
}
