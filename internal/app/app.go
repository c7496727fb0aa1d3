package app

import (
	"context"
	"image"
	"time"

	"github.com/rook-computer/scoreboard/internal/app/screens"
	"github.com/rook-computer/scoreboard/internal/input"
	"github.com/rook-computer/scoreboard/internal/keyboard"
	"github.com/rook-computer/scoreboard/internal/render"
	"github.com/rook-computer/scoreboard/internal/state"
)

// Caption names the scoreboard in logs; the framebuffer has no title bar.
const Caption = "自定义计分板 (布局调整)"

// DefaultFrameRate is the redraw cadence of the main loop.
const DefaultFrameRate = 60

type App struct {
	State      *state.State
	Render     render.Renderer
	Keys       keyboard.Source
	Controller *input.Controller
	Logger     Logger
	Background image.Image
	FrameRate  int
	// MaxFrames stops the loop after that many frames; zero runs until quit.
	MaxFrames int

	screens map[state.ViewMode]render.Screen
	events  <-chan keyboard.Key
	frames  int
}

func New(st *state.State, renderer render.Renderer, keys keyboard.Source, controller *input.Controller) *App {
	return &App{
		State:      st,
		Render:     renderer,
		Keys:       keys,
		Controller: controller,
		Logger:     NoopLogger{},
		FrameRate:  DefaultFrameRate,
	}
}

// Start runs the main loop until the quit key, MaxFrames or ctx ends it.
// The first frame is drawn immediately, later ones on every tick.
func (app *App) Start(ctx context.Context) error {
	if app.Render == nil {
		app.Render = render.NewImageRenderer(nil)
	}
	if app.Keys == nil {
		app.Keys = keyboard.NewNoopSource()
	}
	if app.Controller == nil {
		app.Controller = input.NewController(nil, app.Logger)
	}
	if app.FrameRate <= 0 {
		app.FrameRate = DefaultFrameRate
	}

	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return err
	}
	defer app.Render.Stop()

	keysCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := app.Keys.Start(keysCtx); err != nil {
		app.Logger.Errorf("input", "key source start error: %v", err)
		return err
	}
	defer app.Keys.Stop()
	app.events = app.Keys.Events()

	app.Logger.Infof("app", "%s running at %d fps", Caption, app.FrameRate)

	ticker := time.NewTicker(time.Second / time.Duration(app.FrameRate))
	defer ticker.Stop()
	for {
		if !app.Frame() {
			app.Logger.Infof("app", "quit after %d frames", app.frames)
			return nil
		}
		if app.MaxFrames > 0 && app.frames >= app.MaxFrames {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Frame runs one loop iteration: read the output size, apply every pending
// key, then draw the screen for the current view. It reports false once the
// quit key was pressed.
func (app *App) Frame() bool {
	app.syncWindow()

drain:
	for {
		select {
		case key, ok := <-app.events:
			if !ok {
				app.events = nil
				break drain
			}
			switch app.Controller.Handle(app.State, key) {
			case input.ActionQuit:
				return false
			case input.ActionToggleFullscreen:
				app.Render.SetFullscreen(app.State.Window.Fullscreen)
				app.syncWindow()
				app.Logger.Infof("app", "fullscreen=%v %dx%d", app.State.Window.Fullscreen, app.State.Window.Width, app.State.Window.Height)
			}
		default:
			break drain
		}
	}

	if err := app.Render.Redraw(app.screenFor(app.State.Mode), app.State); err != nil {
		app.Logger.Errorf("app", "redraw error: %v", err)
	}
	app.frames++
	return true
}

func (app *App) syncWindow() {
	app.State.Window.Width, app.State.Window.Height = app.Render.Size()
}

func (app *App) screenFor(mode state.ViewMode) render.Screen {
	if app.screens == nil {
		app.screens = map[state.ViewMode]render.Screen{
			state.ScoreboardView: screens.NewScoreboardScreen(app.Background),
			state.SettingsView:   screens.SettingsScreen{},
		}
	}
	return app.screens[mode]
}
