// Package input applies key presses to the scoreboard state.
package input

import (
	"github.com/rook-computer/scoreboard/internal/keyboard"
	"github.com/rook-computer/scoreboard/internal/state"
)

// Action is what the main loop must do after a key was handled.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleFullscreen
)

// ColorStep is the change applied by one press of + or -.
const ColorStep = 10

type Saver interface {
	Save(table state.ColorTable) error
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type scoreStep struct {
	team  state.Team
	delta int
}

var scoreKeys = map[keyboard.Key]scoreStep{
	keyboard.Key1: {state.Home, 1},
	keyboard.Key3: {state.Home, 3},
	keyboard.Key2: {state.Home, -1},
	keyboard.Key4: {state.Home, -3},
	keyboard.KeyQ: {state.Away, 1},
	keyboard.KeyE: {state.Away, 3},
	keyboard.KeyW: {state.Away, -1},
	keyboard.KeyR: {state.Away, -3},
}

// Controller is the two-screen state machine. It holds no state of its own;
// everything lives in the *state.State passed to Handle.
type Controller struct {
	Saver  Saver
	Logger Logger
}

func NewController(saver Saver, logger Logger) *Controller {
	return &Controller{Saver: saver, Logger: logger}
}

// Handle applies one key press. Unknown keys do nothing.
func (c *Controller) Handle(st *state.State, key keyboard.Key) Action {
	switch key {
	case keyboard.KeyEscape:
		return ActionQuit
	case keyboard.KeyF:
		st.Window.Fullscreen = !st.Window.Fullscreen
		return ActionToggleFullscreen
	}

	switch st.Mode {
	case state.ScoreboardView:
		c.handleScoreboard(st, key)
	case state.SettingsView:
		c.handleSettings(st, key)
	}
	return ActionNone
}

func (c *Controller) handleScoreboard(st *state.State, key keyboard.Key) {
	if key == keyboard.KeyUp {
		st.Mode = state.SettingsView
		return
	}
	if step, ok := scoreKeys[key]; ok {
		st.Scores.Adjust(step.team, step.delta)
	}
}

func (c *Controller) handleSettings(st *state.State, key keyboard.Key) {
	switch key {
	case keyboard.KeyEnter:
		c.save(st.Colors)
		st.Mode = state.ScoreboardView
	case keyboard.KeyUp:
		st.Cursor.Up()
	case keyboard.KeyDown:
		st.Cursor.Down()
	case keyboard.KeyLeft:
		st.Cursor.Left()
	case keyboard.KeyRight:
		st.Cursor.Right()
	case keyboard.KeyEquals, keyboard.KeyKeypadPlus:
		st.AdjustSelectedColor(ColorStep)
	case keyboard.KeyMinus, keyboard.KeyKeypadMinus:
		st.AdjustSelectedColor(-ColorStep)
	}
}

// save failures are logged; leaving the settings screen must not depend on disk.
func (c *Controller) save(table state.ColorTable) {
	if c.Saver == nil {
		return
	}
	if err := c.Saver.Save(table); err != nil && c.Logger != nil {
		c.Logger.Errorf("config", "save colors failed: %v", err)
	}
}
