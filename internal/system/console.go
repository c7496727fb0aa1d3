// Package system prepares the Linux console for full-screen drawing.
package system

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Console tracks what was changed on the virtual terminal so Restore only
// undoes steps that succeeded.
type Console struct {
	Logger Logger

	graphics     bool
	cursorHidden bool
}

func NewConsole(logger Logger) *Console { return &Console{Logger: logger} }

// Enter switches to graphics mode and hides the text cursor. Failures are
// logged and otherwise ignored; the scoreboard still draws over a text console.
func (c *Console) Enter() {
	if err := SetGraphicsMode(); err != nil {
		c.errorf("KD_GRAPHICS failed: %v", err)
	} else {
		c.graphics = true
		c.infof("KD_GRAPHICS set")
	}
	if err := HideCursor(); err != nil {
		c.errorf("hide cursor failed: %v", err)
	} else {
		c.cursorHidden = true
		c.infof("cursor hidden")
	}
}

func (c *Console) Restore() {
	if c.cursorHidden {
		if err := ShowCursor(); err != nil {
			c.errorf("show cursor failed: %v", err)
		}
		c.cursorHidden = false
	}
	if c.graphics {
		if err := RestoreTextMode(); err != nil {
			c.errorf("KD_TEXT failed: %v", err)
		} else {
			c.infof("KD_TEXT set")
		}
		c.graphics = false
	}
}

func (c *Console) infof(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Infof("tty", format, args...)
	}
}

func (c *Console) errorf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Errorf("tty", format, args...)
	}
}
