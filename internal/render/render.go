package render

import (
	"context"
	"image"
	"image/color"

	"github.com/rook-computer/scoreboard/internal/state"
)

// Renderer owns the output surface. The main loop asks it for the current
// size, then has it draw one screen and present the result.
type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	// Size returns the current output geometry in pixels.
	Size() (width int, height int)
	// SetFullscreen switches between the default window size and the whole
	// output. The new size applies to the next Size call.
	SetFullscreen(fullscreen bool)
	Redraw(screen Screen, st *state.State) error
}

type Screen interface {
	Draw(d Drawer, st *state.State)
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Drawer is an abstraction the renderer provides to screens to draw primitives
// without exposing the framebuffer.
type Drawer interface {
	// Size returns the canvas size (in pixels) that screens draw into.
	Size() (width int, height int)

	Fill(c color.Color)
	FillRect(rect image.Rectangle, c color.Color)
	// StrokeRect draws a border of the given thickness inside rect.
	StrokeRect(rect image.Rectangle, c color.Color, thickness int)

	MeasureText(text string, style TextStyle) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics

	// DrawImageInRect stretches img over rect.
	DrawImageInRect(img image.Image, rect image.Rectangle)
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
)

// TextStyle describes how to render text.
// Coordinates for DrawText use a top-left anchor for Y.
// For X, Align controls how x is interpreted.
type TextStyle struct {
	Color color.Color
	Size  int // font size in points; 0 means renderer default
	Align TextAlign
}

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}

// alignX converts an aligned x coordinate into the left edge of a run of
// text width pixels wide.
func alignX(x, width int, align TextAlign) int {
	switch align {
	case TextAlignCenter:
		return x - width/2
	default:
		return x
	}
}
