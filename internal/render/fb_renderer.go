package render

import (
	"context"
	"image"
	"image/draw"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/scoreboard/internal/state"
)

// FBRenderer renders to the Linux framebuffer. Windowed mode draws a
// DefaultWindowWidth×DefaultWindowHeight area centered on the display;
// fullscreen uses the whole display.
type FBRenderer struct {
	Device string
	Fonts  *FontSet
	Logger Logger

	fbDev      *fb.Device
	canvas     *Canvas
	fullscreen bool
	running    bool
}

func NewFBRenderer(fonts *FontSet) *FBRenderer {
	return &FBRenderer{Device: "/dev/fb0", Fonts: fonts}
}

func (r *FBRenderer) Start(ctx context.Context) error {
	dev, err := fb.Open(r.Device)
	if err != nil {
		return err
	}
	r.fbDev = dev
	bounds := dev.Bounds()
	r.infof("framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	if r.Fonts == nil {
		r.Fonts = DefaultFontSet()
	}
	width, height := r.Size()
	r.canvas = NewCanvas(width, height, r.Fonts)
	r.clearDevice()
	r.running = true
	return nil
}

func (r *FBRenderer) Stop() error {
	r.running = false
	if r.fbDev != nil {
		r.fbDev.Close()
		r.fbDev = nil
	}
	return nil
}

// Size is re-read from the device on every call so a mode change on the
// display is picked up by the next frame.
func (r *FBRenderer) Size() (int, int) {
	if r.fbDev == nil {
		return state.DefaultWindowWidth, state.DefaultWindowHeight
	}
	bounds := r.fbDev.Bounds()
	if r.fullscreen {
		return bounds.Dx(), bounds.Dy()
	}
	return min(state.DefaultWindowWidth, bounds.Dx()), min(state.DefaultWindowHeight, bounds.Dy())
}

func (r *FBRenderer) SetFullscreen(fullscreen bool) {
	if r.fullscreen == fullscreen {
		return
	}
	r.fullscreen = fullscreen
	// Leaving fullscreen would otherwise leave the old frame around the window.
	r.clearDevice()
	width, height := r.Size()
	r.infof("fullscreen=%v, size=%dx%d", fullscreen, width, height)
}

func (r *FBRenderer) Redraw(screen Screen, st *state.State) error {
	if !r.running || screen == nil || r.fbDev == nil {
		return nil
	}
	width, height := r.Size()
	r.canvas.Resize(width, height)
	r.canvas.Fill(Background)
	screen.Draw(r.canvas, st)
	blitToFB(r.fbDev, r.canvas.Image())
	return nil
}

func (r *FBRenderer) clearDevice() {
	if r.fbDev == nil {
		return
	}
	draw.Draw(r.fbDev, r.fbDev.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
}

// blitToFB copies canvas into the middle of the framebuffer.
func blitToFB(dev *fb.Device, canvas *image.RGBA) {
	bounds := dev.Bounds()
	size := canvas.Bounds().Size()
	offset := image.Pt((bounds.Dx()-size.X)/2, (bounds.Dy()-size.Y)/2)
	if offset.X < 0 {
		offset.X = 0
	}
	if offset.Y < 0 {
		offset.Y = 0
	}
	target := image.Rectangle{Min: bounds.Min.Add(offset), Max: bounds.Min.Add(offset).Add(size)}.Intersect(bounds)
	draw.Draw(dev, target, canvas, image.Point{}, draw.Src)
}

func (r *FBRenderer) infof(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Infof("fb", format, args...)
	}
}
