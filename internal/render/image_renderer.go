package render

import (
	"context"
	"image"
	"image/draw"

	"github.com/rook-computer/scoreboard/internal/state"
)

// ImageRenderer draws into memory. The simulator and tests use it in place
// of the framebuffer.
type ImageRenderer struct {
	Fonts *FontSet

	WindowWidth, WindowHeight         int
	FullscreenWidth, FullscreenHeight int

	canvas     *Canvas
	fullscreen bool
	frames     int
}

func NewImageRenderer(fonts *FontSet) *ImageRenderer {
	return &ImageRenderer{
		Fonts:            fonts,
		WindowWidth:      state.DefaultWindowWidth,
		WindowHeight:     state.DefaultWindowHeight,
		FullscreenWidth:  FullscreenWidth,
		FullscreenHeight: FullscreenHeight,
	}
}

func (r *ImageRenderer) Start(ctx context.Context) error {
	width, height := r.Size()
	r.canvas = NewCanvas(width, height, r.Fonts)
	return nil
}

func (r *ImageRenderer) Stop() error { return nil }

func (r *ImageRenderer) Size() (int, int) {
	if r.fullscreen {
		return r.FullscreenWidth, r.FullscreenHeight
	}
	return r.WindowWidth, r.WindowHeight
}

func (r *ImageRenderer) SetFullscreen(fullscreen bool) { r.fullscreen = fullscreen }

func (r *ImageRenderer) Redraw(screen Screen, st *state.State) error {
	if r.canvas == nil {
		if err := r.Start(context.Background()); err != nil {
			return err
		}
	}
	width, height := r.Size()
	r.canvas.Resize(width, height)
	r.canvas.Fill(Background)
	if screen != nil {
		screen.Draw(r.canvas, st)
	}
	r.frames++
	return nil
}

// Frames counts completed redraws.
func (r *ImageRenderer) Frames() int { return r.frames }

// Snapshot returns a copy of the last frame, or nil before the first one.
func (r *ImageRenderer) Snapshot() *image.RGBA {
	if r.canvas == nil {
		return nil
	}
	src := r.canvas.Image()
	out := image.NewRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
	return out
}
