package render

import "image/color"

var (
	// Background fills the output wherever no screen has drawn.
	Background = color.RGBA{A: 0xFF}

	// Screen DPI for font faces; 72 makes one point one pixel.
	FontDPI = 72.0

	// DefaultTextSize is used when a TextStyle has no size.
	DefaultTextSize = 30

	// FullscreenWidth and FullscreenHeight size the offscreen renderer when
	// fullscreen, standing in for a display's native resolution.
	FullscreenWidth  = 1920
	FullscreenHeight = 1080
)
