package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/rook-computer/scoreboard/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is an offscreen RGBA image implementing Drawer.
type Canvas struct {
	img   *image.RGBA
	fonts *FontSet

	// Last scaled image, reused while the source and target size are unchanged.
	scaledSrc image.Image
	scaled    *image.RGBA
}

func NewCanvas(width, height int, fonts *FontSet) *Canvas {
	if fonts == nil {
		fonts = DefaultFontSet()
	}
	c := &Canvas{fonts: fonts}
	c.Resize(width, height)
	return c
}

// Resize reallocates the canvas when the size changed.
func (c *Canvas) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if c.img != nil && c.img.Bounds().Dx() == width && c.img.Bounds().Dy() == height {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(rect image.Rectangle, col color.Color) {
	draw.Draw(c.img, layout.Normalize(rect), &image.Uniform{C: col}, image.Point{}, draw.Over)
}

func (c *Canvas) StrokeRect(rect image.Rectangle, col color.Color, thickness int) {
	for _, strip := range layout.Border(rect, thickness) {
		c.FillRect(strip, col)
	}
}

func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	face := c.fonts.Face(style.Size)
	drawer := &font.Drawer{Face: face}
	return textMetrics(face, drawer.MeasureString(text).Ceil())
}

func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	face := c.fonts.Face(style.Size)
	textColor := style.Color
	if textColor == nil {
		textColor = color.White
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(textColor),
		Face: face,
	}
	metrics := textMetrics(face, drawer.MeasureString(text).Ceil())
	left := alignX(x, metrics.Width, style.Align)
	drawer.Dot = fixed.P(left, y+metrics.Ascent)
	drawer.DrawString(text)
	return metrics
}

func (c *Canvas) DrawImageInRect(img image.Image, rect image.Rectangle) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	target := layout.Normalize(rect)
	if target.Empty() {
		return
	}
	draw.Draw(c.img, target, c.scale(img, target.Size()), image.Point{}, draw.Over)
}

func (c *Canvas) scale(img image.Image, size image.Point) *image.RGBA {
	if c.scaledSrc == img && c.scaled != nil && c.scaled.Bounds().Size() == size {
		return c.scaled
	}
	dst := image.NewRGBA(image.Rectangle{Max: size})
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	c.scaledSrc = img
	c.scaled = dst
	return dst
}

func textMetrics(face font.Face, width int) TextMetrics {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	return TextMetrics{
		Width:      width,
		Height:     ascent + descent,
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: m.Height.Ceil(),
	}
}
