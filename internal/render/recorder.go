package render

import (
	"image"
	"image/color"
	"unicode/utf8"
)

type CommandKind int

const (
	CommandFill CommandKind = iota
	CommandFillRect
	CommandStrokeRect
	CommandText
	CommandImage
)

// Command is one recorded draw call. Rect is the area the call covers; for
// text it is the laid-out bounding box.
type Command struct {
	Kind      CommandKind
	Rect      image.Rectangle
	Color     color.RGBA
	Text      string
	Size      int
	Thickness int
}

// Recorder is a Drawer that records draw calls instead of producing pixels.
// Text is measured with a fixed advance of half the point size per rune and
// a line height equal to the point size.
type Recorder struct {
	Width, Height int
	Commands      []Command
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) Fill(c color.Color) {
	r.add(Command{Kind: CommandFill, Rect: image.Rect(0, 0, r.Width, r.Height), Color: toRGBA(c)})
}

func (r *Recorder) FillRect(rect image.Rectangle, c color.Color) {
	r.add(Command{Kind: CommandFillRect, Rect: rect, Color: toRGBA(c)})
}

func (r *Recorder) StrokeRect(rect image.Rectangle, c color.Color, thickness int) {
	r.add(Command{Kind: CommandStrokeRect, Rect: rect, Color: toRGBA(c), Thickness: thickness})
}

func (r *Recorder) MeasureText(text string, style TextStyle) TextMetrics {
	size := style.Size
	if size <= 0 {
		size = DefaultTextSize
	}
	ascent := size * 4 / 5
	return TextMetrics{
		Width:      utf8.RuneCountInString(text) * size / 2,
		Height:     size,
		Ascent:     ascent,
		Descent:    size - ascent,
		LineHeight: size,
	}
}

func (r *Recorder) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	m := r.MeasureText(text, style)
	left := alignX(x, m.Width, style.Align)
	c := style.Color
	if c == nil {
		c = color.White
	}
	r.add(Command{
		Kind:  CommandText,
		Rect:  image.Rect(left, y, left+m.Width, y+m.Height),
		Color: toRGBA(c),
		Text:  text,
		Size:  style.Size,
	})
	return m
}

func (r *Recorder) DrawImageInRect(img image.Image, rect image.Rectangle) {
	if img == nil {
		return
	}
	r.add(Command{Kind: CommandImage, Rect: rect})
}

// Text returns the first text command drawing exactly text.
func (r *Recorder) Text(text string) (Command, bool) {
	for _, cmd := range r.Commands {
		if cmd.Kind == CommandText && cmd.Text == text {
			return cmd, true
		}
	}
	return Command{}, false
}

// OfKind returns all commands of kind in draw order.
func (r *Recorder) OfKind(kind CommandKind) []Command {
	var out []Command
	for _, cmd := range r.Commands {
		if cmd.Kind == kind {
			out = append(out, cmd)
		}
	}
	return out
}

func (r *Recorder) add(cmd Command) { r.Commands = append(r.Commands, cmd) }

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
