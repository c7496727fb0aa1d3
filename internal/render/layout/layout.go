package layout

import "image"

// Fraction returns f of total, truncated to a whole pixel.
func Fraction(total int, f float64) int {
	return int(float64(total) * f)
}

// CenterOn returns the start coordinate that centers a span of size on center.
func CenterOn(center, size int) int {
	return center - size/2
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Border returns the four strips of a border thicknessPx wide lying inside
// rect: top, bottom, left, right.
func Border(rect image.Rectangle, thicknessPx int) []image.Rectangle {
	rect = Normalize(rect)
	if thicknessPx <= 0 || rect.Empty() {
		return nil
	}
	if 2*thicknessPx >= rect.Dx() || 2*thicknessPx >= rect.Dy() {
		return []image.Rectangle{rect}
	}
	inner := Inset(rect, thicknessPx)
	return []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, inner.Min.Y),
		image.Rect(rect.Min.X, inner.Max.Y, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y),
		image.Rect(inner.Max.X, inner.Min.Y, rect.Max.X, inner.Max.Y),
	}
}
