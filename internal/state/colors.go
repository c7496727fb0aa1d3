package state

import "image/color"

type ColorKey string

const (
	MatchNameColor ColorKey = "match_name"
	TeamNameColor  ColorKey = "team_name"
	HomeScoreColor ColorKey = "home_score"
	AwayScoreColor ColorKey = "away_score"
)

// ColorKeys lists every persisted color entry.
var ColorKeys = []ColorKey{MatchNameColor, TeamNameColor, HomeScoreColor, AwayScoreColor}

// Component indices into an RGB triple.
const (
	Red = iota
	Green
	Blue

	ComponentCount = 3
)

var ComponentNames = [ComponentCount]string{"R", "G", "B"}

type RGB struct {
	R, G, B uint8
}

var (
	White  = RGB{255, 255, 255}
	Black  = RGB{0, 0, 0}
	Gray   = RGB{150, 150, 150}
	Yellow = RGB{255, 255, 0}
)

func (c RGB) Component(index int) uint8 {
	switch index {
	case Red:
		return c.R
	case Green:
		return c.G
	default:
		return c.B
	}
}

// WithComponent returns a copy of c with the component at index set to value
// clamped into 0..255.
func (c RGB) WithComponent(index int, value int) RGB {
	v := Clamp(value)
	switch index {
	case Red:
		c.R = v
	case Green:
		c.G = v
	default:
		c.B = v
	}
	return c
}

// Adjust adds delta to one component, clamped into 0..255.
func (c RGB) Adjust(index int, delta int) RGB {
	return c.WithComponent(index, int(c.Component(index))+delta)
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

func Clamp(value int) uint8 {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return uint8(value)
}

// ColorTable maps an element to its text color.
type ColorTable map[ColorKey]RGB

// DefaultColors is used when no color file exists or it is unusable.
func DefaultColors() ColorTable {
	return ColorTable{
		MatchNameColor: White,
		TeamNameColor:  Yellow,
		HomeScoreColor: White,
		AwayScoreColor: White,
	}
}

// Get returns the color for key, falling back to the built-in default for
// that key, or white for keys the table has never heard of.
func (table ColorTable) Get(key ColorKey) RGB {
	if c, ok := table[key]; ok {
		return c
	}
	if c, ok := DefaultColors()[key]; ok {
		return c
	}
	return White
}

func (table ColorTable) Set(key ColorKey, c RGB) {
	table[key] = c
}

func (table ColorTable) Clone() ColorTable {
	out := make(ColorTable, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

func (table ColorTable) Equal(other ColorTable) bool {
	if len(table) != len(other) {
		return false
	}
	for k, v := range table {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
