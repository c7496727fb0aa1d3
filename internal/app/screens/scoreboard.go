package screens

import (
	"image"
	"strconv"

	"github.com/rook-computer/scoreboard/internal/render"
	"github.com/rook-computer/scoreboard/internal/render/layout"
	"github.com/rook-computer/scoreboard/internal/state"
)

// Point sizes shared by both screens.
const (
	MatchNameSize = 90
	TeamNameSize  = 80
	ScoreSize     = 400
	SmallTextSize = 30
)

// Vertical positions as fractions of the output height.
const (
	matchNameY = 0.03
	teamNameY  = 0.25
	scoreY     = 0.55 // center line of the score glyphs
	homeX      = 0.25
	awayX      = 0.75
	hintMargin = 10
)

const settingsHint = "↑"

// ScoreboardScreen draws the live scoreboard. Every position is derived from
// the drawer's current size.
type ScoreboardScreen struct {
	// Background is scaled over the whole output; nil means a black fill.
	Background image.Image
}

func NewScoreboardScreen(background image.Image) *ScoreboardScreen {
	return &ScoreboardScreen{Background: background}
}

func (s *ScoreboardScreen) Draw(d render.Drawer, st *state.State) {
	width, height := d.Size()
	if s.Background != nil {
		d.DrawImageInRect(s.Background, image.Rect(0, 0, width, height))
	} else {
		d.Fill(state.Black.RGBA())
	}

	colors := st.Colors
	d.DrawText(st.Match.MatchName, width/2, layout.Fraction(height, matchNameY), render.TextStyle{
		Color: colors.Get(state.MatchNameColor).RGBA(),
		Size:  MatchNameSize,
		Align: render.TextAlignCenter,
	})

	teamStyle := render.TextStyle{
		Color: colors.Get(state.TeamNameColor).RGBA(),
		Size:  TeamNameSize,
		Align: render.TextAlignCenter,
	}
	teamTop := layout.Fraction(height, teamNameY)
	d.DrawText(st.Match.HomeTeamName, layout.Fraction(width, homeX), teamTop, teamStyle)
	d.DrawText(st.Match.AwayTeamName, layout.Fraction(width, awayX), teamTop, teamStyle)

	drawScore(d, st.Scores.Home, layout.Fraction(width, homeX), layout.Fraction(height, scoreY), colors.Get(state.HomeScoreColor))
	drawScore(d, st.Scores.Away, layout.Fraction(width, awayX), layout.Fraction(height, scoreY), colors.Get(state.AwayScoreColor))

	hintStyle := render.TextStyle{Color: state.Gray.RGBA(), Size: SmallTextSize}
	hint := d.MeasureText(settingsHint, hintStyle)
	d.DrawText(settingsHint, hintMargin, height-hint.Height-hintMargin, hintStyle)
}

// drawScore centers the score text on (centerX, centerY).
func drawScore(d render.Drawer, score int, centerX, centerY int, c state.RGB) {
	text := strconv.Itoa(score)
	style := render.TextStyle{Color: c.RGBA(), Size: ScoreSize, Align: render.TextAlignCenter}
	m := d.MeasureText(text, style)
	d.DrawText(text, centerX, layout.CenterOn(centerY, m.Height), style)
}
