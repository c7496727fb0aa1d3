package screens

import (
	"image"
	"strings"
	"testing"

	"github.com/rook-computer/scoreboard/internal/render"
	"github.com/rook-computer/scoreboard/internal/state"
)

func newTestState() *state.State {
	st := state.New(state.MatchInfo{MatchName: "Final", HomeTeamName: "Lions", AwayTeamName: "Tigers"}, state.DefaultColors())
	st.Scores = state.Scores{Home: 12, Away: 7}
	return st
}

func mustText(t *testing.T, r *render.Recorder, text string) render.Command {
	t.Helper()
	cmd, ok := r.Text(text)
	if !ok {
		t.Fatalf("text %q not drawn", text)
	}
	return cmd
}

func centerX(rect image.Rectangle) int { return (rect.Min.X + rect.Max.X) / 2 }
func centerY(rect image.Rectangle) int { return (rect.Min.Y + rect.Max.Y) / 2 }

func TestScoreboardLayout(t *testing.T) {
	st := newTestState()
	r := render.NewRecorder(1200, 700)
	NewScoreboardScreen(nil).Draw(r, st)

	if fills := r.OfKind(render.CommandFill); len(fills) != 1 || fills[0].Color != state.Black.RGBA() {
		t.Fatalf("expected solid black background, got %v", fills)
	}

	match := mustText(t, r, "Final")
	if centerX(match.Rect) != 600 || match.Rect.Min.Y != 21 || match.Size != MatchNameSize {
		t.Fatalf("unexpected match name placement %+v", match)
	}

	home := mustText(t, r, "Lions")
	away := mustText(t, r, "Tigers")
	if centerX(home.Rect) != 300 || centerX(away.Rect) != 900 {
		t.Fatalf("team names not centered at 25%%/75%%: %v %v", home.Rect, away.Rect)
	}
	if home.Rect.Min.Y != 175 || away.Rect.Min.Y != 175 {
		t.Fatalf("team names not at 25%% height: %v %v", home.Rect, away.Rect)
	}

	homeScore := mustText(t, r, "12")
	awayScore := mustText(t, r, "7")
	if centerX(homeScore.Rect) != 300 || centerY(homeScore.Rect) != 385 {
		t.Fatalf("home score not centered on (300,385): %v", homeScore.Rect)
	}
	if centerX(awayScore.Rect) != 900 || centerY(awayScore.Rect) != 385 {
		t.Fatalf("away score not centered on (900,385): %v", awayScore.Rect)
	}
	if homeScore.Size != ScoreSize {
		t.Fatalf("unexpected score size %d", homeScore.Size)
	}

	hint := mustText(t, r, "↑")
	if hint.Rect.Min.X != 10 || hint.Rect.Max.Y != 690 || hint.Color != state.Gray.RGBA() {
		t.Fatalf("unexpected hint placement %+v", hint)
	}
}

func TestScoreboardFollowsWindowSize(t *testing.T) {
	st := newTestState()
	r := render.NewRecorder(1920, 1080)
	NewScoreboardScreen(nil).Draw(r, st)
	if home := mustText(t, r, "Lions"); centerX(home.Rect) != 480 || home.Rect.Min.Y != 270 {
		t.Fatalf("home team not relaid out for 1920x1080: %v", home.Rect)
	}
	if match := mustText(t, r, "Final"); centerX(match.Rect) != 960 {
		t.Fatalf("match name not centered for 1920 width: %v", match.Rect)
	}
}

func TestScoreboardUsesLiveColors(t *testing.T) {
	st := newTestState()
	teal := state.RGB{R: 0, G: 128, B: 128}
	st.Colors.Set(state.TeamNameColor, teal)
	st.Colors.Set(state.AwayScoreColor, state.RGB{R: 1, G: 2, B: 3})

	r := render.NewRecorder(1200, 700)
	NewScoreboardScreen(nil).Draw(r, st)
	if home, away := mustText(t, r, "Lions"), mustText(t, r, "Tigers"); home.Color != teal.RGBA() || away.Color != teal.RGBA() {
		t.Fatalf("team names should share team_name color: %v %v", home.Color, away.Color)
	}
	if got := mustText(t, r, "7").Color; got != (state.RGB{R: 1, G: 2, B: 3}).RGBA() {
		t.Fatalf("unexpected away score color %v", got)
	}
	if got := mustText(t, r, "12").Color; got != state.White.RGBA() {
		t.Fatalf("unexpected home score color %v", got)
	}
}

func TestScoreboardDrawsBackgroundImage(t *testing.T) {
	st := newTestState()
	r := render.NewRecorder(800, 600)
	NewScoreboardScreen(image.NewRGBA(image.Rect(0, 0, 4, 4))).Draw(r, st)
	images := r.OfKind(render.CommandImage)
	if len(images) != 1 || images[0].Rect != image.Rect(0, 0, 800, 600) {
		t.Fatalf("expected one stretched background, got %v", images)
	}
	if len(r.OfKind(render.CommandFill)) != 0 {
		t.Fatalf("background image should replace the solid fill")
	}
}

func TestSettingsShowsFourRows(t *testing.T) {
	st := newTestState()
	r := render.NewRecorder(1200, 700)
	SettingsScreen{}.Draw(r, st)

	mustText(t, r, "颜色设置界面")
	for i, label := range []string{"比赛名称:", "主队名称:", "主队分数:", "客队分数:"} {
		cmd := mustText(t, r, label)
		if cmd.Rect.Min.X != 50 || cmd.Rect.Min.Y != 150+i*80 {
			t.Fatalf("row %q at %v", label, cmd.Rect.Min)
		}
	}
	if _, ok := r.Text("客队名称:"); ok {
		t.Fatalf("alias row should not be displayed")
	}
	if got := len(r.OfKind(render.CommandFillRect)); got != 4 {
		t.Fatalf("expected 4 previews, got %d", got)
	}
	strokes := r.OfKind(render.CommandStrokeRect)
	if len(strokes) != 4 || strokes[0].Rect != image.Rect(400, 150, 450, 180) || strokes[0].Thickness != 2 {
		t.Fatalf("unexpected preview borders %v", strokes)
	}
	help := mustText(t, r, settingsHelp)
	if help.Rect.Min.Y != 650 || centerX(help.Rect) != 600 {
		t.Fatalf("unexpected help placement %v", help.Rect)
	}
}

func TestSettingsHighlightsSelectedRow(t *testing.T) {
	st := newTestState()
	st.Cursor = state.Cursor{Element: 3, Component: state.Green}
	st.Colors.Set(state.HomeScoreColor, state.RGB{R: 5, G: 60, B: 255})

	r := render.NewRecorder(1200, 700)
	SettingsScreen{}.Draw(r, st)

	if got := mustText(t, r, "主队分数:").Color; got != state.Yellow.RGBA() {
		t.Fatalf("selected row not highlighted: %v", got)
	}
	for _, label := range []string{"比赛名称:", "主队名称:", "客队分数:"} {
		if got := mustText(t, r, label).Color; got != state.White.RGBA() {
			t.Fatalf("row %q unexpectedly highlighted", label)
		}
	}

	red := mustText(t, r, "R: 005")
	green := mustText(t, r, "G: 060")
	blue := mustText(t, r, "B: 255")
	if red.Rect.Min.X != 650 || green.Rect.Min.X != 800 || blue.Rect.Min.X != 950 {
		t.Fatalf("unexpected readout positions %v %v %v", red.Rect, green.Rect, blue.Rect)
	}
	if red.Rect.Min.Y != 150+2*80 {
		t.Fatalf("readouts not on the selected row: %v", red.Rect)
	}
	if green.Color != selectedComponent.RGBA() || red.Color != state.White.RGBA() || blue.Color != state.White.RGBA() {
		t.Fatalf("selected component not distinguished")
	}

	readouts := 0
	for _, cmd := range r.OfKind(render.CommandText) {
		if strings.Contains(cmd.Text, ": ") && len(cmd.Text) == 6 {
			readouts++
		}
	}
	if readouts != 3 {
		t.Fatalf("expected readouts only for the selected row, got %d", readouts)
	}
}

func TestSettingsPreviewTracksTeamColor(t *testing.T) {
	st := newTestState()
	st.Cursor = state.Cursor{Element: 1}
	st.AdjustSelectedColor(-50)

	r := render.NewRecorder(1200, 700)
	SettingsScreen{}.Draw(r, st)
	previews := r.OfKind(render.CommandFillRect)
	if previews[1].Color != (state.RGB{R: 205, G: 255, B: 0}).RGBA() {
		t.Fatalf("team preview not updated: %v", previews[1].Color)
	}
}
