package state

type ViewMode int

const (
	ScoreboardView ViewMode = iota
	SettingsView
)

func (mode ViewMode) String() string {
	switch mode {
	case ScoreboardView:
		return "scoreboard"
	case SettingsView:
		return "settings"
	default:
		return "unknown"
	}
}

// MatchInfo is read once at startup and never changes.
type MatchInfo struct {
	MatchName    string
	HomeTeamName string
	AwayTeamName string
}

func DefaultMatchInfo() MatchInfo {
	return MatchInfo{
		MatchName:    "2025年春季联赛",
		HomeTeamName: "主队",
		AwayTeamName: "客队",
	}
}

type Team int

const (
	Home Team = iota
	Away
)

// Scores never drop below zero and have no upper bound.
type Scores struct {
	Home int
	Away int
}

func (scores *Scores) Adjust(team Team, delta int) {
	target := &scores.Home
	if team == Away {
		target = &scores.Away
	}
	*target += delta
	if *target < 0 {
		*target = 0
	}
}

// Window is the current output geometry. It is refreshed every frame.
type Window struct {
	Width      int
	Height     int
	Fullscreen bool
}

const (
	DefaultWindowWidth  = 1200
	DefaultWindowHeight = 700
)

// State is everything the input controller mutates and the screens read.
// It is owned by the main loop; nothing else touches it.
type State struct {
	Mode   ViewMode
	Match  MatchInfo
	Scores Scores
	Colors ColorTable
	Cursor Cursor
	Window Window
}

func New(match MatchInfo, colors ColorTable) *State {
	if colors == nil {
		colors = DefaultColors()
	}
	return &State{
		Mode:   ScoreboardView,
		Match:  match,
		Scores: Scores{Home: 1, Away: 0},
		Colors: colors,
		Window: Window{Width: DefaultWindowWidth, Height: DefaultWindowHeight},
	}
}

// AdjustSelectedColor changes the selected component of the selected row's
// color by delta. Both team name rows write the single team_name entry.
func (st *State) AdjustSelectedColor(delta int) RGB {
	key := st.Cursor.Row().Key
	c := st.Colors.Get(key).Adjust(st.Cursor.Component, delta)
	st.Colors.Set(key, c)
	return c
}
