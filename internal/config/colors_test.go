package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rook-computer/scoreboard/internal/state"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	store := NewColorStore(filepath.Join(t.TempDir(), FileName), nil)
	if got := store.Load(); !got.Equal(state.DefaultColors()) {
		t.Fatalf("expected defaults, got %v", got)
	}
}

func TestLoadWithoutColorsSectionUsesDefaults(t *testing.T) {
	path := writeConfig(t, "[Other]\nmatch_name_r = 1\n")
	got := NewColorStore(path, nil).Load()
	want := state.ColorTable{
		state.MatchNameColor: {R: 255, G: 255, B: 255},
		state.TeamNameColor:  {R: 255, G: 255, B: 0},
		state.HomeScoreColor: {R: 255, G: 255, B: 255},
		state.AwayScoreColor: {R: 255, G: 255, B: 255},
	}
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLoadBrokenFileUsesDefaults(t *testing.T) {
	for name, contents := range map[string]string{
		"unclosed header":   "[Colors\nmatch_name_r = 1\n",
		"key outside":       "Colors = 5\n",
		"no section at all": "match_name_r = 1\n",
	} {
		path := writeConfig(t, contents)
		if got := NewColorStore(path, nil).Load(); !got.Equal(state.DefaultColors()) {
			t.Fatalf("%s: expected defaults, got %v", name, got)
		}
	}
}

func TestLoadMissingKeysDefaultTo255(t *testing.T) {
	path := writeConfig(t, "[Colors]\nmatch_name_r = 10\nteam_name_g = 20\n")
	got := NewColorStore(path, nil).Load()
	if c := got.Get(state.MatchNameColor); c != (state.RGB{R: 10, G: 255, B: 255}) {
		t.Fatalf("unexpected match_name %v", c)
	}
	// A present section means team_name is read field by field, not defaulted to yellow.
	if c := got.Get(state.TeamNameColor); c != (state.RGB{R: 255, G: 20, B: 255}) {
		t.Fatalf("unexpected team_name %v", c)
	}
	if c := got.Get(state.AwayScoreColor); c != state.White {
		t.Fatalf("unexpected away_score %v", c)
	}
}

func TestLoadUnparsableValuesDefaultTo255(t *testing.T) {
	path := writeConfig(t, "[Colors]\nhome_score_r = \"abc\"\nhome_score_g = \" 42 \"\nhome_score_b = true\n")
	got := NewColorStore(path, nil).Load()
	if c := got.Get(state.HomeScoreColor); c != (state.RGB{R: 255, G: 42, B: 255}) {
		t.Fatalf("unexpected home_score %v", c)
	}
}

func TestLoadBadValueKeepsOtherFields(t *testing.T) {
	for name, line := range map[string]string{
		"word":         "home_score_r = red",
		"empty":        "home_score_r =",
		"float":        "home_score_r = 12.5",
		"junk line":    "home_score_r",
		"comment":      "; home_score_r = 7",
		"hash comment": "# home_score_r = 7",
	} {
		path := writeConfig(t, "[Colors]\nmatch_name_r = 10\nteam_name_r = 20\n"+line+"\nhome_score_g = 30\n")
		got := NewColorStore(path, nil).Load()
		if c := got.Get(state.MatchNameColor); c != (state.RGB{R: 10, G: 255, B: 255}) {
			t.Fatalf("%s: match_name lost: %v", name, c)
		}
		if c := got.Get(state.TeamNameColor); c != (state.RGB{R: 20, G: 255, B: 255}) {
			t.Fatalf("%s: team_name lost: %v", name, c)
		}
		if c := got.Get(state.HomeScoreColor); c != (state.RGB{R: 255, G: 30, B: 255}) {
			t.Fatalf("%s: expected per-field 255 for home_score_r, got %v", name, c)
		}
	}
}

func TestLoadAcceptsINIVariants(t *testing.T) {
	contents := strings.Join([]string{
		"; written by hand",
		"[Colors]",
		"match_name_r: 1",
		"MATCH_NAME_G=2",
		"  match_name_b   =   3  ",
		"# trailing comment",
		"",
	}, "\r\n")
	got := NewColorStore(writeConfig(t, contents), nil).Load()
	if c := got.Get(state.MatchNameColor); c != (state.RGB{R: 1, G: 2, B: 3}) {
		t.Fatalf("unexpected match_name %v", c)
	}
}

func TestLoadClampsOutOfRangeValues(t *testing.T) {
	path := writeConfig(t, "[Colors]\naway_score_r = -5\naway_score_g = 300\naway_score_b = 99999999999999999999\n")
	got := NewColorStore(path, nil).Load()
	if c := got.Get(state.AwayScoreColor); c != (state.RGB{R: 0, G: 255, B: 255}) {
		t.Fatalf("unexpected away_score %v", c)
	}
}

func TestLoadReadsINIWrittenByOtherTools(t *testing.T) {
	contents := strings.Join([]string{
		"[Colors]",
		"match_name_r = 1",
		"match_name_g = 2",
		"match_name_b = 3",
		"team_name_r = 4",
		"team_name_g = 5",
		"team_name_b = 6",
		"home_score_r = 7",
		"home_score_g = 8",
		"home_score_b = 9",
		"away_score_r = 10",
		"away_score_g = 11",
		"away_score_b = 12",
		"",
	}, "\n")
	got := NewColorStore(writeConfig(t, contents), nil).Load()
	if c := got.Get(state.AwayScoreColor); c != (state.RGB{R: 10, G: 11, B: 12}) {
		t.Fatalf("unexpected away_score %v", c)
	}
	if c := got.Get(state.TeamNameColor); c != (state.RGB{R: 4, G: 5, B: 6}) {
		t.Fatalf("unexpected team_name %v", c)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	store := NewColorStore(filepath.Join(t.TempDir(), FileName), nil)
	table := state.ColorTable{
		state.MatchNameColor: {R: 0, G: 128, B: 255},
		state.TeamNameColor:  {R: 10, G: 20, B: 30},
		state.HomeScoreColor: {R: 255, G: 0, B: 0},
		state.AwayScoreColor: {R: 1, G: 1, B: 1},
	}
	if err := store.Save(table); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := store.Load(); !got.Equal(table) {
		t.Fatalf("round trip mismatch: saved %v, loaded %v", table, got)
	}
}

func TestSaveWritesUnindentedSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := NewColorStore(path, nil).Save(state.DefaultColors()); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "[Colors]\n") {
		t.Fatalf("expected the file to start with the section header:\n%s", text)
	}
	found := false
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "team_name_b") {
			continue
		}
		found = true
		name, value, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(name) != "team_name_b" || strings.TrimSpace(value) != "0" {
			t.Fatalf("unexpected line %q", line)
		}
	}
	if !found {
		t.Fatalf("expected an unindented team_name_b line:\n%s", text)
	}
}

func TestSaveToUnwritablePathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", FileName)
	if err := NewColorStore(path, nil).Save(state.DefaultColors()); err == nil {
		t.Fatalf("expected error writing into a missing directory")
	}
}

func TestResourcePath(t *testing.T) {
	if got := ResourcePath("/opt/scoreboard", FileName); got != filepath.Join("/opt/scoreboard", FileName) {
		t.Fatalf("unexpected path %s", got)
	}
	// Test binaries run from the build cache, so the working directory wins.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if got := ResourceDir(); got != wd {
		t.Fatalf("expected working directory %s, got %s", wd, got)
	}
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
