// Package match reads the match name and team names shown on the scoreboard.
package match

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rook-computer/scoreboard/internal/state"
)

// FileName is the match info file inside the resource directory.
const FileName = "match.txt"

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Load reads the match info from path. Any failure, including a file with
// fewer than three non-blank lines, yields state.DefaultMatchInfo as a whole.
func Load(path string, logger Logger) state.MatchInfo {
	f, err := os.Open(path)
	if err != nil {
		if logger != nil {
			logger.Infof("match", "using default match info: %v", err)
		}
		return state.DefaultMatchInfo()
	}
	defer f.Close()

	info, err := Parse(f)
	if err != nil {
		if logger != nil {
			logger.Infof("match", "using default match info: %v", err)
		}
		return state.DefaultMatchInfo()
	}
	return info
}

// Parse takes the first three non-blank lines, trimmed, as match name, home
// team and away team.
func Parse(r io.Reader) (state.MatchInfo, error) {
	lines := make([]string, 0, 3)
	reader := bufio.NewReader(r)
	for len(lines) < 3 {
		raw, err := reader.ReadString('\n')
		if line := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff")); line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return state.MatchInfo{}, fmt.Errorf("read match info: %w", err)
		}
	}
	if len(lines) < 3 {
		return state.MatchInfo{}, fmt.Errorf("match info has %d of 3 lines", len(lines))
	}
	return state.MatchInfo{
		MatchName:    lines[0],
		HomeTeamName: lines[1],
		AwayTeamName: lines[2],
	}, nil
}
