package keyboard

import (
	"context"
	"fmt"
	"strings"
)

// ScriptSource replays a fixed sequence of keys, then closes its channel.
type ScriptSource struct {
	keys []Key
	ch   chan Key
}

// NewScriptSource builds a source from key names separated by commas or
// whitespace, e.g. "1,1,up,down,-,enter".
func NewScriptSource(script string) (*ScriptSource, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	keys := make([]Key, 0, len(fields))
	for _, field := range fields {
		k := ParseKey(field)
		if k == KeyUnknown {
			return nil, fmt.Errorf("unknown key %q", field)
		}
		keys = append(keys, k)
	}
	// Buffered so the whole script is pending before the first frame drains it.
	return &ScriptSource{keys: keys, ch: make(chan Key, len(keys))}, nil
}

func (s *ScriptSource) Start(ctx context.Context) error {
	for _, k := range s.keys {
		s.ch <- k
	}
	return nil
}

func (s *ScriptSource) Stop() error { close(s.ch); return nil }

func (s *ScriptSource) Events() <-chan Key { return s.ch }
