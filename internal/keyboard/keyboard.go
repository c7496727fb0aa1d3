// Package keyboard turns physical key presses into Key values for the main loop.
package keyboard

import (
	"context"
	"strings"
)

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	Key1
	Key2
	Key3
	Key4
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyEquals
	KeyMinus
	KeyKeypadPlus
	KeyKeypadMinus
)

var keyNames = map[Key]string{
	KeyEscape:      "esc",
	KeyF:           "f",
	KeyUp:          "up",
	KeyDown:        "down",
	KeyLeft:        "left",
	KeyRight:       "right",
	KeyEnter:       "enter",
	Key1:           "1",
	Key2:           "2",
	Key3:           "3",
	Key4:           "4",
	KeyQ:           "q",
	KeyW:           "w",
	KeyE:           "e",
	KeyR:           "r",
	KeyEquals:      "=",
	KeyMinus:       "-",
	KeyKeypadPlus:  "kp+",
	KeyKeypadMinus: "kp-",
}

var keyAliases = map[string]Key{
	"escape": KeyEscape,
	"return": KeyEnter,
	"plus":   KeyEquals,
	"+":      KeyEquals,
	"minus":  KeyMinus,
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey maps a key name as printed by String (or a common alias) back to a Key.
func ParseKey(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyAliases[name]; ok {
		return k
	}
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	return KeyUnknown
}

// Source delivers key presses. Sources whose reader can be interrupted close
// Events after Stop; TerminalSource leaves it open because its reader stays
// blocked on the terminal. Callers must not rely on the close to end a loop.
type Source interface {
	Start(ctx context.Context) error
	Stop() error
	Events() <-chan Key
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// NoopSource never produces a key.
type NoopSource struct{ ch chan Key }

func NewNoopSource() *NoopSource { return &NoopSource{ch: make(chan Key)} }

func (n *NoopSource) Start(ctx context.Context) error { return nil }
func (n *NoopSource) Stop() error                     { close(n.ch); return nil }
func (n *NoopSource) Events() <-chan Key              { return n.ch }
