package keyboard

import (
	"context"
	"errors"
	"os"

	"golang.org/x/term"
)

// TerminalSource reads keys from a terminal in raw mode. It is used by the
// simulator where no evdev device is available.
type TerminalSource struct {
	In *os.File

	ch       chan Key
	oldState *term.State
}

func NewTerminalSource(in *os.File) *TerminalSource {
	return &TerminalSource{In: in, ch: make(chan Key, 64)}
}

func (s *TerminalSource) Start(ctx context.Context) error {
	fd := int(s.In.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("terminal source: input is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	s.oldState = oldState

	go func() {
		buf := make([]byte, 64)
		for {
			n, err := s.In.Read(buf)
			if err != nil {
				return
			}
			for _, key := range parseTerminalInput(buf[:n]) {
				select {
				case s.ch <- key:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return nil
}

// Stop restores the terminal. The reader goroutine stays blocked in Read
// until the next byte arrives, so the channel is left open.
func (s *TerminalSource) Stop() error {
	if s.oldState == nil {
		return nil
	}
	return term.Restore(int(s.In.Fd()), s.oldState)
}

func (s *TerminalSource) Events() <-chan Key { return s.ch }

var terminalKeys = map[byte]Key{
	0x03: KeyEscape, // ctrl+c
	'\r': KeyEnter,
	'\n': KeyEnter,
	'f':  KeyF,
	'F':  KeyF,
	'1':  Key1,
	'2':  Key2,
	'3':  Key3,
	'4':  Key4,
	'q':  KeyQ,
	'w':  KeyW,
	'e':  KeyE,
	'r':  KeyR,
	'=':  KeyEquals,
	'+':  KeyKeypadPlus,
	'-':  KeyMinus,
}

var arrowKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
}

// parseTerminalInput maps one read of raw terminal bytes to keys. A lone ESC
// is the escape key; ESC [ X and ESC O X are arrow keys.
func parseTerminalInput(data []byte) []Key {
	var keys []Key
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b == 0x1b {
			if i+2 < len(data) && (data[i+1] == '[' || data[i+1] == 'O') {
				if key, ok := arrowKeys[data[i+2]]; ok {
					keys = append(keys, key)
				}
				i += 2
				continue
			}
			keys = append(keys, KeyEscape)
			continue
		}
		if key, ok := terminalKeys[b]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}
