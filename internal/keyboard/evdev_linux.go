//go:build linux

package keyboard

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// input_event value for a fresh press; 0 is release and 2 auto-repeat.
	keyPressed = 1
)

// Linux input-event-codes.h
var evdevKeys = map[uint16]Key{
	1:   KeyEscape,
	2:   Key1,
	3:   Key2,
	4:   Key3,
	5:   Key4,
	12:  KeyMinus,
	13:  KeyEquals,
	16:  KeyQ,
	17:  KeyW,
	18:  KeyE,
	19:  KeyR,
	28:  KeyEnter,
	33:  KeyF,
	74:  KeyKeypadMinus,
	78:  KeyKeypadPlus,
	103: KeyUp,
	105: KeyLeft,
	106: KeyRight,
	108: KeyDown,
}

// EvdevSource reads every /dev/input/event* device and forwards key presses.
type EvdevSource struct {
	Logger Logger
	Glob   string

	ch     chan Key
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewEvdevSource(logger Logger) *EvdevSource {
	return &EvdevSource{Logger: logger, Glob: "/dev/input/event*", ch: make(chan Key, 64)}
}

func (s *EvdevSource) Events() <-chan Key { return s.ch }

// Start is best-effort: without readable input devices it logs and returns nil.
func (s *EvdevSource) Start(ctx context.Context) error {
	paths, err := filepath.Glob(s.Glob)
	if err != nil || len(paths) == 0 {
		s.infof("no evdev devices found under %s", s.Glob)
		return nil
	}

	readCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for _, path := range paths {
		p := path
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.readDevice(readCtx, p)
		}()
	}
	s.infof("reading keys from %d evdev devices", len(paths))
	return nil
}

func (s *EvdevSource) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	close(s.ch)
	return nil
}

func (s *EvdevSource) readDevice(ctx context.Context, path string) {
	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})
	if tvSize <= 0 {
		tvSize = 16
	}

	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		_, pollErr := unix.Poll(pollFds, 250)
		if pollErr != nil {
			if pollErr == unix.EINTR {
				continue
			}
			s.errorf("poll %s: %v", path, pollErr)
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, readErr := unix.Read(fd, buf)
		if readErr != nil {
			if readErr == unix.EAGAIN || readErr == unix.EINTR {
				continue
			}
			return
		}

		for _, key := range decodeKeyPresses(buf[:n], tvSize) {
			select {
			case s.ch <- key:
			case <-ctx.Done():
				return
			}
		}
	}
}

// decodeKeyPresses parses a run of input_event records and returns the
// mapped key presses in order. A trailing partial record is ignored.
func decodeKeyPresses(data []byte, tvSize int) []Key {
	eventSize := tvSize + 2 + 2 + 4
	var keys []Key
	for off := 0; off+eventSize <= len(data); off += eventSize {
		rec := data[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ != evKey || value != keyPressed {
			continue
		}
		if key, ok := evdevKeys[code]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func (s *EvdevSource) infof(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Infof("input", format, args...)
	}
}

func (s *EvdevSource) errorf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Errorf("input", format, args...)
	}
}
