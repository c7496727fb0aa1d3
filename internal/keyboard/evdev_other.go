//go:build !linux

package keyboard

import "context"

// EvdevSource only exists on Linux; elsewhere it never produces a key.
type EvdevSource struct {
	Logger Logger
	ch     chan Key
}

func NewEvdevSource(logger Logger) *EvdevSource {
	return &EvdevSource{Logger: logger, ch: make(chan Key)}
}

func (s *EvdevSource) Start(ctx context.Context) error {
	if s.Logger != nil {
		s.Logger.Infof("input", "evdev input is not available on this platform")
	}
	return nil
}

func (s *EvdevSource) Stop() error        { close(s.ch); return nil }
func (s *EvdevSource) Events() <-chan Key { return s.ch }
