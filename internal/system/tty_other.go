//go:build !linux

package system

func SetGraphicsMode() error { return nil }
func RestoreTextMode() error { return nil }
func HideCursor() error      { return nil }
func ShowCursor() error      { return nil }
