//go:build !windows

package argio

import (
	"os"

	"golang.org/x/term"
)

type unixPlatform struct{}

func newPlatformIO() platformIO { return unixPlatform{} }

func (unixPlatform) isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

func (unixPlatform) termSize(f *os.File) (int, int, bool) {
	if f == nil {
		return 0, 0, false
	}
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// ANSI sequences need no setup outside Windows.
func (unixPlatform) enableVirtualTerminal() bool { return true }
func (unixPlatform) vtEnabled() bool             { return true }
