//go:build windows

package argio

import (
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

type windowsPlatform struct{}

func newPlatformIO() platformIO { return windowsPlatform{} }

func (windowsPlatform) isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

func (windowsPlatform) termSize(f *os.File) (int, int, bool) {
	if f == nil {
		return 0, 0, false
	}
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// stdoutMode returns the console handle behind stdout and its mode.
func stdoutMode() (windows.Handle, uint32, bool) {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil || h == windows.InvalidHandle {
		return 0, 0, false
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return 0, 0, false
	}
	return h, mode, true
}

func (windowsPlatform) enableVirtualTerminal() bool {
	h, mode, ok := stdoutMode()
	if !ok {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}

func (windowsPlatform) vtEnabled() bool {
	_, mode, ok := stdoutMode()
	return ok && mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0
}
