//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

const (
	enableVirtualTerminalProcessing = 0x0004
	backgroundBlue                  = 0x0010
)

// EnableANSI turns on escape sequence processing for the stdout console.
func EnableANSI() {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return
	}

	_ = windows.SetConsoleMode(handle, mode|enableVirtualTerminalProcessing)
}

// IsBlueBackground reports whether the stdout console has a blue background attribute.
func IsBlueBackground() bool {
	handle := windows.Handle(os.Stdout.Fd())

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(handle, &info); err != nil {
		return false
	}

	return info.Attributes&backgroundBlue != 0
}
