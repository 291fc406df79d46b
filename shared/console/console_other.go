//go:build !windows

package console

import (
	"os"
	"strings"
)

// EnableANSI is a no-op; POSIX terminals interpret escape sequences natively.
func EnableANSI() {}

// IsBlueBackground reports a blue terminal background from COLORFGBG.
func IsBlueBackground() bool {
	return blueFromColorFGBG(os.Getenv("COLORFGBG"))
}

func blueFromColorFGBG(raw string) bool {
	if raw == "" {
		return false
	}

	parts := strings.Split(raw, ";")
	bg := strings.TrimSpace(parts[len(parts)-1])

	// ANSI 16-color backgrounds: 4 (blue) and 12 (bright blue).
	return bg == "4" || bg == "12"
}
