package banner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/terrafirma2021/makcu-version/shared/console"
)

// titleColor is a 24-bit foreground escape sequence selectable by name.
type titleColor struct {
	name string
	code string
}

var (
	colorCyan   = titleColor{"cyan", "\x1b[38;2;0;175;240m"}
	colorGreen  = titleColor{"green", "\x1b[38;2;30;215;96m"}
	colorOrange = titleColor{"orange", "\x1b[38;2;255;153;0m"}
	colorPurple = titleColor{"purple", "\x1b[38;2;145;70;255m"}
	colorRed    = titleColor{"red", "\x1b[38;2;228;0;43m"}
	colorYellow = titleColor{"yellow", "\x1b[38;2;255;214;10m"}
)

var titleColors = []titleColor{colorCyan, colorGreen, colorOrange, colorPurple, colorRed, colorYellow}

const (
	colorEnv     = "MAKCU_VERSION_BANNER_COLOR"
	defaultWidth = 80
)

var titleLines = []string{
	" ███╗   ███╗  █████╗  ██╗  ██╗  ██████╗ ██╗   ██╗",
	" ████╗ ████║ ██╔══██╗ ██║ ██╔╝ ██╔════╝ ██║   ██║",
	" ██╔████╔██║ ███████║ █████╔╝  ██║      ██║   ██║",
	" ██║╚██╔╝██║ ██╔══██║ ██╔═██╗  ██║      ██║   ██║",
	" ██║ ╚═╝ ██║ ██║  ██║ ██║  ██╗ ╚██████╗ ╚██████╔╝",
	" ╚═╝     ╚═╝ ╚═╝  ╚═╝ ╚═╝  ╚═╝  ╚═════╝  ╚═════╝ ",
}

func printCenteredLines(w io.Writer, lines []string, width int) {
	for _, line := range lines {
		pad := 0

		if n := len([]rune(line)); width > n {
			pad = (width - n) / 2
		}

		if pad > 0 {
			fmt.Fprint(w, strings.Repeat(" ", pad))
		}

		fmt.Fprintln(w, line)
	}
}

// pickColor honours the env override by name, then avoids cyan on blue backgrounds.
func pickColor(env string, blueBackground bool) titleColor {
	env = strings.TrimSpace(env)
	for _, c := range titleColors {
		if strings.EqualFold(env, c.name) {
			return c
		}
	}

	if blueBackground {
		return colorYellow
	}
	return colorCyan
}

// ShouldDraw reports whether stdout is an interactive terminal.
func ShouldDraw() bool {
	return console.IsTerminal(os.Stdout)
}

// DrawBannerTitle prints the application title banner to w, centered for stdout's width.
func DrawBannerTitle(w io.Writer) {
	console.EnableANSI()

	width := console.Width(os.Stdout, defaultWidth)

	color := pickColor(os.Getenv(colorEnv), console.IsBlueBackground())

	fmt.Fprint(w, color.code)
	printCenteredLines(w, titleLines, width)
	fmt.Fprint(w, "\x1b[0m")
}
