package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	`  _                  _ _      _`,
	` | |_ ___ _ _ _ __  __| (_)__ _| |___  __ _`,
	` |  _/ -_) '_| '  \/ _`+"`"+` | / _`+"`"+` | / _ \/ _`+"`"+` |`,
	`  \__\___|_| |_|_|_\__,_|_\__,_|_\___/\__, |`,
	`                                      |___/`,
}

// Indigo to rose, one color per banner line.
var bannerColors = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}

// PrintBanner writes the ASCII art banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()
	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, p.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Fprintln(w, p.String("  version "+version).Faint())
	fmt.Fprintln(w)
}
