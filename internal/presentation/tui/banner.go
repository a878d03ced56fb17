package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	`   _                                                        `,
	`  (_) ___  _   _ _ __ _ __   ___ _   _ _ __ ___   __ _ _ __ `,
	"  | |/ _ \\| | | | '__| '_ \\ / _ \\ | | | '_ ` _ \\ / _` | '_ \\",
	`  | | (_) | |_| | |  | | | |  __/ |_| | | | | | | (_| | |_) |`,
	` _/ |\___/ \__,_|_|  |_| |_|\___|\__, |_| |_| |_|\__,_| .__/ `,
	`|__/                             |___/                |_|    `,
}

// Gradient-like color scheme (Indigo through Pink), one stop per line.
var bannerColors = []string{
	"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185",
}

// PrintBanner outputs the ASCII art banner with the running version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()

	fmt.Println()
	for i, line := range bannerLines {
		fmt.Println(termenv.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Println(termenv.String("  journey map engine " + version).Faint())
	fmt.Println()
}
