package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for interactive sessions.
func PrintBanner() {
	p := termenv.ColorProfile()
	lines := []string{
		`   __ _                     _                _   `,
		`  / _| | _____      _____| |__   __ _ _ __| |_ `,
		` | |_| |/ _ \ \ /\ / / __| '_ \ / _' | '__| __|`,
		` |  _| | (_) \ V  V / (__| | | | (_| | |  | |_ `,
		` |_| |_|\___/ \_/\_/ \___|_| |_|\__,_|_|   \__|`,
	}
	colors := []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}

	fmt.Println()
	for i, line := range lines {
		fmt.Println(termenv.String(line).Foreground(p.Color(colors[i])))
	}
	fmt.Println()
}
