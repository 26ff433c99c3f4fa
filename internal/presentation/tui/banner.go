package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for tumbler.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Warm gradient (amber to rose), one color per line.
	lines := []struct {
		text  string
		color string
	}{
		{"  _                 _     _            ", "#fbbf24"},
		{" | |_ _   _ _ __ __| |__ | | ___ _ __  ", "#f59e0b"},
		{" | __| | | | '_ ` _ \\ '_ \\| |/ _ \\ '__|", "#f97316"},
		{" | |_| |_| | | | | | | |_) | |  __/ |  ", "#f43f5e"},
		{"  \\__|\\__,_|_| |_| |_|_.__/|_|\\___|_|  ", "#fb7185"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}
