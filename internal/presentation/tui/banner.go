package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text, color string
}{
	{"  ____  _____  _    ", "#818cf8"},
	{" |  _ \\|  ___|/ \\   ", "#a78bfa"},
	{" | | | | |_  / _ \\  ", "#c084fc"},
	{" | |_| |  _|/ ___ \\ ", "#e879f9"},
	{" |____/|_| /_/   \\_\\", "#f472b6"},
}

// PrintBanner writes the ASCII banner to w, coloured for w's terminal profile.
func PrintBanner(w io.Writer, opts ...termenv.OutputOption) {
	out := termenv.NewOutput(w, opts...)
	fmt.Fprintln(out)
	for _, l := range bannerLines {
		fmt.Fprintln(out, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(out)
}
