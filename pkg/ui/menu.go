package ui

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// MenuItem is one line of the action catalog.
type MenuItem struct {
	Selector    string
	Label       string
	Destructive bool
}

// RenderMenu prints the numbered action catalog. Destructive actions are
// marked so the operator sees what will ask for confirmation.
func RenderMenu(out io.Writer, title string, items []MenuItem) {
	fmt.Fprintf(out, "\n%s\n", Cyan(title))
	for _, item := range items {
		label := runewidth.FillRight(item.Label, 36)
		mark := " "
		if item.Destructive {
			mark = Yellow("!")
		}
		fmt.Fprintf(out, "  %s) %s %s\n", runewidth.FillLeft(item.Selector, 2), label, mark)
	}
	fmt.Fprintf(out, "  %s) %s\n", runewidth.FillLeft("q", 2), "exit")
}

func Successf(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, "%s %s\n", Green("✔"), fmt.Sprintf(format, args...))
}

func Failf(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, "%s %s\n", Red("✖"), fmt.Sprintf(format, args...))
}

func Noticef(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, "%s %s\n", Yellow("•"), fmt.Sprintf(format, args...))
}
