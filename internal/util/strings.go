// Package util provides shared utility functions used across the codebase.
package util

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Width returns the number of terminal cells s occupies.
// Wide runes count as two cells and ANSI escape sequences count as none.
// Every column computation in teamdate goes through Width so that labels,
// times and headers are measured the same way.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// MaxWidth returns the largest Width among ss, or floor if that is larger.
func MaxWidth(floor int, ss ...string) int {
	w := floor
	for _, s := range ss {
		if n := Width(s); n > w {
			w = n
		}
	}
	return w
}

// PadLeft right-aligns s in a field of width cells.
func PadLeft(s string, width int) string {
	return strings.Repeat(" ", gap(s, width)) + s
}

// PadRight left-aligns s in a field of width cells.
func PadRight(s string, width int) string {
	return s + strings.Repeat(" ", gap(s, width))
}

// Center centers s in a field of width cells. When the padding is odd the
// extra cell goes on the right.
func Center(s string, width int) string {
	g := gap(s, width)
	left := g / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", g-left)
}

// gap returns the number of cells needed to widen s to width, never negative.
func gap(s string, width int) int {
	if g := width - Width(s); g > 0 {
		return g
	}
	return 0
}
