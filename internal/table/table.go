// Package table draws two-column box tables.
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━┯━━━━━━━━━━━━━━━━━━┓
//	┃      Team member        │       Time       ┃
//	┠─────────────────────────┼──────────────────┨
//	┃ Alex (America/Montreal) │ Mon Jan 01 09:00 ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━┷━━━━━━━━━━━━━━━━━━┛
//
// Column widths are measured in terminal cells with util.Width. Strings whose
// glyphs render wider or narrower than that metric reports will misalign.
package table

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/teamdate/internal/util"
)

// Row is one body line: Left is right-aligned, Right is left-aligned.
type Row struct {
	Left  string
	Right string
}

// Option configures rendering.
type Option func(*options)

type options struct {
	headerStyle *lipgloss.Style
}

// WithHeaderStyle renders header text with style after it has been padded.
// The style must not change the width of the text.
func WithHeaderStyle(style lipgloss.Style) Option {
	return func(o *options) {
		o.headerStyle = &style
	}
}

// Widths returns the column widths for the given headers and rows.
func Widths(left, right string, rows []Row) (int, int) {
	wl, wr := util.Width(left), util.Width(right)
	for _, r := range rows {
		wl = util.MaxWidth(wl, r.Left)
		wr = util.MaxWidth(wr, r.Right)
	}
	return wl, wr
}

// Render writes the table to w. Zero rows still produce the borders and the
// header.
func Render(w io.Writer, left, right string, rows []Row, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	wl, wr := Widths(left, right, rows)
	header := func(s string, width int) string {
		s = util.Center(s, width)
		if o.headerStyle != nil {
			s = o.headerStyle.Render(s)
		}
		return s
	}

	bw := bufio.NewWriter(w)
	rule(bw, "┏━", "━┯━", "━┓", "━", wl, wr)
	line(bw, "┃ ", " │ ", " ┃", header(left, wl), header(right, wr))
	rule(bw, "┠─", "─┼─", "─┨", "─", wl, wr)
	for _, r := range rows {
		line(bw, "┃ ", " │ ", " ┃", util.PadLeft(r.Left, wl), util.PadRight(r.Right, wr))
	}
	rule(bw, "┗━", "━┷━", "━┛", "━", wl, wr)
	return bw.Flush()
}

func rule(bw *bufio.Writer, start, mid, end, fill string, wl, wr int) {
	bw.WriteString(start)
	bw.WriteString(strings.Repeat(fill, wl))
	bw.WriteString(mid)
	bw.WriteString(strings.Repeat(fill, wr))
	bw.WriteString(end)
	bw.WriteByte('\n')
}

func line(bw *bufio.Writer, start, mid, end, left, right string) {
	bw.WriteString(start)
	bw.WriteString(left)
	bw.WriteString(mid)
	bw.WriteString(right)
	bw.WriteString(end)
	bw.WriteByte('\n')
}
