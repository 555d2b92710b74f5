package table

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Iron-Ham/teamdate/internal/util"
)

func render(t *testing.T, left, right string, rows []Row) string {
	t.Helper()
	var sb strings.Builder
	if err := Render(&sb, left, right, rows); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return sb.String()
}

func TestRender_SingleRow(t *testing.T) {
	rows := []Row{{Left: "Alex (America/Montreal)", Right: "Mon Jan 01 09:00"}}

	var buf bytes.Buffer
	if err := Render(&buf, "Team member", "Time", rows); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := strings.Join([]string{
		"┏━" + strings.Repeat("━", 23) + "━┯━" + strings.Repeat("━", 16) + "━┓",
		"┃       Team member       │       Time       ┃",
		"┠─" + strings.Repeat("─", 23) + "─┼─" + strings.Repeat("─", 16) + "─┨",
		"┃ Alex (America/Montreal) │ Mon Jan 01 09:00 ┃",
		"┗━" + strings.Repeat("━", 23) + "━┷━" + strings.Repeat("━", 16) + "━┛",
	}, "\n") + "\n"

	if got := buf.String(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_Alignment(t *testing.T) {
	rows := []Row{
		{Left: "Alex (America/Montreal)", Right: "Mon Jan 01 09:00"},
		{Left: "Jo (UTC)", Right: "14:00"},
	}
	lines := strings.Split(strings.TrimSuffix(render(t, "Team wcgw", "Time", rows), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}

	if want := "┃                Jo (UTC) │ 14:00            ┃"; lines[4] != want {
		t.Errorf("short row = %q, want %q", lines[4], want)
	}

	width := util.Width(lines[0])
	for i, l := range lines {
		if util.Width(l) != width {
			t.Errorf("line %d width = %d, want %d: %q", i, util.Width(l), width, l)
		}
	}
}

func TestRender_HeaderWiderThanContent(t *testing.T) {
	rows := []Row{{Left: "EST", Right: "9:00"}}
	wl, wr := Widths("Timezone", "Local time", rows)
	if wl != 8 || wr != 10 {
		t.Errorf("Widths = (%d, %d), want (8, 10)", wl, wr)
	}

	out := render(t, "Timezone", "Local time", rows)
	if !strings.Contains(out, "┃      EST │ 9:00       ┃\n") {
		t.Errorf("unexpected body in\n%s", out)
	}
}

func TestRender_NoRows(t *testing.T) {
	out := render(t, "Location", "Time", nil)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	want := []string{
		"┏━━━━━━━━━━┯━━━━━━┓",
		"┃ Location │ Time ┃",
		"┠──────────┼──────┨",
		"┗━━━━━━━━━━┷━━━━━━┛",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRender_WideRunes(t *testing.T) {
	rows := []Row{
		{Left: "東京", Right: "x"},
		{Left: "Tokyo", Right: "y"},
	}
	lines := strings.Split(strings.TrimSuffix(render(t, "City", "T", rows), "\n"), "\n")
	width := util.Width(lines[0])
	for i, l := range lines {
		if util.Width(l) != width {
			t.Errorf("line %d width = %d, want %d", i, util.Width(l), width)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRender_WriteError(t *testing.T) {
	if err := Render(failingWriter{}, "a", "b", nil); err == nil {
		t.Error("expected write error")
	}
}
