// Package lines turns a team into the rows of a time table.
//
// [Build] is pure: it converts one instant into every member's zone and
// formats the result. Rows carry no identity beyond their position.
package lines

import (
	"fmt"
	"slices"
	"time"

	"github.com/Iron-Ham/teamdate/internal/errors"
	"github.com/Iron-Ham/teamdate/internal/team"
	"github.com/Iron-Ham/teamdate/internal/timefmt"
)

// Row is one line of a time table.
type Row struct {
	Label string
	Time  string
}

// Build produces the rows for members at instant.
//
// The pattern and every member's location are checked before any row is
// built. An invalid pattern yields an error wrapping errors.ErrInvalidFormat
// and a member without a location one wrapping errors.ErrInvalidTimezone.
// An empty member list yields no rows and no error.
func Build(members []team.Member, g Grouping, instant time.Time, pattern string) ([]Row, error) {
	f, err := timefmt.New(pattern)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.Location == nil {
			return nil, fmt.Errorf("%w: member %q has no location", errors.ErrInvalidTimezone, m.Name)
		}
	}

	switch g {
	case ByTeamMember:
		return byMember(members, instant, f), nil
	case ByLocation:
		return byZone(members, instant, f, zoneName), nil
	case ByTimezoneAbbreviation:
		return byZone(members, instant, f, zoneAbbreviation), nil
	default:
		return nil, fmt.Errorf("unknown grouping %v", g)
	}
}

// byMember keeps member order, one row each.
func byMember(members []team.Member, instant time.Time, f timefmt.Formatter) []Row {
	rows := make([]Row, 0, len(members))
	for _, m := range members {
		rows = append(rows, Row{
			Label: m.String(),
			Time:  f.In(instant, m.Location),
		})
	}
	return rows
}

// labelFunc names a zone row.
type labelFunc func(local time.Time) string

func zoneName(local time.Time) string {
	return local.Location().String()
}

func zoneAbbreviation(local time.Time) string {
	abbr, _ := local.Zone()
	return abbr
}

// byZone emits one row per distinct zone, ordered by local wall clock.
func byZone(members []team.Member, instant time.Time, f timefmt.Formatter, label labelFunc) []Row {
	locals := distinctLocal(members, instant)
	SortByWallClock(locals)

	rows := make([]Row, 0, len(locals))
	for _, local := range locals {
		rows = append(rows, Row{
			Label: label(local),
			Time:  f.Format(local),
		})
	}
	return rows
}

// distinctLocal converts instant into each distinct member zone, in first-seen
// order. Zones are compared by identifier.
func distinctLocal(members []team.Member, instant time.Time) []time.Time {
	seen := make(map[string]bool, len(members))
	var locals []time.Time
	for _, m := range members {
		if seen[m.Location.String()] {
			continue
		}
		seen[m.Location.String()] = true
		locals = append(locals, instant.In(m.Location))
	}
	return locals
}

// SortByWallClock stably orders times by local calendar date, then local time
// of day. Two zones with the same wall clock keep their relative order.
func SortByWallClock(locals []time.Time) {
	slices.SortStableFunc(locals, func(a, b time.Time) int {
		return wallClock(a).Compare(wallClock(b))
	})
}

// wallClock reinterprets the local date and time of t as UTC so that wall
// clocks of different zones compare directly.
func wallClock(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)
}
