package lines

import (
	"fmt"
	"strings"
)

// Grouping decides how a team's members become rows.
type Grouping int

const (
	// ByTeamMember renders one row per member in declaration order.
	ByTeamMember Grouping = iota
	// ByLocation renders one row per distinct zone, labelled with its identifier.
	ByLocation
	// ByTimezoneAbbreviation renders one row per distinct zone, labelled with
	// the abbreviation in effect at the instant.
	ByTimezoneAbbreviation
)

// String returns the name accepted by ParseGrouping.
func (g Grouping) String() string {
	switch g {
	case ByTeamMember:
		return "team"
	case ByLocation:
		return "location"
	case ByTimezoneAbbreviation:
		return "timezone"
	default:
		return fmt.Sprintf("grouping(%d)", int(g))
	}
}

// IsValid returns true if g is one of the declared groupings.
func (g Grouping) IsValid() bool {
	switch g {
	case ByTeamMember, ByLocation, ByTimezoneAbbreviation:
		return true
	default:
		return false
	}
}

// Header returns the left column header for a table in this grouping.
// teamName is only used by ByTeamMember; empty means no single team.
func (g Grouping) Header(teamName string) string {
	switch g {
	case ByLocation:
		return "Location"
	case ByTimezoneAbbreviation:
		return "Timezone"
	default:
		if teamName == "" {
			return "Team member"
		}
		return "Team " + teamName
	}
}

// ParseGrouping converts "team", "location" or "timezone" (case-insensitive)
// to a Grouping.
func ParseGrouping(s string) (Grouping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "team", "member", "":
		return ByTeamMember, nil
	case "location", "locations":
		return ByLocation, nil
	case "timezone", "timezones", "tz":
		return ByTimezoneAbbreviation, nil
	default:
		return ByTeamMember, fmt.Errorf("unknown grouping %q (want team, location or timezone)", s)
	}
}

// ValidGroupings returns the names accepted by ParseGrouping.
func ValidGroupings() []string {
	return []string{ByTeamMember.String(), ByLocation.String(), ByTimezoneAbbreviation.String()}
}

// FromFlags picks a grouping from the -z and -l switches. Timezones win when
// both are set.
func FromFlags(byTimezones, byLocation bool) Grouping {
	switch {
	case byTimezones:
		return ByTimezoneAbbreviation
	case byLocation:
		return ByLocation
	default:
		return ByTeamMember
	}
}
