package team

import (
	"fmt"
	"time"
)

// Member is a person or place pinned to a timezone.
type Member struct {
	// Name is the display name, e.g. "Alex".
	Name string
	// Location is the member's timezone, resolved at config load time.
	Location *time.Location
}

// NewMember resolves zone against the timezone database.
func NewMember(name, zone string) (Member, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Member{}, fmt.Errorf("member %q: %w", name, err)
	}
	return Member{Name: name, Location: loc}, nil
}

// Zone returns the IANA identifier of the member's timezone, or "" when the
// member has no location.
func (m Member) Zone() string {
	if m.Location == nil {
		return ""
	}
	return m.Location.String()
}

// String returns "<name> (<zone>)".
func (m Member) String() string {
	return fmt.Sprintf("%s (%s)", m.Name, m.Zone())
}

// Team is a named, ordered list of members.
type Team struct {
	Name    string
	Members []Member
}

// Len returns the number of members.
func (t Team) Len() int {
	return len(t.Members)
}

// Zones returns the distinct zone identifiers in first-seen order.
func (t Team) Zones() []string {
	seen := make(map[string]bool, len(t.Members))
	var zones []string
	for _, m := range t.Members {
		z := m.Zone()
		if !seen[z] {
			seen[z] = true
			zones = append(zones, z)
		}
	}
	return zones
}
