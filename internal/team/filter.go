package team

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Matcher selects members by name or zone identifier.
type Matcher struct {
	pattern string
	g       glob.Glob
}

// Compile builds a Matcher from a glob pattern such as "Europe/*" or "J*".
// Zone separators are not special, so "*" also crosses "/".
func Compile(pattern string) (*Matcher, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid match pattern %q: %w", pattern, err)
	}
	return &Matcher{pattern: pattern, g: g}, nil
}

// Pattern returns the source pattern.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Match reports whether the member's name or zone matches.
func (m *Matcher) Match(member Member) bool {
	return m.g.Match(member.Name) || m.g.Match(member.Zone())
}

// Filter returns a copy of the team holding only matching members.
// A nil matcher keeps every member.
func (t Team) Filter(m *Matcher) Team {
	if m == nil {
		return t
	}
	out := Team{Name: t.Name}
	for _, member := range t.Members {
		if m.Match(member) {
			out.Members = append(out.Members, member)
		}
	}
	return out
}
