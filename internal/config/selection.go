package config

import "github.com/Iron-Ham/teamdate/internal/team"

// Selection is the outcome of ResolveTeam.
type Selection struct {
	// Name is the selected team, or empty when every team is shown.
	Name string
	// Members of the selected team.
	Members []team.Member
	// Known is false when Name was requested but isn't configured.
	Known bool
}

// All reports whether every team should be shown.
func (s Selection) All() bool {
	return s.Name == ""
}

// Team returns the selection as a team value.
func (s Selection) Team() team.Team {
	return team.Team{Name: s.Name, Members: s.Members}
}

// ResolveTeam picks what to display. showAll wins over everything; a
// requested name is looked up as-is and reported unknown rather than
// falling back; with no request the default team is used if it exists.
func (c *Config) ResolveTeam(requested string, showAll bool) Selection {
	switch {
	case showAll:
		return Selection{Known: true}
	case requested != "":
		t, ok := c.teams.Lookup(requested)
		return Selection{Name: requested, Members: t.Members, Known: ok}
	}
	if t, ok := c.DefaultTeam(); ok {
		return Selection{Name: t.Name, Members: t.Members, Known: true}
	}
	return Selection{Known: true}
}
