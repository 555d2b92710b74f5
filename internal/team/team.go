package team

import (
	"fmt"
	"slices"
)

// Roster indexes teams by name. The zero value is an empty roster.
type Roster struct {
	teams map[string]Team
}

// NewRoster builds a roster from teams. Team names must be unique.
func NewRoster(teams ...Team) (*Roster, error) {
	r := &Roster{teams: make(map[string]Team, len(teams))}
	for _, t := range teams {
		if _, dup := r.teams[t.Name]; dup {
			return nil, fmt.Errorf("duplicate team %q", t.Name)
		}
		r.teams[t.Name] = t
	}
	return r, nil
}

// Lookup returns the team with the given name.
func (r *Roster) Lookup(name string) (Team, bool) {
	if r == nil {
		return Team{}, false
	}
	t, ok := r.teams[name]
	return t, ok
}

// Has reports whether a team with the given name exists.
func (r *Roster) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns all team names in ascending order.
func (r *Roster) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.teams))
	for name := range r.teams {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Teams returns all teams ordered by name.
func (r *Roster) Teams() []Team {
	names := r.Names()
	teams := make([]Team, 0, len(names))
	for _, name := range names {
		teams = append(teams, r.teams[name])
	}
	return teams
}

// Len returns the number of teams.
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.teams)
}
