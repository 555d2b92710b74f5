package team

import (
	"reflect"
	"testing"
)

func TestNewRoster(t *testing.T) {
	t.Run("indexes teams by name", func(t *testing.T) {
		r, err := NewRoster(Team{Name: "wcgw"}, Team{Name: "managers"})
		if err != nil {
			t.Fatalf("NewRoster: %v", err)
		}
		if r.Len() != 2 {
			t.Errorf("Len() = %d, want 2", r.Len())
		}
		if !r.Has("wcgw") || !r.Has("managers") {
			t.Error("expected both teams to be present")
		}
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		if _, err := NewRoster(Team{Name: "a"}, Team{Name: "a"}); err == nil {
			t.Error("expected duplicate team error")
		}
	})
}

func TestRoster_Lookup(t *testing.T) {
	alex := mustMember(t, "Alex", "America/Montreal")
	r, err := NewRoster(Team{Name: "wcgw", Members: []Member{alex}})
	if err != nil {
		t.Fatalf("NewRoster: %v", err)
	}

	got, ok := r.Lookup("wcgw")
	if !ok {
		t.Fatal("Lookup(wcgw) not found")
	}
	if len(got.Members) != 1 || got.Members[0].Name != "Alex" {
		t.Errorf("Lookup(wcgw) members = %v", got.Members)
	}

	if got, ok := r.Lookup("nope"); ok || got.Name != "" || got.Members != nil {
		t.Errorf("Lookup(nope) = %+v, %v; want zero value and false", got, ok)
	}
}

func TestRoster_NilIsEmpty(t *testing.T) {
	var r *Roster
	if _, ok := r.Lookup("x"); ok {
		t.Error("nil roster should not find teams")
	}
	if r.Len() != 0 || r.Names() != nil {
		t.Error("nil roster should be empty")
	}
}

func TestRoster_NamesSorted(t *testing.T) {
	r, err := NewRoster(Team{Name: "wcgw"}, Team{Name: "Managers"}, Team{Name: "alpha"})
	if err != nil {
		t.Fatalf("NewRoster: %v", err)
	}

	want := []string{"Managers", "alpha", "wcgw"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	teams := r.Teams()
	for i, tm := range teams {
		if tm.Name != want[i] {
			t.Errorf("Teams()[%d].Name = %q, want %q", i, tm.Name, want[i])
		}
	}
}
