package team

import "testing"

func TestMatcher(t *testing.T) {
	alex := mustMember(t, "Alex", "America/Montreal")
	john := mustMember(t, "John Doe", "Europe/Dublin")
	jane := mustMember(t, "Jane", "Europe/Paris")
	tm := Team{Name: "wcgw", Members: []Member{alex, john, jane}}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "by name prefix", pattern: "J*", want: []string{"John Doe", "Jane"}},
		{name: "by zone", pattern: "Europe/*", want: []string{"John Doe", "Jane"}},
		{name: "exact zone", pattern: "America/Montreal", want: []string{"Alex"}},
		{name: "alternatives", pattern: "{Alex,Jane}", want: []string{"Alex", "Jane"}},
		{name: "no match", pattern: "Zed*", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.pattern, err)
			}
			if m.Pattern() != tt.pattern {
				t.Errorf("Pattern() = %q, want %q", m.Pattern(), tt.pattern)
			}

			got := tm.Filter(m)
			if got.Name != "wcgw" {
				t.Errorf("Filter kept name %q, want wcgw", got.Name)
			}
			if len(got.Members) != len(tt.want) {
				t.Fatalf("Filter(%q) = %d members, want %d", tt.pattern, len(got.Members), len(tt.want))
			}
			for i, name := range tt.want {
				if got.Members[i].Name != name {
					t.Errorf("member[%d] = %q, want %q", i, got.Members[i].Name, name)
				}
			}
		})
	}
}

func TestFilter_NilMatcherKeepsAll(t *testing.T) {
	tm := Team{Name: "x", Members: []Member{mustMember(t, "Alex", "UTC")}}
	if got := tm.Filter(nil); len(got.Members) != 1 {
		t.Errorf("Filter(nil) = %d members, want 1", len(got.Members))
	}
}
