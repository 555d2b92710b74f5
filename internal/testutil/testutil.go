// Package testutil provides testing utilities for teamdate tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleTeams is a config with two teams in three zones, no default team and
// a fixed "%H:%M" date format.
const SampleTeams = `date_format = "%H:%M"

[[teams.wcgw]]
name = "Alex"
location = "America/Montreal"

[[teams.wcgw]]
name = "John Doe"
location = "Europe/Dublin"

[[teams.apac]]
name = "Kenji"
location = "Asia/Tokyo"

[[teams.apac]]
name = "Priya"
location = "Asia/Kolkata"
`

// WriteConfig writes content to teams.toml in a fresh temporary directory
// and returns its path. The directory is removed when the test completes.
func WriteConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "teams.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// IsolateEnv clears the variables that change how teamdate loads its
// config, so tests don't pick up the developer's settings.
func IsolateEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"TEAMDATE_DATE_FORMAT", "TEAMDATE_DIALECT", "TEAMDATE_DEFAULT_TEAM"} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
}
