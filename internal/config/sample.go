package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sample is the file written by `teamdate config init`.
const Sample = `# teamdate configuration
#
# Every member needs a display name and an IANA timezone identifier.

# strftime pattern for every time cell.
date_format = "%a %b %d %H:%M"

# Team shown when no --team is given. Leave unset to show every team.
default_team = "wcgw"

# "us" reads 03/04 as March 4, "uk" as April 3.
dialect = "us"

[[teams.wcgw]]
name = "Alex"
location = "America/Montreal"

[[teams.wcgw]]
name = "John Doe"
location = "Europe/Dublin"

[[teams.managers]]
name = "John Doe"
location = "Europe/Dublin"
`

// WriteSample writes Sample to path, creating parent directories. An existing
// file is left alone unless force is set.
func WriteSample(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Sample), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
