package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Dump formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// ValidDumpFormats returns the formats accepted by Dump.
func ValidDumpFormats() []string {
	return []string{FormatTOML, FormatYAML}
}

// document is the effective configuration as written back out.
type document struct {
	DateFormat  string                 `toml:"date_format" yaml:"date_format"`
	DefaultTeam string                 `toml:"default_team,omitempty" yaml:"default_team,omitempty"`
	Dialect     string                 `toml:"dialect" yaml:"dialect"`
	Teams       map[string][]memberDoc `toml:"teams" yaml:"teams"`
}

func (c *Config) document() document {
	doc := document{
		DateFormat:  c.DateFormat(),
		DefaultTeam: c.DefaultTeamName,
		Dialect:     c.DateDialect.String(),
		Teams:       make(map[string][]memberDoc, c.teams.Len()),
	}
	for _, t := range c.teams.Teams() {
		members := make([]memberDoc, 0, len(t.Members))
		for _, m := range t.Members {
			members = append(members, memberDoc{Name: m.Name, Location: m.Zone()})
		}
		doc.Teams[t.Name] = members
	}
	return doc
}

// Dump renders the effective configuration, with defaults, environment and
// flag overrides applied, as TOML or YAML.
func (c *Config) Dump(format string) ([]byte, error) {
	doc := c.document()
	switch strings.ToLower(format) {
	case FormatTOML, "":
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encoding toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want %s)", format, strings.Join(ValidDumpFormats(), " or "))
	}
}
