package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/teamdate/internal/dates"
	"github.com/Iron-Ham/teamdate/internal/errors"
	"github.com/Iron-Ham/teamdate/internal/logging"
	"github.com/Iron-Ham/teamdate/internal/team"
	"github.com/Iron-Ham/teamdate/internal/timefmt"
)

// EnvPrefix prefixes environment overrides, e.g. TEAMDATE_DATE_FORMAT.
const EnvPrefix = "TEAMDATE"

// Config represents a loaded teamdate configuration file
type Config struct {
	// DateFormatPattern is the strftime pattern used for every time cell.
	// Empty means timefmt.DefaultPattern.
	DateFormatPattern string `mapstructure:"date_format"`
	// DefaultTeamName is the team shown when none is requested.
	DefaultTeamName string `mapstructure:"default_team"`
	// DateDialect decides day/month order when parsing dates.
	// Options: "us", "uk"
	DateDialect dates.Dialect `mapstructure:"dialect"`

	path  string
	teams *team.Roster
}

// memberDoc is one [[teams.<name>]] entry.
type memberDoc struct {
	Name     string `toml:"name" yaml:"name"`
	Location string `toml:"location" yaml:"location"`
}

// teamsDoc holds the part of the file viper can't decode: viper lower-cases
// map keys and team names are case-sensitive.
type teamsDoc struct {
	Teams map[string][]memberDoc `toml:"teams"`
}

// flagKeys maps command line flags to the settings they override.
var flagKeys = map[string]string{
	"date-format": "date_format",
	"dialect":     "dialect",
}

// Option customises Load and Parse.
type Option func(*loader)

type loader struct {
	flags  *pflag.FlagSet
	logger *logging.Logger
}

// WithFlags lets changed flags in fs override file and environment settings.
func WithFlags(fs *pflag.FlagSet) Option {
	return func(l *loader) {
		l.flags = fs
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *logging.Logger) Option {
	return func(l *loader) {
		l.logger = logger
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("date_format", timefmt.DefaultPattern)
	v.SetDefault("default_team", "")
	v.SetDefault("dialect", dates.DialectUS.String())
}

// Load reads and validates the config file at path.
func Load(path string, opts ...Option) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("couldn't read config file", errors.Join(errors.ErrConfigRead, err)).WithPath(path)
	}
	cfg, err := Parse(data, opts...)
	if err != nil {
		var cfgErr *errors.ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Path == "" {
			cfgErr.WithPath(path)
		}
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// Parse decodes a config document held in memory.
func Parse(data []byte, opts ...Option) (*Config, error) {
	l := &loader{logger: logging.NopLogger()}
	for _, opt := range opts {
		opt(l)
	}

	v := viper.New()
	v.SetConfigType("toml")
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if l.flags != nil {
		var bindErr error
		l.flags.VisitAll(func(f *pflag.Flag) {
			if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
				bindErr = v.BindPFlag(key, f)
			}
		})
		if bindErr != nil {
			return nil, errors.Wrap(bindErr, "binding flags")
		}
	}

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.NewConfigError("couldn't parse config file", errors.Join(errors.ErrConfigParse, err))
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, errors.NewConfigError("couldn't decode settings", errors.Join(errors.ErrConfigParse, err))
	}

	var doc teamsDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewConfigError("couldn't parse teams", errors.Join(errors.ErrConfigParse, err))
	}
	roster, err := buildRoster(doc)
	if err != nil {
		return nil, err
	}
	cfg.teams = roster

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errors.NewConfigError("invalid settings", ValidationErrors(errs))
	}
	for _, w := range cfg.Warnings() {
		if errors.GetSeverity(w) != errors.SeverityWarning {
			return nil, w
		}
		l.logger.Warn(w.Error())
	}
	l.logger.Debug("config loaded",
		"teams", roster.Len(),
		"date_format", cfg.DateFormat(),
		"dialect", cfg.DateDialect.String())

	return &cfg, nil
}

// buildRoster resolves every member location. Teams are visited in name
// order so the first reported problem doesn't depend on map iteration.
func buildRoster(doc teamsDoc) (*team.Roster, error) {
	names := make([]string, 0, len(doc.Teams))
	for name := range doc.Teams {
		names = append(names, name)
	}
	slices.Sort(names)

	teams := make([]team.Team, 0, len(names))
	for _, name := range names {
		t := team.Team{Name: name, Members: make([]team.Member, 0, len(doc.Teams[name]))}
		for _, md := range doc.Teams[name] {
			if md.Location == "" {
				return nil, errors.NewConfigError("missing location",
					errors.ErrInvalidTimezone).WithMember(name, md.Name)
			}
			m, err := team.NewMember(md.Name, md.Location)
			if err != nil {
				return nil, errors.NewConfigError(fmt.Sprintf("unknown location %q", md.Location),
					errors.Join(errors.ErrInvalidTimezone, err)).WithMember(name, md.Name)
			}
			t.Members = append(t.Members, m)
		}
		teams = append(teams, t)
	}

	roster, err := team.NewRoster(teams...)
	if err != nil {
		return nil, errors.NewConfigError("invalid teams", errors.Join(errors.ErrConfigParse, err))
	}
	return roster, nil
}

// Path returns the file the config was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// Teams returns every configured team.
func (c *Config) Teams() *team.Roster {
	return c.teams
}

// DateFormat returns the configured pattern or timefmt.DefaultPattern.
func (c *Config) DateFormat() string {
	if c.DateFormatPattern == "" {
		return timefmt.DefaultPattern
	}
	return c.DateFormatPattern
}

// DefaultTeam returns the configured default team. It is absent when no
// default is set or the named team doesn't exist.
func (c *Config) DefaultTeam() (team.Team, bool) {
	if c.DefaultTeamName == "" {
		return team.Team{}, false
	}
	return c.teams.Lookup(c.DefaultTeamName)
}

// Dialect returns the date parsing dialect.
func (c *Config) Dialect() dates.Dialect {
	return c.DateDialect
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "teamdate")
	}
	// Fall back to ~/.config/teamdate
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teamdate"
	}
	return filepath.Join(home, ".config", "teamdate")
}

// DefaultPath returns the path to the config file
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "teams.toml")
}
