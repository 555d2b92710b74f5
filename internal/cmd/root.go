// Package cmd wires the teamdate command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/teamdate/internal/config"
	"github.com/Iron-Ham/teamdate/internal/dates"
	"github.com/Iron-Ham/teamdate/internal/errors"
	"github.com/Iron-Ham/teamdate/internal/lines"
	"github.com/Iron-Ham/teamdate/internal/logging"
	"github.com/Iron-Ham/teamdate/internal/report"
	"github.com/Iron-Ham/teamdate/internal/team"
	"github.com/Iron-Ham/teamdate/internal/version"
)

// Options are the values main hands to the command tree.
type Options struct {
	// Version is shown by --version.
	Version version.Info
	// ConfigPath is the default for --config.
	ConfigPath string
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// app holds flag values shared by the root command and its subcommands.
type app struct {
	opts Options

	configPath string
	team       string
	all        bool
	byLocation bool
	byZones    bool
	group      string
	match      string
	dateFormat string
	dialect    string
	watch      bool
	interval   time.Duration
	noColor    bool
	verbose    int
	logLevel   string
	logFormat  string
	logFile    string

	logger *logging.Logger
}

// NewRootCmd builds the teamdate command tree.
func NewRootCmd(opts Options) *cobra.Command {
	rootCmd, _ := newRootCmd(opts)
	return rootCmd
}

func newRootCmd(opts Options) (*cobra.Command, *app) {
	a := &app{opts: opts, logger: logging.NopLogger()}

	rootCmd := &cobra.Command{
		Use:   "teamdate [flags] [DATE...]",
		Short: "Tracking team mates across timezones",
		Long: `teamdate shows what time it is, or will be, for everyone on your team.

DATE is free text such as "tomorrow 3pm", "next friday 9:00" or
"2024-03-04 14:30", read in the local timezone. Everything after the first
DATE word is part of the date. Without DATE the current time is used.

Teams are read from a TOML file, see 'teamdate config init'.`,
		Version:           opts.Version.String(),
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runRoot,
	}
	rootCmd.SetVersionTemplate(`{{printf "teamdate %s\n" .Version}}`)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", opts.ConfigPath, "the config file to use")
	pf.StringVarP(&a.match, "match", "m", "", "only show members whose name or timezone matches this glob")
	pf.StringVar(&a.dateFormat, "date-format", "", "strftime pattern for times (overrides date_format)")
	pf.StringVar(&a.dialect, "dialect", "", "day/month order for DATE: us or uk (overrides dialect)")
	pf.BoolVar(&a.noColor, "no-color", false, "disable styled output")
	pf.CountVarP(&a.verbose, "verbose", "v", "increase logging verbosity, 1=info, 2=debug")
	pf.StringVar(&a.logLevel, "log-level", "", fmt.Sprintf("log level, one of %s (overrides -v)", strings.Join(logging.ValidLevels(), ", ")))
	pf.StringVar(&a.logFormat, "log-format", logging.FormatText, fmt.Sprintf("log format, one of %s", strings.Join(logging.ValidFormats(), ", ")))
	pf.StringVar(&a.logFile, "log-file", "", "append logs to this file instead of stderr")

	f := rootCmd.Flags()
	f.StringVarP(&a.team, "team", "t", "", "print a specific team")
	f.BoolVar(&a.all, "all", false, "print all teams")
	f.BoolVarP(&a.byLocation, "by-location", "l", false, "group by locations")
	f.BoolVarP(&a.byZones, "by-timezones", "z", false, "group by timezones")
	f.StringVarP(&a.group, "group", "g", "", fmt.Sprintf("grouping, one of %s (overrides -l and -z)", strings.Join(lines.ValidGroupings(), ", ")))
	f.BoolVarP(&a.watch, "watch", "w", false, "redraw the current time every interval until interrupted")
	f.DurationVar(&a.interval, "interval", time.Second, "redraw interval for --watch")
	f.SetInterspersed(false)
	rootCmd.MarkFlagsMutuallyExclusive("team", "all")

	rootCmd.AddCommand(
		newConfigCmd(a),
		newTeamsCmd(a),
	)
	return rootCmd, a
}

// Execute runs the command tree with os.Args.
func Execute(ctx context.Context, opts Options) error {
	rootCmd, a := newRootCmd(opts)
	defer func() { _ = a.logger.Close() }()
	return rootCmd.ExecuteContext(ctx)
}

// PrintError writes err the way main reports a failed run. Errors that
// aren't user-facing are usually usage mistakes caught by cobra, so they get
// a pointer to --help.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	if !errors.IsUserFacing(err) {
		fmt.Fprintln(w, "Run 'teamdate --help' for usage.")
	}
}

// setup builds the logger once flags are parsed.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if !slices.Contains(logging.ValidFormats(), strings.ToLower(a.logFormat)) {
		return fmt.Errorf("invalid --log-format %q (want %s)", a.logFormat, strings.Join(logging.ValidFormats(), " or "))
	}
	level := logging.LevelForVerbosity(a.verbose)
	if a.logLevel != "" {
		level = logging.ParseLevel(a.logLevel)
	}

	if a.logFile != "" {
		logger, err := logging.OpenFile(a.logFile, level, a.logFormat)
		if err != nil {
			return err
		}
		a.logger = logger
	} else {
		a.logger = logging.NewLogger(cmd.ErrOrStderr(), level, a.logFormat)
	}
	a.logger.Debug("starting", "command", cmd.CommandPath(), "version", a.opts.Version.String())
	return nil
}

// loadConfig reads the config file with env and flag overrides applied.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(a.configPath, config.WithFlags(cmd.Flags()), config.WithLogger(a.logger))
}

// grouping resolves --group, -z and -l. Timezones win over locations.
func (a *app) grouping(cmd *cobra.Command) (lines.Grouping, error) {
	if cmd.Flags().Changed("group") {
		return lines.ParseGrouping(a.group)
	}
	return lines.FromFlags(a.byZones, a.byLocation), nil
}

// matcher compiles --match, nil when unset.
func (a *app) matcher() (*team.Matcher, error) {
	if a.match == "" {
		return nil, nil
	}
	return team.Compile(a.match)
}

// reporter builds a Reporter writing to the command's output.
func (a *app) reporter(cmd *cobra.Command, extra ...report.Option) (*report.Reporter, error) {
	m, err := a.matcher()
	if err != nil {
		return nil, err
	}
	opts := []report.Option{report.WithMatcher(m), report.WithLogger(a.logger)}
	if a.styled(cmd.OutOrStdout()) {
		opts = append(opts, report.WithHeaderStyle(lipgloss.NewStyle().Bold(true)))
	}
	opts = append(opts, extra...)
	return report.New(cmd.OutOrStdout(), opts...), nil
}

// styled reports whether w is a terminal that accepts styling.
func (a *app) styled(w io.Writer) bool {
	if a.noColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *app) now() time.Time {
	if a.opts.Now != nil {
		return a.opts.Now()
	}
	return time.Now()
}

// runRoot prints the time tables.
func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	if a.watch && len(args) > 0 {
		return fmt.Errorf("--watch always shows the current time and can't be combined with DATE %q", dates.Join(args))
	}
	if a.watch && a.interval <= 0 {
		return fmt.Errorf("--interval must be positive, got %s", a.interval)
	}

	g, err := a.grouping(cmd)
	if err != nil {
		return err
	}
	r, err := a.reporter(cmd, report.WithGrouping(g))
	if err != nil {
		return err
	}
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}

	if a.watch {
		return a.runWatch(cmd, cfg, r)
	}

	parser := dates.NewParser(cfg.Dialect())
	parser.Clock = a.now
	instant, err := parser.Parse(dates.Join(args))
	if err != nil {
		return err
	}
	a.logger.Info("rendering", "instant", instant.Format(time.RFC3339), "team", a.team, "all", a.all, "grouping", g.String())

	return r.Render(cfg, cfg.ResolveTeam(a.team, a.all), instant)
}
