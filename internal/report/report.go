// Package report renders the time tables for a team selection.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/teamdate/internal/config"
	"github.com/Iron-Ham/teamdate/internal/errors"
	"github.com/Iron-Ham/teamdate/internal/lines"
	"github.com/Iron-Ham/teamdate/internal/logging"
	"github.com/Iron-Ham/teamdate/internal/table"
	"github.com/Iron-Ham/teamdate/internal/team"
)

// TimeHeader is the right column header of every time table.
const TimeHeader = "Time"

// Reporter writes time tables to an output stream.
type Reporter struct {
	out       io.Writer
	grouping  lines.Grouping
	matcher   *team.Matcher
	logger    *logging.Logger
	tableOpts []table.Option
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithGrouping sets how members become rows. The default is one row per member.
func WithGrouping(g lines.Grouping) Option {
	return func(r *Reporter) {
		r.grouping = g
	}
}

// WithMatcher keeps only members accepted by m.
func WithMatcher(m *team.Matcher) Option {
	return func(r *Reporter) {
		r.matcher = m
	}
}

// WithHeaderStyle styles the table headers.
func WithHeaderStyle(style lipgloss.Style) Option {
	return func(r *Reporter) {
		r.tableOpts = append(r.tableOpts, table.WithHeaderStyle(style))
	}
}

// WithLogger sets the logger for render diagnostics.
func WithLogger(logger *logging.Logger) Option {
	return func(r *Reporter) {
		r.logger = logger
	}
}

// New creates a Reporter writing to out.
func New(out io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		out:    out,
		logger: logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithGrouping(r.grouping.String())
	return r
}

// section is one table waiting to be written.
type section struct {
	title string
	left  string
	rows  []table.Row
}

// Render writes the tables for sel at instant. A single team gets one table;
// all teams get one table each, in name order, under a " => Team <name>"
// title. Every table is built before anything is written.
func (r *Reporter) Render(cfg *config.Config, sel config.Selection, instant time.Time) error {
	if !sel.Known {
		return errors.NewTeamError(sel.Name, cfg.Teams().Names())
	}

	var sections []section
	if sel.All() {
		for _, t := range cfg.Teams().Teams() {
			s, err := r.build(t, "", instant, cfg.DateFormat())
			if err != nil {
				return err
			}
			s.title = "Team " + t.Name
			sections = append(sections, s)
		}
	} else {
		s, err := r.build(sel.Team(), sel.Name, instant, cfg.DateFormat())
		if err != nil {
			return err
		}
		sections = append(sections, s)
	}

	for _, s := range sections {
		if s.title != "" {
			if _, err := fmt.Fprintf(r.out, "\n => %s\n", s.title); err != nil {
				return err
			}
		}
		if err := table.Render(r.out, s.left, TimeHeader, s.rows, r.tableOpts...); err != nil {
			return err
		}
	}
	return nil
}

// build turns one team into a table section. headerName is the team named in
// the left header, empty when several teams are shown.
func (r *Reporter) build(t team.Team, headerName string, instant time.Time, pattern string) (section, error) {
	members := t.Filter(r.matcher).Members
	rows, err := lines.Build(members, r.grouping, instant, pattern)
	if err != nil {
		return section{}, errors.Wrapf(err, "team %s", t.Name)
	}
	r.logger.WithTeam(t.Name).Debug("built rows", "members", len(members), "rows", len(rows))
	return section{left: r.grouping.Header(headerName), rows: tableRows(rows)}, nil
}

func tableRows(rows []lines.Row) []table.Row {
	out := make([]table.Row, len(rows))
	for i, row := range rows {
		out[i] = table.Row{Left: row.Label, Right: row.Time}
	}
	return out
}

// Roster writes one table listing every team with its member and zone counts.
func (r *Reporter) Roster(roster *team.Roster) error {
	rows := make([]table.Row, 0, roster.Len())
	for _, t := range roster.Teams() {
		members := t.Filter(r.matcher)
		rows = append(rows, table.Row{
			Left:  t.Name,
			Right: fmt.Sprintf("%s, %s", plural(members.Len(), "member"), plural(len(members.Zones()), "zone")),
		})
	}
	return table.Render(r.out, "Team", "Members", rows, r.tableOpts...)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
