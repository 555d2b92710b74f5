// Package dates turns the free text given on the command line into an instant.
//
// Absolute dates ("2024-01-01 14:00", "03/04/2024 9:30am") are read with
// araddon/dateparse, honouring the configured [Dialect] for day/month order.
// Anything else ("tomorrow 3pm", "next friday", "in 2 hours") goes through the
// English rules of olebedev/when, relative to the current time.
package dates

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/Iron-Ham/teamdate/internal/errors"
)

// Now is the keyword for the current instant.
const Now = "now"

// Parser resolves date text. The zero value parses in time.Local against
// time.Now with the US dialect.
type Parser struct {
	// Dialect orders ambiguous day/month numbers.
	Dialect Dialect
	// Location is the zone the text is interpreted in. Nil means time.Local.
	Location *time.Location
	// Clock returns the current time. Nil means time.Now.
	Clock func() time.Time
}

// NewParser returns a Parser for dialect in time.Local.
func NewParser(dialect Dialect) *Parser {
	return &Parser{Dialect: dialect}
}

func (p *Parser) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

func (p *Parser) now() time.Time {
	if p.Clock == nil {
		return time.Now().In(p.location())
	}
	return p.Clock().In(p.location())
}

// Parse resolves text to an instant. Empty text and "now" return the current
// time. Failures are *errors.DateError wrapping errors.ErrDateParse.
func (p *Parser) Parse(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, Now) {
		return p.now(), nil
	}

	if t, err := dateparse.ParseIn(text, p.location(), dateparse.PreferMonthFirst(p.Dialect.monthFirst())); err == nil {
		return t, nil
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	r, err := w.Parse(text, p.now())
	if err != nil {
		return time.Time{}, errors.NewDateError("couldn't parse date", errors.Join(errors.ErrDateParse, err)).WithInput(text)
	}
	if r == nil || !covers(text, r) {
		return time.Time{}, errors.NewDateError("couldn't parse date", errors.ErrDateParse).WithInput(text)
	}
	return r.Time, nil
}

// covers reports whether the matched cluster spans all of text, so that words
// the rules did not recognise are never silently dropped.
func covers(text string, r *when.Result) bool {
	end := r.Index + len(r.Text)
	if r.Index < 0 || end > len(text) {
		return false
	}
	return strings.TrimSpace(text[:r.Index]) == "" && strings.TrimSpace(text[end:]) == ""
}

// Join glues command line words back into one date string.
func Join(words []string) string {
	return strings.TrimSpace(strings.Join(words, " "))
}
