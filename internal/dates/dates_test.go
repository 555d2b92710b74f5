package dates

import (
	"testing"
	"time"

	"github.com/Iron-Ham/teamdate/internal/errors"
)

var fixedNow = time.Date(2024, time.January, 1, 10, 30, 0, 0, time.UTC)

func testParser(d Dialect) *Parser {
	return &Parser{
		Dialect:  d,
		Location: time.UTC,
		Clock:    func() time.Time { return fixedNow },
	}
}

func TestParse_Now(t *testing.T) {
	p := testParser(DialectUS)
	for _, input := range []string{"", "now", "  NOW  "} {
		got, err := p.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		if !got.Equal(fixedNow) {
			t.Errorf("Parse(%q) = %v, want %v", input, got, fixedNow)
		}
	}
}

func TestParse_Absolute(t *testing.T) {
	p := testParser(DialectUS)
	got, err := p.Parse("2024-07-04 15:04:05")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := time.Date(2024, time.July, 4, 15, 4, 5, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestParse_Dialect(t *testing.T) {
	tests := []struct {
		dialect Dialect
		month   time.Month
		day     int
	}{
		{DialectUS, time.March, 4},
		{DialectUK, time.April, 3},
	}
	for _, tt := range tests {
		t.Run(tt.dialect.String(), func(t *testing.T) {
			got, err := testParser(tt.dialect).Parse("03/04/2024")
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got.Month() != tt.month || got.Day() != tt.day {
				t.Errorf("Parse(03/04/2024) = %v, want %v %d", got, tt.month, tt.day)
			}
		})
	}
}

func TestParse_Relative(t *testing.T) {
	got, err := testParser(DialectUS).Parse("tomorrow")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if y, m, d := got.Date(); y != 2024 || m != time.January || d != 2 {
		t.Errorf("Parse(tomorrow) = %v, want 2024-01-02", got)
	}
}

func TestParse_Garbage(t *testing.T) {
	_, err := testParser(DialectUS).Parse("flibbertigibbet")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrDateParse) {
		t.Errorf("error %v does not wrap ErrDateParse", err)
	}
	var dateErr *errors.DateError
	if !errors.As(err, &dateErr) || dateErr.Input != "flibbertigibbet" {
		t.Errorf("error %v is not a DateError with the input", err)
	}
	if errors.ExitCode(err) != errors.ExitDateParse {
		t.Errorf("ExitCode = %d, want %d", errors.ExitCode(err), errors.ExitDateParse)
	}
}

func TestParse_PartialMatch(t *testing.T) {
	p := testParser(DialectUS)
	for _, input := range []string{"flibbertigibbet tomorrow", "tomorrow at lunchtime-ish", "3pm blah"} {
		t.Run(input, func(t *testing.T) {
			_, err := p.Parse(input)
			if !errors.Is(err, errors.ErrDateParse) {
				t.Fatalf("Parse(%q) error = %v, want ErrDateParse", input, err)
			}
			var dateErr *errors.DateError
			if !errors.As(err, &dateErr) || dateErr.Input != input {
				t.Errorf("error %v is not a DateError with the input", err)
			}
		})
	}
}

func TestParse_WholeRelativePhrase(t *testing.T) {
	got, err := testParser(DialectUS).Parse("  tomorrow 3pm ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, m, d := got.Date(); m != time.January || d != 2 || got.Hour() != 15 {
		t.Errorf("Parse(tomorrow 3pm) = %v, want Jan 2 15:00", got)
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]string{"next", "friday", "3pm"}); got != "next friday 3pm" {
		t.Errorf("Join = %q", got)
	}
	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q", got)
	}
}

func TestParseDialect(t *testing.T) {
	tests := map[string]Dialect{
		"uk":  DialectUK,
		"UK":  DialectUK,
		" Uk": DialectUK,
		"us":  DialectUS,
		"":    DialectUS,
		"fr":  DialectUS,
	}
	for in, want := range tests {
		if got := ParseDialect(in); got != want {
			t.Errorf("ParseDialect(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDialect_Text(t *testing.T) {
	var d Dialect
	if err := d.UnmarshalText([]byte("UK")); err != nil || d != DialectUK {
		t.Fatalf("UnmarshalText(UK) = %v, %v", d, err)
	}
	b, err := d.MarshalText()
	if err != nil || string(b) != "uk" {
		t.Errorf("MarshalText = %q, %v", b, err)
	}
}
