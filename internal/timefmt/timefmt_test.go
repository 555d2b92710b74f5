package timefmt

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/Iron-Ham/teamdate/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr bool
	}{
		{DefaultPattern, false},
		{"%c", false},
		{"%Y-%m-%d %H:%M:%S %Z", false},
		{"100%%", false},
		{"no conversions", false},
		{"", false},
		{"%-d", false},
		{"%-I:%M %p", false},
		{"%k", false},
		{"%P", false},
		{"%s.%L", false},
		{"%_H:%0e", false},
		{"%:z", false},
		{"%Ey %Od", false},
		{"%K", true},
		{"%H:%", true},
		{"%-", true},
		{"day %_", true},
		{"%:H", true},
		{"%Ea", true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			err := Validate(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidFormat) {
				t.Errorf("Validate(%q) error %v does not wrap ErrInvalidFormat", tt.pattern, err)
			}
		})
	}
}

func TestFormatter(t *testing.T) {
	instant := time.Date(2024, time.January, 1, 14, 0, 0, 0, time.UTC)
	montreal, err := time.LoadLocation("America/Montreal")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	f, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.Pattern() != DefaultPattern {
		t.Errorf("Pattern() = %q, want default", f.Pattern())
	}
	if got, want := f.Format(instant), "Mon Jan 01 14:00"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if got, want := f.In(instant, montreal), "Mon Jan 01 09:00"; got != want {
		t.Errorf("In(Montreal) = %q, want %q", got, want)
	}
}

func TestFormatter_ZeroValueUsesDefault(t *testing.T) {
	var f Formatter
	instant := time.Date(2024, time.March, 5, 7, 8, 0, 0, time.UTC)
	if got, want := f.Format(instant), "Tue Mar 05 07:08"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatter_Flags(t *testing.T) {
	instant := time.Date(2024, time.January, 1, 14, 5, 0, 0, time.UTC)
	morning := time.Date(2024, time.January, 1, 7, 5, 0, 0, time.UTC)

	tests := []struct {
		pattern string
		t       time.Time
		want    string
	}{
		{"%-d", instant, "1"},
		{"%-I:%M %p", instant, "2:05 PM"},
		{"%k", morning, " 7"},
		{"%-k", morning, "7"},
		{"%l%P", instant, " 2pm"},
		{"%_d", instant, " 1"},
		{"%_H", instant, "14"},
		{"%0e", instant, "01"},
		{"%a %b %-d %-I:%M %p", instant, "Mon Jan 1 2:05 PM"},
		{"%Y-%m-%d %H:%M:%S", instant, "2024-01-01 14:05:00"},
		{"%s", instant, "1704117900"},
		{"100%% at %R", instant, "100% at 14:05"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			f, err := New(tt.pattern)
			if err != nil {
				t.Fatalf("New(%q): %v", tt.pattern, err)
			}
			if got := f.Format(tt.t); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	for _, pattern := range []string{"%K", "%H:%", "%-"} {
		if _, err := New(pattern); !errors.Is(err, errors.ErrInvalidFormat) {
			t.Errorf("New(%q) error = %v, want ErrInvalidFormat", pattern, err)
		}
	}
}
