package dates

import "strings"

// Dialect decides how ambiguous numeric dates such as 03/04/2024 are read.
type Dialect int

const (
	// DialectUS reads month first: 03/04/2024 is March 4.
	DialectUS Dialect = iota
	// DialectUK reads day first: 03/04/2024 is April 3.
	DialectUK
)

// ParseDialect returns DialectUK for "uk" in any case and DialectUS for
// anything else, including the empty string.
func ParseDialect(s string) Dialect {
	if strings.EqualFold(strings.TrimSpace(s), "uk") {
		return DialectUK
	}
	return DialectUS
}

// String returns "us" or "uk".
func (d Dialect) String() string {
	if d == DialectUK {
		return "uk"
	}
	return "us"
}

// UnmarshalText lets config decoders read a Dialect from a string.
func (d *Dialect) UnmarshalText(text []byte) error {
	*d = ParseDialect(string(text))
	return nil
}

// MarshalText renders the dialect as "us" or "uk".
func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// monthFirst reports whether ambiguous dates put the month first.
func (d Dialect) monthFirst() bool {
	return d != DialectUK
}
