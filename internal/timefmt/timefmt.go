// Package timefmt renders instants with strftime-style patterns.
package timefmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/Iron-Ham/teamdate/internal/errors"
)

// DefaultPattern is used when no date format is configured.
const DefaultPattern = "%a %b %d %H:%M"

const (
	// conversions lists every conversion go-strftime renders.
	conversions = "aAbBcCdDeFfgGhHIjklLmMnNpPQrRsStTuUvVwWxXyYzZ+%"
	// flags are the GNU padding flags plus ':' for %:z.
	flags = "-_0:"
)

// directive is a single '%' conversion with its optional flag and modifier.
type directive struct {
	flag byte
	mod  byte
	conv byte
}

func (d directive) check() error {
	if strings.IndexByte(conversions, d.conv) < 0 {
		return fmt.Errorf("unsupported conversion %%%c", d.conv)
	}
	if d.flag == ':' && d.conv != 'z' {
		return fmt.Errorf("flag ':' only applies to %%z")
	}
	switch d.mod {
	case 'E':
		if strings.IndexByte("cCxXyY", d.conv) < 0 {
			return fmt.Errorf("modifier E does not apply to %%%c", d.conv)
		}
	case 'O':
		if strings.IndexByte("deHImMSuUVwWy", d.conv) < 0 {
			return fmt.Errorf("modifier O does not apply to %%%c", d.conv)
		}
	}
	return nil
}

// render formats t for d. go-strftime understands '-' and ':' natively;
// '_' and '0' are applied to its output.
func (d directive) render(t time.Time) string {
	spec := []byte{'%'}
	if d.flag == '-' || d.flag == ':' {
		spec = append(spec, d.flag)
	}
	if d.mod != 0 {
		spec = append(spec, d.mod)
	}
	spec = append(spec, d.conv)
	out := strftime.Format(string(spec), t)

	switch d.flag {
	case '-':
		return repad(out, ' ', 0)
	case '_':
		return repad(out, '0', ' ')
	case '0':
		return repad(out, ' ', '0')
	}
	return out
}

// repad swaps the leading from bytes of s for to, or drops them when to is 0.
// The last byte is always kept.
func repad(s string, from, to byte) string {
	n := 0
	for n < len(s)-1 && s[n] == from {
		n++
	}
	if n == 0 {
		return s
	}
	if to == 0 {
		return s[n:]
	}
	return strings.Repeat(string(to), n) + s[n:]
}

// scan walks pattern, handing literal runs to lit and conversions to dir.
func scan(pattern string, lit func(string), dir func(directive)) error {
	start := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		if i > start {
			lit(pattern[start:i])
		}
		j := i + 1
		var d directive
		if j < len(pattern) && strings.IndexByte(flags, pattern[j]) >= 0 {
			d.flag = pattern[j]
			j++
		}
		if j < len(pattern) && (pattern[j] == 'E' || pattern[j] == 'O') {
			d.mod = pattern[j]
			j++
		}
		if j == len(pattern) {
			return fmt.Errorf("%w: %q ends with an incomplete %q", errors.ErrInvalidFormat, pattern, pattern[i:])
		}
		d.conv = pattern[j]
		if err := d.check(); err != nil {
			return fmt.Errorf("%w: %q: %v", errors.ErrInvalidFormat, pattern, err)
		}
		dir(d)
		i = j
		start = j + 1
	}
	if start < len(pattern) {
		lit(pattern[start:])
	}
	return nil
}

// Validate reports whether every conversion in pattern can be rendered.
// The returned error wraps errors.ErrInvalidFormat.
func Validate(pattern string) error {
	return scan(pattern, func(string) {}, func(directive) {})
}

// Formatter renders instants with a validated pattern.
type Formatter struct {
	pattern string
}

// New validates pattern and returns a Formatter for it.
// An empty pattern selects DefaultPattern.
func New(pattern string) (Formatter, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if err := Validate(pattern); err != nil {
		return Formatter{}, err
	}
	return Formatter{pattern: pattern}, nil
}

// Pattern returns the strftime pattern.
func (f Formatter) Pattern() string {
	if f.pattern == "" {
		return DefaultPattern
	}
	return f.pattern
}

// Format renders t in its own location.
func (f Formatter) Format(t time.Time) string {
	var sb strings.Builder
	// The pattern was validated by New.
	_ = scan(f.Pattern(), func(s string) {
		sb.WriteString(s)
	}, func(d directive) {
		sb.WriteString(d.render(t))
	})
	return sb.String()
}

// In renders the instant converted to loc.
func (f Formatter) In(t time.Time, loc *time.Location) string {
	return f.Format(t.In(loc))
}
