// Package xsd parses and formats the XML Schema datatypes used by the
// ActivityStreams vocabulary that Go has no direct equivalent for.
package xsd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDateTime = errors.New("invalid xsd:dateTime")
	ErrInvalidDuration = errors.New("invalid xsd:duration")
)

// localDateTime is an xsd:dateTime without a timezone offset.
const localDateTime = "2006-01-02T15:04:05.999999999"

// ParseDateTime parses an xsd:dateTime. Values without a timezone are
// interpreted as UTC.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	if t, err := time.ParseInLocation(localDateTime, s, time.UTC); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
}

// FormatDateTime formats t as an xsd:dateTime, keeping its offset.
func FormatDateTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// Duration is an xsd:duration.
//
// Components are kept as they were written, so P1D and PT24H are different
// durations that happen to be the same length most of the time.
type Duration struct {
	Negative bool
	Years    int64
	Months   int64
	Weeks    int64
	Days     int64
	Hours    int64
	Minutes  int64
	Seconds  float64
}

// IsZero returns if all components are zero.
func (d Duration) IsZero() bool {
	return d.Years == 0 && d.Months == 0 && d.Weeks == 0 && d.Days == 0 &&
		d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0
}

// Approximate converts d to a [time.Duration], counting a year as 365 days
// and a month as 30 days.
func (d Duration) Approximate() time.Duration {
	const day = 24 * time.Hour

	res := time.Duration(d.Years)*365*day +
		time.Duration(d.Months)*30*day +
		time.Duration(d.Weeks)*7*day +
		time.Duration(d.Days)*day +
		time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds*float64(time.Second))

	if d.Negative {
		return -res
	}
	return res
}

// String formats d in canonical form, leaving out zero components. The zero
// duration is PT0S.
func (d Duration) String() string {
	if d.IsZero() {
		return "PT0S"
	}

	var b strings.Builder
	if d.Negative {
		b.WriteByte('-')
	}
	b.WriteByte('P')

	writeInt := func(v int64, unit byte) {
		if v != 0 {
			b.WriteString(strconv.FormatInt(v, 10))
			b.WriteByte(unit)
		}
	}

	writeInt(d.Years, 'Y')
	writeInt(d.Months, 'M')
	writeInt(d.Weeks, 'W')
	writeInt(d.Days, 'D')

	if d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0 {
		b.WriteByte('T')
		writeInt(d.Hours, 'H')
		writeInt(d.Minutes, 'M')
		if d.Seconds != 0 {
			b.WriteString(strconv.FormatFloat(d.Seconds, 'f', -1, 64))
			b.WriteByte('S')
		}
	}

	return b.String()
}

// ParseDuration parses an ISO 8601 duration of the form
// [-]PnYnMnWnDTnHnMnS. Only the seconds may carry a fraction.
func ParseDuration(s string) (Duration, error) {
	var d Duration
	invalid := fmt.Errorf("%w: %q", ErrInvalidDuration, s)

	rest := s
	if strings.HasPrefix(rest, "-") {
		d.Negative = true
		rest = rest[1:]
	}

	if !strings.HasPrefix(rest, "P") {
		return Duration{}, invalid
	}
	rest = rest[1:]

	if rest == "" {
		return Duration{}, invalid
	}

	date, clock, hasClock := strings.Cut(rest, "T")
	if hasClock && clock == "" {
		return Duration{}, invalid
	}

	dateUnits := []struct {
		unit byte
		dst  *int64
	}{
		{'Y', &d.Years},
		{'M', &d.Months},
		{'W', &d.Weeks},
		{'D', &d.Days},
	}

	next := 0
	for date != "" {
		num, unit, tail, ok := component(date)
		if !ok || strings.Contains(num, ".") {
			return Duration{}, invalid
		}

		found := false
		for next < len(dateUnits) {
			u := dateUnits[next]
			next++
			if u.unit == unit {
				v, err := strconv.ParseInt(num, 10, 64)
				if err != nil {
					return Duration{}, invalid
				}
				*u.dst = v
				found = true
				break
			}
		}
		if !found {
			return Duration{}, invalid
		}
		date = tail
	}

	next = 0
	for clock != "" {
		num, unit, tail, ok := component(clock)
		if !ok {
			return Duration{}, invalid
		}

		switch {
		case unit == 'H' && next < 1:
			next = 1
		case unit == 'M' && next < 2:
			next = 2
		case unit == 'S' && next < 3:
			next = 3
		default:
			return Duration{}, invalid
		}

		if unit == 'S' {
			v, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return Duration{}, invalid
			}
			d.Seconds = v
		} else {
			if strings.Contains(num, ".") {
				return Duration{}, invalid
			}
			v, err := strconv.ParseInt(num, 10, 64)
			if err != nil {
				return Duration{}, invalid
			}
			if unit == 'H' {
				d.Hours = v
			} else {
				d.Minutes = v
			}
		}
		clock = tail
	}

	return d, nil
}

// component splits the leading number and unit designator off s.
func component(s string) (num string, unit byte, tail string, ok bool) {
	i := 0
	dot := false
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			i++
			continue
		}
		if c == '.' && !dot && i > 0 {
			dot = true
			i++
			continue
		}
		break
	}

	if i == 0 || i >= len(s) || s[i-1] == '.' {
		return "", 0, "", false
	}

	return s[:i], s[i], s[i+1:], true
}
