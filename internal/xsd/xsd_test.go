package xsd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want Duration
		out  string
	}{
		{in: "PT2H", want: Duration{Hours: 2}, out: "PT2H"},
		{in: "PT2H30M", want: Duration{Hours: 2, Minutes: 30}, out: "PT2H30M"},
		{in: "PT1M", want: Duration{Minutes: 1}, out: "PT1M"},
		{in: "P1Y2M3W4DT5H6M7.5S", want: Duration{Years: 1, Months: 2, Weeks: 3, Days: 4, Hours: 5, Minutes: 6, Seconds: 7.5}, out: "P1Y2M3W4DT5H6M7.5S"},
		{in: "-P1D", want: Duration{Negative: true, Days: 1}, out: "-P1D"},
		{in: "PT0S", want: Duration{}, out: "PT0S"},
		{in: "P0D", want: Duration{}, out: "PT0S"},
		{in: "PT36H", want: Duration{Hours: 36}, out: "PT36H"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.out, got.String())
		})
	}
}

func TestParseDurationInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"P",
		"PT",
		"P1DT",
		"2H",
		"P1H",
		"PT1D",
		"P1D1Y",
		"PT1S1M",
		"P1.5D",
		"PT1.S",
		"PT.5S",
		"P-1D",
		"PTxH",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDuration(in)
			require.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}

func TestDurationApproximate(t *testing.T) {
	d, err := ParseDuration("P1DT2H30M")
	require.NoError(t, err)
	assert.Equal(t, 26*time.Hour+30*time.Minute, d.Approximate())

	d.Negative = true
	assert.Equal(t, -(26*time.Hour + 30*time.Minute), d.Approximate())
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{in: "2014-12-12T12:12:12Z", out: "2014-12-12T12:12:12Z"},
		{in: "2014-12-31T23:00:00-08:00", out: "2014-12-31T23:00:00-08:00"},
		{in: "2015-01-01T06:00:00.500+01:00", out: "2015-01-01T06:00:00.5+01:00"},
		{in: "2015-01-01T06:00:00", out: "2015-01-01T06:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDateTime(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.out, FormatDateTime(got))
		})
	}

	_, err := ParseDateTime("yesterday")
	require.ErrorIs(t, err, ErrInvalidDateTime)
}
