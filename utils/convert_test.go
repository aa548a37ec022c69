package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppleTimeToDatetime(t *testing.T) {
	assert.Equal(t, "2001-01-01 00:00:00", AppleTimeToDatetime(0).Format(DisplayTimeLayout))
	assert.Equal(t, "2001-01-02 00:00:00", AppleTimeToDatetime(86400).Format(DisplayTimeLayout))
	assert.Equal(t, "2001-01-01 01:01:01", AppleTimeToDatetime(3661).Format(DisplayTimeLayout))

	// Fractional seconds truncate at second precision.
	assert.Equal(t, "2001-01-01 00:00:01", AppleTimeToDatetime(1.5).Format(DisplayTimeLayout))

	// Negative offsets land before the epoch.
	assert.Equal(t, "2000-12-31 23:59:59", AppleTimeToDatetime(-1).Format(DisplayTimeLayout))
}

func TestFormatAppleTime(t *testing.T) {
	s, err := FormatAppleTime("86400")
	require.NoError(t, err)
	assert.Equal(t, "2001-01-02 00:00:00", s)

	s, err = FormatAppleTime(" 0 ")
	require.NoError(t, err)
	assert.Equal(t, "2001-01-01 00:00:00", s)

	// Non-numeric timestamps are errors, unlike speed conversion.
	_, err = FormatAppleTime("not-a-number")
	require.Error(t, err)
	_, err = FormatAppleTime("")
	require.Error(t, err)
}

func TestConvertZSpeed(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"10", "22.37 MPH"},
		{"5", "11.19 MPH"},
		{"1", "2.24 MPH"},
		{"2.5", "5.59 MPH"},
		{"0", "0 MPH"},
		{"-1", "0 MPH"},
		{"", "0 MPH"},
		{"fast", "0 MPH"},
		{"  3  ", "6.71 MPH"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ConvertZSpeed(c.raw), "raw=%q", c.raw)
	}
}

func TestParseFilterDate(t *testing.T) {
	d, err := ParseFilterDate("")
	require.NoError(t, err)
	assert.Equal(t, "", d)

	d, err = ParseFilterDate("01/02/2001")
	require.NoError(t, err)
	assert.Equal(t, "2001-01-02", d)

	d, err = ParseFilterDate("12/31/2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", d)

	for _, bad := range []string{"2001-01-02", "13/01/2001", "01/32/2001", "yesterday"} {
		_, err := ParseFilterDate(bad)
		assert.Error(t, err, "input=%q", bad)
	}
}
