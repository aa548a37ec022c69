package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// appleEpoch is the reference instant for com.apple.routined timestamps:
// the ZTIMESTAMP column counts seconds elapsed since 2001-01-01 00:00:00.
var appleEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// DisplayTimeLayout is the fixed layout for the derived timestamp column.
// Lexicographic order on this layout equals chronological order, so sorting
// the display strings sorts the rows in time.
const DisplayTimeLayout = "2006-01-02 15:04:05"

// mphPerMps scales metres/second to miles/hour.
const mphPerMps = 2.237

const filterDateLayout = "01/02/2006" // MM/DD/YYYY as typed by the user

// AppleTimeToDatetime converts seconds since the Apple epoch to wall time.
func AppleTimeToDatetime(seconds float64) time.Time {
	return appleEpoch.Add(time.Duration(seconds * float64(time.Second)))
}

// FormatAppleTime parses a raw timestamp cell and renders it with
// DisplayTimeLayout. Unlike the speed conversion this is strict: a cell
// that is not numeric is an error, which aborts the whole run.
func FormatAppleTime(raw string) (string, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", fmt.Errorf("timestamp %q is not numeric", raw)
	}
	return AppleTimeToDatetime(seconds).Format(DisplayTimeLayout), nil
}

// ConvertZSpeed renders a raw metres/second cell as miles/hour, e.g.
// "22.37 MPH". A missing or non-numeric cell, or a value that is zero or
// negative, degrades to the literal "0 MPH" and is never an error.
func ConvertZSpeed(raw string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 {
		return "0 MPH"
	}
	return fmt.Sprintf("%.2f MPH", v*mphPerMps)
}

// ParseFilterDate normalizes a user-typed MM/DD/YYYY date to YYYY-MM-DD,
// the same shape as the derived date-only column. A blank string means
// "no filter" and passes through as "".
func ParseFilterDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	t, err := time.Parse(filterDateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected MM/DD/YYYY", s)
	}
	return t.Format("2006-01-02"), nil
}
