// Package epoch provides time-axis utilities for satellite instrument data:
// calendar and day-of-year conversions, flexible date parsing, epoch-index
// synthesis, sampling-frequency inference and multi-interval date ranges.
//
// All epochs are UTC.
package epoch

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	// ErrInvalidDate means that year, month and day do not form a real calendar date.
	ErrInvalidDate = errors.New("epoch: invalid calendar date")

	// ErrNoYears is returned by NewIndex if no year values are given.
	ErrNoYears = errors.New("epoch: at least one year is required")

	// ErrEmptyIndex is returned by CalcFreq for an empty epoch sequence.
	ErrEmptyIndex = errors.New("epoch: empty epoch sequence")

	// ErrEpochType is returned by CalcFreq if the sequence elements are no timestamps.
	ErrEpochType = errors.New("epoch: sequence elements must be timestamps")
)

// DefaultCentury is the anchor ParseDate uses to resolve two-digit years.
const DefaultCentury = 2000

// YearDoy returns the year and the 1-based day of year of t, so Jan 1st is
// day 1 and Dec 31st is day 365, or 366 in leap years.
func YearDoy(t time.Time) (year, doy int) {
	return t.Year(), t.YearDay()
}

// ParseDoy returns the UTC-Time corresponding to the given year and day of year.
// It is the inverse of YearDoy. Two-digit years are windowed into 1900 or 2000.
func ParseDoy(year, doy int) time.Time {
	y := year
	if year > 80 && year <= 99 {
		y += 1900
	} else if year >= 0 && year <= 80 {
		y += 2000
	}
	t := time.Date(y, 1, 0, 0, 0, 0, 0, time.UTC)
	return t.Add(time.Duration(doy) * time.Hour * 24)
}

// ParseDate parses a date given as numeric strings for year, month and day.
// Two-digit years are resolved against the DefaultCentury, so "14" becomes
// 2014; use ParseDateInCentury for other anchors.
func ParseDate(year, month, day string) (time.Time, error) {
	return ParseDateInCentury(DefaultCentury, year, month, day)
}

// ParseDateInCentury is like ParseDate but resolves two-digit years against the
// given century, e.g. with century 1900 the year "94" becomes 1994. Years with
// any other number of digits are used as they are.
//
// Month and day must name a real calendar date, otherwise an ErrInvalidDate is
// returned. Out of range values are never wrapped into the next month or year.
func ParseDateInCentury(century int, year, month, day string) (time.Time, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse year %q: %v", year, err)
	}
	if len(year) == 2 {
		y += century
	}

	m, err := strconv.Atoi(month)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse month %q: %v", month, err)
	}

	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %v", day, err)
	}

	return newDate(y, m, d)
}

// newDate builds the UTC date and rejects month/day values that time.Date
// would silently normalize, e.g. month 15 or day 31 in a 30-day month.
func newDate(year, month, day int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return t, nil
}
