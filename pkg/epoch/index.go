package epoch

import (
	"fmt"
	"math"
	"time"
)

// An Index is an ordered sequence of epochs. The order is the insertion
// order and defines the temporal order; an Index is never resorted.
type Index []time.Time

// NewIndex builds an epoch index elementwise from parallel slices of years,
// months, days and seconds of day. years is mandatory. The other slices may
// be nil, with months and days defaulting to 1 and uts to 0, or of length
// one, which repeats that value for every year; otherwise their length must
// match len(years).
//
// uts holds the seconds elapsed since midnight and may be fractional, down
// to nanoseconds. Epochs are built in input order and are not checked for
// monotonicity, so duplicate or unsorted inputs pass through unchanged.
func NewIndex(years, months, days []int, uts []float64) (Index, error) {
	if len(years) == 0 {
		return nil, ErrNoYears
	}
	n := len(years)
	if len(months) > 1 && len(months) != n {
		return nil, fmt.Errorf("epoch: got %d months for %d years", len(months), n)
	}
	if len(days) > 1 && len(days) != n {
		return nil, fmt.Errorf("epoch: got %d days for %d years", len(days), n)
	}
	if len(uts) > 1 && len(uts) != n {
		return nil, fmt.Errorf("epoch: got %d uts values for %d years", len(uts), n)
	}

	idx := make(Index, 0, n)
	for i, y := range years {
		date, err := newDate(y, pickInt(months, i, 1), pickInt(days, i, 1))
		if err != nil {
			return nil, err
		}
		idx = append(idx, date.Add(utsDuration(pickFloat(uts, i, 0))))
	}
	return idx, nil
}

// SecondsOfDay returns for every epoch the fractional seconds elapsed since
// that epoch's midnight, the inverse view of the uts input of NewIndex.
func (idx Index) SecondsOfDay() []float64 {
	secs := make([]float64, len(idx))
	for i, t := range idx {
		midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		secs[i] = t.Sub(midnight).Seconds()
	}
	return secs
}

// pickInt returns the broadcast value of vals for element i.
func pickInt(vals []int, i, def int) int {
	switch len(vals) {
	case 0:
		return def
	case 1:
		return vals[0]
	}
	return vals[i]
}

func pickFloat(vals []float64, i int, def float64) float64 {
	switch len(vals) {
	case 0:
		return def
	case 1:
		return vals[0]
	}
	return vals[i]
}

// utsDuration converts fractional seconds of day into a Duration. The
// product is rounded, not truncated, as e.g. 0.03*1e9 is slightly below
// 30000000 in float64.
func utsDuration(uts float64) time.Duration {
	return time.Duration(math.Round(uts * float64(time.Second)))
}
