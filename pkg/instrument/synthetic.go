package instrument

import (
	"math"
	"time"

	"github.com/spacesci/gosat/pkg/epoch"
)

// Times returns the epochs of one simulated day of instrument data: the
// inclusive range from midnight of day to 23:59:59 at the given frequency
// code. If num is positive, only the first num epochs are returned.
func Times(day time.Time, num int, freq string) (epoch.Index, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	idx, err := epoch.DateRange(start, start.Add(86399*time.Second), freq)
	if err != nil {
		return nil, err
	}
	if num > 0 && num < len(idx) {
		idx = idx[:num]
	}
	return idx, nil
}

// FakeData generates a synthetic data series over the time steps num, given
// in seconds from the start time t0. In cyclic mode the values ramp linearly
// from lo towards hi over one period and wrap around, aligned to the period
// boundary before t0. In non-cyclic mode the series is a step counter: the
// number of whole periods elapsed at t0+num[i], and lo and hi are unused.
func FakeData(t0 float64, num []float64, period, lo, hi float64, cyclic bool) []float64 {
	data := make([]float64, len(num))
	if cyclic {
		root := math.Mod(t0, period)
		scale := (hi - lo) / period
		for i, n := range num {
			data[i] = math.Mod(root+n, period)*scale + lo
		}
		return data
	}
	for i, n := range num {
		data[i] = math.Trunc((t0 + n) / period)
	}
	return data
}
