package epoch

import (
	"fmt"
	"time"
)

// DateRange returns the inclusive epoch sequence from start to stop with the
// given frequency code, e.g. "D" for one epoch per day. A stop before start
// yields an empty Index.
func DateRange(start, stop time.Time, freq string) (Index, error) {
	return DateRangeList([]time.Time{start}, []time.Time{stop}, freq)
}

// DateRangeList expands several (start, stop) intervals and concatenates the
// per-interval sequences in input order. Every interval contributes its full
// inclusive range, so a boundary epoch shared by adjacent intervals appears
// once per interval; the result is not deduplicated. For a single interval
// the result equals that of DateRange.
func DateRangeList(starts, stops []time.Time, freq string) (Index, error) {
	if len(starts) == 0 {
		return nil, fmt.Errorf("epoch: no intervals given")
	}
	if len(starts) != len(stops) {
		return nil, fmt.Errorf("epoch: got %d starts but %d stops", len(starts), len(stops))
	}
	f, err := ParseFreq(freq)
	if err != nil {
		return nil, err
	}

	step := f.Duration()
	var idx Index
	for i, start := range starts {
		for t := start; !t.After(stops[i]); t = t.Add(step) {
			idx = append(idx, t)
		}
	}
	return idx, nil
}
