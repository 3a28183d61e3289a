package epoch

import (
	"fmt"
	"strconv"
	"time"
)

// A Freq is a sampling frequency, expressed as the interval between two
// consecutive epochs.
type Freq time.Duration

// freqUnits maps the unit letter of a frequency code to its duration.
var freqUnits = map[byte]time.Duration{
	'D': 24 * time.Hour,
	'H': time.Hour,
	'M': time.Minute,
	'S': time.Second,
	'L': time.Millisecond,
	'U': time.Microsecond,
	'N': time.Nanosecond,
}

// ParseFreq parses a frequency code like "30S", "10L" or "01D" into a Freq.
// The unit letters are D, H, M, S for day down to second and L, U, N for
// milli, micro and nanoseconds. The count may be omitted, so "D" is one day.
// Counts must be positive integers; leading zeros are allowed.
func ParseFreq(code string) (Freq, error) {
	if code == "" {
		return 0, fmt.Errorf("epoch: empty frequency code")
	}
	unit, ok := freqUnits[code[len(code)-1]]
	if !ok {
		return 0, fmt.Errorf("epoch: invalid frequency code: %q", code)
	}
	count := 1
	if digits := code[:len(code)-1]; digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("epoch: invalid frequency code: %q", code)
		}
		count = n
	}
	return Freq(time.Duration(count) * unit), nil
}

// String returns the canonical frequency code: the number of whole seconds
// followed by "S", or, for spacings below second resolution, the number of
// nanoseconds followed by "N".
func (f Freq) String() string {
	d := time.Duration(f)
	if d%time.Second == 0 {
		return strconv.FormatInt(int64(d/time.Second), 10) + "S"
	}
	return strconv.FormatInt(d.Nanoseconds(), 10) + "N"
}

// Duration returns the interval between two consecutive epochs.
func (f Freq) Duration() time.Duration { return time.Duration(f) }

// CalcFreq infers the sampling frequency of an epoch sequence and returns it
// as a canonical frequency code, see Freq.String. The sequence may be an
// Index, a []time.Time or a []interface{} holding time.Time values only;
// everything else returns an ErrEpochType.
//
// The sampling interval is taken to be the smallest positive difference
// between two consecutive epochs. The sequence may therefore contain gaps
// without distorting the result, as a mean or median spacing would.
func CalcFreq(seq interface{}) (string, error) {
	idx, err := asIndex(seq)
	if err != nil {
		return "", err
	}
	sampling, err := idx.sampling()
	if err != nil {
		return "", err
	}
	return Freq(sampling).String(), nil
}

// sampling returns the smallest positive spacing between two consecutive
// epochs.
func (idx Index) sampling() (time.Duration, error) {
	if len(idx) == 0 {
		return 0, ErrEmptyIndex
	}
	if len(idx) == 1 {
		return 0, fmt.Errorf("epoch: need at least two epochs to infer a frequency")
	}

	var sampling time.Duration
	for i := 1; i < len(idx); i++ {
		if d := idx[i].Sub(idx[i-1]); d > 0 && (sampling == 0 || d < sampling) {
			sampling = d
		}
	}
	if sampling == 0 {
		return 0, fmt.Errorf("epoch: no positive spacing between %d epochs", len(idx))
	}
	return sampling, nil
}

// asIndex converts the sequence types accepted by CalcFreq.
func asIndex(seq interface{}) (Index, error) {
	switch s := seq.(type) {
	case Index:
		return s, nil
	case []time.Time:
		return Index(s), nil
	case []interface{}:
		idx := make(Index, len(s))
		for i, v := range s {
			t, ok := v.(time.Time)
			if !ok {
				return nil, fmt.Errorf("%w: got %T", ErrEpochType, v)
			}
			idx[i] = t
		}
		return idx, nil
	}
	return nil, fmt.Errorf("%w: got %T", ErrEpochType, seq)
}
