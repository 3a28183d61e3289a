package epoch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// A Decoder reads epoch records from a plain-text stream, one record per
// line. A record is an epoch, optionally followed by comma-separated data
// fields which the decoder skips. Blank lines and lines starting with '#'
// are skipped as well.
type Decoder struct {
	epoch   time.Time
	sc      *bufio.Scanner
	lineNum int
	err     error
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{sc: bufio.NewScanner(r)}
}

// NextEpoch reads the next epoch record. It returns false at the end of the
// stream or on the first malformed record, see Err.
func (dec *Decoder) NextEpoch() bool {
	for dec.readLine() {
		line := strings.TrimSpace(dec.line())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexByte(line, ','); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}

		t, err := ParseEpoch(line)
		if err != nil {
			dec.setErr(fmt.Errorf("line %d: %w", dec.lineNum, err))
			return false
		}
		dec.epoch = t
		return true
	}
	if err := dec.sc.Err(); err != nil {
		dec.setErr(err)
	}
	return false
}

// Epoch returns the most recent epoch read by NextEpoch.
func (dec *Decoder) Epoch() time.Time { return dec.epoch }

// Err returns the first non-EOF error that was encountered by the decoder.
func (dec *Decoder) Err() error { return dec.err }

// setErr adds an error.
func (dec *Decoder) setErr(err error) {
	dec.err = errors.Join(dec.err, err)
}

// readLine reads the next line into buffer. It returns false if an error
// occurs or EOF was reached.
func (dec *Decoder) readLine() bool {
	if ok := dec.sc.Scan(); !ok {
		return ok
	}
	dec.lineNum++
	return true
}

// line returns the current line.
func (dec *Decoder) line() string { return dec.sc.Text() }

// ParseEpoch parses a single epoch string, choosing the format by its shape:
// RFC 3339 like "2020-01-01T00:00:30Z", with or without fractional seconds,
// a plain date like "2020-01-01", or "year:doy:seconds of day" like
// "2020:001:00030.5".
func ParseEpoch(s string) (time.Time, error) {
	switch {
	case strings.Contains(s, "T"):
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse epoch %q: %v", s, err)
		}
		return t.UTC(), nil
	case strings.Contains(s, "-"):
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse epoch %q: %v", s, err)
		}
		return t, nil
	case strings.Contains(s, ":"):
		return parseYearDoySec(s)
	}
	return time.Time{}, fmt.Errorf("unknown epoch format: %q", s)
}

// parseYearDoySec parses the "year:doy:seconds of day" epoch form. Two-digit
// years are windowed like in ParseDoy.
func parseYearDoySec(s string) (time.Time, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 {
		return time.Time{}, fmt.Errorf("invalid year:doy:sec epoch: %q", s)
	}
	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse year %q: %v", fields[0], err)
	}
	doy, err := strconv.Atoi(fields[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse doy %q: %v", fields[1], err)
	}
	secs, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse seconds %q: %v", fields[2], err)
	}
	return ParseDoy(year, doy).Add(utsDuration(secs)), nil
}
