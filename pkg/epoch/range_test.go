package epoch

import (
	"fmt"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDateRange(t *testing.T) {
	assert := assert.New(t)

	// spans the leap day
	idx, err := DateRange(date(2012, 2, 28), date(2012, 3, 1), "D")
	assert.NoError(err)
	assert.Equal(Index{date(2012, 2, 28), date(2012, 2, 29), date(2012, 3, 1)}, idx)

	// stop before start: empty
	idx, err = DateRange(date(2012, 3, 1), date(2012, 2, 28), "D")
	assert.NoError(err)
	assert.Empty(idx)

	_, err = DateRange(date(2012, 2, 28), date(2012, 3, 1), "1Y")
	assert.Error(err, "unknown frequency code")
}

func TestDateRangeSubDaily(t *testing.T) {
	assert := assert.New(t)

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	idx, err := DateRange(start, start.Add(2*time.Minute), "30S")
	assert.NoError(err)
	assert.Len(idx, 5)
	assert.Equal(start, idx[0])
	assert.Equal(start.Add(2*time.Minute), idx[4])
}

func TestDateRangeList(t *testing.T) {
	assert := assert.New(t)

	starts := []time.Time{date(2012, 2, 28), date(2013, 2, 28)}
	stops := []time.Time{date(2012, 3, 1), date(2013, 3, 1)}
	idx, err := DateRangeList(starts, stops, "D")
	assert.NoError(err)
	assert.Len(idx, 5, "3 dates across the 2012 leap day plus 2 in 2013")
	assert.Equal(date(2012, 2, 28), idx[0])
	assert.Equal(date(2013, 3, 1), idx[4])

	// a single pair behaves exactly like DateRange
	single, err := DateRangeList(starts[:1], stops[:1], "D")
	assert.NoError(err)
	ref, err := DateRange(starts[0], stops[0], "D")
	assert.NoError(err)
	assert.Equal(ref, single)
}

func TestDateRangeListKeepsBoundaries(t *testing.T) {
	// adjacent intervals: the shared boundary epoch is kept once per interval
	starts := []time.Time{date(2020, 1, 1), date(2020, 1, 3)}
	stops := []time.Time{date(2020, 1, 3), date(2020, 1, 4)}
	idx, err := DateRangeList(starts, stops, "D")
	assert.NoError(t, err)
	assert.Equal(t, Index{
		date(2020, 1, 1), date(2020, 1, 2), date(2020, 1, 3),
		date(2020, 1, 3), date(2020, 1, 4),
	}, idx)
}

func TestDateRangeListErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := DateRangeList(nil, nil, "D")
	assert.Error(err)

	_, err = DateRangeList([]time.Time{date(2020, 1, 1)}, []time.Time{date(2020, 1, 2), date(2020, 1, 3)}, "D")
	assert.Error(err)
}

func ExampleDateRange() {
	idx, err := DateRange(
		time.Date(2012, 2, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2012, 3, 1, 0, 0, 0, 0, time.UTC), "D")
	if err != nil {
		log.Fatalln(err)
	}
	for _, epo := range idx {
		fmt.Println(epo.Format("2006-01-02"))
	}
	// Output:
	// 2012-02-28
	// 2012-02-29
	// 2012-03-01
}
