package instrument

import (
	"fmt"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimes(t *testing.T) {
	assert := assert.New(t)

	idx, err := Times(IVM.TestDate, 0, IVM.Freq)
	assert.NoError(err)
	assert.Len(idx, 86400, "one day at 1S")
	assert.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), idx[0])
	assert.Equal(time.Date(2020, 1, 1, 23, 59, 59, 0, time.UTC), idx[len(idx)-1])

	idx, err = Times(MIGHTI.TestDate, 0, MIGHTI.Freq)
	assert.NoError(err)
	assert.Len(idx, 2880, "one day at 30S")

	// a numeric cap keeps only the first epochs
	idx, err = Times(IVM.TestDate, 10, IVM.Freq)
	assert.NoError(err)
	assert.Len(idx, 10)
	assert.Equal(time.Date(2020, 1, 1, 0, 0, 9, 0, time.UTC), idx[9])

	_, err = Times(IVM.TestDate, 0, "1Y")
	assert.Error(err)
}

func TestFakeDataCyclic(t *testing.T) {
	assert := assert.New(t)

	got := FakeData(0, []float64{0, 1455, 2910, 5820}, 5820, 0, 24, true)
	want := []float64{0, 6, 12, 0}
	assert.Len(got, 4)
	for i := range want {
		assert.InDelta(want[i], got[i], 1e-9)
	}

	// a start time inside the period shifts the phase
	got = FakeData(2910, []float64{0, 2910, 5820}, 5820, 0, 24, true)
	want = []float64{12, 0, 12}
	for i := range want {
		assert.InDelta(want[i], got[i], 1e-9)
	}
}

func TestFakeDataCounter(t *testing.T) {
	got := FakeData(0, []float64{0, 5819, 5820, 17460}, 5820, 0, 0, false)
	assert.Equal(t, []float64{0, 0, 1, 3}, got)
}

func ExampleTimes() {
	idx, err := Times(time.Date(2019, 12, 25, 0, 0, 0, 0, time.UTC), 3, "30S")
	if err != nil {
		log.Fatalln(err)
	}
	uts := idx.SecondsOfDay()
	data := FakeData(uts[0], uts, 5820, 0, 24, true)
	for i, epo := range idx {
		fmt.Printf("%s %.3f\n", epo.Format(time.RFC3339), data[i])
	}
	// Output:
	// 2019-12-25T00:00:00Z 0.000
	// 2019-12-25T00:00:30Z 0.124
	// 2019-12-25T00:01:00Z 0.247
}
