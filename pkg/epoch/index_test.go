package epoch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewIndex(t *testing.T) {
	assert := assert.New(t)

	// years only: everything else defaults to Jan 1st midnight
	idx, err := NewIndex([]int{2012, 2012, 2012, 2012}, nil, nil, nil)
	assert.NoError(err)
	assert.Len(idx, 4)
	for _, epo := range idx {
		assert.Equal(time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC), epo)
	}

	// full elementwise construction with fractional seconds of day
	idx, err = NewIndex([]int{2009, 2009}, []int{2, 2}, []int{1, 2}, []float64{0, 3661.5})
	assert.NoError(err)
	assert.Equal(Index{
		time.Date(2009, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2009, 2, 2, 1, 1, 1, 500000000, time.UTC),
	}, idx)
}

func TestNewIndexBroadcast(t *testing.T) {
	assert := assert.New(t)

	idx, err := NewIndex([]int{2008, 2009, 2010}, []int{6}, []int{15}, []float64{30})
	assert.NoError(err)
	assert.Equal(Index{
		time.Date(2008, 6, 15, 0, 0, 30, 0, time.UTC),
		time.Date(2009, 6, 15, 0, 0, 30, 0, time.UTC),
		time.Date(2010, 6, 15, 0, 0, 30, 0, time.UTC),
	}, idx)

	_, err = NewIndex([]int{2008, 2009, 2010}, []int{1, 2}, nil, nil)
	assert.Error(err, "two months cannot be broadcast to three years")
}

func TestNewIndexErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := NewIndex(nil, nil, nil, nil)
	assert.ErrorIs(err, ErrNoYears)

	_, err = NewIndex([]int{}, []int{1}, []int{1}, []float64{0})
	assert.ErrorIs(err, ErrNoYears)

	_, err = NewIndex([]int{2012}, []int{15}, nil, nil)
	assert.ErrorIs(err, ErrInvalidDate)

	_, err = NewIndex([]int{2013}, []int{2}, []int{29}, nil)
	assert.ErrorIs(err, ErrInvalidDate, "Feb 29 in a non-leap year")
}

func TestNewIndexKeepsOrder(t *testing.T) {
	// non-monotonic and duplicate epochs pass through unchanged
	idx, err := NewIndex([]int{2012, 2010, 2010}, nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, Index{
		time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
	}, idx)
}

func TestSecondsOfDay(t *testing.T) {
	assert := assert.New(t)

	uts := []float64{0, 0.01, 3600, 86399.5}
	idx, err := NewIndex([]int{2001, 2001, 2001, 2001}, nil, nil, uts)
	assert.NoError(err)
	got := idx.SecondsOfDay()
	assert.Len(got, 4)
	for i, want := range uts {
		assert.InDelta(want, got[i], 1e-9)
	}
}
