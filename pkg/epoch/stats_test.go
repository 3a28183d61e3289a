package epoch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	assert := assert.New(t)

	// 30S sampling with one gap of an hour
	idx, err := NewIndex([]int{2020, 2020, 2020, 2020, 2020}, nil, nil, []float64{0, 30, 60, 3660, 3690})
	assert.NoError(err)

	stats, err := idx.ComputeStats()
	assert.NoError(err)
	assert.Equal(5, stats.NumEpochs)
	assert.Equal(30*time.Second, stats.Sampling)
	assert.Equal("30S", stats.Freq)
	assert.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), stats.TimeOfFirst)
	assert.Equal(time.Date(2020, 1, 1, 1, 1, 30, 0, time.UTC), stats.TimeOfLast)
	assert.Equal(1, stats.NumGaps)

	_, err = Index{}.ComputeStats()
	assert.ErrorIs(err, ErrEmptyIndex)
}
