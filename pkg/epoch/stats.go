package epoch

import "time"

// Stats holds some statistics about an epoch sequence, derived from the data.
type Stats struct {
	NumEpochs   int           `json:"numEpochs"`   // The number of epochs in the sequence.
	Sampling    time.Duration `json:"sampling"`    // The sampling interval derived from the data.
	Freq        string        `json:"freq"`        // The sampling interval as a frequency code.
	TimeOfFirst time.Time     `json:"timeOfFirst"` // The first epoch.
	TimeOfLast  time.Time     `json:"timeOfLast"`  // The last epoch.
	NumGaps     int           `json:"numGaps"`     // The number of consecutive spacings above the sampling interval.
}

// ComputeStats derives statistics from the epoch sequence. Like CalcFreq it
// takes the smallest positive spacing as the sampling interval, so a sequence
// with data gaps reports its nominal sampling together with the number of
// gaps.
func (idx Index) ComputeStats() (Stats, error) {
	sampling, err := idx.sampling()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		NumEpochs:   len(idx),
		Sampling:    sampling,
		Freq:        Freq(sampling).String(),
		TimeOfFirst: idx[0],
		TimeOfLast:  idx[len(idx)-1],
	}
	for i := 1; i < len(idx); i++ {
		if idx[i].Sub(idx[i-1]) > sampling {
			stats.NumGaps++
		}
	}
	return stats, nil
}
