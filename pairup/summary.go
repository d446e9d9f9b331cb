package pairup

import (
	"github.com/montanaflynn/stats"
)

// Summary describes the spread of pair distances.
type Summary struct {
	Pairs  int
	Mean   float64
	Median float64
	Max    float64
}

// Summarize computes distance statistics over diffs.
func Summarize(diffs []int) (Summary, error) {
	if len(diffs) == 0 {
		return Summary{}, ErrEmptyList
	}
	data := stats.LoadRawData(diffs)

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, err
	}
	maxDist, err := stats.Max(data)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Pairs: len(diffs), Mean: mean, Median: median, Max: maxDist}, nil
}

// Details summarizes the distances of input's reconciled pairs.
func (Solver) Details(input string) (map[string]any, error) {
	left, right, err := ParsePairs(input)
	if err != nil {
		return nil, err
	}

	lr := Reconciler{}
	lr.SetInputs(left.IDs, right.IDs)
	if err := lr.ValidateInputs(); err != nil {
		return nil, err
	}
	lr.SortLists()
	lr.ComputeDifferences()

	summary, err := Summarize(lr.Diffs)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"pairs":           summary.Pairs,
		"mean_distance":   summary.Mean,
		"median_distance": summary.Median,
		"max_distance":    summary.Max,
	}, nil
}
