// Package pairup reconciles two lists of location ids: the total distance
// between their sorted pairings and a frequency-weighted similarity score.
package pairup

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// LocationList is one column of the input.
type LocationList struct {
	IDs []int
}

// ParsePairs reads two columns of integers, one pair per non-blank line.
func ParsePairs(input string) (LocationList, LocationList, error) {
	var left, right []int

	for n, line := range strings.Split(input, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return LocationList{}, LocationList{}, &ParseError{Line: n + 1, Text: line, Err: ErrColumnCount}
		}

		l, err := strconv.Atoi(fields[0])
		if err != nil {
			return LocationList{}, LocationList{}, &ParseError{Line: n + 1, Text: line, Err: ErrInvalidID}
		}
		r, err := strconv.Atoi(fields[1])
		if err != nil {
			return LocationList{}, LocationList{}, &ParseError{Line: n + 1, Text: line, Err: ErrInvalidID}
		}
		left = append(left, l)
		right = append(right, r)
	}
	return LocationList{IDs: left}, LocationList{IDs: right}, nil
}

// Distance sums the absolute differences of both lists paired in sorted
// order.
func (ll LocationList) Distance(other LocationList) (int, error) {
	lr := Reconciler{}
	lr.SetInputs(ll.IDs, other.IDs)
	if err := lr.ValidateInputs(); err != nil {
		return 0, err
	}
	lr.SortLists()
	lr.ComputeDifferences()
	return lr.TotalDiff, nil
}

// Similarity weights every id by how often it appears in other.
func (ll LocationList) Similarity(other LocationList) int {
	counts := make(map[int]int, len(other.IDs))
	for _, id := range other.IDs {
		counts[id]++
	}

	total := 0
	for _, id := range ll.IDs {
		total += id * counts[id]
	}
	return total
}

// Pair is one reconciled left/right pair and its distance.
type Pair struct {
	Left  int
	Right int
	Diff  int
}

// Reconciler pairs two lists by rank. Lists of different lengths are
// rejected rather than truncated.
type Reconciler struct {
	LeftList  []int
	RightList []int
	Diffs     []int
	TotalDiff int
}

// SetInputs stores copies of left and right.
func (lr *Reconciler) SetInputs(left, right []int) {
	lr.LeftList = slices.Clone(left)
	lr.RightList = slices.Clone(right)
	lr.Diffs = nil
	lr.TotalDiff = 0
}

func (lr *Reconciler) ValidateInputs() error {
	if len(lr.LeftList) != len(lr.RightList) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(lr.LeftList), len(lr.RightList))
	}
	return nil
}

func (lr *Reconciler) SortLists() {
	slices.Sort(lr.LeftList)
	slices.Sort(lr.RightList)
}

func (lr *Reconciler) ComputeDifferences() {
	lr.Diffs = make([]int, len(lr.LeftList))
	total := 0
	for i := range lr.LeftList {
		diff := lr.LeftList[i] - lr.RightList[i]
		if diff < 0 {
			diff = -diff
		}
		lr.Diffs[i] = diff
		total += diff
	}
	lr.TotalDiff = total
}

// Pairs returns the reconciled pairs; call ComputeDifferences first.
func (lr *Reconciler) Pairs() []Pair {
	pairs := make([]Pair, len(lr.Diffs))
	for i, d := range lr.Diffs {
		pairs[i] = Pair{Left: lr.LeftList[i], Right: lr.RightList[i], Diff: d}
	}
	return pairs
}

// Part1 returns the total distance between the two input columns.
func Part1(input string) (int, error) {
	left, right, err := ParsePairs(input)
	if err != nil {
		return 0, err
	}
	return left.Distance(right)
}

// Part2 returns the similarity score of the two input columns.
func Part2(input string) (int, error) {
	left, right, err := ParsePairs(input)
	if err != nil {
		return 0, err
	}
	return left.Similarity(right), nil
}

type Solver struct{}

func (Solver) Name() string {
	return "pairup"
}

func (Solver) Part1(input string) (int, error) {
	return Part1(input)
}

func (Solver) Part2(input string) (int, error) {
	return Part2(input)
}
