package monoguard

import (
	"fmt"
	"strings"
)

// Report is one line of input: an ordered, immutable sequence of levels.
type Report struct {
	levels []int
	rules  RuleSet
}

// NewReport copies levels into a Report checked against DefaultRules.
func NewReport(levels ...int) Report {
	return Report{levels: append([]int(nil), levels...)}
}

// WithRules returns a copy of r checked against rules instead.
func (r Report) WithRules(rules RuleSet) Report {
	r.rules = rules
	return r
}

func (r Report) Rules() RuleSet {
	if r.rules == nil {
		return DefaultRules()
	}
	return r.rules
}

// Levels returns a copy of the report's levels.
func (r Report) Levels() []int {
	return append([]int(nil), r.levels...)
}

func (r Report) Len() int {
	return len(r.levels)
}

func (r Report) String() string {
	parts := make([]string, len(r.levels))
	for i, v := range r.levels {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// IsSafe reports whether every level passes every rule.
func (r Report) IsSafe() bool {
	return Evaluate(r.Rules(), r.levels)
}

// IsSafeDampened reports whether the report is safe once at most one level
// is removed.
func (r Report) IsSafeDampened() bool {
	_, ok := r.Dampen()
	return ok
}

// Safe dispatches to IsSafeDampened when dampen is set, IsSafe otherwise.
func (r Report) Safe(dampen bool) bool {
	if dampen {
		return r.IsSafeDampened()
	}
	return r.IsSafe()
}

// Dampen searches for a level whose removal makes the report safe. It returns
// -1 and true when the report is already safe, the lowest such index and true
// when one exists, and -1 and false otherwise. Every candidate is checked
// against fresh rule state; no index is skipped.
func (r Report) Dampen() (int, bool) {
	rules := r.Rules()
	if Evaluate(rules, r.levels) {
		return -1, true
	}

	candidate := make([]int, 0, len(r.levels))
	for i := range r.levels {
		candidate = append(candidate[:0], r.levels[:i]...)
		candidate = append(candidate, r.levels[i+1:]...)
		if Evaluate(rules, candidate) {
			return i, true
		}
	}
	return -1, false
}

// CountSafe counts the reports that are safe, with or without the dampener.
func CountSafe(reports []Report, dampen bool) int {
	count := 0
	for _, r := range reports {
		if r.Safe(dampen) {
			count++
		}
	}
	return count
}
