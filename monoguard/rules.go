package monoguard

import (
	"fmt"

	"github.com/Knetic/govaluate"
)

// Prev is the level preceding the one under evaluation. OK is false for the
// first level of a report.
type Prev struct {
	Value int
	OK    bool
}

// None marks the absence of a previous level.
var None = Prev{}

// Some wraps v as a present previous level.
func Some(v int) Prev {
	return Prev{Value: v, OK: true}
}

// Direction is the trend a report locks in on its first unequal step.
type Direction int8

const (
	Unset Direction = iota
	Increasing
	Decreasing
)

func (d Direction) String() string {
	switch d {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "unset"
	}
}

// TrendRule requires every step of a pass to move strictly in the direction
// set by the first step. It carries state across a single pass and must be
// reset before the next one.
type TrendRule struct {
	direction Direction
}

func (r *TrendRule) Evaluate(current int, prev Prev) bool {
	if !prev.OK {
		return true
	}

	var step Direction
	switch {
	case current > prev.Value:
		step = Increasing
	case current < prev.Value:
		step = Decreasing
	default:
		// flat steps never pass and never lock a direction
		return false
	}

	if r.direction == Unset {
		r.direction = step
		return true
	}
	return r.direction == step
}

func (r *TrendRule) Reset() {
	r.direction = Unset
}

// Direction reports the trend locked so far in the current pass.
func (r *TrendRule) Direction() Direction {
	return r.direction
}

// DifferenceRule bounds the absolute difference between adjacent levels to
// [Min, Max]. It is stateless. A negative Min acts as 0 and a negative Max
// rejects every step.
type DifferenceRule struct {
	Min int
	Max int
}

func (r DifferenceRule) Evaluate(current int, prev Prev) bool {
	if !prev.OK {
		return true
	}
	if r.Max < 0 {
		return false
	}
	diff := gap(current, prev.Value)
	return (r.Min <= 0 || diff >= uint(r.Min)) && diff <= uint(r.Max)
}

func (DifferenceRule) Reset() {}

// ExpressionRule evaluates a boolean govaluate expression for every adjacent
// pair. The expression sees current, previous and delta (current - previous)
// and may call abs(). Errors and non-boolean results fail the step.
type ExpressionRule struct {
	source string
	expr   *govaluate.EvaluableExpression
}

var expressionFunctions = map[string]govaluate.ExpressionFunction{
	"abs": func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("abs expects 1 argument, got %d", len(args))
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("abs expects a number, got %T", args[0])
		}
		if v < 0 {
			return -v, nil
		}
		return v, nil
	},
}

// NewExpressionRule compiles source into an ExpressionRule.
func NewExpressionRule(source string) (*ExpressionRule, error) {
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(source, expressionFunctions)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidExpression, source, err)
	}
	return &ExpressionRule{source: source, expr: expr}, nil
}

func (r *ExpressionRule) Evaluate(current int, prev Prev) bool {
	if !prev.OK {
		return true
	}
	// govaluate does arithmetic in float64
	params := map[string]interface{}{
		"current":  float64(current),
		"previous": float64(prev.Value),
		"delta":    float64(current) - float64(prev.Value),
	}
	result, err := r.expr.Evaluate(params)
	if err != nil {
		return false
	}
	ok, isBool := result.(bool)
	return isBool && ok
}

func (*ExpressionRule) Reset() {}

// String returns the expression source.
func (r *ExpressionRule) String() string {
	return r.source
}

// gap returns |a - b| without overflowing int.
func gap(a, b int) uint {
	if a < b {
		a, b = b, a
	}
	return uint(a) - uint(b)
}
