package monoguard

import (
	"fmt"
	"strings"
)

const (
	DefaultMinStep = 1
	DefaultMaxStep = 3
)

// Kind enumerates the rule variants a RuleSet can hold.
type Kind uint8

const (
	KindTrend Kind = iota + 1
	KindDifference
	KindExpression
)

func (k Kind) String() string {
	switch k {
	case KindTrend:
		return "trend"
	case KindDifference:
		return "difference"
	case KindExpression:
		return "expression"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Rule is the immutable configuration of one rule. It holds no evaluation
// state; every pass builds its own working state from it.
type Rule struct {
	kind Kind
	min  int
	max  int
	expr *ExpressionRule
}

// Trend configures a TrendRule.
func Trend() Rule {
	return Rule{kind: KindTrend}
}

// Difference configures a DifferenceRule with inclusive bounds.
func Difference(lo, hi int) Rule {
	return Rule{kind: KindDifference, min: lo, max: hi}
}

// Expression configures an ExpressionRule compiled from source.
func Expression(source string) (Rule, error) {
	expr, err := NewExpressionRule(source)
	if err != nil {
		return Rule{}, err
	}
	return Rule{kind: KindExpression, expr: expr}, nil
}

func (r Rule) Kind() Kind {
	return r.kind
}

func (r Rule) String() string {
	switch r.kind {
	case KindDifference:
		return fmt.Sprintf("difference[%d,%d]", r.min, r.max)
	case KindExpression:
		return fmt.Sprintf("expression(%s)", r.expr)
	default:
		return r.kind.String()
	}
}

// RuleSet is an ordered list of rules that must all pass for every level.
type RuleSet []Rule

// DefaultRules returns the trend rule followed by a 1..3 difference rule.
func DefaultRules() RuleSet {
	return RuleSet{Trend(), Difference(DefaultMinStep, DefaultMaxStep)}
}

func (rs RuleSet) String() string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.String()
	}
	return strings.Join(names, "+")
}

// checker is the working state of one rule during one pass.
type checker struct {
	kind  Kind
	trend TrendRule
	diff  DifferenceRule
	expr  *ExpressionRule
}

func (r Rule) newChecker() checker {
	c := checker{kind: r.kind}
	switch r.kind {
	case KindTrend:
	case KindDifference:
		c.diff = DifferenceRule{Min: r.min, Max: r.max}
	case KindExpression:
		c.expr = r.expr
	default:
		panic(fmt.Sprintf("monoguard: unknown rule %s", r.kind))
	}
	return c
}

func (c *checker) evaluate(current int, prev Prev) bool {
	switch c.kind {
	case KindTrend:
		return c.trend.Evaluate(current, prev)
	case KindDifference:
		return c.diff.Evaluate(current, prev)
	case KindExpression:
		return c.expr.Evaluate(current, prev)
	default:
		panic(fmt.Sprintf("monoguard: unknown rule %s", c.kind))
	}
}
