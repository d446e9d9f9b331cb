package monoguard

import (
	"strconv"
	"strings"
)

// Parse reads one Report per non-blank line of input, checked against
// DefaultRules.
func Parse(input string) ([]Report, error) {
	return ParseWithRules(input, nil)
}

// ParseWithRules reads one Report per non-blank line of input, checked
// against rules. The first malformed token aborts the whole parse.
func ParseWithRules(input string, rules RuleSet) ([]Report, error) {
	var reports []Report

	for n, line := range strings.Split(input, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		levels := make([]int, 0, len(fields))
		for col, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, &ParseError{Line: n + 1, Column: col + 1, Token: field, Err: ErrInvalidLevel}
			}
			levels = append(levels, v)
		}
		reports = append(reports, Report{levels: levels, rules: rules})
	}
	return reports, nil
}
