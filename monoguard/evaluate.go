package monoguard

// Evaluate reports whether levels satisfy every rule in rules. Working state
// is built fresh for this call, so a RuleSet can be shared freely.
func Evaluate(rules RuleSet, levels []int) bool {
	return FirstViolation(rules, levels) < 0
}

// FirstViolation returns the index of the first level that fails a rule, or
// -1 when the whole sequence passes.
func FirstViolation(rules RuleSet, levels []int) int {
	checkers := make([]checker, len(rules))
	for i, r := range rules {
		checkers[i] = r.newChecker()
	}

	prev := None
	for i, level := range levels {
		for j := range checkers {
			if !checkers[j].evaluate(level, prev) {
				return i
			}
		}
		prev = Some(level)
	}
	return -1
}
