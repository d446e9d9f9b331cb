package monoguard

// Verdict is the classification of one parsed report.
type Verdict struct {
	Index        int
	Report       Report
	Safe         bool
	DampenedSafe bool
	// Removed is the level index the dampener dropped, or -1.
	Removed int
}

// ReportProcessor holds raw puzzle input and the reports parsed from it.
type ReportProcessor struct {
	RawInputs string
	Rules     RuleSet
	Reports   []Report
}

func (rp *ReportProcessor) SetInputs(inputs string) {
	rp.RawInputs = inputs
}

func (rp *ReportProcessor) SetRules(rules RuleSet) {
	rp.Rules = rules
}

func (rp *ReportProcessor) ParseInputs() error {
	reports, err := ParseWithRules(rp.RawInputs, rp.Rules)
	if err != nil {
		return err
	}
	rp.Reports = reports
	return nil
}

func (rp *ReportProcessor) ProcessReports() []Verdict {
	verdicts := make([]Verdict, 0, len(rp.Reports))
	for i, report := range rp.Reports {
		removed, dampened := report.Dampen()
		verdicts = append(verdicts, Verdict{
			Index:        i,
			Report:       report,
			Safe:         dampened && removed < 0,
			DampenedSafe: dampened,
			Removed:      removed,
		})
	}
	return verdicts
}

func (rp *ReportProcessor) CountSafe(dampen bool) int {
	return CountSafe(rp.Reports, dampen)
}

// Part1 counts the reports in input that are safe as they stand.
func Part1(input string) (int, error) {
	return count(input, nil, false)
}

// Part2 counts the reports in input that are safe with the dampener.
func Part2(input string) (int, error) {
	return count(input, nil, true)
}

func count(input string, rules RuleSet, dampen bool) (int, error) {
	rp := ReportProcessor{}
	rp.SetInputs(input)
	rp.SetRules(rules)
	if err := rp.ParseInputs(); err != nil {
		return 0, err
	}
	return rp.CountSafe(dampen), nil
}

// Solver runs the puzzle with a configurable RuleSet; nil means DefaultRules.
type Solver struct {
	Rules RuleSet
}

func (Solver) Name() string {
	return "monoguard"
}

func (s Solver) Part1(input string) (int, error) {
	return count(input, s.Rules, false)
}

func (s Solver) Part2(input string) (int, error) {
	return count(input, s.Rules, true)
}

// Details reports how many reports were parsed and how many only the
// dampener could save.
func (s Solver) Details(input string) (map[string]any, error) {
	rp := ReportProcessor{}
	rp.SetInputs(input)
	rp.SetRules(s.Rules)
	if err := rp.ParseInputs(); err != nil {
		return nil, err
	}

	fixed := 0
	for _, v := range rp.ProcessReports() {
		if v.DampenedSafe && !v.Safe {
			fixed++
		}
	}
	return map[string]any{
		"reports":  len(rp.Reports),
		"rules":    Report{rules: s.Rules}.Rules().String(),
		"dampened": fixed,
	}, nil
}
