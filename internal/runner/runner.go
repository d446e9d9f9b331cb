// Package runner solves configured puzzles and checks their answers.
package runner

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/gophx/aoc2024/internal/config"
	"github.com/gophx/aoc2024/internal/input"
	"github.com/gophx/aoc2024/monoguard"
	"github.com/gophx/aoc2024/pairup"
)

var (
	// ErrUnknownPuzzle indicates a puzzle with no registered solver.
	ErrUnknownPuzzle = errors.New("runner: unknown puzzle")
	// ErrUnexpectedAnswer indicates a result that differs from the expected one.
	ErrUnexpectedAnswer = errors.New("runner: unexpected answer")
)

// Solver answers both parts of one puzzle from its raw input.
type Solver interface {
	Name() string
	Part1(input string) (int, error)
	Part2(input string) (int, error)
}

// Detailer is implemented by solvers that can describe their input beyond
// the two answers.
type Detailer interface {
	Details(input string) (map[string]any, error)
}

// Result holds the answers of one puzzle run.
type Result struct {
	Puzzle  string
	Part1   int
	Part2   int
	Elapsed time.Duration
}

// Registry maps puzzle names to solvers.
type Registry map[string]Solver

func (r Registry) Register(s Solver) {
	r[s.Name()] = s
}

// Names returns the registered puzzle names in order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Runner solves puzzles and logs their results.
type Runner struct {
	registry Registry
	logger   zerolog.Logger
}

func New(registry Registry, logger zerolog.Logger) *Runner {
	return &Runner{registry: registry, logger: logger}
}

// DefaultRegistry registers every puzzle this module solves.
func DefaultRegistry() Registry {
	r := Registry{}
	r.Register(monoguard.Solver{})
	r.Register(pairup.Solver{})
	return r
}

// Run reads p's input, solves both parts and compares them with p.Expect.
func (r *Runner) Run(p config.Puzzle) (Result, error) {
	solver, ok := r.registry[p.Name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownPuzzle, p.Name)
	}

	if p.Rules != nil {
		if _, isReports := solver.(monoguard.Solver); isReports {
			rules, err := p.RuleSet()
			if err != nil {
				return Result{}, err
			}
			solver = monoguard.Solver{Rules: rules}
		} else {
			r.logger.Warn().Str("puzzle", p.Name).Msg("rules block ignored")
		}
	}

	text, err := input.Read(p.Input)
	if err != nil {
		return Result{}, err
	}

	log := r.logger.With().Str("puzzle", p.Name).Logger()
	start := time.Now()

	part1, err := solver.Part1(text)
	if err != nil {
		return Result{}, fmt.Errorf("%s part 1: %w", p.Name, err)
	}
	part2, err := solver.Part2(text)
	if err != nil {
		return Result{}, fmt.Errorf("%s part 2: %w", p.Name, err)
	}

	res := Result{Puzzle: p.Name, Part1: part1, Part2: part2, Elapsed: time.Since(start)}
	log.Info().
		Int("part1", res.Part1).
		Int("part2", res.Part2).
		Dur("elapsed", res.Elapsed).
		Msg("solved")

	if d, ok := solver.(Detailer); ok {
		if e := log.Debug(); e.Enabled() {
			details, err := d.Details(text)
			if err != nil {
				e.Discard()
				log.Warn().Err(err).Msg("details unavailable")
			} else {
				e.Fields(details).Msg("details")
			}
		}
	}

	if err := check(p, res); err != nil {
		log.Error().Err(err).Msg("answer check failed")
		return res, err
	}
	return res, nil
}

// RunAll runs every puzzle in cfg and returns the first error after trying
// all of them.
func (r *Runner) RunAll(cfg *config.Config) ([]Result, error) {
	var (
		results  []Result
		firstErr error
	)
	for _, p := range cfg.Puzzles {
		res, err := r.Run(p)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		results = append(results, res)
	}
	return results, firstErr
}

func check(p config.Puzzle, res Result) error {
	if p.Expect == nil {
		return nil
	}
	if p.Expect.Part1 != nil && *p.Expect.Part1 != res.Part1 {
		return fmt.Errorf("%w: %s part 1 = %d, want %d", ErrUnexpectedAnswer, p.Name, res.Part1, *p.Expect.Part1)
	}
	if p.Expect.Part2 != nil && *p.Expect.Part2 != res.Part2 {
		return fmt.Errorf("%w: %s part 2 = %d, want %d", ErrUnexpectedAnswer, p.Name, res.Part2, *p.Expect.Part2)
	}
	return nil
}
