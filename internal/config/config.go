package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"

	"github.com/gophx/aoc2024/monoguard"
)

var (
	// ErrInvalidConfig indicates a configuration file that failed to decode.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrInvalidRules indicates a rules block that cannot build a RuleSet.
	ErrInvalidRules = errors.New("config: invalid rules")
)

const (
	DefaultPath     = "gophx.hcl"
	DefaultInputDir = "inputs"
	DefaultLogLevel = "info"
)

// Config holds the run configuration.
type Config struct {
	LogLevel string   `hcl:"log_level,optional"`
	Puzzles  []Puzzle `hcl:"puzzle,block"`
}

// Puzzle configures one solver run.
type Puzzle struct {
	Name   string  `hcl:"name,label"`
	Input  string  `hcl:"input"`
	Expect *Expect `hcl:"expect,block"`
	Rules  *Rules  `hcl:"rules,block"`
}

// Expect holds known answers to check results against.
type Expect struct {
	Part1 *int `hcl:"part1,optional"`
	Part2 *int `hcl:"part2,optional"`
}

// Rules overrides the report rules of the monoguard puzzle.
type Rules struct {
	Trend       *bool    `hcl:"trend,optional"`
	Difference  *bool    `hcl:"difference,optional"`
	MinStep     *int     `hcl:"min_step,optional"`
	MaxStep     *int     `hcl:"max_step,optional"`
	Expressions []string `hcl:"expressions,optional"`
}

// Path returns the configuration file to load, from GOPHX_CONFIG or the default.
func Path() string {
	return getenv("GOPHX_CONFIG", DefaultPath)
}

// Load decodes the HCL file at path. Inputs may reference ${input_dir} and
// ${env.NAME}; relative inputs resolve against the file's directory.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(path, src)
}

// Parse decodes src as if read from filename.
func Parse(filename string, src []byte) (*Config, error) {
	var cfg Config
	if err := hclsimple.Decode(filename, src, evalContext(), &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]bool, len(cfg.Puzzles))
	base := filepath.Dir(filename)
	for i := range cfg.Puzzles {
		p := &cfg.Puzzles[i]
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: duplicate puzzle %q", ErrInvalidConfig, p.Name)
		}
		seen[p.Name] = true
		if p.Input != "" && !filepath.IsAbs(p.Input) {
			p.Input = filepath.Join(base, p.Input)
		}
	}

	cfg.LogLevel = getenv("GOPHX_LOG_LEVEL", cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return &cfg, nil
}

// Puzzle returns the puzzle configured under name.
func (c *Config) Puzzle(name string) (Puzzle, bool) {
	for _, p := range c.Puzzles {
		if p.Name == name {
			return p, true
		}
	}
	return Puzzle{}, false
}

// RuleSet builds the report rules for p. A puzzle without a rules block
// uses monoguard.DefaultRules.
func (p Puzzle) RuleSet() (monoguard.RuleSet, error) {
	if p.Rules == nil {
		return nil, nil
	}
	r := p.Rules

	var rules monoguard.RuleSet
	if r.Trend == nil || *r.Trend {
		rules = append(rules, monoguard.Trend())
	}

	if r.Difference == nil || *r.Difference {
		lo, hi := monoguard.DefaultMinStep, monoguard.DefaultMaxStep
		if r.MinStep != nil {
			lo = *r.MinStep
		}
		if r.MaxStep != nil {
			hi = *r.MaxStep
		}
		if lo < 0 || lo > hi {
			return nil, fmt.Errorf("%w: step bounds [%d,%d]", ErrInvalidRules, lo, hi)
		}
		rules = append(rules, monoguard.Difference(lo, hi))
	}

	for _, src := range r.Expressions {
		rule, err := monoguard.Expression(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRules, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func evalContext() *hcl.EvalContext {
	env := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env":       cty.ObjectVal(env),
			"input_dir": cty.StringVal(getenv("GOPHX_INPUT_DIR", DefaultInputDir)),
		},
	}
}

func getenv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
