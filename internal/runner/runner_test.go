package runner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophx/aoc2024/internal/config"
)

const reports = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
`

const pairs = `3   4
4   3
2   5
1   3
3   9
3   3
`

type failingSolver struct{}

func (failingSolver) Name() string { return "broken" }

func (failingSolver) Part1(string) (int, error) { return 0, errors.New("boom") }

func (failingSolver) Part2(string) (int, error) { return 0, nil }

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func intPtr(v int) *int { return &v }

func newTestRunner(buf *bytes.Buffer, level zerolog.Level) *Runner {
	logger := zerolog.New(buf).Level(level)
	return New(DefaultRegistry(), logger)
}

func TestRun_Monoguard(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRunner(&buf, zerolog.DebugLevel)

	res, err := r.Run(config.Puzzle{
		Name:   "monoguard",
		Input:  writeInput(t, reports),
		Expect: &config.Expect{Part1: intPtr(2), Part2: intPtr(4)},
	})
	require.NoError(t, err)

	assert.Equal(t, "monoguard", res.Puzzle)
	assert.Equal(t, 2, res.Part1)
	assert.Equal(t, 4, res.Part2)
	assert.Contains(t, buf.String(), `"message":"solved"`)
	assert.Contains(t, buf.String(), `"dampened":2`)
}

func TestRun_Pairup(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRunner(&buf, zerolog.InfoLevel)

	res, err := r.Run(config.Puzzle{Name: "pairup", Input: writeInput(t, pairs)})
	require.NoError(t, err)

	assert.Equal(t, 11, res.Part1)
	assert.Equal(t, 31, res.Part2)
	assert.NotContains(t, buf.String(), "details")
}

func TestRun_CustomRules(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRunner(&buf, zerolog.InfoLevel)

	wide := 5
	res, err := r.Run(config.Puzzle{
		Name:  "monoguard",
		Input: writeInput(t, reports),
		Rules: &config.Rules{MaxStep: &wide},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Part1)
}

func TestRun_RulesIgnoredForOtherPuzzles(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRunner(&buf, zerolog.InfoLevel)

	_, err := r.Run(config.Puzzle{
		Name:  "pairup",
		Input: writeInput(t, pairs),
		Rules: &config.Rules{},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "rules block ignored")
}

func TestRun_EmptyInput(t *testing.T) {
	r := New(DefaultRegistry(), zerolog.Nop())

	res, err := r.Run(config.Puzzle{
		Name:   "monoguard",
		Input:  writeInput(t, ""),
		Expect: &config.Expect{Part1: intPtr(0), Part2: intPtr(0)},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Part1)
	assert.Equal(t, 0, res.Part2)
}

func TestRun_UnexpectedAnswer(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRunner(&buf, zerolog.InfoLevel)

	res, err := r.Run(config.Puzzle{
		Name:   "monoguard",
		Input:  writeInput(t, reports),
		Expect: &config.Expect{Part2: intPtr(5)},
	})
	assert.ErrorIs(t, err, ErrUnexpectedAnswer)
	assert.Equal(t, 4, res.Part2)
	assert.Contains(t, buf.String(), "answer check failed")
}

func TestRun_Errors(t *testing.T) {
	registry := DefaultRegistry()
	registry.Register(failingSolver{})
	r := New(registry, zerolog.Nop())

	_, err := r.Run(config.Puzzle{Name: "mulcalc", Input: "unused"})
	assert.ErrorIs(t, err, ErrUnknownPuzzle)

	_, err = r.Run(config.Puzzle{Name: "monoguard", Input: filepath.Join(t.TempDir(), "missing.txt")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = r.Run(config.Puzzle{Name: "broken", Input: writeInput(t, "1")})
	assert.EqualError(t, err, "broken part 1: boom")

	_, err = r.Run(config.Puzzle{Name: "pairup", Input: writeInput(t, "1 2 3\n")})
	assert.ErrorContains(t, err, "pairup part 1")
}

func TestRunAll(t *testing.T) {
	r := New(DefaultRegistry(), zerolog.Nop())
	cfg := &config.Config{Puzzles: []config.Puzzle{
		{Name: "unknown", Input: "unused"},
		{Name: "monoguard", Input: writeInput(t, reports)},
		{Name: "pairup", Input: writeInput(t, pairs)},
	}}

	results, err := r.RunAll(cfg)
	assert.ErrorIs(t, err, ErrUnknownPuzzle)
	require.Len(t, results, 2)
	assert.Equal(t, "monoguard", results[0].Puzzle)
	assert.Equal(t, "pairup", results[1].Puzzle)
}

func TestRegistry_Names(t *testing.T) {
	assert.Equal(t, []string{"monoguard", "pairup"}, DefaultRegistry().Names())
}
