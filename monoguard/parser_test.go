package monoguard_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophx/aoc2024/monoguard"
)

const sample = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9`

func TestParse(t *testing.T) {
	reports, err := monoguard.Parse(sample)
	require.NoError(t, err)
	require.Len(t, reports, 6)

	assert.Equal(t, []int{7, 6, 4, 2, 1}, reports[0].Levels())
	assert.Equal(t, []int{1, 3, 6, 7, 9}, reports[5].Levels())
}

func TestParse_Whitespace(t *testing.T) {
	input := "1   2\t3\r\n\n   \n42\n4 5 6 7 8 9 10\n"

	reports, err := monoguard.Parse(input)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, []int{1, 2, 3}, reports[0].Levels())
	assert.Equal(t, []int{42}, reports[1].Levels())
	assert.Equal(t, 7, reports[2].Len())
}

func TestParse_Empty(t *testing.T) {
	reports, err := monoguard.Parse("")
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestParse_InvalidLevel(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		line   int
		column int
		token  string
	}{
		{"Word", "1 2 3\n4 five 6", 2, 2, "five"},
		{"Decimal", "1.5 2", 1, 1, "1.5"},
		{"AfterBlankLine", "1 2\n\n3 4 x", 3, 3, "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reports, err := monoguard.Parse(tc.input)
			require.Error(t, err)
			assert.Nil(t, reports)
			assert.True(t, errors.Is(err, monoguard.ErrInvalidLevel))

			var perr *monoguard.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.line, perr.Line)
			assert.Equal(t, tc.column, perr.Column)
			assert.Equal(t, tc.token, perr.Token)
		})
	}
}

func TestParse_NegativeLevels(t *testing.T) {
	reports, err := monoguard.Parse("-3 -1 0 2")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.True(t, reports[0].IsSafe())
}

func TestParse_ExtremeLevels(t *testing.T) {
	reports, err := monoguard.Parse("-9223372036854775808 9223372036854775807")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.False(t, reports[0].IsSafe())
}

func TestParseWithRules(t *testing.T) {
	rules := monoguard.RuleSet{monoguard.Difference(1, 5)}

	reports, err := monoguard.ParseWithRules("1 6 2", rules)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.True(t, reports[0].IsSafe())
}

func TestSampleFile(t *testing.T) {
	data, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)

	part1, err := monoguard.Part1(string(data))
	require.NoError(t, err)
	assert.Equal(t, 2, part1)

	part2, err := monoguard.Part2(string(data))
	require.NoError(t, err)
	assert.Equal(t, 4, part2)
}
