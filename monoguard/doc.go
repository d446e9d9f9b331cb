// Package monoguard validates reactor reports: lines of integer levels that
// must move steadily in one direction by small steps.
//
// A report is safe when every adjacent pair passes every rule of its RuleSet.
// The default set is a trend rule (strictly increasing or strictly
// decreasing, locked by the first step) and a difference rule (adjacent
// levels differ by 1 to 3). The dampener tolerates one bad level: a report is
// dampened-safe when removing some single level makes it safe.
//
// Rules are configuration. Evaluate builds fresh working state for each pass,
// so trend state never leaks between reports or between dampener candidates.
//
// Complexity:
//
//   - IsSafe: O(n·r) for n levels and r rules.
//   - IsSafeDampened: O(n²·r), exhaustive single-level removal.
//
// Errors:
//
//   - ErrInvalidLevel: a token is not an integer (wrapped in *ParseError).
//   - ErrInvalidExpression: an expression rule failed to compile.
package monoguard
