// Package dp provides tabulated dynamic-programming engines for subset
// counting, sequence alignment, time warping and grid paths.
//
// Every engine follows the same shape:
//
//  1. allocate a table sized to the problem, fresh for each call;
//  2. fill it with the recurrence;
//  3. read one cell (counts, lengths) or backtrack from the final cell to the
//     base case, collecting the witness back to front and reversing it once.
//
// Memory modes mirror each other: witness queries keep the full
// (n+1)×(m+1) table, length-only queries keep two rolling rows.
//
// Functions:
//
//   - CountSubsetsWithSumK, CountPartitionsWithGivenDifference
//   - MaxSumNonAdjacent
//   - LongestCommonSubsequence, LongestCommonSubsequenceLength
//   - LongestPalindromicSubsequence, MinInsertionsToMakePalindrome
//   - LongestCommonSubstring
//   - LongestIncreasingSubsequence
//   - MinPathSum (mutates its grid), MinPathSumCopy, MinPath
//   - TimeWarp, TimeWarpDistance (optional Sakoe-Chiba band and slope penalty)
//
// Strings are compared rune by rune, so multi-byte UTF-8 text is handled
// per character.
//
// Complexity:
//
//	subset/partition:  Time O(n·k),  Memory O(n·k)
//	LCS/LPS witness:   Time O(n·m),  Memory O(n·m)
//	LCS length:        Time O(n·m),  Memory O(min(n, m))
//	common substring:  Time O(n·m),  Memory O(m)
//	LIS:               Time O(n²),   Memory O(n)
//	grid path:         Time O(r·c),  Memory O(1) in place, O(r·c) for MinPath
//	time warp:         Time O(n·m),  Memory O(n·m) with path, O(min(n, m)) without
//
// Errors:
//
//   - ErrNegativeElement: subset counting over negative values
//   - ErrRaggedGrid: grid rows of unequal length
//   - ErrBadTieBreak: panic from WithTieBreak on an unknown rule
//   - ErrEmptySequence, ErrWindowTooNarrow: time-warp inputs with no alignment
//   - ErrBadWindow, ErrBadSlopePenalty: panics from the time-warp options
//
// No function keeps state between calls; all are safe for concurrent use on
// inputs that are not shared with a writer. MinPathSum writes to its grid.
package dp
