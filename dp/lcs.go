package dp

// LongestCommonSubsequence returns one longest common subsequence of s1 and
// s2. Backtracking starts at L[n][m], takes the diagonal on a match and
// otherwise steps toward the larger neighbor; equal neighbors follow the
// configured TieBreak (PreferUp by default).
//
// Either string empty yields "".
func LongestCommonSubsequence(s1, s2 string, opts ...Option) string {
	o := applyOptions(opts)

	return string(lcsRunes([]rune(s1), []rune(s2), o.TieBreak))
}

// LongestCommonSubsequenceLength returns the LCS length using two rolling
// rows instead of the full table.
func LongestCommonSubsequenceLength(s1, s2 string) int {
	return lcsLength([]rune(s1), []rune(s2))
}

// LongestPalindromicSubsequence returns LCS(s, reverse(s)), which is a
// longest palindromic subsequence of s. An empty s yields "".
func LongestPalindromicSubsequence(s string, opts ...Option) string {
	o := applyOptions(opts)
	rs := []rune(s)

	return string(lcsRunes(rs, reversed(rs), o.TieBreak))
}

// MinInsertionsToMakePalindrome returns len(s) - len(LPS(s)) counted in
// runes. Strings of length ≤ 1 need no insertions.
func MinInsertionsToMakePalindrome(s string) int {
	rs := []rune(s)
	if len(rs) <= 1 {
		return 0
	}

	return len(rs) - lcsLength(rs, reversed(rs))
}

func lcsRunes(a, b []rune, tb TieBreak) []rune {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil
	}

	t := lcsTable(a, b)
	w := newWitness[rune](t.at(n, m))
	i, j := n, m
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			w.add(a[i-1])
			i--
			j--
		case stepUp(t.at(i-1, j), t.at(i, j-1), tb):
			i--
		default:
			j--
		}
	}

	return w.build()
}

func stepUp(up, left int, tb TieBreak) bool {
	if tb == PreferLeft {
		return up > left
	}

	return up >= left
}
