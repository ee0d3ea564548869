package dp

// LongestCommonSubstring returns the longest contiguous run shared by s1 and
// s2. Among runs of equal length the one ending first in s1 wins. No shared
// rune yields "".
//
// Only the previous row of S[i][j] = match ? 1+S[i-1][j-1] : 0 is needed, so
// the table rolls over s2.
func LongestCommonSubstring(s1, s2 string) string {
	a, b := []rune(s1), []rune(s2)
	if len(a) == 0 || len(b) == 0 {
		return ""
	}

	r := newRolling[int](len(b) + 1)
	best, end := 0, 0 // end is the index in a of the last rune of the best run
	for i := 1; i <= len(a); i++ {
		r.cur[0] = 0
		for j := 1; j <= len(b); j++ {
			if a[i-1] != b[j-1] {
				r.cur[j] = 0
				continue
			}
			r.cur[j] = 1 + r.prev[j-1]
			if r.cur[j] > best {
				best, end = r.cur[j], i-1
			}
		}
		r.advance()
	}
	if best == 0 {
		return ""
	}

	return string(a[end-best+1 : end+1])
}
