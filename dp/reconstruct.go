package dp

// witness collects a solution while backtracking from the last table cell
// toward the base case.
type witness[E any] struct {
	items []E
}

func newWitness[E any](capacity int) *witness[E] {
	return &witness[E]{items: make([]E, 0, capacity)}
}

func (w *witness[E]) add(e E) { w.items = append(w.items, e) }

// build reverses the collected items in place and returns them.
func (w *witness[E]) build() []E {
	reverse(w.items)

	return w.items
}

func reverse[E any](s []E) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}

// reversed returns a reversed copy of rs.
func reversed(rs []rune) []rune {
	out := make([]rune, len(rs))
	copy(out, rs)
	reverse(out)

	return out
}
