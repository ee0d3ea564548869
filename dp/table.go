package dp

// table is a dense rows×cols DP matrix stored row-major in one allocation.
type table[T Number] struct {
	rows, cols int
	cells      []T
}

func newTable[T Number](rows, cols int) *table[T] {
	return &table[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}
}

func (t *table[T]) at(i, j int) T { return t.cells[i*t.cols+j] }

func (t *table[T]) set(i, j int, v T) { t.cells[i*t.cols+j] = v }

// rolling keeps the previous and current rows of a table whose recurrence
// only looks one row back.
type rolling[T Number] struct {
	prev, cur []T
}

func newRolling[T Number](cols int) *rolling[T] {
	return &rolling[T]{prev: make([]T, cols), cur: make([]T, cols)}
}

// advance makes the current row the previous one. The new current row keeps
// stale values; callers overwrite every cell they read.
func (r *rolling[T]) advance() {
	r.prev, r.cur = r.cur, r.prev
}

// lcsTable fills the full LCS length table of a and b:
//
//	L[i][j] = a[i-1]==b[j-1] ? 1+L[i-1][j-1] : max(L[i-1][j], L[i][j-1])
func lcsTable(a, b []rune) *table[int] {
	n, m := len(a), len(b)
	t := newTable[int](n+1, m+1)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				t.set(i, j, 1+t.at(i-1, j-1))
			} else {
				t.set(i, j, max(t.at(i-1, j), t.at(i, j-1)))
			}
		}
	}

	return t
}

// lcsLength runs the same recurrence over two rows, with the shorter input
// on the columns.
func lcsLength(a, b []rune) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	if len(b) == 0 {
		return 0
	}
	r := newRolling[int](len(b) + 1)
	for i := 1; i <= len(a); i++ {
		r.cur[0] = 0
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				r.cur[j] = 1 + r.prev[j-1]
			} else {
				r.cur[j] = max(r.prev[j], r.cur[j-1])
			}
		}
		r.advance()
	}

	return r.prev[len(b)]
}
