package dp

import "cmp"

// LongestIncreasingSubsequence returns one strictly increasing subsequence
// of maximal length.
//
// Algorithm (O(n²)):
//  1. L[i] = 1 + max{L[j] : j < i, arr[j] < arr[i]}, parent[i] = that j;
//     the first j reaching the maximum is kept.
//  2. The end index is the first i with the overall maximum L[i].
//  3. Follow parent pointers from the end and reverse.
//
// An empty arr yields an empty, non-nil slice.
func LongestIncreasingSubsequence[T cmp.Ordered](arr []T) []T {
	n := len(arr)
	if n == 0 {
		return []T{}
	}

	length := make([]int, n)
	parent := make([]int, n)
	bestLen, end := 1, 0
	for i := range arr {
		length[i], parent[i] = 1, -1
		for j := 0; j < i; j++ {
			if arr[j] < arr[i] && length[i] < length[j]+1 {
				length[i], parent[i] = length[j]+1, j
			}
		}
		if length[i] > bestLen {
			bestLen, end = length[i], i
		}
	}

	w := newWitness[T](bestLen)
	for cur := end; cur != -1; cur = parent[cur] {
		w.add(arr[cur])
	}

	return w.build()
}
