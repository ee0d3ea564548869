package dp

// MaxSumNonAdjacent returns the largest sum of elements of arr with no two
// chosen elements adjacent.
//
// Rolling pair: prev2 = arr[0], prev1 = max(arr[0], arr[1]), then
// cur = max(arr[i]+prev2, prev1). An empty arr yields 0 and a single
// element is returned as is, even when negative.
func MaxSumNonAdjacent[T Number](arr []T) T {
	switch len(arr) {
	case 0:
		return 0
	case 1:
		return arr[0]
	}

	prev2, prev1 := arr[0], max(arr[0], arr[1])
	for _, x := range arr[2:] {
		prev2, prev1 = prev1, max(x+prev2, prev1)
	}

	return prev1
}
