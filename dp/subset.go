package dp

import (
	"fmt"
	"math"
)

// CountSubsetsWithSumK returns the number of index subsets of arr whose
// elements sum to k.
//
// Recurrence over the (n+1)×(k+1) table, j = 1..k:
//
//	C[i][0] = 1
//	C[i][j] = C[i-1][j] + (arr[i-1] ≤ j ? C[i-1][j-arr[i-1]] : 0)
//
// Column 0 is pinned to 1 (the empty subset) for every row, so zero-valued
// elements do not multiply the count for k = 0.
//
// Edge cases: an empty arr, k < 0 or k > sum(arr) yields 0 without
// allocating a table. A negative element is a contract violation and returns
// ErrNegativeElement.
func CountSubsetsWithSumK(arr []int, k int) (int, error) {
	total, err := nonNegativeSum(arr)
	if err != nil {
		return 0, err
	}
	if len(arr) == 0 || k < 0 || k > total {
		return 0, nil
	}

	n := len(arr)
	c := newTable[int](n+1, k+1)
	for i := 0; i <= n; i++ {
		c.set(i, 0, 1)
	}
	for i := 1; i <= n; i++ {
		x := arr[i-1]
		for j := 1; j <= k; j++ {
			ways := c.at(i-1, j)
			if x <= j {
				ways += c.at(i-1, j-x)
			}
			c.set(i, j, ways)
		}
	}

	return c.at(n, k), nil
}

// CountPartitionsWithGivenDifference returns the number of ways to split arr
// into S1 and S2 with sum(S1) - sum(S2) == diff. It counts the subsets with
// sum (total+diff)/2.
//
// Edge cases: a negative element returns ErrNegativeElement before any other
// check; an empty arr yields 1 when diff == 0 and 0 otherwise; total < diff
// or an odd total+diff yields 0.
func CountPartitionsWithGivenDifference(arr []int, diff int) (int, error) {
	total, err := nonNegativeSum(arr)
	if err != nil {
		return 0, err
	}
	if len(arr) == 0 {
		if diff == 0 {
			return 1, nil
		}
		return 0, nil
	}
	if total < diff || (total+diff)%2 != 0 {
		return 0, nil
	}

	return CountSubsetsWithSumK(arr, (total+diff)/2)
}

// nonNegativeSum returns the sum of arr, saturating at math.MaxInt, or
// ErrNegativeElement for the first negative value.
func nonNegativeSum(arr []int) (int, error) {
	total := 0
	for i, x := range arr {
		if x < 0 {
			return 0, fmt.Errorf("%w: arr[%d]=%d", ErrNegativeElement, i, x)
		}
		if total > math.MaxInt-x {
			total = math.MaxInt
			continue
		}
		total += x
	}

	return total, nil
}
