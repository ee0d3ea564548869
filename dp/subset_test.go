package dp_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphdp/dp"
)

// TestCountSubsetsWithSumK_Fixtures checks subset counts from the YAML cases.
func TestCountSubsetsWithSumK_Fixtures(t *testing.T) {
	for _, tc := range loadCases(t).Subsets {
		t.Run(fmt.Sprintf("%v/%d", tc.Arr, tc.K), func(t *testing.T) {
			got, err := dp.CountSubsetsWithSumK(tc.Arr, tc.K)
			require.NoError(t, err)
			assert.Equal(t, tc.Want, got)
		})
	}
}

// TestCountSubsetsWithSumK_EmptySubset counts exactly one way to reach 0 on
// any non-empty input.
func TestCountSubsetsWithSumK_EmptySubset(t *testing.T) {
	for _, arr := range [][]int{{1}, {4, 4, 4}, {9, 1, 2, 7}} {
		got, err := dp.CountSubsetsWithSumK(arr, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, got, "%v", arr)
	}
}

// TestCountSubsetsWithSumK_Negative rejects negative elements.
func TestCountSubsetsWithSumK_Negative(t *testing.T) {
	_, err := dp.CountSubsetsWithSumK([]int{1, -2, 3}, 2)
	assert.ErrorIs(t, err, dp.ErrNegativeElement)

	_, err = dp.CountPartitionsWithGivenDifference([]int{4, -1, 3}, 0)
	assert.ErrorIs(t, err, dp.ErrNegativeElement)

	// rejected regardless of the parity and total shortcuts
	for _, tc := range []struct {
		arr  []int
		diff int
	}{
		{[]int{-1, 2}, 0},
		{[]int{-1, 3}, 0},
		{[]int{-5, 1}, 10},
		{[]int{2, -1}, 1},
	} {
		_, err = dp.CountPartitionsWithGivenDifference(tc.arr, tc.diff)
		assert.ErrorIs(t, err, dp.ErrNegativeElement, "%v diff %d", tc.arr, tc.diff)
	}
	_, err = dp.CountSubsetsWithSumK([]int{-1}, math.MaxInt)
	assert.ErrorIs(t, err, dp.ErrNegativeElement)
}

// TestCountSubsetsWithSumK_TargetAboveTotal answers 0 without sizing a
// table from k.
func TestCountSubsetsWithSumK_TargetAboveTotal(t *testing.T) {
	for _, k := range []int{4, 1 << 40, math.MaxInt} {
		got, err := dp.CountSubsetsWithSumK([]int{1, 2}, k)
		require.NoError(t, err)
		assert.Zero(t, got, "k=%d", k)
	}

	got, err := dp.CountSubsetsWithSumK([]int{1, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = dp.CountPartitionsWithGivenDifference([]int{1, 2}, math.MaxInt)
	require.NoError(t, err)
	assert.Zero(t, got)
}

// TestCountPartitionsWithGivenDifference_Fixtures checks partition counts.
func TestCountPartitionsWithGivenDifference_Fixtures(t *testing.T) {
	for _, tc := range loadCases(t).Partitions {
		t.Run(fmt.Sprintf("%v/%d", tc.Arr, tc.Diff), func(t *testing.T) {
			got, err := dp.CountPartitionsWithGivenDifference(tc.Arr, tc.Diff)
			require.NoError(t, err)
			assert.Equal(t, tc.Want, got)
		})
	}
}

// TestCountSubsets_Idempotent leaves the input untouched.
func TestCountSubsets_Idempotent(t *testing.T) {
	arr := []int{2, 3, 5, 6, 8, 10}
	first, err := dp.CountSubsetsWithSumK(arr, 10)
	require.NoError(t, err)
	second, err := dp.CountSubsetsWithSumK(arr, 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{2, 3, 5, 6, 8, 10}, arr)
}

// TestMaxSumNonAdjacent_Fixtures covers the rolling pair on ints.
func TestMaxSumNonAdjacent_Fixtures(t *testing.T) {
	for _, tc := range loadCases(t).NonAdjacent {
		assert.Equal(t, tc.Want, dp.MaxSumNonAdjacent(tc.Arr), "%v", tc.Arr)
	}
}

// TestMaxSumNonAdjacent_Types runs the generic engine on other element types.
func TestMaxSumNonAdjacent_Types(t *testing.T) {
	assert.InDelta(t, 9.5, dp.MaxSumNonAdjacent([]float64{2.5, 1, 4, 3, 3}), 1e-9)
	assert.Equal(t, uint8(13), dp.MaxSumNonAdjacent([]uint8{5, 4, 3, 8}))
	assert.Equal(t, int64(0), dp.MaxSumNonAdjacent([]int64(nil)))
}
