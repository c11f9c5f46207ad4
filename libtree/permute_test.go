package libtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPermutation(t *testing.T) {
	s := []int{0, 1, 2}
	var seen [][]int
	for {
		seen = append(seen, append([]int(nil), s...))
		if !nextPermutation(s, intLess) {
			break
		}
	}
	require.Equal(t, [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}, seen)
	require.Equal(t, []int{0, 1, 2}, s, "exhausted permutation resets to the smallest")

	require.False(t, nextPermutation([]int{}, intLess))
	require.False(t, nextPermutation([]int{7}, intLess))
}

func TestSelectionWalk(t *testing.T) {
	sel := []bool{true, true, false, false}
	count := 1
	for nextPermutation(sel, boolGreater) {
		count++
	}
	require.Equal(t, 6, count, "C(4,2) selections")
	require.Equal(t, []bool{true, true, false, false}, sel)
}
