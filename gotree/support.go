package gotree

// unlabeledTreeCounts[n] is the number of unlabeled (free) trees on n vertices (OEIS A000055).
var unlabeledTreeCounts = []int64{
	1, 1, 1, 1, 2, 3, 6, 11, 23, 47,
	106, 235, 551, 1301, 3159, 7741, 19320, 48629, 123867, 317955,
}

// UnlabeledTreeCount returns the known number of non-isomorphic trees on n vertices.
// ok is false if n is outside the table.
func UnlabeledTreeCount(n int) (count int64, ok bool) {
	if n < 0 || n >= len(unlabeledTreeCounts) {
		return 0, false
	}
	return unlabeledTreeCounts[n], true
}

// NumPossibleEdges returns the edge count of the complete graph on n vertices.
func NumPossibleEdges(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Binomial returns C(n, k), the number of steps taken by the spanning tree candidate generator.
func Binomial(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := int64(1)
	for i := 1; i <= k; i++ {
		c = c * int64(n-k+i) / int64(i)
	}
	return c
}
