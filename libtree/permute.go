package libtree

// nextPermutation rearranges s into the next lexicographically greater permutation under less.
// If s is already the greatest, s is reset to the smallest and false is returned.
func nextPermutation[T any](s []T, less func(a, b T) bool) bool {
	N := len(s)
	if N < 2 {
		return false
	}

	// Find the rightmost ascent s[i] < s[i+1]
	i := N - 2
	for i >= 0 && !less(s[i], s[i+1]) {
		i--
	}
	if i < 0 {
		reverse(s)
		return false
	}

	// Swap s[i] with the rightmost element greater than it, then reverse the tail
	j := N - 1
	for !less(s[i], s[j]) {
		j--
	}
	s[i], s[j] = s[j], s[i]
	reverse(s[i+1:])
	return true
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func intLess(a, b int) bool {
	return a < b
}

// boolGreater orders true before false, so that stepping with it walks a selection vector
// from the "leading ones" layout down to the "trailing ones" layout.
func boolGreater(a, b bool) bool {
	return a && !b
}
