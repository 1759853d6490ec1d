package analysis

import "golang.org/x/exp/constraints"

// maxOf returns the largest element, or the zero value for an empty slice.
func maxOf[T constraints.Ordered](xs []T) T {
	var best T
	for i, x := range xs {
		if i == 0 || x > best {
			best = x
		}
	}
	return best
}

// chunks splits [0, n) into consecutive ranges of at most size elements.
func chunks(n, size int) [][2]int {
	if size < 1 {
		size = 1
	}
	out := make([][2]int, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		out = append(out, [2]int{lo, min(lo+size, n)})
	}
	return out
}
