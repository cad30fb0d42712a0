// Package palette maps strings to stable palette indices for tag and cover
// styling.
//
// The mapping is a pure function: the same string always lands on the same
// palette slot, across processes and platforms. Hashing runs over Unicode
// code points, so the result does not depend on any byte encoding of the
// input.
package palette

// Index returns a stable palette index in [0, size) for s: the
// position-weighted sum of the code points of s, modulo size. A size of zero
// or less yields 0.
func Index(s string, size int) int {
	if size <= 0 {
		return 0
	}
	sum := 0
	i := 0
	for _, r := range s {
		i++
		sum += int(r) * i
	}
	return sum % size
}
