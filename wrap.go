package immu

import "golang.org/x/exp/constraints"

// Wrap maps v into the half-open range [0, n) by wrapping around, so that
// coordinates walked off either edge re-enter from the other side:
// Wrap(-1, 5) == 4, Wrap(5, 5) == 0. n must be positive; Wrap panics on
// n == 0 (integer division) and is unspecified for negative n.
func Wrap[T constraints.Integer](v, n T) T {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
