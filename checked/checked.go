// Package checked provides overflow-checked arithmetic on signed integers.
// Every operation reports failure instead of wrapping, so parsing code can
// accumulate user-controlled magnitudes without ever producing a silently
// truncated value.
package checked

import "golang.org/x/exp/constraints"

// Add returns a + b and true, or zero and false if the sum overflows T.
func Add[T constraints.Signed](a, b T) (T, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// Mul returns a * b and true, or zero and false if the product overflows T.
func Mul[T constraints.Signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// Negating the minimum value is the one product the division check
	// below cannot probe without itself overflowing.
	if b == -1 {
		return Neg(a)
	}
	product := a * b
	if product/b != a {
		return 0, false
	}
	return product, true
}

// Neg returns -a and true, or zero and false if a is the minimum value of T,
// whose negation is not representable.
func Neg[T constraints.Signed](a T) (T, bool) {
	if a == -a && a != 0 {
		return 0, false
	}
	return -a, true
}
