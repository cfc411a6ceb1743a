package glm

import "golang.org/x/exp/constraints"

type Vec2[T Numeric] [2]T

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
	}
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
	}
}

func (lhs Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{
		lhs[0] * s,
		lhs[1] * s,
	}
}

// Area returns the product of both components, e.g. the number of
// cells in a grid of this size.
func (lhs Vec2[T]) Area() T {
	return lhs[0] * lhs[1]
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}

// CeilDiv divides each component of lhs by the matching component
// of rhs, rounding up. The divisor must not contain a zero.
func CeilDiv[T constraints.Unsigned](lhs, rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		ceilDiv(lhs[0], rhs[0]),
		ceilDiv(lhs[1], rhs[1]),
	}
}

// ceilDiv does not overflow, even for values close to the maximum of T.
func ceilDiv[T constraints.Unsigned](lhs, rhs T) T {
	quotient := lhs / rhs
	if lhs%rhs != 0 {
		quotient++
	}

	return quotient
}
