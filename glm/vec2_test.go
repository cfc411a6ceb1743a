package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCeilDiv(t *testing.T) {
	cases := []struct {
		size, scale, want Vec2u
	}{
		{Vec2u{800, 600}, Vec2u{10, 10}, Vec2u{80, 60}},
		{Vec2u{801, 600}, Vec2u{10, 10}, Vec2u{81, 60}},
		{Vec2u{799, 1}, Vec2u{10, 10}, Vec2u{80, 1}},
		{Vec2u{0, 0}, Vec2u{3, 3}, Vec2u{0, 0}},
		{Vec2u{7, 9}, Vec2u{1, 1}, Vec2u{7, 9}},
		{Vec2u{math.MaxUint32, 600}, Vec2u{10, 10}, Vec2u{429496730, 60}},
		{Vec2u{math.MaxUint32, math.MaxUint32}, Vec2u{math.MaxUint32, 1}, Vec2u{1, math.MaxUint32}},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, CeilDiv(c.size, c.scale), "CeilDiv(%v, %v)", c.size, c.scale)
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2f{4, 6}
	b := Vec2f{2, 3}

	assert.Equal(t, Vec2f{6, 9}, a.Add(b))
	assert.Equal(t, Vec2f{2, 3}, a.Sub(b))
	assert.Equal(t, Vec2f{8, 12}, a.MulScalar(2))
	assert.Equal(t, float32(24), a.Area())
}

func TestSinCos(t *testing.T) {
	assert.InDelta(t, 1.0, Sin(math.Pi/2), 1e-5)
	assert.InDelta(t, 0.0, Cos(math.Pi/2), 1e-5)
}
