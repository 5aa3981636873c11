package gpu3d

import (
	"testing"

	"github.com/jetsetilly/testds/test"
)

func TestInterpolate(t *testing.T) {
	// endpoints
	test.ExpectEquality(t, interpolate(10, 90, 0, 0, 8), 10)
	test.ExpectEquality(t, interpolate(10, 90, 0, 8, 8), 90)

	// midpoint
	test.ExpectEquality(t, interpolate(10, 90, 0, 4, 8), 50)

	// a constant span interpolates to the constant everywhere
	for x := 0; x <= 8; x++ {
		test.ExpectEquality(t, interpolate(7, 7, 0, x, 8), 7)
	}

	// positions outside the span extrapolate
	test.ExpectEquality(t, interpolate(10, 90, 0, 16, 8), 170)
}

func TestInterpolateW(t *testing.T) {
	// when both endpoints share a W value the result is that W value at
	// every position. this is the situation for any polygon drawn without
	// perspective
	for x := 0; x <= 8; x++ {
		test.ExpectEquality(t, interpolateW(0x1000, 0x1000, 0, x, 8), 0x1000)
	}

	// endpoints are exact even when the Ws differ
	test.ExpectEquality(t, interpolateW(0x1000, 0x4000, 0, 0, 8), 0x1000)
	test.ExpectEquality(t, interpolateW(0x1000, 0x4000, 0, 8, 8), 0x4000)

	// the reciprocal of W varies linearly so the halfway point is the
	// harmonic mean of the endpoints, not the arithmetic mean
	test.ExpectEquality(t, interpolateW(0x1000, 0x4000, 0, 4, 8), 0x1999)
}

func TestInterpolatePersp(t *testing.T) {
	// with equal W values perspective interpolation degenerates to linear
	for x := 0; x <= 8; x++ {
		test.ExpectEquality(t,
			interpolatePersp(10, 90, 0, x, 8, 0x1000, 0x1000),
			interpolate(10, 90, 0, x, 8),
		)
	}

	// endpoints are exact regardless of W
	test.ExpectEquality(t, interpolatePersp(10, 90, 0, 0, 8, 0x1000, 0x4000), 10)
	test.ExpectEquality(t, interpolatePersp(10, 90, 0, 8, 8, 0x1000, 0x4000), 90)

	// a larger W on the second vertex pulls the midpoint value towards the
	// first vertex
	v := interpolatePersp(10, 90, 0, 4, 8, 0x1000, 0x4000)
	test.ExpectSuccess(t, v < 50)
	test.ExpectSuccess(t, v >= 10)
}

func TestInterpolateColour(t *testing.T) {
	c1 := uint32(0x3f<<18 | 10<<12 | 20<<6 | 30)
	c2 := uint32(0x3f<<18 | 30<<12 | 40<<6 | 50)

	test.ExpectEquality(t, interpolateColour(c1, c2, 0, 0, 8), c1)
	test.ExpectEquality(t, interpolateColour(c1, c2, 0, 8, 8), c2)
	test.ExpectEquality(t, interpolateColour(c1, c2, 0, 4, 8), uint32(0x3f<<18|20<<12|30<<6|40))
}

func TestInterpolateColourAlpha(t *testing.T) {
	// alpha is never interpolated. the larger of the two endpoint alphas
	// applies across the whole span
	c1 := uint32(0x3f << 18)
	c2 := uint32(0x10 << 18)

	for x := 0; x <= 8; x++ {
		test.ExpectEquality(t, interpolateColour(c1, c2, 0, x, 8)>>18, uint32(0x3f))
		test.ExpectEquality(t, interpolateColourPersp(c1, c2, 0, x, 8, 0x1000, 0x4000)>>18, uint32(0x3f))
	}
}
