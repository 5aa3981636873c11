package gpu3d

// the interpolation functions below are the numeric heart of the renderer.
// they work in 64bit arithmetic because the products of W values and screen
// coordinates can comfortably overflow 32bits
//
// all of them assume x1 <= x <= x2. values of x outside that range
// extrapolate rather than clamp, which is relied on by callers interpolating
// along a clipped edge

// interpolate returns the value between v1 and v2 corresponding to the
// position of x between x1 and x2
func interpolate(v1 int64, v2 int64, x1 int, x int, x2 int) int {
	return int((v1*int64(x2-x) + v2*int64(x-x1)) / int64(x2-x1))
}

// interpolateW returns the perspective depth factor between w1 and w2. this
// is not a linear interpolation: the reciprocal of W is what varies linearly
// across the screen
//
// the caller must ensure x2 > x1. a degenerate span never reaches this
// function because the pixel loop in rasterise() does not execute
func interpolateW(w1 int64, w2 int64, x1 int, x int, x2 int) int {
	return int(w2 * w1 * int64(x2-x1) / (w2*int64(x2-x) + w1*int64(x-x1)))
}

// interpolatePersp returns the perspective-correct value between v1 and v2.
// each endpoint is weighted by the other endpoint's W value so that values
// associated with distant vertices change more slowly across the span
func interpolatePersp(v1 int64, v2 int64, x1 int, x int, x2 int, w1 int64, w2 int64) int {
	return int((v1*w2*int64(x2-x) + v2*w1*int64(x-x1)) / (w2*int64(x2-x) + w1*int64(x-x1)))
}

// interpolateColour applies interpolate() to each of the RGB channels
// separately. the alpha channel is not interpolated; the larger of the two
// endpoint alphas is taken. this stops an opaque polygon developing
// translucent edges when one vertex happens to carry a lower alpha
func interpolateColour(c1 uint32, c2 uint32, x1 int, x int, x2 int) uint32 {
	r := interpolate(int64((c1>>0)&0x3f), int64((c2>>0)&0x3f), x1, x, x2)
	g := interpolate(int64((c1>>6)&0x3f), int64((c2>>6)&0x3f), x1, x, x2)
	b := interpolate(int64((c1>>12)&0x3f), int64((c2>>12)&0x3f), x1, x, x2)
	a := max((c1>>18)&0x3f, (c2>>18)&0x3f)
	return (a << 18) | (uint32(b) << 12) | (uint32(g) << 6) | uint32(r)
}

// interpolateColourPersp is the perspective-correct version of
// interpolateColour. the same maximum-alpha rule applies
func interpolateColourPersp(c1 uint32, c2 uint32, x1 int, x int, x2 int, w1 int64, w2 int64) uint32 {
	r := interpolatePersp(int64((c1>>0)&0x3f), int64((c2>>0)&0x3f), x1, x, x2, w1, w2)
	g := interpolatePersp(int64((c1>>6)&0x3f), int64((c2>>6)&0x3f), x1, x, x2, w1, w2)
	b := interpolatePersp(int64((c1>>12)&0x3f), int64((c2>>12)&0x3f), x1, x, x2, w1, w2)
	a := max((c1>>18)&0x3f, (c2>>18)&0x3f)
	return (a << 18) | (uint32(b) << 12) | (uint32(g) << 6) | uint32(r)
}
