package gpu3d

// colours inside the 3D engine have six bits per channel, packed into a
// uint32 as a<<18|b<<12|g<<6|r. the extra bits above the alpha channel are
// free for markers (see pixelMarker in rasterise.go)

// rgba5ToRgba6 converts a 15bit colour (plus 5bit alpha in bits 15-19) to the
// six bit per channel format.
//
// The expansion is not a plain doubling. Every non-zero channel value gains
// the low bit, giving the 0 -> 0 and 31 -> 63 mapping the hardware uses.
func rgba5ToRgba6(colour uint32) uint32 {
	r := (colour >> 0) & 0x1f
	g := (colour >> 5) & 0x1f
	b := (colour >> 10) & 0x1f
	a := (colour >> 15) & 0x1f
	r = r*2 + (r+31)/32
	g = g*2 + (g+31)/32
	b = b*2 + (b+31)/32
	a = a*2 + (a+31)/32
	return (a << 18) | (b << 12) | (g << 6) | r
}
