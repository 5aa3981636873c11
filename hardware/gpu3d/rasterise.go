package gpu3d

import "github.com/jetsetilly/testds/hardware/spec"

// every pixel written by the 3D engine is marked with this bit. the 2D
// compositor uses it to tell 3D pixels apart from the backdrop when it
// blends the 3D layer with the 2D layers
const pixelMarker = 1 << 26

// rasterise draws the span of the polygon that covers the given scanline.
// v1/v2 are the top and bottom vertices of the left edge and v3/v4 the top
// and bottom vertices of the right edge, as found by drawPolygon()
func (ren *Renderer) rasterise(line int, p *Polygon, v1 *Vertex, v2 *Vertex, v3 *Vertex, v4 *Vertex) {
	blk := line / spec.BlockLines

	// reduce the W values of all four vertices to 16bit range, shifting in
	// lockstep so they keep their relative magnitude. the shift total is
	// restored to the depth value after perspective interpolation
	vw := [4]int64{v1.W, v2.W, v3.W, v4.W}
	var wShift int
	for i := range vw {
		for vw[i] != int64(int16(vw[i])) {
			for j := range vw {
				vw[j] >>= 4
			}
			wShift += 4
		}
	}

	// the X bounds of the polygon on the current line
	x1 := interpolate(int64(v1.X), int64(v2.X), v1.Y, line, v2.Y)
	x2 := interpolate(int64(v3.X), int64(v4.X), v3.Y, line, v4.Y)

	// the Z values of the polygon edges on the current line. not needed when
	// the polygon is w-buffered
	var z1, z2 int
	if !p.WBuffer {
		z1 = interpolate(int64(v1.Z), int64(v2.Z), v1.Y, line, v2.Y)
		z2 = interpolate(int64(v3.Z), int64(v4.Z), v3.Y, line, v4.Y)
	}

	// the W values of the polygon edges on the current line
	w1 := interpolateW(vw[0], vw[1], v1.Y, line, v2.Y)
	w2 := interpolateW(vw[2], vw[3], v3.Y, line, v4.Y)

	// vertex colour and texture coordinates at the polygon edges. these are
	// interpolated lazily: a polygon that fails the depth test across the
	// whole span never needs them
	var c1, c2 uint32
	var s1, s2, t1, t2 int
	var colourDone, texDone bool

	for x := x1; x < x2; x++ {
		// the depth of the current pixel
		var depth int
		if p.WBuffer {
			depth = interpolateW(int64(w1), int64(w2), x1, x, x2) << wShift
		} else {
			depth = interpolate(int64(z1), int64(z2), x1, x, x2)
		}

		// the depth test proper. the buffered depth must be strictly greater
		// although a polygon can opt in to an "equal" test which accepts
		// anything within a margin of 0x200
		if !((p.DepthTestEqual && ren.depthBuffer[blk][x]-0x200 >= depth) || ren.depthBuffer[blk][x] > depth) {
			continue
		}

		if p.Mode == Shadow {
			if p.ID == 0 {
				// shadow polygons with ID 0 set a stencil bit instead of
				// rendering anything
				ren.stencilBuffer[blk][x] = true
				continue
			}
			if ren.stencilBuffer[blk][x] || ren.attribBuffer[blk][x] == p.ID {
				// shadow polygons with other IDs only render where the
				// stencil bit is clear and the pixel was drawn by a polygon
				// with a different ID
				ren.stencilBuffer[blk][x] = false
				continue
			}
		}

		if !colourDone {
			c1 = interpolateColourPersp(v1.Colour, v2.Colour, v1.Y, line, v2.Y, vw[0], vw[1])
			c2 = interpolateColourPersp(v3.Colour, v4.Colour, v3.Y, line, v4.Y, vw[2], vw[3])
			colourDone = true
		}

		colour := interpolateColourPersp(c1, c2, x1, x, x2, int64(w1), int64(w2))

		if p.TextureFmt != TextureNone {
			if !texDone {
				s1 = interpolatePersp(int64(v1.S), int64(v2.S), v1.Y, line, v2.Y, vw[0], vw[1])
				s2 = interpolatePersp(int64(v3.S), int64(v4.S), v3.Y, line, v4.Y, vw[2], vw[3])
				t1 = interpolatePersp(int64(v1.T), int64(v2.T), v1.Y, line, v2.Y, vw[0], vw[1])
				t2 = interpolatePersp(int64(v3.T), int64(v4.T), v3.Y, line, v4.Y, vw[2], vw[3])
				texDone = true
			}

			// texture coordinates at the current pixel, dropping the four
			// fractional bits before sampling
			s := interpolatePersp(int64(s1), int64(s2), x1, x, x2, int64(w1), int64(w2))
			t := interpolatePersp(int64(t1), int64(t2), x1, x, x2, int64(w1), int64(w2))

			texel := ren.readTexture(p, s>>4, t>>4)
			colour = ren.blend(p, texel, colour)
		}

		// pixels with zero alpha are discarded rather than written
		if colour&0xfc0000 == 0 {
			continue
		}

		pixel := &ren.framebuffer[line*spec.Width+x]

		if (colour>>18)&0x3f < 0x3f && *pixel&0xfc0000 != 0 {
			// the new pixel is translucent and the old pixel is not itself
			// transparent. blend the two, weighted by the new pixel's alpha
			*pixel = pixelMarker | interpolateColour(*pixel, colour, 0, int((colour>>18)&0x3f), 63)
			if p.TransNewDepth {
				ren.depthBuffer[blk][x] = depth
			}
		} else {
			*pixel = pixelMarker | colour
			ren.depthBuffer[blk][x] = depth
		}

		ren.attribBuffer[blk][x] = p.ID
	}
}

// blend combines a texel with the interpolated vertex colour according to
// the polygon's blend mode.
//
// The formulas are a translation of the pseudocode in GBATEK.
func (ren *Renderer) blend(p *Polygon, texel uint32, colour uint32) uint32 {
	switch p.Mode {
	case Modulation:
		r := ((((texel>>0)&0x3f)+1)*(((colour>>0)&0x3f)+1) - 1) / 64
		g := ((((texel>>6)&0x3f)+1)*(((colour>>6)&0x3f)+1) - 1) / 64
		b := ((((texel>>12)&0x3f)+1)*(((colour>>12)&0x3f)+1) - 1) / 64
		a := ((((texel>>18)&0x3f)+1)*(((colour>>18)&0x3f)+1) - 1) / 64
		return (a << 18) | (b << 12) | (g << 6) | r

	case Decal, Shadow:
		at := (texel >> 18) & 0x3f
		r := (((texel>>0)&0x3f)*at + ((colour>>0)&0x3f)*(63-at)) / 64
		g := (((texel>>6)&0x3f)*at + ((colour>>6)&0x3f)*(63-at)) / 64
		b := (((texel>>12)&0x3f)*at + ((colour>>12)&0x3f)*(63-at)) / 64
		a := (colour >> 18) & 0x3f
		return (a << 18) | (b << 12) | (g << 6) | r

	case Toon:
		// the toon table entry substitutes for the vertex colour, keyed on
		// the reduced red channel. alpha still comes from the vertex colour
		toon := ren.toonTable[((colour>>0)&0x3f)/2]
		r := ((((texel>>0)&0x3f)+1)*(((toon>>0)&0x3f)+1) - 1) / 64
		g := ((((texel>>6)&0x3f)+1)*(((toon>>6)&0x3f)+1) - 1) / 64
		b := ((((texel>>12)&0x3f)+1)*(((toon>>12)&0x3f)+1) - 1) / 64
		a := ((((texel>>18)&0x3f)+1)*(((colour>>18)&0x3f)+1) - 1) / 64

		if ren.disp3DCnt&ctrlHighlight == ctrlHighlight {
			// highlight mode brightens with the table colour instead
			r = min(r+((toon>>0)&0x3f), 63)
			g = min(g+((toon>>6)&0x3f), 63)
			b = min(b+((toon>>12)&0x3f), 63)
		}

		return (a << 18) | (b << 12) | (g << 6) | r
	}

	return colour
}
