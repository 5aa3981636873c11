package gpu3d

import "github.com/jetsetilly/testds/hardware/memory/vram"

// wrapCoord resolves a texture coordinate that has strayed outside the
// texture. with the repeat attribute the coordinate wraps, mirroring on
// every odd wrap if the flip attribute is also set. without the repeat
// attribute the coordinate clamps to the nearest edge
func wrapCoord(v int, size int, repeat bool, flip bool) int {
	if repeat {
		var count int
		for v < 0 {
			v += size
			count++
		}
		for v >= size {
			v -= size
			count++
		}
		if flip && count%2 != 0 {
			v = size - 1 - v
		}
		return v
	}
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}

// readTexture decodes the texel at coordinate s/t of the polygon's texture.
// The returned colour is in the six bit per channel format. A value of zero
// means fully transparent, which is also the result of any access to an
// unmapped texture or palette slot.
func (ren *Renderer) readTexture(p *Polygon, s int, t int) uint32 {
	s = wrapCoord(s, p.SizeS, p.RepeatS, p.FlipS)
	t = wrapCoord(t, p.SizeT, p.RepeatT, p.FlipT)

	switch p.TextureFmt {
	case TextureA3I5:
		return ren.texelA3I5(p, s, t)
	case TexturePalette4:
		return ren.texelPaletted(p, s, t, 2)
	case TexturePalette16:
		return ren.texelPaletted(p, s, t, 4)
	case TexturePalette256:
		return ren.texelPaletted(p, s, t, 8)
	case TextureCompressed:
		return ren.texelCompressed(p, s, t)
	case TextureA5I3:
		return ren.texelA5I3(p, s, t)
	}

	return ren.texelDirect(p, s, t)
}

// texelDirect handles the direct colour format. one 16bit colour word per
// texel, with the top bit acting as a one bit alpha channel
func (ren *Renderer) texelDirect(p *Polygon, s int, t int) uint32 {
	colour, ok := ren.mem.Texture16(p.TextureAddr + uint32(t*p.SizeS+s)*2)
	if !ok {
		return 0
	}
	var alpha uint32
	if colour&0x8000 == 0x8000 {
		alpha = 0x1f
	}
	return rgba5ToRgba6((alpha << 15) | uint32(colour)&0x7fff)
}

// texelA3I5 handles the A3I5 translucent format. each byte carries a five
// bit palette index and a three bit alpha value. the alpha expansion from
// three to five bits is alpha*4 + alpha/2
func (ren *Renderer) texelA3I5(p *Polygon, s int, t int) uint32 {
	index, ok := ren.mem.Texture8(p.TextureAddr + uint32(t*p.SizeS+s))
	if !ok {
		return 0
	}
	colour, ok := ren.mem.Palette16(p.PaletteAddr + uint32(index&0x1f)*2)
	if !ok {
		return 0
	}
	alpha := uint32(index>>5)*4 + uint32(index>>5)/2
	return rgba5ToRgba6((alpha << 15) | uint32(colour)&0x7fff)
}

// texelA5I3 handles the A5I3 translucent format. each byte carries a three
// bit palette index and a five bit alpha value, used without expansion
func (ren *Renderer) texelA5I3(p *Polygon, s int, t int) uint32 {
	index, ok := ren.mem.Texture8(p.TextureAddr + uint32(t*p.SizeS+s))
	if !ok {
		return 0
	}
	colour, ok := ren.mem.Palette16(p.PaletteAddr + uint32(index&0x07)*2)
	if !ok {
		return 0
	}
	alpha := uint32(index >> 3)
	return rgba5ToRgba6((alpha << 15) | uint32(colour)&0x7fff)
}

// texelPaletted handles the three plain paletted formats. the bits argument
// is the width of a palette index: 2, 4 or 8 bits, for the 4, 16 and 256
// colour formats respectively
func (ren *Renderer) texelPaletted(p *Polygon, s int, t int, bits int) uint32 {
	texel := t*p.SizeS + s
	perByte := 8 / bits

	data, ok := ren.mem.Texture8(p.TextureAddr + uint32(texel/perByte))
	if !ok {
		return 0
	}
	index := (data >> ((texel % perByte) * bits)) & uint8(1<<bits-1)

	if p.Transparent0 && index == 0 {
		return 0
	}

	colour, ok := ren.mem.Palette16(p.PaletteAddr + uint32(index)*2)
	if !ok {
		return 0
	}
	return rgba5ToRgba6((0x1f << 15) | uint32(colour))
}

// texelCompressed handles the 4x4 block compressed format. texels are two
// bit indices into a four colour palette chosen per tile. the per-tile
// palette base and interpolation mode live in a header word stored in the
// second half of texture slot 1 (or the second half of slot 2 for textures
// based in slot 2)
func (ren *Renderer) texelCompressed(p *Polygon, s int, t int) uint32 {
	tile := (t/4)*(p.SizeS/4) + s/4

	data, ok := ren.mem.Texture8(p.TextureAddr + uint32(tile*4+t%4))
	if !ok {
		return 0
	}
	index := (data >> ((s % 4) * 2)) & 0x03

	// the header for the tile. the header area begins at half the texture's
	// offset into its slot
	header := vram.TextureSlotSize + (p.TextureAddr%vram.TextureSlotSize)/2
	if p.TextureAddr/vram.TextureSlotSize == 2 {
		header += 0x10000
	}
	palBase, ok := ren.mem.Texture16(header + uint32(tile)*2)
	if !ok {
		return 0
	}

	palette := p.PaletteAddr + uint32(palBase&0x3fff)*4

	lookup := func(idx uint8) uint32 {
		colour, ok := ren.mem.Palette16(palette + uint32(idx)*2)
		if !ok {
			return 0
		}
		return rgba5ToRgba6((0x1f << 15) | uint32(colour))
	}

	switch palBase >> 14 {
	case 0:
		// index 3 is transparent
		if index == 3 {
			return 0
		}
		return lookup(index)

	case 1:
		// index 2 is the midpoint of entries 0 and 1. index 3 is transparent
		switch index {
		case 2:
			return interpolateColour(lookup(0), lookup(1), 0, 1, 2)
		case 3:
			return 0
		}
		return lookup(index)

	case 2:
		// all four indices are direct lookups
		return lookup(index)
	}

	// mode 3: indices 2 and 3 are 3/8 and 5/8 blends of entries 0 and 1
	switch index {
	case 2:
		return interpolateColour(lookup(0), lookup(1), 0, 3, 8)
	case 3:
		return interpolateColour(lookup(0), lookup(1), 0, 5, 8)
	}
	return lookup(index)
}
