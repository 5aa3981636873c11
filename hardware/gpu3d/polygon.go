package gpu3d

// TextureFormat is one of the texture formats understood by the 3D engine
type TextureFormat int

// List of valid TextureFormat values. The numbering is the same as the TEXIMAGE_PARAM
// register so the geometry engine can store the field directly
const (
	TextureNone TextureFormat = iota
	TextureA3I5
	TexturePalette4
	TexturePalette16
	TexturePalette256
	TextureCompressed
	TextureA5I3
	TextureDirect
)

func (fmt TextureFormat) String() string {
	switch fmt {
	case TextureNone:
		return "none"
	case TextureA3I5:
		return "a3i5"
	case TexturePalette4:
		return "pal4"
	case TexturePalette16:
		return "pal16"
	case TexturePalette256:
		return "pal256"
	case TextureCompressed:
		return "cmp4x4"
	case TextureA5I3:
		return "a5i3"
	case TextureDirect:
		return "direct"
	}
	return "unknown"
}

// BlendMode is the polygon attribute controlling how a texel is combined
// with the interpolated vertex colour
type BlendMode int

// List of valid BlendMode values, numbered as in the POLYGON_ATTR register
const (
	Modulation BlendMode = iota
	Decal
	Toon
	Shadow
)

func (mode BlendMode) String() string {
	switch mode {
	case Modulation:
		return "modulation"
	case Decal:
		return "decal"
	case Toon:
		return "toon"
	case Shadow:
		return "shadow"
	}
	return "unknown"
}

// Vertex is a single corner of a polygon as received from the geometry
// engine. Coordinates are in screen space, having already been transformed,
// lit and clipped. Vertices are immutable for the duration of a frame.
type Vertex struct {
	// screen coordinates
	X int
	Y int

	// depth value used when the polygon is z-buffered
	Z int32

	// the perspective W value. the geometry engine can produce very large
	// values here so the full 64bits is kept until the rasteriser reduces it
	W int64

	// vertex colour with six bits per channel, packed a<<18|b<<12|g<<6|r
	Colour uint32

	// texture coordinates in 1:11:4 fixed point
	S int32
	T int32
}

// Polygon is a single polygon from the geometry engine, along with the
// texture and render attributes that apply to all of its vertices.
//
// Vertices are in winding order and describe a simple polygon. The edge
// walk in drawPolygon() relies on there being no self-intersection, which
// the geometry engine guarantees.
type Polygon struct {
	Vertices []Vertex

	TextureAddr uint32
	TextureFmt  TextureFormat
	PaletteAddr uint32

	// texture dimensions. always a power of two
	SizeS int
	SizeT int

	RepeatS bool
	RepeatT bool
	FlipS   bool
	FlipT   bool

	// palette index zero is treated as transparent for the paletted formats
	Transparent0 bool

	Mode BlendMode

	// polygon ID used by the shadow and outline features. six bits
	ID uint8

	// compare W values rather than Z values during the depth test
	WBuffer bool

	// widen the depth test to accept values within a margin of the buffered
	// depth
	DepthTestEqual bool

	// a translucent pixel normally leaves the depth buffer untouched. this
	// attribute changes that
	TransNewDepth bool
}

// Translucent returns true if the polygon must be deferred until after all
// solid polygons on the scanline have been drawn. A polygon is translucent
// if its vertex alpha is less than maximum or if its texture format carries
// its own alpha channel.
//
// Only the first vertex is consulted. The geometry engine gives every vertex
// of a translucent polygon the same alpha so checking one is enough. This is
// what the hardware does too.
func (p *Polygon) Translucent() bool {
	return (p.Vertices[0].Colour>>18)&0x3f < 0x3f || p.TextureFmt == TextureA3I5 || p.TextureFmt == TextureA5I3
}
