// Package spec defines the fixed geometry of the DS 3D engine's output.
//
// Unlike a television based console there is no NTSC/PAL distinction to worry
// about. The 3D engine always produces a 256x192 image at close to 60Hz,
// regardless of region.
package spec

// dimensions of the rendered image in pixels
const (
	Width  = 256
	Height = 192
)

// the real hardware does not keep a full frame of depth/attribute state. it
// works with a cache of 48 scanlines at a time, meaning the frame is rendered
// in four blocks
//
// "The 3D Engine is processing the picture (and is outputting data to the 2D
// Engine) in realtime, ie. without using a full-screen buffer (only with a
// small scanline-buffer)" - GBATEK
const (
	BlockLines = 48
	NumBlocks  = Height / BlockLines
)

// the vertical refresh rate of the console. the 3D engine renders one frame
// per refresh
const RefreshHz = 59.8261

// number of entries in the toon shading table
const ToonTableLen = 32

// polygon size limits after clipping by the geometry engine
const (
	MinPolygonVertices = 3
	MaxPolygonVertices = 8
)
