// Package gpu3d emulates the rendering engine half of the DS 3D hardware.
// It takes the polygon list prepared by the geometry engine and rasterises
// it into a framebuffer, which the 2D engine then treats as another layer.
//
// The emphasis throughout is on reproducing the hardware's arithmetic
// exactly: the limited precision perspective interpolation, the paletted and
// compressed texture formats, and the quirks of the shadow and toon render
// modes. Where the hardware's behaviour looks odd it is almost certainly
// deliberate and should not be "fixed" without hardware verification.
package gpu3d

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/testds/hardware/memory/vram"
	"github.com/jetsetilly/testds/hardware/spec"
)

// Geometry is the interface to the geometry engine's polygon list. The list
// is a read-only snapshot: it must not change while a frame is being
// rendered. On the real console this is enforced by the geometry buffers
// only being swappable at V-blank.
type Geometry interface {
	PolygonCount() int
	Polygon(i int) *Polygon
}

type Renderer struct {
	geom Geometry
	mem  *vram.VRAM

	// register state. mutated only through the Write* functions, which the
	// bus serialises. never written during rendering
	disp3DCnt   uint16
	clearColour uint32
	clearDepth  int
	toonTable   [spec.ToonTableLen]uint32

	// the colour framebuffer covers the whole frame. the real hardware only
	// ever holds 48 scanlines of rendered output but a full frame buffer
	// produces identical results and is much more convenient
	framebuffer [spec.Width * spec.Height]uint32

	// depth, stencil and polygon ID state is sized for a single 48 line
	// block, as in the real hardware. each buffer is cleared at the start of
	// every scanline and reused from one block to the next
	depthBuffer   [spec.NumBlocks][spec.Width]int
	attribBuffer  [spec.NumBlocks][spec.Width]uint8
	stencilBuffer [spec.NumBlocks][spec.Width]bool

	// whether to render in the background across the block workers. read at
	// the start of every DrawScanline() call
	threaded bool

	// the block workers and their coordination channels. see threads.go
	workers [spec.NumBlocks]worker
	pending [spec.NumBlocks]bool
	quit    chan bool
}

func Create(geom Geometry, mem *vram.VRAM) *Renderer {
	ren := &Renderer{
		geom: geom,
		mem:  mem,
		quit: make(chan bool),
	}
	ren.startWorkers()
	return ren
}

// Reset the renderer to its power-on state. Register state is zeroed but
// the framebuffer and the block buffers are left alone: on the hardware
// their contents are undefined until the first frame is rendered into them.
func (ren *Renderer) Reset() {
	ren.disp3DCnt = 0
	ren.clearColour = 0
	ren.clearDepth = 0
	clear(ren.toonTable[:])
}

// SetThreaded selects between immediate rendering and background rendering
// across the block workers. The setting should only be changed between
// frames.
func (ren *Renderer) SetThreaded(threaded bool) {
	ren.threaded = threaded
}

// drawScanline renders every polygon that touches a single scanline. solid
// polygons are drawn first, in submission order; translucent polygons are
// held back and drawn after, also in submission order
func (ren *Renderer) drawScanline(line int) {
	blk := line / spec.BlockLines

	// clear the scanline buffers with the clear values
	for i := 0; i < spec.Width; i++ {
		ren.framebuffer[line*spec.Width+i] = ren.clearColour
		ren.depthBuffer[blk][i] = ren.clearDepth
		ren.attribBuffer[blk][i] = 0
		ren.stencilBuffer[blk][i] = false
	}

	var translucent []*Polygon

	for i := 0; i < ren.geom.PolygonCount(); i++ {
		p := ren.geom.Polygon(i)
		if p.Translucent() {
			translucent = append(translucent, p)
		} else {
			ren.drawPolygon(line, p)
		}
	}

	for _, p := range translucent {
		ren.drawPolygon(line, p)
	}
}

// Pixel returns the finished pixel at the coordinate, in the six bit per
// channel packed format. Bit 26 of the value is set if the pixel was written
// by the 3D engine, as opposed to being the clear colour.
//
// The pixel for a scanline is only meaningful once DrawScanline() has been
// called for that line (and, in background mode, for the last line of its
// block).
func (ren *Renderer) Pixel(x int, line int) uint32 {
	return ren.framebuffer[line*spec.Width+x]
}

// Scanline returns the finished pixels for a whole scanline. The slice
// aliases the renderer's framebuffer and must not be written to.
func (ren *Renderer) Scanline(line int) []uint32 {
	return ren.framebuffer[line*spec.Width : (line+1)*spec.Width]
}

func (ren *Renderer) Label() string {
	return "GPU3D"
}

func (ren *Renderer) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s: %s\n", ren.Label(), ren.ctrlString()))
	s.WriteString(fmt.Sprintf("clear: colour=%06x depth=%06x\n", ren.clearColour, ren.clearDepth))
	s.WriteString(fmt.Sprintf("polygons=%d threaded=%v", ren.geom.PolygonCount(), ren.threaded))
	return s.String()
}
