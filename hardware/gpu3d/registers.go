package gpu3d

import (
	"fmt"
	"strings"
)

// bits in the DISP3DCNT register
const (
	ctrlTextureMapping  = 0x0001
	ctrlHighlight       = 0x0002
	ctrlAlphaTest       = 0x0004
	ctrlAlphaBlending   = 0x0008
	ctrlAntiAliasing    = 0x0010
	ctrlEdgeMarking     = 0x0020
	ctrlFogAlphaOnly    = 0x0040
	ctrlFog             = 0x0080
	ctrlRAMUnderflow    = 0x1000
	ctrlVertexOverflow  = 0x2000
	ctrlRearPlaneBitmap = 0x4000
)

// the bits of DISP3DCNT that can be set through the bus. the two error bits
// are excluded: they are set by the hardware and can only be acknowledged
const ctrlWritableBits = 0x4fff

// WriteDisp3DCnt updates the DISP3DCNT register. Writing a one to either of
// the error bits (12 and 13) acknowledges the error by clearing the bit. All
// other bits follow the usual mask/value merge.
func (ren *Renderer) WriteDisp3DCnt(mask uint16, value uint16) {
	if value&ctrlRAMUnderflow == ctrlRAMUnderflow {
		ren.disp3DCnt &^= ctrlRAMUnderflow
	}
	if value&ctrlVertexOverflow == ctrlVertexOverflow {
		ren.disp3DCnt &^= ctrlVertexOverflow
	}

	mask &= ctrlWritableBits
	ren.disp3DCnt = (ren.disp3DCnt & ^mask) | (value & mask)
}

// Disp3DCnt returns the current value of the DISP3DCNT register. The error
// bits are a status channel for external consumers; the renderer itself
// never treats them as a failure.
func (ren *Renderer) Disp3DCnt() uint16 {
	return ren.disp3DCnt
}

// WriteClearColor updates the colour that every pixel of a scanline takes
// before any polygons are drawn. The register packs a 15bit colour and a
// 5bit alpha (bits 16 to 20); both pass through the usual channel expansion.
func (ren *Renderer) WriteClearColor(mask uint32, value uint32) {
	v := value & mask
	ren.clearColour = rgba5ToRgba6(((v & 0x001f0000) >> 1) | (v & 0x00007fff))
}

// WriteClearDepth updates the depth value every pixel of a scanline takes
// before any polygons are drawn. The 15bit register value is scaled to the
// 24bit depth range, with the maximum value rounding up to 0xffffff.
func (ren *Renderer) WriteClearDepth(mask uint16, value uint16) {
	v := int(value & mask)
	ren.clearDepth = v*0x200 + ((v+1)/0x8000)*0x1ff
}

// WriteToonTable updates one of the 32 entries of the toon shading table.
func (ren *Renderer) WriteToonTable(index int, mask uint16, value uint16) {
	mask &= 0x7fff
	ren.toonTable[index] = rgba5ToRgba6(uint32(value & mask))
}

func (ren *Renderer) ctrlString() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("tex=%v ", ren.disp3DCnt&ctrlTextureMapping == ctrlTextureMapping))
	s.WriteString(fmt.Sprintf("hi=%v ", ren.disp3DCnt&ctrlHighlight == ctrlHighlight))
	s.WriteString(fmt.Sprintf("at=%v ", ren.disp3DCnt&ctrlAlphaTest == ctrlAlphaTest))
	s.WriteString(fmt.Sprintf("ab=%v ", ren.disp3DCnt&ctrlAlphaBlending == ctrlAlphaBlending))
	s.WriteString(fmt.Sprintf("aa=%v ", ren.disp3DCnt&ctrlAntiAliasing == ctrlAntiAliasing))
	s.WriteString(fmt.Sprintf("em=%v ", ren.disp3DCnt&ctrlEdgeMarking == ctrlEdgeMarking))
	s.WriteString(fmt.Sprintf("fog=%v ", ren.disp3DCnt&ctrlFog == ctrlFog))
	s.WriteString(fmt.Sprintf("unf=%v ", ren.disp3DCnt&ctrlRAMUnderflow == ctrlRAMUnderflow))
	s.WriteString(fmt.Sprintf("ovf=%v", ren.disp3DCnt&ctrlVertexOverflow == ctrlVertexOverflow))
	return s.String()
}
