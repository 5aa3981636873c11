package gpu3d

import (
	"testing"

	"github.com/jetsetilly/testds/hardware/memory/vram"
	"github.com/jetsetilly/testds/test"
)

func createBlendRenderer(t *testing.T) *Renderer {
	t.Helper()
	ren := Create(stubGeometry{}, vram.Create())
	t.Cleanup(ren.End)
	return ren
}

func TestBlendModulation(t *testing.T) {
	ren := createBlendRenderer(t)

	p := &Polygon{Mode: Modulation}

	// full texel against full colour stays at full intensity
	white := uint32(0x3f<<18 | 0x3f<<12 | 0x3f<<6 | 0x3f)
	test.ExpectEquality(t, ren.blend(p, white, white), white)

	// a zero channel on either side forces the channel to zero
	test.ExpectEquality(t, ren.blend(p, white, 0x3f<<18), uint32(0x3f<<18))
	test.ExpectEquality(t, ren.blend(p, 0x3f<<18, white), uint32(0x3f<<18))

	// the halfway case: ((32)*(64)-1)/64
	texel := uint32(0x3f<<18 | 31)
	test.ExpectEquality(t, ren.blend(p, texel, white)&0x3f, uint32(31))
}

func TestBlendDecal(t *testing.T) {
	ren := createBlendRenderer(t)

	p := &Polygon{Mode: Decal}
	colour := uint32(0x30<<18 | 0x3f<<6)

	// a fully opaque texel replaces the colour channels. alpha always comes
	// from the vertex colour
	texel := uint32(0x3f<<18 | 0x3f)
	blended := ren.blend(p, texel, colour)
	test.ExpectEquality(t, blended&0x3f, uint32(0x3f*63/64))
	test.ExpectEquality(t, (blended>>6)&0x3f, uint32(0))
	test.ExpectEquality(t, blended>>18, uint32(0x30))

	// a fully transparent texel leaves the colour channels
	texel = uint32(0x3f)
	blended = ren.blend(p, texel, colour)
	test.ExpectEquality(t, blended&0x3f, uint32(0))
	test.ExpectEquality(t, (blended>>6)&0x3f, uint32(0x3f*63/64))

	// a half transparent texel mixes the two
	texel = uint32(32<<18 | 0x3f)
	blended = ren.blend(p, texel, colour)
	test.ExpectEquality(t, blended&0x3f, uint32(0x3f*32/64))
	test.ExpectEquality(t, (blended>>6)&0x3f, uint32(0x3f*31/64))
}

func TestBlendToon(t *testing.T) {
	ren := createBlendRenderer(t)

	// the table entry substitutes for the vertex colour, keyed on the
	// vertex red channel halved. entry 10 is full red
	ren.WriteToonTable(10, 0xffff, 0x001f)

	p := &Polygon{Mode: Toon}
	white := uint32(0x3f<<18 | 0x3f<<12 | 0x3f<<6 | 0x3f)
	colour := uint32(0x3f<<18 | 20)

	blended := ren.blend(p, white, colour)
	test.ExpectEquality(t, blended&0x3f, uint32(0x3f))
	test.ExpectEquality(t, (blended>>6)&0x3f, uint32(0))
	test.ExpectEquality(t, (blended>>12)&0x3f, uint32(0))
	test.ExpectEquality(t, blended>>18, uint32(0x3f))
}

func TestBlendHighlight(t *testing.T) {
	ren := createBlendRenderer(t)

	ren.WriteDisp3DCnt(0xffff, ctrlHighlight)
	ren.WriteToonTable(10, 0xffff, 0x001f)

	p := &Polygon{Mode: Toon}
	white := uint32(0x3f<<18 | 0x3f<<12 | 0x3f<<6 | 0x3f)
	colour := uint32(0x3f<<18 | 20)

	// highlight mode adds the table colour on top of the modulated result,
	// saturating at full intensity
	blended := ren.blend(p, white, colour)
	test.ExpectEquality(t, blended&0x3f, uint32(0x3f))
	test.ExpectEquality(t, (blended>>6)&0x3f, uint32(0))
}
