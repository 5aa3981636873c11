package gpu3d

import (
	"testing"

	"github.com/jetsetilly/testds/hardware/memory/vram"
	"github.com/jetsetilly/testds/test"
)

const (
	testRed   = uint32(0x3f<<18 | 0x3f)
	testGreen = uint32(0x3f<<18 | 0x3f<<6)
)

// a flat quad covering the given screen rectangle, at a constant depth and
// with a constant colour
func quad(x1 int, y1 int, x2 int, y2 int, z int32, colour uint32) []Vertex {
	return []Vertex{
		{X: x1, Y: y1, Z: z, W: 0x1000, Colour: colour},
		{X: x2, Y: y1, Z: z, W: 0x1000, Colour: colour},
		{X: x2, Y: y2, Z: z, W: 0x1000, Colour: colour},
		{X: x1, Y: y2, Z: z, W: 0x1000, Colour: colour},
	}
}

func createRasteriseRenderer(t *testing.T, geom Geometry) *Renderer {
	t.Helper()
	ren := Create(geom, vram.Create())
	t.Cleanup(ren.End)

	// push the clear depth to the far plane so polygons are visible
	ren.WriteClearDepth(0xffff, 0x7fff)

	return ren
}

func TestSpanBounds(t *testing.T) {
	geom := stubGeometry{
		{Vertices: quad(10, 0, 200, 100, 0x1000, testRed)},
	}
	ren := createRasteriseRenderer(t, geom)

	ren.drawScanline(50)

	// the span is inclusive of x1 and exclusive of x2
	test.ExpectEquality(t, ren.Pixel(9, 50), uint32(0))
	test.ExpectEquality(t, ren.Pixel(10, 50), pixelMarker|testRed)
	test.ExpectEquality(t, ren.Pixel(199, 50), pixelMarker|testRed)
	test.ExpectEquality(t, ren.Pixel(200, 50), uint32(0))

	// the top line of the polygon is drawn
	ren.drawScanline(0)
	test.ExpectEquality(t, ren.Pixel(100, 0), pixelMarker|testRed)

	// the bottom line is not
	ren.drawScanline(100)
	test.ExpectEquality(t, ren.Pixel(100, 100), uint32(0))
}

func TestFlatDepth(t *testing.T) {
	// a polygon with a single depth across all vertices gives every covered
	// pixel exactly that depth
	geom := stubGeometry{
		{Vertices: quad(10, 0, 200, 100, 0x1234, testRed)},
	}
	ren := createRasteriseRenderer(t, geom)

	ren.drawScanline(50)
	for x := 10; x < 200; x++ {
		test.ExpectEquality(t, ren.depthBuffer[50/48][x], 0x1234)
	}
}

func TestDepthTest(t *testing.T) {
	// the second polygon is at the same depth as the first. the strict test
	// rejects it and the equal margin does not help: the margin extends the
	// test away from the viewer, not towards it
	geom := stubGeometry{
		{Vertices: quad(10, 0, 200, 100, 0x1000, testRed)},
		{Vertices: quad(10, 0, 200, 100, 0x1000, testGreen), DepthTestEqual: true},
	}
	ren := createRasteriseRenderer(t, geom)
	ren.drawScanline(50)
	test.ExpectEquality(t, ren.Pixel(100, 50), pixelMarker|testRed)
}

func TestDepthTestCloser(t *testing.T) {
	geom := stubGeometry{
		{Vertices: quad(10, 0, 200, 100, 0x1000, testRed)},
		{Vertices: quad(10, 0, 200, 100, 0x0fff, testGreen)},
	}
	ren := createRasteriseRenderer(t, geom)
	ren.drawScanline(50)
	test.ExpectEquality(t, ren.Pixel(100, 50), pixelMarker|testGreen)
}

func TestWBufferDepth(t *testing.T) {
	// with w-buffering the depth of a flat polygon is its W value
	geom := stubGeometry{
		{Vertices: quad(10, 0, 200, 100, 0, testRed), WBuffer: true},
	}
	ren := createRasteriseRenderer(t, geom)

	ren.drawScanline(50)
	test.ExpectEquality(t, ren.depthBuffer[50/48][100], 0x1000)
}

func TestShadowStencil(t *testing.T) {
	// a shadow polygon with ID 0 is the shadow mask. it draws nothing and
	// sets the stencil bit wherever its depth test passes
	geom := stubGeometry{
		{Vertices: quad(10, 0, 200, 100, 0x1000, testRed), Mode: Shadow, ID: 0},
	}
	ren := createRasteriseRenderer(t, geom)

	ren.drawScanline(50)
	test.ExpectEquality(t, ren.Pixel(100, 50), uint32(0))
	test.ExpectSuccess(t, ren.stencilBuffer[50/48][100])
	test.ExpectFailure(t, ren.stencilBuffer[50/48][9])
}

func TestShadowMasked(t *testing.T) {
	// where the mask has set the stencil bit, the shadow volume draws
	// nothing and clears the bit again
	geom := stubGeometry{
		{Vertices: quad(10, 0, 200, 100, 0x1000, testRed), Mode: Shadow, ID: 0},
		{Vertices: quad(10, 0, 200, 100, 0x1000, testGreen), Mode: Shadow, ID: 5},
	}
	ren := createRasteriseRenderer(t, geom)

	ren.drawScanline(50)
	test.ExpectEquality(t, ren.Pixel(100, 50), uint32(0))
	test.ExpectFailure(t, ren.stencilBuffer[50/48][100])
}

func TestShadowUnmasked(t *testing.T) {
	// with a clear stencil bit and no matching polygon ID underneath, a
	// shadow polygon renders like any other
	geom := stubGeometry{
		{Vertices: quad(10, 0, 200, 100, 0x1000, testGreen), Mode: Shadow, ID: 5},
	}
	ren := createRasteriseRenderer(t, geom)

	ren.drawScanline(50)
	test.ExpectEquality(t, ren.Pixel(100, 50), pixelMarker|testGreen)
}

func TestShadowMatchingID(t *testing.T) {
	// a shadow polygon does not draw over a pixel already owned by a
	// polygon with the same ID. this stops a shadow volume shadowing its
	// own caster
	geom := stubGeometry{
		{Vertices: quad(10, 0, 200, 100, 0x2000, testRed), ID: 5},
		{Vertices: quad(10, 0, 200, 100, 0x1000, testGreen), Mode: Shadow, ID: 5},
	}
	ren := createRasteriseRenderer(t, geom)

	ren.drawScanline(50)
	test.ExpectEquality(t, ren.Pixel(100, 50), pixelMarker|testRed)
}

func TestTranslucentBlend(t *testing.T) {
	translucent := quad(10, 0, 200, 100, 0x1000, uint32(0x20<<18|0x3f<<6))

	geom := stubGeometry{
		{Vertices: quad(10, 0, 200, 100, 0x2000, testRed)},
		{Vertices: translucent},
	}
	ren := createRasteriseRenderer(t, geom)

	ren.drawScanline(50)

	// the blend weights the new colour by its alpha. the blended pixel
	// keeps the maximum alpha of the two
	r := uint32((63*(63-0x20) + 0*0x20) / 63)
	g := uint32((0*(63-0x20) + 63*0x20) / 63)
	test.ExpectEquality(t, ren.Pixel(100, 50), pixelMarker|0x3f<<18|g<<6|r)

	// a translucent pixel leaves the depth buffer alone
	test.ExpectEquality(t, ren.depthBuffer[50/48][100], 0x2000)
}

func TestTranslucentNewDepth(t *testing.T) {
	translucent := quad(10, 0, 200, 100, 0x1000, uint32(0x20<<18|0x3f<<6))

	geom := stubGeometry{
		{Vertices: quad(10, 0, 200, 100, 0x2000, testRed)},
		{Vertices: translucent, TransNewDepth: true},
	}
	ren := createRasteriseRenderer(t, geom)

	ren.drawScanline(50)
	test.ExpectEquality(t, ren.depthBuffer[50/48][100], 0x1000)
}

func TestTranslucentOverClear(t *testing.T) {
	// a translucent pixel over a transparent background is written as it
	// is, without blending
	geom := stubGeometry{
		{Vertices: quad(10, 0, 200, 100, 0x1000, uint32(0x20<<18|0x3f<<6))},
	}
	ren := createRasteriseRenderer(t, geom)

	ren.drawScanline(50)
	test.ExpectEquality(t, ren.Pixel(100, 50), pixelMarker|0x20<<18|0x3f<<6)
}

func TestAttribBuffer(t *testing.T) {
	geom := stubGeometry{
		{Vertices: quad(10, 0, 200, 100, 0x1000, testRed), ID: 42},
	}
	ren := createRasteriseRenderer(t, geom)

	ren.drawScanline(50)
	test.ExpectEquality(t, ren.attribBuffer[50/48][100], uint8(42))
	test.ExpectEquality(t, ren.attribBuffer[50/48][9], uint8(0))
}

func TestColourGradient(t *testing.T) {
	// a quad fading from black on the left to full red on the right. with a
	// constant W the horizontal interpolation is linear
	vertices := []Vertex{
		{X: 0, Y: 0, Z: 0x1000, W: 0x1000, Colour: 0x3f << 18},
		{X: 128, Y: 0, Z: 0x1000, W: 0x1000, Colour: testRed},
		{X: 128, Y: 100, Z: 0x1000, W: 0x1000, Colour: testRed},
		{X: 0, Y: 100, Z: 0x1000, W: 0x1000, Colour: 0x3f << 18},
	}

	geom := stubGeometry{{Vertices: vertices}}
	ren := createRasteriseRenderer(t, geom)

	ren.drawScanline(50)
	test.ExpectEquality(t, ren.Pixel(0, 50), pixelMarker|0x3f<<18)
	test.ExpectEquality(t, ren.Pixel(64, 50)&0x3f, uint32(31))
	test.ExpectEquality(t, ren.Pixel(127, 50)&0x3f, uint32(62))
}
