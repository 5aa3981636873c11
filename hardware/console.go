package hardware

import (
	"image"

	"github.com/jetsetilly/testds/hardware/geometry"
	"github.com/jetsetilly/testds/hardware/gpu3d"
	"github.com/jetsetilly/testds/hardware/memory/vram"
	"github.com/jetsetilly/testds/hardware/spec"
)

// Console gathers the parts of the machine that matter to 3D rendering: the
// geometry engine's polygon list, texture/palette memory and the rendering
// engine itself. The CPUs, the 2D engines and the rest of the memory system
// are out of scope.
type Console struct {
	VRAM     *vram.VRAM
	Geometry *geometry.List
	GPU      *gpu3d.Renderer
}

func Create() *Console {
	con := &Console{
		VRAM:     vram.Create(),
		Geometry: geometry.Create(),
	}
	con.GPU = gpu3d.Create(con.Geometry, con.VRAM)
	con.Reset()
	return con
}

func (con *Console) Reset() {
	con.GPU.Reset()

	// a sensible power-on depth: everything drawn in front of the far plane
	con.GPU.WriteClearDepth(0xffff, 0x7fff)
}

// RenderFrame renders a complete frame and returns it as an image. The
// renderer is walked scanline by scanline exactly as the video circuitry
// would, which is also what drives the block workers in background mode.
func (con *Console) RenderFrame() *image.RGBA {
	for line := 0; line < spec.Height; line++ {
		con.GPU.DrawScanline(line)
	}

	img := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	for line := 0; line < spec.Height; line++ {
		scanline := con.GPU.Scanline(line)
		for x, p := range scanline {
			idx := img.PixOffset(x, line)
			img.Pix[idx+0] = sixToEight(p >> 0)
			img.Pix[idx+1] = sixToEight(p >> 6)
			img.Pix[idx+2] = sixToEight(p >> 12)
			img.Pix[idx+3] = 255
		}
	}
	return img
}

// Run renders frames continuously at the console's refresh rate, calling the
// frame function with each finished image. Rendering ends when the stop
// channel is signalled or when the frame function returns an error.
func (con *Console) Run(stop chan bool, frame func(*image.RGBA) error) error {
	lim := newLimiter()
	defer lim.stop()

	for {
		select {
		case <-stop:
			return nil
		default:
		}

		if err := frame(con.RenderFrame()); err != nil {
			return err
		}

		lim.Wait()
	}
}

// End releases the renderer's block workers. The console must not be used
// after End() has been called.
func (con *Console) End() {
	con.GPU.End()
}

// sixToEight expands a six bit channel value to eight bits, replicating the
// top bits into the bottom so that full intensity maps to 255
func sixToEight(v uint32) uint8 {
	v &= 0x3f
	return uint8(v<<2 | v>>4)
}
