package geometry

import (
	"fmt"

	"github.com/jetsetilly/testds/hardware/gpu3d"
	"github.com/jetsetilly/testds/hardware/spec"
)

// the scenes in this file are pre-transformed stand-ins for the output of
// the geometry engine. coordinates are already in screen space and every
// vertex has a uniform W, as though the scene had been through an
// orthographic projection

// rgb packs a six bit per channel colour in the renderer's format
func rgb(r uint32, g uint32, b uint32, a uint32) uint32 {
	return (a << 18) | (b << 12) | (g << 6) | r
}

const flatW = 0x1000

func vertex(x int, y int, z int32, colour uint32) gpu3d.Vertex {
	return gpu3d.Vertex{X: x, Y: y, Z: z, W: flatW, Colour: colour}
}

// Gradient is a single opaque triangle with a different primary colour at
// each corner.
func Gradient(l *List) {
	l.Add(gpu3d.Polygon{
		Vertices: []gpu3d.Vertex{
			vertex(spec.Width/2, 10, 0x1000, rgb(63, 0, 0, 63)),
			vertex(20, spec.Height-20, 0x1000, rgb(0, 63, 0, 63)),
			vertex(spec.Width-20, spec.Height-20, 0x1000, rgb(0, 0, 63, 63)),
		},
	})
}

// Overlap is two quads, the nearer of which is translucent. It exercises the
// depth test and the framebuffer alpha blend.
func Overlap(l *List) {
	l.Add(gpu3d.Polygon{
		Vertices: []gpu3d.Vertex{
			vertex(40, 30, 0x2000, rgb(63, 50, 0, 63)),
			vertex(170, 30, 0x2000, rgb(63, 50, 0, 63)),
			vertex(170, 130, 0x2000, rgb(63, 20, 0, 63)),
			vertex(40, 130, 0x2000, rgb(63, 20, 0, 63)),
		},
		ID: 1,
	})
	l.Add(gpu3d.Polygon{
		Vertices: []gpu3d.Vertex{
			vertex(90, 70, 0x1000, rgb(0, 30, 63, 40)),
			vertex(220, 70, 0x1000, rgb(0, 30, 63, 40)),
			vertex(220, 170, 0x1000, rgb(0, 30, 63, 40)),
			vertex(90, 170, 0x1000, rgb(0, 30, 63, 40)),
		},
		ID: 2,
	})
}

// Shadowed is a floor quad with a shadow cast onto part of it. The shadow is
// built in the two-pass way the hardware requires: a mask polygon with ID 0
// followed by the shadow proper with a non-zero ID.
func Shadowed(l *List) {
	l.Add(gpu3d.Polygon{
		Vertices: []gpu3d.Vertex{
			vertex(20, 100, 0x4000, rgb(20, 50, 20, 63)),
			vertex(236, 100, 0x4000, rgb(20, 50, 20, 63)),
			vertex(236, 180, 0x4000, rgb(10, 30, 10, 63)),
			vertex(20, 180, 0x4000, rgb(10, 30, 10, 63)),
		},
		ID: 1,
	})

	// the mask sits behind the floor so that the stencil bit stays clear
	// where the shadow volume is in front of drawn geometry
	mask := []gpu3d.Vertex{
		vertex(80, 120, 0x5000, rgb(0, 0, 0, 30)),
		vertex(180, 120, 0x5000, rgb(0, 0, 0, 30)),
		vertex(180, 165, 0x5000, rgb(0, 0, 0, 30)),
		vertex(80, 165, 0x5000, rgb(0, 0, 0, 30)),
	}
	shadow := []gpu3d.Vertex{
		vertex(80, 120, 0x3000, rgb(0, 0, 0, 30)),
		vertex(180, 120, 0x3000, rgb(0, 0, 0, 30)),
		vertex(180, 165, 0x3000, rgb(0, 0, 0, 30)),
		vertex(80, 165, 0x3000, rgb(0, 0, 0, 30)),
	}

	l.Add(gpu3d.Polygon{Vertices: mask, Mode: gpu3d.Shadow, ID: 0})
	l.Add(gpu3d.Polygon{Vertices: shadow, Mode: gpu3d.Shadow, ID: 5})
}

// Scenes maps the name of every built-in scene to its builder.
var Scenes = map[string]func(*List){
	"GRADIENT": Gradient,
	"OVERLAP":  Overlap,
	"SHADOWED": Shadowed,
}

// Scene replaces the contents of the list with a named built-in scene.
func (l *List) Scene(name string) error {
	build, ok := Scenes[name]
	if !ok {
		return fmt.Errorf("geometry: no such scene (%s)", name)
	}
	l.Clear()
	build(l)
	return nil
}
