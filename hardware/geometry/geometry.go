// Package geometry holds the polygon list consumed by the rendering engine.
//
// On the real console the list is produced by the geometry engine, which
// transforms, lights and clips vertices as commands arrive over the bus. The
// geometry engine is not emulated here: the list is filled directly, either
// by tests or by the debugger's built-in scenes.
//
// Whatever the source, the contract with the renderer is the same: the list
// is a read-only snapshot for the duration of a frame and can only change at
// the V-blank boundary.
package geometry

import (
	"github.com/jetsetilly/testds/hardware/gpu3d"
)

type List struct {
	polygons []gpu3d.Polygon
}

func Create() *List {
	return &List{}
}

// Clear empties the list. It must not be called while a frame is being
// rendered.
func (l *List) Clear() {
	l.polygons = l.polygons[:0]
}

// Add appends a polygon to the list. Polygons are rendered in the order they
// were added, except that translucent polygons are deferred to the end of
// each scanline.
func (l *List) Add(p gpu3d.Polygon) {
	l.polygons = append(l.polygons, p)
}

func (l *List) PolygonCount() int {
	return len(l.polygons)
}

func (l *List) Polygon(i int) *gpu3d.Polygon {
	return &l.polygons[i]
}
