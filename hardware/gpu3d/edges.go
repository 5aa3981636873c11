package gpu3d

import (
	"slices"

	"github.com/jetsetilly/testds/hardware/spec"
)

// drawPolygon finds the left and right edges of the polygon that are active
// on the given scanline and hands them to the rasteriser.
//
// The polygon itself is never modified. The same polygon can be (and in
// background mode, is) processed for different scanlines by different
// workers at the same time.
func (ren *Renderer) drawPolygon(line int, p *Polygon) {
	// a local, sorted view of the polygon's vertices
	var arr [spec.MaxPolygonVertices]*Vertex
	vertices := arr[:0]
	for i := range p.Vertices {
		vertices = append(vertices, &p.Vertices[i])
	}

	// sort by increasing Y, with ties broken by increasing X
	slices.SortStableFunc(vertices, func(a *Vertex, b *Vertex) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	num := len(vertices)

	// reject scanlines above the topmost vertex or at/below the bottommost.
	// the bottom row of a polygon is never drawn
	if line < vertices[0].Y || line >= vertices[num-1].Y {
		return
	}

	// the cross product of each middle vertex against the diagonal running
	// from the topmost vertex to the bottommost. the sign says whether the
	// vertex sits to the left or the right of that diagonal
	var crosses [spec.MaxPolygonVertices - 2]int
	for i := 0; i < num-2; i++ {
		crosses[i] = (vertices[i+1].X-vertices[0].X)*(vertices[num-1].Y-vertices[0].Y) -
			(vertices[i+1].Y-vertices[0].Y)*(vertices[num-1].X-vertices[0].X)
	}

	for i := 1; i < num; i++ {
		if line < vertices[i].Y { // the highest vertex below the current line
			var v1, v2, v3, v4 int

			// bottom-left vertex: the highest vertex at or below i on the left
			for v2 = i; v2 < num; v2++ {
				if v2 == num-1 || crosses[v2-1] <= 0 {
					break
				}
			}

			// top-left vertex: the lowest vertex above v2 on the left
			for v1 = v2 - 1; v1 >= 0; v1-- {
				for v1 > 0 && vertices[v1].Y == vertices[v1-1].Y {
					v1--
				}
				if v1 == 0 || crosses[v1-1] <= 0 {
					break
				}
			}

			// bottom-right vertex: the highest vertex at or below i on the right
			for v4 = i; v4 < num; v4++ {
				for v4 < num-1 && vertices[v4].Y == vertices[v4+1].Y {
					v4++
				}
				if v4 == num-1 || crosses[v4-1] > 0 {
					break
				}
			}

			// top-right vertex: the lowest vertex above v4 on the right
			for v3 = v4 - 1; v3 >= 0; v3-- {
				for v3 > 0 && vertices[v3].Y == vertices[v4].Y {
					v3--
				}
				if v3 == 0 || crosses[v3-1] > 0 {
					break
				}
			}

			ren.rasterise(line, p, vertices[v1], vertices[v2], vertices[v3], vertices[v4])
			return
		}
	}
}
