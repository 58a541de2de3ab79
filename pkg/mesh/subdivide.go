package mesh

import "slices"

// Subdivide returns a new mesh in which every triangle is split into four:
// one per original corner plus the triangle joining the three edge midpoints.
// A midpoint shared by two triangles is created once. The receiver is not
// modified and the result keeps its options.
func (m *Mesh) Subdivide() *Mesh {
	vertices := slices.Grow(slices.Clone(m.vertices), int(m.edgeCount))
	midpoints := make(map[Edge]uint32, m.edgeCount)

	midpoint := func(e Edge) uint32 {
		if idx, ok := midpoints[e]; ok {
			return idx
		}
		idx := uint32(len(vertices))
		vertices = append(vertices, m.vertices[e.A].Add(m.vertices[e.B]).Div(2))
		midpoints[e] = idx
		return idx
	}

	triangles := make([]Triangle, 0, 4*len(m.triangles))
	for _, tri := range m.triangles {
		i := tri.VertexIndices
		m0 := midpoint(NewEdge(i[0], i[1]))
		m1 := midpoint(NewEdge(i[1], i[2]))
		m2 := midpoint(NewEdge(i[2], i[0]))

		triangles = append(triangles,
			NewTriangle(i[0], m0, m2),
			NewTriangle(i[1], m1, m0),
			NewTriangle(i[2], m2, m1),
			NewTriangle(m0, m1, m2),
		)
	}

	return build(vertices, triangles, WithWorkers(m.workers))
}

// SubdivideN applies Subdivide levels times. levels <= 0 returns m itself.
func (m *Mesh) SubdivideN(levels int) *Mesh {
	out := m
	for range levels {
		out = out.Subdivide()
	}
	return out
}
