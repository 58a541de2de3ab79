package mesh

import (
	"cmp"
	"slices"
)

// countEdges maps every distinct edge to the number of triangles bordering it.
func (m *Mesh) countEdges(capacity int) map[Edge]uint32 {
	neighbours := make(map[Edge]uint32, capacity)
	for _, tri := range m.triangles {
		for _, e := range tri.Edges() {
			neighbours[e]++
		}
	}
	return neighbours
}

func (m *Mesh) calculateEdgeCountAndIsClosed() {
	// Euler's formula V - E + F = 2 gives the edge count of a closed genus-0
	// mesh; it is only a capacity hint here.
	neighbours := m.countEdges(max(0, len(m.vertices)+len(m.triangles)-2))

	m.edgeCount = uint32(len(neighbours))
	m.closed = true
	for _, count := range neighbours {
		if count < 2 {
			m.closed = false
			return
		}
	}
}

// EdgeAdjacency returns, for every distinct edge, the number of triangles
// that border it. The map is built on each call and owned by the caller.
func (m *Mesh) EdgeAdjacency() map[Edge]uint32 {
	return m.countEdges(int(m.edgeCount))
}

// BoundaryEdges returns the edges bordered by fewer than two triangles,
// ordered by (A, B). It is empty for a closed mesh.
func (m *Mesh) BoundaryEdges() []Edge {
	if m.closed {
		return nil
	}

	var boundary []Edge
	for e, count := range m.EdgeAdjacency() {
		if count < 2 {
			boundary = append(boundary, e)
		}
	}
	slices.SortFunc(boundary, func(a, b Edge) int {
		return cmp.Or(cmp.Compare(a.A, b.A), cmp.Compare(a.B, b.B))
	})
	return boundary
}
