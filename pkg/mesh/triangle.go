package mesh

import "fmt"

// Triangle names a face by three positions in the owning mesh's vertex buffer.
type Triangle struct {
	VertexIndices [3]uint32
}

// NewTriangle creates a triangle from three vertex indices.
func NewTriangle(i0, i1, i2 uint32) Triangle {
	return Triangle{VertexIndices: [3]uint32{i0, i1, i2}}
}

// Edges returns the edges (v0,v1), (v1,v2) and (v2,v0).
func (t Triangle) Edges() [3]Edge {
	i := t.VertexIndices
	return [3]Edge{
		NewEdge(i[0], i[1]),
		NewEdge(i[1], i[2]),
		NewEdge(i[2], i[0]),
	}
}

// String formats the indices as "(i0, i1, i2)".
func (t Triangle) String() string {
	i := t.VertexIndices
	return fmt.Sprintf("(%d, %d, %d)", i[0], i[1], i[2])
}
