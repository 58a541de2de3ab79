// Package mesh implements an immutable triangle mesh together with the
// analyses derived from it: smooth vertex normals, triangle area statistics,
// edge topology, subdivision and point-in-solid classification.
//
// All derived data is computed once by New. A Mesh is never modified after
// construction; operations that change geometry return a new Mesh.
package mesh

import (
	"fmt"
	"slices"

	"github.com/Faultbox/meshstats/pkg/math"
)

// Statistics summarizes the triangle areas of a mesh.
type Statistics struct {
	SmallestTriangleArea float32
	BiggestTriangleArea  float32
	AverageTriangleArea  float32
}

// Mesh is an immutable triangle mesh.
type Mesh struct {
	vertices  []math.Vec3f
	triangles []Triangle

	normals   []math.Vec3f
	stats     Statistics
	totalArea float64
	edgeCount uint32
	closed    bool

	workers int
}

// Option configures mesh construction.
type Option func(*Mesh)

// WithWorkers caps the number of goroutines used for statistics.
// Values <= 0 select the number of CPUs.
func WithWorkers(n int) Option {
	return func(m *Mesh) {
		m.workers = n
	}
}

// New builds a mesh from the given buffers and computes all derived data.
// The buffers are copied.
//
// New panics if either buffer is empty, if any index is out of range, or if
// a triangle repeats a vertex index. Callers loading untrusted data must
// validate it first (see package formats).
func New(vertices []math.Vec3f, triangles []Triangle, opts ...Option) *Mesh {
	return build(slices.Clone(vertices), slices.Clone(triangles), opts...)
}

// build takes ownership of the buffers.
func build(vertices []math.Vec3f, triangles []Triangle, opts ...Option) *Mesh {
	m := &Mesh{
		vertices:  vertices,
		triangles: triangles,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.checkInvariants()
	m.calculateSmoothVertexNormals()
	m.calculateStatistics()
	m.calculateEdgeCountAndIsClosed()

	return m
}

func (m *Mesh) checkInvariants() {
	if len(m.vertices) == 0 {
		panic("mesh: empty vertex buffer")
	}
	if len(m.triangles) == 0 {
		panic("mesh: empty triangle buffer")
	}

	n := uint32(len(m.vertices))
	for ti, tri := range m.triangles {
		i := tri.VertexIndices
		if i[0] >= n || i[1] >= n || i[2] >= n {
			panic(fmt.Sprintf("mesh: triangle %d %v references vertex beyond %d", ti, i, n-1))
		}
		if i[0] == i[1] || i[1] == i[2] || i[2] == i[0] {
			panic(fmt.Sprintf("mesh: triangle %d %v repeats a vertex", ti, i))
		}
	}
}

// calculateSmoothVertexNormals sums the unnormalized face normal of every
// triangle into its three vertices, then normalizes. Larger faces weigh more.
func (m *Mesh) calculateSmoothVertexNormals() {
	m.normals = make([]math.Vec3f, len(m.vertices))

	for _, tri := range m.triangles {
		i := tri.VertexIndices
		normal := faceNormal(m.vertices[i[0]], m.vertices[i[1]], m.vertices[i[2]])

		m.normals[i[0]] = m.normals[i[0]].Add(normal)
		m.normals[i[1]] = m.normals[i[1]].Add(normal)
		m.normals[i[2]] = m.normals[i[2]].Add(normal)
	}

	for i, n := range m.normals {
		// Vertices whose faces cancel out (or have no area) keep a zero normal.
		if n.MagnitudeSquared() > math.Epsilon {
			m.normals[i] = n.Normalized()
		}
	}
}

// faceNormal returns (v1-v0) x (v2-v0); its length is twice the area.
func faceNormal(v0, v1, v2 math.Vec3f) math.Vec3f {
	return v1.Sub(v0).Cross(v2.Sub(v0))
}

// triangleArea returns the area of the triangle (v0, v1, v2).
func triangleArea(v0, v1, v2 math.Vec3f) float32 {
	return faceNormal(v0, v1, v2).Magnitude() / 2
}

// Vertices returns the vertex buffer. It must not be modified.
func (m *Mesh) Vertices() []math.Vec3f { return m.vertices }

// Triangles returns the triangle buffer. It must not be modified.
func (m *Mesh) Triangles() []Triangle { return m.triangles }

// SmoothVertexNormals returns one normal per vertex. It must not be modified.
func (m *Mesh) SmoothVertexNormals() []math.Vec3f { return m.normals }

// Statistics returns the triangle area statistics.
func (m *Mesh) Statistics() Statistics { return m.stats }

// Area returns the total surface area.
func (m *Mesh) Area() float64 { return m.totalArea }

// EdgeCount returns the number of distinct edges.
func (m *Mesh) EdgeCount() uint32 { return m.edgeCount }

// IsClosed reports whether every edge is shared by at least two triangles.
func (m *Mesh) IsClosed() bool { return m.closed }

// Workers returns the configured statistics worker cap (0 means automatic).
func (m *Mesh) Workers() int { return m.workers }
