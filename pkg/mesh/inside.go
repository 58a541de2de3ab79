package mesh

import "github.com/Faultbox/meshstats/pkg/math"

// insideRayDirection is not axis aligned. An axis-aligned ray from the
// center of a box runs through the diagonals of its faces and hits each
// shared edge twice.
var insideRayDirection = math.Vec3f{X: 1, Y: 0.3141, Z: 0.2718}

// IntersectionCount returns how many triangles a ray cast from p in a fixed
// direction crosses. Every triangle is tested.
func (m *Mesh) IntersectionCount(p math.Vec3f) int {
	ray := math.NewRay(p, insideRayDirection)

	count := 0
	for _, tri := range m.triangles {
		i := tri.VertexIndices
		if ray.IntersectsTriangle(m.vertices[i[0]], m.vertices[i[1]], m.vertices[i[2]]) {
			count++
		}
	}
	return count
}

// IsPointInside reports whether p is inside the mesh by the ray-casting
// parity rule. The answer is only meaningful for closed meshes without
// self-intersections.
func (m *Mesh) IsPointInside(p math.Vec3f) bool {
	return math.IsOdd(m.IntersectionCount(p))
}
