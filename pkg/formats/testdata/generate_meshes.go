//go:build ignore

// This program regenerates the mesh documents used by unit tests.
// Run with: go run generate_meshes.go
package main

import (
	"github.com/Faultbox/meshstats/pkg/formats"
	"github.com/Faultbox/meshstats/pkg/math"
	"github.com/Faultbox/meshstats/pkg/mesh"
)

func main() {
	// Unit cube, outward winding, two triangles per face
	vertices := []math.Vec3f{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	triangles := []mesh.Triangle{
		mesh.NewTriangle(0, 2, 1), mesh.NewTriangle(0, 3, 2),
		mesh.NewTriangle(4, 5, 6), mesh.NewTriangle(4, 6, 7),
		mesh.NewTriangle(0, 1, 5), mesh.NewTriangle(0, 5, 4),
		mesh.NewTriangle(3, 7, 6), mesh.NewTriangle(3, 6, 2),
		mesh.NewTriangle(0, 4, 7), mesh.NewTriangle(0, 7, 3),
		mesh.NewTriangle(1, 2, 6), mesh.NewTriangle(1, 6, 5),
	}
	cube := mesh.New(vertices, triangles)

	if err := formats.SaveFile("cube.json", cube); err != nil {
		panic(err)
	}
	if err := formats.SaveFile("cube.yaml", cube); err != nil {
		panic(err)
	}
}
