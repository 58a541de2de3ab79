// meshtool is a CLI utility for inspecting and transforming triangle meshes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Faultbox/meshstats/pkg/formats"
	"github.com/Faultbox/meshstats/pkg/math"
	"github.com/Faultbox/meshstats/pkg/mesh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "normals":
		cmdNormals(args)
	case "subdivide", "sub":
		cmdSubdivide(args)
	case "inside":
		cmdInside(args)
	case "convert":
		cmdConvert(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - triangle mesh utility

Usage:
  meshtool <command> [options]

Commands:
  info <mesh>                    Show mesh statistics
  normals <mesh>                 Print smooth vertex normals
  subdivide <in> <out>           Subdivide every triangle into 4
  inside <mesh> <x> <y> <z>      Check whether a point is inside the mesh
  convert <in> <out>             Convert between JSON and YAML documents

Examples:
  meshtool info cube.json
  meshtool info -json -boundary open.yaml
  meshtool subdivide -levels 3 cube.json sphere.json
  meshtool inside cube.json 0.5 0.5 0.5
  meshtool convert cube.json cube.yaml`)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func loadMesh(path string, workers int) *mesh.Mesh {
	m, err := formats.LoadFile(path, mesh.WithWorkers(workers))
	if err != nil {
		fail(err)
	}
	return m
}

type meshInfo struct {
	File                 string      `json:"file"`
	Vertices             int         `json:"vertices"`
	Triangles            int         `json:"triangles"`
	SmallestTriangleArea float32     `json:"smallestTriangleArea"`
	BiggestTriangleArea  float32     `json:"biggestTriangleArea"`
	AverageTriangleArea  float32     `json:"averageTriangleArea"`
	SurfaceArea          float64     `json:"surfaceArea"`
	Edges                uint32      `json:"edges"`
	Closed               bool        `json:"closed"`
	BoundaryEdges        []mesh.Edge `json:"boundaryEdges,omitempty"`
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	workers := fs.Int("workers", 0, "Statistics workers (0 = one per CPU)")
	asJSON := fs.Bool("json", false, "Print as JSON")
	boundary := fs.Bool("boundary", false, "List boundary edges")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool info [-workers N] [-json] [-boundary] <mesh>")
		os.Exit(1)
	}

	m := loadMesh(fs.Arg(0), *workers)
	stats := m.Statistics()
	info := meshInfo{
		File:                 fs.Arg(0),
		Vertices:             len(m.Vertices()),
		Triangles:            len(m.Triangles()),
		SmallestTriangleArea: stats.SmallestTriangleArea,
		BiggestTriangleArea:  stats.BiggestTriangleArea,
		AverageTriangleArea:  stats.AverageTriangleArea,
		SurfaceArea:          m.Area(),
		Edges:                m.EdgeCount(),
		Closed:               m.IsClosed(),
	}
	if *boundary {
		info.BoundaryEdges = m.BoundaryEdges()
	}

	if *asJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			fail(err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Mesh:      %s\n", info.File)
	fmt.Printf("Vertices:  %d\n", info.Vertices)
	fmt.Printf("Triangles: %d\n", info.Triangles)
	fmt.Println()
	fmt.Printf("Smallest triangle area: %v\n", info.SmallestTriangleArea)
	fmt.Printf("Biggest triangle area:  %v\n", info.BiggestTriangleArea)
	fmt.Printf("Average triangle area:  %v\n", info.AverageTriangleArea)
	fmt.Printf("Surface area:           %v\n", info.SurfaceArea)
	fmt.Printf("Edges:                  %d\n", info.Edges)
	fmt.Printf("Closed:                 %t\n", info.Closed)

	if *boundary && len(info.BoundaryEdges) > 0 {
		fmt.Println()
		fmt.Printf("Boundary edges (%d):\n", len(info.BoundaryEdges))
		for _, e := range info.BoundaryEdges {
			fmt.Printf("  %d-%d\n", e.A, e.B)
		}
	}
}

func cmdNormals(args []string) {
	fs := flag.NewFlagSet("normals", flag.ExitOnError)
	limit := fs.Int("n", 0, "Limit output to N normals (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool normals [-n N] <mesh>")
		os.Exit(1)
	}

	m := loadMesh(fs.Arg(0), 0)
	for i, n := range m.SmoothVertexNormals() {
		if *limit > 0 && i >= *limit {
			fmt.Printf("... (%d more)\n", len(m.SmoothVertexNormals())-*limit)
			break
		}
		fmt.Printf("%6d  %v\n", i, n)
	}
}

func cmdSubdivide(args []string) {
	fs := flag.NewFlagSet("subdivide", flag.ExitOnError)
	levels := fs.Int("levels", 1, "Number of subdivision passes")
	workers := fs.Int("workers", 0, "Statistics workers (0 = one per CPU)")
	fs.Parse(args)

	if fs.NArg() < 2 || *levels < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool subdivide [-levels N] <in> <out>")
		os.Exit(1)
	}

	src := loadMesh(fs.Arg(0), *workers)
	sub := src.SubdivideN(*levels)
	if err := formats.SaveFile(fs.Arg(1), sub); err != nil {
		fail(err)
	}

	fmt.Printf("Subdivided %s (%d triangles) -> %s (%d triangles)\n",
		fs.Arg(0), len(src.Triangles()), fs.Arg(1), len(sub.Triangles()))
}

func cmdInside(args []string) {
	if len(args) != 4 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool inside <mesh> <x> <y> <z>")
		os.Exit(1)
	}

	var p [3]float32
	for i, arg := range args[1:] {
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil || !math.IsFinite(f) {
			fail(fmt.Errorf("invalid coordinate %q", arg))
		}
		p[i] = float32(f)
	}

	m := loadMesh(args[0], 0)
	point := math.Vec3f{X: p[0], Y: p[1], Z: p[2]}
	if !m.IsClosed() {
		fmt.Fprintln(os.Stderr, "Warning: mesh is not closed, result may be meaningless")
	}
	fmt.Printf("Point %v inside: %t (%d crossings)\n", point, m.IsPointInside(point), m.IntersectionCount(point))
}

func cmdConvert(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool convert <in> <out>")
		os.Exit(1)
	}

	m := loadMesh(args[0], 0)
	if err := formats.SaveFile(args[1], m); err != nil {
		fail(err)
	}

	fmt.Printf("Converted %s (%s) -> %s (%s)\n",
		args[0], formats.FormatFromPath(args[0]), args[1], formats.FormatFromPath(args[1]))
}
