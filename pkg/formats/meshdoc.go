package formats

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshstats/pkg/math"
	"github.com/Faultbox/meshstats/pkg/mesh"
)

// Mesh document errors.
var (
	ErrInvalidDocument    = errors.New("invalid mesh document")
	ErrMissingGeometry    = errors.New("missing geometry_object")
	ErrNoVertices         = errors.New("geometry_object has no vertices")
	ErrNoTriangles        = errors.New("geometry_object has no triangles")
	ErrVertexCount        = errors.New("vertex array length is not a multiple of 3")
	ErrTriangleCount      = errors.New("triangle array length is not a multiple of 3")
	ErrNonFiniteVertex    = errors.New("vertex component is not finite")
	ErrIndexOutOfRange    = errors.New("triangle index out of range")
	ErrDegenerateTriangle = errors.New("triangle repeats a vertex index")
)

// Document is the on-disk mesh document.
type Document struct {
	GeometryObject *GeometryObject `json:"geometry_object" yaml:"geometry_object"`
}

// GeometryObject holds the flattened buffers. Every three consecutive
// values form one vertex (x, y, z) or one triangle (i0, i1, i2).
type GeometryObject struct {
	Vertices  []float32 `json:"vertices" yaml:"vertices,flow"`
	Triangles []uint32  `json:"triangles" yaml:"triangles,flow"`
}

// DecodeJSON parses a JSON mesh document. It does not validate it.
func DecodeJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// DecodeYAML parses a YAML mesh document. It does not validate it.
func DecodeYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// EncodeJSON serializes doc as compact JSON.
func EncodeJSON(doc *Document) ([]byte, error) {
	return json.Marshal(doc)
}

// EncodeYAML serializes doc as YAML.
func EncodeYAML(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// FromMesh flattens a mesh into a document.
func FromMesh(m *mesh.Mesh) *Document {
	vertices := make([]float32, 0, 3*len(m.Vertices()))
	for _, v := range m.Vertices() {
		vertices = append(vertices, v.X, v.Y, v.Z)
	}

	triangles := make([]uint32, 0, 3*len(m.Triangles()))
	for _, t := range m.Triangles() {
		triangles = append(triangles, t.VertexIndices[:]...)
	}

	return &Document{GeometryObject: &GeometryObject{Vertices: vertices, Triangles: triangles}}
}

// Validate checks every load-contract rule and reports all violations.
// Each kind of violation is reported once, for its first occurrence.
func (d *Document) Validate() error {
	if d.GeometryObject == nil {
		return ErrMissingGeometry
	}
	g := d.GeometryObject

	var err error
	switch {
	case len(g.Vertices) == 0:
		err = multierr.Append(err, ErrNoVertices)
	case len(g.Vertices)%3 != 0:
		err = multierr.Append(err, fmt.Errorf("%w: got %d values", ErrVertexCount, len(g.Vertices)))
	}
	for i, c := range g.Vertices {
		if !math.IsFinite(c) {
			err = multierr.Append(err, fmt.Errorf("%w: vertex %d", ErrNonFiniteVertex, i/3))
			break
		}
	}

	switch {
	case len(g.Triangles) == 0:
		err = multierr.Append(err, ErrNoTriangles)
	case len(g.Triangles)%3 != 0:
		err = multierr.Append(err, fmt.Errorf("%w: got %d values", ErrTriangleCount, len(g.Triangles)))
	}

	vertexCount := uint32(len(g.Vertices) / 3)
	var rangeErr, degenerateErr error
	for t := 0; t+2 < len(g.Triangles); t += 3 {
		i0, i1, i2 := g.Triangles[t], g.Triangles[t+1], g.Triangles[t+2]
		if rangeErr == nil && (i0 >= vertexCount || i1 >= vertexCount || i2 >= vertexCount) {
			rangeErr = fmt.Errorf("%w: triangle %d (%d, %d, %d) with %d vertices",
				ErrIndexOutOfRange, t/3, i0, i1, i2, vertexCount)
		}
		if degenerateErr == nil && (i0 == i1 || i1 == i2 || i2 == i0) {
			degenerateErr = fmt.Errorf("%w: triangle %d (%d, %d, %d)", ErrDegenerateTriangle, t/3, i0, i1, i2)
		}
	}

	return multierr.Combine(err, rangeErr, degenerateErr)
}

// Mesh validates the document and builds a mesh from it.
func (d *Document) Mesh(opts ...mesh.Option) (*mesh.Mesh, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	g := d.GeometryObject

	vertices := make([]math.Vec3f, 0, len(g.Vertices)/3)
	for i := 0; i < len(g.Vertices); i += 3 {
		vertices = append(vertices, math.Vec3f{X: g.Vertices[i], Y: g.Vertices[i+1], Z: g.Vertices[i+2]})
	}

	triangles := make([]mesh.Triangle, 0, len(g.Triangles)/3)
	for i := 0; i < len(g.Triangles); i += 3 {
		triangles = append(triangles, mesh.NewTriangle(g.Triangles[i], g.Triangles[i+1], g.Triangles[i+2]))
	}

	return mesh.New(vertices, triangles, opts...), nil
}

// LoadFile reads, validates and builds the mesh stored at path.
// The format is chosen from the file extension.
func LoadFile(path string, opts ...mesh.Option) (*mesh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mesh file: %w", err)
	}

	doc, err := FormatFromPath(path).Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	m, err := doc.Mesh(opts...)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return m, nil
}

// SaveFile writes m to path, creating the parent directory if needed.
// The format is chosen from the file extension.
func SaveFile(path string, m *mesh.Mesh) error {
	data, err := FormatFromPath(path).Encode(FromMesh(m))
	if err != nil {
		return fmt.Errorf("encoding mesh: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing mesh file: %w", err)
	}
	return nil
}
