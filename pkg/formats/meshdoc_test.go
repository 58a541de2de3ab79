package formats

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/meshstats/pkg/math"
	"github.com/Faultbox/meshstats/pkg/mesh"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"mesh.json", FormatJSON},
		{"dir/Mesh.JSON", FormatJSON},
		{"mesh.yaml", FormatYAML},
		{"mesh.YML", FormatYAML},
		{"mesh", FormatJSON},
		{"mesh.txt", FormatJSON},
	}

	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		vertices   int
		triangles  int
		edges      uint32
		wantClosed bool
	}{
		{"cube json", "testdata/cube.json", 8, 12, 18, true},
		{"cube yaml", "testdata/cube.yaml", 8, 12, 18, true},
		{"triangle", "testdata/triangle.json", 3, 1, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := LoadFile(tt.path)
			if err != nil {
				t.Fatalf("LoadFile(%s) error = %v", tt.path, err)
			}
			if got := len(m.Vertices()); got != tt.vertices {
				t.Errorf("vertices = %d, want %d", got, tt.vertices)
			}
			if got := len(m.Triangles()); got != tt.triangles {
				t.Errorf("triangles = %d, want %d", got, tt.triangles)
			}
			if got := m.EdgeCount(); got != tt.edges {
				t.Errorf("EdgeCount() = %d, want %d", got, tt.edges)
			}
			if got := m.IsClosed(); got != tt.wantClosed {
				t.Errorf("IsClosed() = %v, want %v", got, tt.wantClosed)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("/nonexistent/path/mesh.json")
	if err == nil {
		t.Fatal("expected error loading missing file, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile() error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadFileBroken(t *testing.T) {
	m, err := LoadFile("testdata/broken.json")
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if m != nil {
		t.Error("LoadFile() returned a mesh for an invalid document")
	}
	for _, want := range []error{ErrVertexCount, ErrIndexOutOfRange, ErrDegenerateTriangle} {
		if !errors.Is(err, want) {
			t.Errorf("LoadFile() error = %v, want it to include %v", err, want)
		}
	}
}

func TestDecodeJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"not json", `geometry`, ErrInvalidDocument},
		{"not an object", `[1, 2, 3]`, ErrInvalidDocument},
		{"string vertex", `{"geometry_object":{"vertices":["a",0,0],"triangles":[0,1,2]}}`, ErrInvalidDocument},
		{"negative index", `{"geometry_object":{"vertices":[0,0,0],"triangles":[-1,0,0]}}`, ErrInvalidDocument},
		{"fractional index", `{"geometry_object":{"vertices":[0,0,0],"triangles":[0.5,0,0]}}`, ErrInvalidDocument},
		{"missing geometry", `{}`, ErrMissingGeometry},
		{"null geometry", `{"geometry_object":null}`, ErrMissingGeometry},
		{"missing vertices", `{"geometry_object":{"triangles":[0,1,2]}}`, ErrNoVertices},
		{"empty vertices", `{"geometry_object":{"vertices":[],"triangles":[0,1,2]}}`, ErrNoVertices},
		{"missing triangles", `{"geometry_object":{"vertices":[0,0,0,1,0,0,0,1,0]}}`, ErrNoTriangles},
		{"ragged vertices", `{"geometry_object":{"vertices":[0,0,0,1],"triangles":[0,0,0]}}`, ErrVertexCount},
		{"ragged triangles", `{"geometry_object":{"vertices":[0,0,0,1,0,0,0,1,0],"triangles":[0,1]}}`, ErrTriangleCount},
		{"index out of range", `{"geometry_object":{"vertices":[0,0,0,1,0,0,0,1,0],"triangles":[0,1,3]}}`, ErrIndexOutOfRange},
		{"repeated index", `{"geometry_object":{"vertices":[0,0,0,1,0,0,0,1,0],"triangles":[0,2,2]}}`, ErrDegenerateTriangle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeJSON([]byte(tt.data))
			if err == nil {
				_, err = doc.Mesh()
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"invalid syntax", "geometry_object: [unclosed", ErrInvalidDocument},
		{"negative index", "geometry_object:\n  vertices: [0, 0, 0]\n  triangles: [-1, 0, 0]\n", ErrInvalidDocument},
		{"nan vertex", "geometry_object:\n  vertices: [.nan, 0, 0, 1, 0, 0, 0, 1, 0]\n  triangles: [0, 1, 2]\n", ErrNonFiniteVertex},
		{"missing geometry", "other: 1\n", ErrMissingGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeYAML([]byte(tt.data))
			if err == nil {
				_, err = doc.Mesh()
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	src, err := LoadFile("testdata/cube.json")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	sub := src.Subdivide()

	for _, name := range []string{"out/sub.json", "out/sub.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := SaveFile(path, sub); err != nil {
				t.Fatalf("SaveFile() error = %v", err)
			}

			got, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if len(got.Vertices()) != len(sub.Vertices()) || len(got.Triangles()) != len(sub.Triangles()) {
				t.Fatalf("round trip sizes = (%d, %d), want (%d, %d)",
					len(got.Vertices()), len(got.Triangles()), len(sub.Vertices()), len(sub.Triangles()))
			}
			for i, v := range sub.Vertices() {
				if got.Vertices()[i] != v {
					t.Errorf("vertex %d = %v, want %v", i, got.Vertices()[i], v)
				}
			}
			for i, tri := range sub.Triangles() {
				if got.Triangles()[i] != tri {
					t.Errorf("triangle %d = %v, want %v", i, got.Triangles()[i], tri)
				}
			}
		})
	}
}

func TestEncodeJSONShape(t *testing.T) {
	m := mesh.New(
		[]math.Vec3f{{X: 0, Y: 0, Z: 0}, {X: 1.5, Y: 0, Z: 0}, {X: 0, Y: 1, Z: -2}},
		[]mesh.Triangle{mesh.NewTriangle(0, 1, 2)},
	)

	data, err := EncodeJSON(FromMesh(m))
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}

	want := `{"geometry_object":{"vertices":[0,0,0,1.5,0,0,0,1,-2],"triangles":[0,1,2]}}`
	if got := string(data); got != want {
		t.Errorf("EncodeJSON() = %s, want %s", got, want)
	}
}

func TestEncodeYAMLShape(t *testing.T) {
	doc := &Document{GeometryObject: &GeometryObject{
		Vertices:  []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Triangles: []uint32{0, 1, 2},
	}}

	data, err := EncodeYAML(doc)
	if err != nil {
		t.Fatalf("EncodeYAML() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{"geometry_object:", "vertices: [0, 0, 0, 1, 0, 0, 0, 1, 0]", "triangles: [0, 1, 2]"} {
		if !strings.Contains(out, want) {
			t.Errorf("EncodeYAML() = %q, want it to contain %q", out, want)
		}
	}
}
