// Package formats reads and writes mesh documents.
//
// A mesh document holds a single geometry object with flat vertex and
// triangle arrays:
//
//	{"geometry_object": {"vertices": [x0, y0, z0, ...], "triangles": [i0, i1, i2, ...]}}
//
// The same shape is accepted as YAML. Documents are fully validated before a
// mesh is built from them; a document that fails validation never yields a
// partial mesh.
package formats

import (
	"path/filepath"
	"strings"
)

// Format identifies a document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Extension returns the canonical file extension, including the dot.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// FormatFromPath picks the format from a file extension.
// Anything that is not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses data in the given format.
func (f Format) Decode(data []byte) (*Document, error) {
	if f == FormatYAML {
		return DecodeYAML(data)
	}
	return DecodeJSON(data)
}

// Encode serializes doc in the given format.
func (f Format) Encode(doc *Document) ([]byte, error) {
	if f == FormatYAML {
		return EncodeYAML(doc)
	}
	return EncodeJSON(doc)
}
