// Package viewer holds the state of an interactive mesh session: the
// current mesh, its text listing and the notification history.
package viewer

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshstats/internal/config"
	"github.com/Faultbox/meshstats/internal/logger"
	"github.com/Faultbox/meshstats/internal/notify"
	"github.com/Faultbox/meshstats/pkg/formats"
	"github.com/Faultbox/meshstats/pkg/math"
	"github.com/Faultbox/meshstats/pkg/mesh"
)

var (
	// ErrNoMesh is returned by operations that need a loaded mesh.
	ErrNoMesh = errors.New("no mesh loaded")
	// ErrNoDialogs is returned when a dialog is requested but dialogs are disabled.
	ErrNoDialogs = errors.New("file dialogs are disabled")
	// ErrNonFinitePoint is returned by CheckPoint for NaN or infinite coordinates.
	ErrNonFinitePoint = errors.New("point has non-finite coordinates")
)

// Options configures a Viewer.
type Options struct {
	MeshDir       string      // Relative paths are resolved against this directory
	SavePath      string      // Target for Save when no path is given
	Workers       int         // Statistics workers for loaded meshes, 0 = one per CPU
	Dialogs       Dialogs     // nil disables OpenDialog and SaveAsDialog
	Notifications *notify.Log // nil creates an unbounded log
	Logger        *zap.Logger // nil uses the global logger
}

// Viewer owns at most one mesh at a time. It is safe for concurrent use.
type Viewer struct {
	mu      sync.RWMutex
	mesh    *mesh.Mesh
	source  string
	listing Listing

	opts  Options
	notes *notify.Log
	log   *zap.Logger
}

// New creates a viewer with no mesh loaded.
func New(opts Options) *Viewer {
	v := &Viewer{
		opts:  opts,
		notes: opts.Notifications,
		log:   opts.Logger,
	}
	if v.log == nil {
		v.log = logger.Named("viewer")
	}
	if v.notes == nil {
		v.notes = notify.New(notify.WithLogger(v.log))
	}
	return v
}

// NewFromConfig creates a viewer from application settings.
func NewFromConfig(cfg *config.Config) *Viewer {
	log := logger.Named("viewer")
	opts := Options{
		MeshDir:  cfg.Viewer.MeshDir,
		SavePath: cfg.Viewer.SavePath,
		Workers:  cfg.Engine.Workers,
		Notifications: notify.New(
			notify.WithCapacity(cfg.Notifications.Capacity),
			notify.WithTimeFormat(cfg.Notifications.TimeFormat),
			notify.WithLogger(log),
		),
		Logger: log,
	}
	if cfg.Viewer.Dialogs {
		opts.Dialogs = NativeDialogs()
	}
	return New(opts)
}

// Mesh returns the current mesh, or nil.
func (v *Viewer) Mesh() *mesh.Mesh {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.mesh
}

// Source returns the file the current mesh was loaded from or last saved
// to. It is empty for generated meshes.
func (v *Viewer) Source() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.source
}

// Notifications returns the notification history.
func (v *Viewer) Notifications() *notify.Log {
	return v.notes
}

func (v *Viewer) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || v.opts.MeshDir == "" {
		return path
	}
	return filepath.Join(v.opts.MeshDir, path)
}

// Open loads a mesh file. On failure the current mesh is kept and an error
// notification is posted.
func (v *Viewer) Open(path string) error {
	path = v.resolve(path)

	m, err := formats.LoadFile(path, mesh.WithWorkers(v.opts.Workers))
	if err != nil {
		v.log.Error("Failed to load mesh", zap.String("path", path), zap.Error(err))
		v.notes.Error("File does not exist or has incorrect format: \"%s\"", path)
		return err
	}

	v.assign(m, path)
	v.notes.Info("Successfully loaded mesh from: \"%s\"", path)
	return nil
}

// OpenDialog asks the user for a file and opens it. Cancelling is silent
// and returns ErrCancelled.
func (v *Viewer) OpenDialog() error {
	if v.opts.Dialogs == nil {
		return ErrNoDialogs
	}

	path, err := v.opts.Dialogs.OpenFile("Open", v.opts.MeshDir)
	if err != nil {
		return v.dialogFailed(err)
	}
	return v.Open(path)
}

// SaveAs writes the current mesh to path.
func (v *Viewer) SaveAs(path string) error {
	m := v.Mesh()
	if m == nil {
		return ErrNoMesh
	}
	path = v.resolve(path)

	if err := formats.SaveFile(path, m); err != nil {
		v.log.Error("Failed to save mesh", zap.String("path", path), zap.Error(err))
		v.notes.Error("Could not save mesh to: \"%s\"", path)
		return err
	}

	v.mu.Lock()
	if v.mesh == m {
		v.source = path
	}
	v.mu.Unlock()

	v.notes.Info("Successfully saved mesh to: \"%s\"", path)
	return nil
}

// SaveAsDialog asks the user for a target file and saves the current mesh
// there. A missing mesh extension is appended.
func (v *Viewer) SaveAsDialog() error {
	if v.Mesh() == nil {
		return ErrNoMesh
	}
	if v.opts.Dialogs == nil {
		return ErrNoDialogs
	}

	path, err := v.opts.Dialogs.SaveFile("Save As", v.opts.MeshDir)
	if err != nil {
		return v.dialogFailed(err)
	}
	return v.SaveAs(EnsureExtension(path))
}

func (v *Viewer) dialogFailed(err error) error {
	if errors.Is(err, ErrCancelled) {
		v.log.Debug("File dialog cancelled")
		return ErrCancelled
	}
	v.log.Error("File dialog failed", zap.Error(err))
	v.notes.Error("File dialog failed: %v", err)
	return err
}

// Subdivide replaces the current mesh with its subdivision.
func (v *Viewer) Subdivide() (*mesh.Mesh, error) {
	m := v.Mesh()
	if m == nil {
		return nil, ErrNoMesh
	}

	sub := m.Subdivide()
	v.assign(sub, "")
	v.notes.Info("Generated new subdivided mesh")
	return sub, nil
}

// CheckPoint reports whether p lies inside the current mesh.
func (v *Viewer) CheckPoint(p math.Vec3f) (bool, error) {
	m := v.Mesh()
	if m == nil {
		return false, ErrNoMesh
	}
	if !p.IsFinite() {
		return false, fmt.Errorf("%w: %v", ErrNonFinitePoint, p)
	}

	inside := m.IsPointInside(p)
	v.log.Debug("Point classified", zap.Stringer("point", p), zap.Bool("inside", inside))
	v.notes.Info("Checked if point %v is inside mesh", p)
	return inside, nil
}

// Listing returns the text listing of the current mesh.
func (v *Viewer) Listing() (Listing, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.mesh == nil {
		return Listing{}, ErrNoMesh
	}
	return v.listing, nil
}

// Summary returns the statistics of the current mesh.
func (v *Viewer) Summary() (Summary, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.mesh == nil {
		return Summary{}, ErrNoMesh
	}
	return summarize(v.mesh, v.source), nil
}

// State captures the session for export.
func (v *Viewer) State() State {
	v.mu.RLock()
	s := State{
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if v.mesh != nil {
		sum := summarize(v.mesh, v.source)
		s.Mesh = &sum
	}
	v.mu.RUnlock()

	for _, n := range v.notes.All() {
		s.Notifications = append(s.Notifications, n.Message)
	}
	return s
}

func (v *Viewer) assign(m *mesh.Mesh, source string) {
	listing := buildListing(m)

	v.mu.Lock()
	v.mesh = m
	v.source = source
	v.listing = listing
	v.mu.Unlock()

	stats := m.Statistics()
	v.log.Info("Mesh assigned",
		zap.String("source", source),
		zap.Int("vertices", len(m.Vertices())),
		zap.Int("triangles", len(m.Triangles())),
		zap.Int("normals", len(m.SmoothVertexNormals())),
		zap.Float32("smallest_area", stats.SmallestTriangleArea),
		zap.Float32("biggest_area", stats.BiggestTriangleArea),
		zap.Float32("average_area", stats.AverageTriangleArea),
		zap.Uint32("edges", m.EdgeCount()),
		zap.Bool("closed", m.IsClosed()),
	)
}

// Summary is the statistics panel of a mesh.
type Summary struct {
	Source               string  `json:"source,omitempty"`
	Vertices             int     `json:"vertices"`
	Triangles            int     `json:"triangles"`
	SmoothVertexNormals  int     `json:"smoothVertexNormals"`
	SmallestTriangleArea float32 `json:"smallestTriangleArea"`
	BiggestTriangleArea  float32 `json:"biggestTriangleArea"`
	AverageTriangleArea  float32 `json:"averageTriangleArea"`
	SurfaceArea          float64 `json:"surfaceArea"`
	Edges                uint32  `json:"edges"`
	Closed               bool    `json:"closed"`
}

func summarize(m *mesh.Mesh, source string) Summary {
	stats := m.Statistics()
	return Summary{
		Source:               source,
		Vertices:             len(m.Vertices()),
		Triangles:            len(m.Triangles()),
		SmoothVertexNormals:  len(m.SmoothVertexNormals()),
		SmallestTriangleArea: stats.SmallestTriangleArea,
		BiggestTriangleArea:  stats.BiggestTriangleArea,
		AverageTriangleArea:  stats.AverageTriangleArea,
		SurfaceArea:          m.Area(),
		Edges:                m.EdgeCount(),
		Closed:               m.IsClosed(),
	}
}

// String renders the summary as labelled lines.
func (s Summary) String() string {
	return fmt.Sprintf("Vertices: %d\nTriangles: %d\nSmooth vertex normals: %d\n"+
		"Smallest triangle area: %v\nBiggest triangle area: %v\nAverage triangle area: %v\n"+
		"Edge count: %d\nIs closed: %t",
		s.Vertices, s.Triangles, s.SmoothVertexNormals,
		s.SmallestTriangleArea, s.BiggestTriangleArea, s.AverageTriangleArea,
		s.Edges, s.Closed)
}

// State is the exported session state.
type State struct {
	Timestamp     string   `json:"timestamp"`
	Mesh          *Summary `json:"mesh,omitempty"`
	Notifications []string `json:"notifications"`
}
