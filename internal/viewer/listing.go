package viewer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Faultbox/meshstats/pkg/mesh"
)

// Listing is the per-element text of a mesh, one element per line.
type Listing struct {
	Vertices            string
	Triangles           string
	SmoothVertexNormals string
}

// buildListing renders the three blocks concurrently.
func buildListing(m *mesh.Mesh) Listing {
	var l Listing
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		l.Vertices = joinLines(m.Vertices(), 35)
	}()
	go func() {
		defer wg.Done()
		l.Triangles = joinLines(m.Triangles(), 25)
	}()
	go func() {
		defer wg.Done()
		l.SmoothVertexNormals = joinLines(m.SmoothVertexNormals(), 35)
	}()
	wg.Wait()
	return l
}

func joinLines[T fmt.Stringer](items []T, sizeHint int) string {
	var b strings.Builder
	b.Grow(len(items) * sizeHint)
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(item.String())
	}
	return b.String()
}
