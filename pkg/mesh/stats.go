package mesh

import (
	"runtime"
	"sync"

	"github.com/Faultbox/meshstats/pkg/math"
)

// fallbackWorkers is used when the CPU count is not reported.
const fallbackWorkers = 4

// areaAggregate is one worker's partial result.
type areaAggregate struct {
	smallest float32 // smallest area above Epsilon, 0 if none seen
	biggest  float32
	sum      float64
}

func (a *areaAggregate) add(area float32) {
	if area > math.Epsilon && (a.smallest == 0 || area < a.smallest) {
		a.smallest = area
	}
	if area > a.biggest {
		a.biggest = area
	}
	a.sum += float64(area)
}

func (a *areaAggregate) merge(other areaAggregate) {
	if other.smallest > 0 && (a.smallest == 0 || other.smallest < a.smallest) {
		a.smallest = other.smallest
	}
	if other.biggest > a.biggest {
		a.biggest = other.biggest
	}
	a.sum += other.sum
}

// workerCount returns min(triangles, workers), where workers is the
// configured cap or the CPU count.
func workerCount(triangles, configured int) int {
	workers := configured
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers <= 0 {
		workers = fallbackWorkers
	}
	return max(1, min(triangles, workers))
}

// chunks splits n items into count contiguous ranges whose sizes differ by at
// most one; the first n%count ranges get the extra item.
func chunks(n, count int) [][2]int {
	size := n / count
	leftover := n % count

	ranges := make([][2]int, 0, count)
	start := 0
	for i := 0; i < count; i++ {
		end := start + size
		if i < leftover {
			end++
		}
		ranges = append(ranges, [2]int{start, end})
		start = end
	}
	return ranges
}

// calculateStatistics computes triangle areas across a short-lived pool of
// goroutines. Each worker reads the buffers (never written after New) and
// fills its own aggregate; the aggregates are merged in chunk order, so the
// result does not depend on scheduling.
func (m *Mesh) calculateStatistics() {
	ranges := chunks(len(m.triangles), workerCount(len(m.triangles), m.workers))
	partials := make([]areaAggregate, len(ranges))

	var wg sync.WaitGroup
	for w, r := range ranges {
		wg.Add(1)
		go func() {
			defer wg.Done()
			agg := &partials[w]
			for _, tri := range m.triangles[r[0]:r[1]] {
				i := tri.VertexIndices
				agg.add(triangleArea(m.vertices[i[0]], m.vertices[i[1]], m.vertices[i[2]]))
			}
		}()
	}
	wg.Wait()

	var total areaAggregate
	for _, p := range partials {
		total.merge(p)
	}

	m.totalArea = total.sum
	m.stats = Statistics{
		SmallestTriangleArea: total.smallest,
		BiggestTriangleArea:  total.biggest,
		AverageTriangleArea:  float32(total.sum / float64(len(m.triangles))),
	}
}
