package mesh

// Edge is an unordered pair of vertex indices stored with A <= B, so the
// edge between a and b is the same map key whichever way it is traversed.
type Edge struct {
	A uint32 `json:"a"`
	B uint32 `json:"b"`
}

// NewEdge returns the order-normalized edge between a and b.
func NewEdge(a, b uint32) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}
