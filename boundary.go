package boundtree

// Boundary is the capability contract every bounding volume must satisfy.
// The tree only ever combines and compares volumes through these four
// operations, so any union/intersect-capable volume works, not just boxes.
// Volumes are value types: copied freely, no identity.
type Boundary[B any] interface {
	// Union returns the smallest volume containing both the receiver and b
	Union(b B) B
	// Intersects reports whether the receiver and b overlap
	Intersects(b B) bool
	// Contains reports whether the receiver fully contains b
	Contains(b B) bool
	// Size returns a monotonic area/volume measure, used only as a cost
	// metric for leaf placement, never for correctness
	Size() float64
}

// Extractor maps a domain value to its bounding volume.
// A tree is built with two of them: one reporting the value's current
// boundary, one reporting its previous boundary (needed to remove a value
// that already moved).
type Extractor[V any, B any] func(v V) B
