package boundtree

import "iter"

// Tree - a dynamic, self-balancing bounding-volume hierarchy.
//
// It indexes domain values by their bounding volumes for fast overlap
// queries: the broad phase of a collision pipeline asks it "which indexed
// values intersect this region?" instead of testing every pair. Mutations
// keep the tree height-balanced (AVL-style), so Add, Remove and Query all
// run in roughly logarithmic time.
//
// The tree never touches the indexed values themselves; their boundaries
// are obtained exclusively through the two extractors supplied at
// construction. It is not safe for unsynchronized concurrent mutation:
// one exclusive owner per tick, or caller-provided locking. Concurrent
// read-only queries are fine as long as nothing mutates.
type Tree[V comparable, B Boundary[B]] struct {
	root  *node[V, B]
	count int

	extractor         Extractor[V, B]
	previousExtractor Extractor[V, B]
}

// New creates an empty tree.
// extractor reports a value's current boundary; previousExtractor reports
// the boundary the value had before its last movement, which is what the
// tree still indexes when RemoveByPreviousBoundary is called.
func New[V comparable, B Boundary[B]](extractor, previousExtractor Extractor[V, B]) *Tree[V, B] {
	return &Tree[V, B]{
		extractor:         extractor,
		previousExtractor: previousExtractor,
	}
}

// Count returns the number of indexed values (one per leaf).
func (t *Tree[V, B]) Count() int {
	return t.count
}

func (t *Tree[V, B]) IsEmpty() bool {
	return t.root == nil
}

// Boundary returns the volume enclosing everything in the tree.
// On an empty tree it returns the zero value of the boundary type; callers
// that care must check IsEmpty themselves.
func (t *Tree[V, B]) Boundary() B {
	if t.root == nil {
		var zero B
		return zero
	}
	return t.root.boundary
}

// Add indexes v at its current boundary.
// Duplicates (by domain equality, possibly identical bounds) are accepted
// without complaint and not deduplicated.
func (t *Tree[V, B]) Add(v V) {
	boundary := t.extractor(v)
	leaf := newLeaf(v, boundary)

	if t.root == nil {
		t.root = leaf
	} else {
		target := t.root.bestLeaf(boundary)
		branch := graft(target, leaf)
		t.root = branch.repair()
	}
	t.count++
}

// Remove unindexes the first value domain-equal to v found through its
// current boundary. Returns false, without mutating, if no leaf matches —
// including when v actually lives in the tree under a stale boundary that
// no longer intersects its current one; use RemoveByPreviousBoundary then.
func (t *Tree[V, B]) Remove(v V) bool {
	return t.remove(v, t.extractor(v))
}

// RemoveByPreviousBoundary unindexes v searching with its previous
// boundary. Required when the caller already moved the value, so that
// the extractor reports the new position while the tree still indexes
// the old one.
func (t *Tree[V, B]) RemoveByPreviousBoundary(v V) bool {
	return t.remove(v, t.previousExtractor(v))
}

func (t *Tree[V, B]) remove(v V, search B) bool {
	if t.root == nil {
		return false
	}

	leaf := t.root.findLeaf(v, search)
	if leaf == nil {
		return false
	}

	t.removeLeaf(leaf)
	return true
}

// removeLeaf collapses the leaf and its parent: the sibling is promoted
// into the parent's old position, then the tree is repaired upward from
// the promotion point.
func (t *Tree[V, B]) removeLeaf(leaf *node[V, B]) {
	parent := leaf.parent

	if parent == nil {
		// The leaf is the root; the tree becomes empty.
		t.root = nil
		t.count--
		return
	}

	sibling := parent.left
	if sibling == leaf {
		sibling = parent.right
	}

	grandparent := parent.parent
	sibling.parent = grandparent
	if grandparent == nil {
		t.root = sibling
	} else {
		grandparent.replaceChild(parent, sibling)
		t.root = grandparent.repair()
	}
	t.count--
}

// Query returns a lazy sequence of every indexed value whose boundary
// intersects search. The descent prunes non-intersecting subtrees and
// visits one leaf at a time; breaking out of the range loop stops it
// early and leaves the tree untouched. Results are unordered.
//
// The sequence is live, not a snapshot: mutating the tree while a query
// is in progress produces unspecified results.
func (t *Tree[V, B]) Query(search B) iter.Seq[V] {
	return func(yield func(V) bool) {
		if t.root != nil {
			t.root.query(search, yield)
		}
	}
}

// QueryValue is Query over v's current boundary.
func (t *Tree[V, B]) QueryValue(v V) iter.Seq[V] {
	return t.Query(t.extractor(v))
}

// Contains reports whether a value domain-equal to v is indexed somewhere
// its current boundary intersects.
func (t *Tree[V, B]) Contains(v V) bool {
	for candidate := range t.QueryValue(v) {
		if candidate == v {
			return true
		}
	}
	return false
}

// ContainsQueryless scans every leaf, ignoring boundaries entirely.
// Defensive fallback for when a value's boundary may have silently changed
// without the tree being told; O(n), not for hot paths.
func (t *Tree[V, B]) ContainsQueryless(v V) bool {
	if t.root == nil {
		return false
	}
	return t.root.scan(v)
}

// All enumerates every indexed value, implemented as a query over the
// whole tree's own boundary. Intended for diagnostics, not hot paths.
func (t *Tree[V, B]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		if t.root != nil {
			t.root.query(t.root.boundary, yield)
		}
	}
}

// Clear drops the root and resets the count to zero. Prior contents are
// not validated.
func (t *Tree[V, B]) Clear() {
	t.root = nil
	t.count = 0
}
