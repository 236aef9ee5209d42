package boundtree

// ============================================================================
// Node structure
// ============================================================================

// node - a single node of the hierarchy
// A leaf holds exactly one domain value and its boundary; an internal node
// holds no value, only the union of its two children's boundaries.
// Internal nodes always have exactly two children, never one.
type node[V comparable, B Boundary[B]] struct {
	boundary B
	value    V // set only on leaves
	height   int

	parent *node[V, B]
	left   *node[V, B]
	right  *node[V, B]
}

func newLeaf[V comparable, B Boundary[B]](value V, boundary B) *node[V, B] {
	return &node[V, B]{
		boundary: boundary,
		value:    value,
		height:   1,
	}
}

func (n *node[V, B]) isLeaf() bool {
	return n.left == nil
}

// balanceFactor - height(right) - height(left), kept in {-1, 0, 1}
func (n *node[V, B]) balanceFactor() int {
	if n.isLeaf() {
		return 0
	}
	return n.right.height - n.left.height
}

// refresh recomputes the boundary and height of an internal node from its
// children. Leaves carry their own boundary and height 1, nothing to do.
func (n *node[V, B]) refresh() {
	if n.isLeaf() {
		return
	}
	n.boundary = n.left.boundary.Union(n.right.boundary)
	n.height = 1 + max(n.left.height, n.right.height)
}

// replaceChild swaps old for new in the parent slot old occupies.
func (n *node[V, B]) replaceChild(old, new *node[V, B]) {
	if n.left == old {
		n.left = new
	} else {
		n.right = new
	}
}

// ============================================================================
// Insertion
// ============================================================================

// bestLeaf picks the leaf that the new boundary should be grafted next to.
// Placement is greedy: it minimizes the absolute size of the union with the
// candidate, not the relative growth, because query-hit probability scales
// with absolute area. Ties break toward the left child.
func (n *node[V, B]) bestLeaf(boundary B) *node[V, B] {
	if n.isLeaf() {
		return n
	}

	leftContains := n.left.boundary.Contains(boundary)
	rightContains := n.right.boundary.Contains(boundary)

	switch {
	case leftContains && rightContains:
		// Both subtrees already cover the new boundary. Resolve the best
		// leaf in each independently and keep the cheaper of the two
		// candidates. Greedy, not globally optimal.
		leftCandidate := n.left.bestLeaf(boundary)
		rightCandidate := n.right.bestLeaf(boundary)
		if boundary.Union(leftCandidate.boundary).Size() <= boundary.Union(rightCandidate.boundary).Size() {
			return leftCandidate
		}
		return rightCandidate
	case leftContains:
		return n.left.bestLeaf(boundary)
	case rightContains:
		return n.right.bestLeaf(boundary)
	default:
		if boundary.Union(n.left.boundary).Size() <= boundary.Union(n.right.boundary).Size() {
			return n.left.bestLeaf(boundary)
		}
		return n.right.bestLeaf(boundary)
	}
}

// graft replaces the target leaf with a new internal node whose children are
// the target and the new leaf, and returns that new internal node. The
// caller repairs upward from it.
func graft[V comparable, B Boundary[B]](target, leaf *node[V, B]) *node[V, B] {
	branch := &node[V, B]{
		parent: target.parent,
		left:   target,
		right:  leaf,
	}
	if branch.parent != nil {
		branch.parent.replaceChild(target, branch)
	}
	target.parent = branch
	leaf.parent = branch
	return branch
}

// ============================================================================
// Repair & rotations
// ============================================================================

// repair walks from n to the root, recomputing boundaries and heights and
// rotating wherever the balance factor reaches ±2. Returns the (possibly
// new) root of the whole tree.
func (n *node[V, B]) repair() *node[V, B] {
	current := n
	for {
		current.refresh()
		current = current.rebalance()
		if current.parent == nil {
			return current
		}
		current = current.parent
	}
}

// rebalance rotates the subtree rooted at n if it is out of balance and
// returns the node now occupying n's old position.
func (n *node[V, B]) rebalance() *node[V, B] {
	switch n.balanceFactor() {
	case 2:
		// Right-heavy. If the right child leans left, rotate it right
		// first so a single left rotation fixes both levels.
		if n.right.balanceFactor() < 0 {
			n.right.rotateRight()
		}
		return n.rotateLeft()
	case -2:
		if n.left.balanceFactor() > 0 {
			n.left.rotateLeft()
		}
		return n.rotateRight()
	}
	return n
}

// rotateLeft promotes n's right child into n's position. Boundaries and
// heights of both touched nodes are re-derived before returning, so the
// union invariant holds on every node the rotation moved.
func (n *node[V, B]) rotateLeft() *node[V, B] {
	pivot := n.right

	n.right = pivot.left
	n.right.parent = n

	pivot.left = n
	pivot.parent = n.parent
	if pivot.parent != nil {
		pivot.parent.replaceChild(n, pivot)
	}
	n.parent = pivot

	n.refresh()
	pivot.refresh()

	return pivot
}

// rotateRight is the mirror of rotateLeft.
func (n *node[V, B]) rotateRight() *node[V, B] {
	pivot := n.left

	n.left = pivot.right
	n.left.parent = n

	pivot.right = n
	pivot.parent = n.parent
	if pivot.parent != nil {
		pivot.parent.replaceChild(n, pivot)
	}
	n.parent = pivot

	n.refresh()
	pivot.refresh()

	return pivot
}

// ============================================================================
// Search
// ============================================================================

// findLeaf descends the tree pruning subtrees whose boundary does not
// intersect the search volume, and returns the first surviving leaf holding
// a value equal to v. Which equal-valued leaf is found first is
// traversal-order-dependent.
func (n *node[V, B]) findLeaf(v V, search B) *node[V, B] {
	if !n.boundary.Intersects(search) {
		return nil
	}
	if n.isLeaf() {
		if n.value == v {
			return n
		}
		return nil
	}
	if found := n.left.findLeaf(v, search); found != nil {
		return found
	}
	return n.right.findLeaf(v, search)
}

// query yields every leaf value whose boundary intersects the search volume,
// skipping non-intersecting subtrees entirely. Returns false once the
// consumer stops.
func (n *node[V, B]) query(search B, yield func(V) bool) bool {
	if !n.boundary.Intersects(search) {
		return true
	}
	if n.isLeaf() {
		return yield(n.value)
	}
	if !n.left.query(search, yield) {
		return false
	}
	return n.right.query(search, yield)
}

// scan visits every leaf without any boundary pruning.
func (n *node[V, B]) scan(v V) bool {
	if n.isLeaf() {
		return n.value == v
	}
	return n.left.scan(v) || n.right.scan(v)
}
