package intrusive

// color of a node. Absent (nil) children read as black.
type color uint8

const (
	black color = iota
	red
)

// dir selects one of a node's two child slots. The rotation and fixup
// code is written once in terms of a direction and its mirror rather
// than as duplicated left/right branches.
type dir int8

const (
	dirLeft dir = iota
	dirRight
)

func (d dir) flip() dir {
	if d == dirLeft {
		return dirRight
	}
	return dirLeft
}

// Node is the intrusive link structure. Embed it in the record type R
// that the tree orders; the caller owns the node's storage and the tree
// never allocates or frees nodes.
//
// A Node must be initialized with Init before it is passed to
// Tree.Insert. After Tree.Delete returns the node's links are invalid;
// re-initializing and re-inserting the node is permitted.
type Node[R any] struct {
	left, right, parent *Node[R]
	color               color
	item                *R
}

// Init prepares n for insertion: links cleared, color red, and the
// enclosing record recorded so that lookups can recover it.
func (n *Node[R]) Init(item *R) {
	n.left, n.right, n.parent = nil, nil, nil
	n.color = red
	n.item = item
}

// Item returns the record this node was initialized with.
func (n *Node[R]) Item() *R { return n.item }

// Red reports whether the node is currently colored red. Exposed for
// diagnostic rendering of the tree.
func (n *Node[R]) Red() bool { return n != nil && n.color == red }

func (n *Node[R]) child(d dir) *Node[R] {
	if d == dirLeft {
		return n.left
	}
	return n.right
}

func (n *Node[R]) setChild(d dir, c *Node[R]) {
	if d == dirLeft {
		n.left = c
	} else {
		n.right = c
	}
}

// min returns the leftmost node of the subtree rooted at n.
func (n *Node[R]) min() *Node[R] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of the subtree rooted at n.
func (n *Node[R]) max() *Node[R] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns n's in-order successor, or nil if n holds the largest
// record. The walk uses parent links and needs no auxiliary storage.
func (n *Node[R]) next() *Node[R] {
	if n.right != nil {
		return n.right.min()
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// prev returns n's in-order predecessor, or nil.
func (n *Node[R]) prev() *Node[R] {
	if n.left != nil {
		return n.left.max()
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return p
}
