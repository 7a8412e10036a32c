package intrusive

// rotate rotates the subtree rooted at n in direction d. The pivot is
// n's child opposite d; it takes n's place under n's former parent (or
// as the root) and n becomes the pivot's d-child. BST order is
// preserved; node colors are untouched, so the caller owns restoring
// the red-black invariants afterwards.
//
//	Before right rotation       After right rotation
//	       P                           Q
//	     /   \                       /   \
//	    Q     R                     A     P
//	   / \                               / \
//	  A   B                             B   R
func (t *Tree[R]) rotate(d dir, n *Node[R]) {
	pivot := n.child(d.flip())
	n.setChild(d.flip(), pivot.child(d))
	if c := pivot.child(d); c != nil {
		c.parent = n
	}
	pivot.parent = n.parent
	switch {
	case n.parent == nil:
		t.root = pivot
	case n == n.parent.left:
		n.parent.left = pivot
	default:
		n.parent.right = pivot
	}
	pivot.setChild(d, n)
	n.parent = pivot
}
