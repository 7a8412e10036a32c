package intrusive

// Insert links n into the tree. n must have been initialized with Init;
// it is colored red, placed by an iterative BST descent, and the
// red-black invariants are then restored by recoloring and at most two
// rotations. Records comparing equal to an existing record are placed
// in its right subtree, so duplicates coexist.
func (t *Tree[R]) Insert(n *Node[R]) {
	n.left, n.right = nil, nil
	n.color = red

	var parent *Node[R]
	d := dirLeft
	for x := t.root; x != nil; {
		parent = x
		if t.cmp(n.item, x.item) < 0 {
			d = dirLeft
			x = x.left
		} else {
			d = dirRight
			x = x.right
		}
	}
	n.parent = parent
	if parent == nil {
		t.root = n
	} else {
		parent.setChild(d, n)
	}
	t.length++
	t.insertFixup(n)
}

// insertFixup restores the no-red-red invariant after a raw placement.
// The only possible violation on entry is between n and its parent.
func (t *Tree[R]) insertFixup(n *Node[R]) {
	for n != t.root && n.color == red && n.parent.color == red {
		parent := n.parent
		grandparent := parent.parent
		pd := dirLeft
		if parent == grandparent.right {
			pd = dirRight
		}
		uncle := grandparent.child(pd.flip())

		if uncle.Red() {
			// Push the red violation up: the grandparent absorbs the
			// red and both its children turn black. Black heights are
			// unchanged.
			grandparent.color = red
			parent.color = black
			uncle.color = black
			n = grandparent
			continue
		}

		if n == parent.child(pd.flip()) {
			// Inner grandchild: straighten the zig-zag into a zig-zig
			// first. The former parent becomes the bottom of the chain.
			t.rotate(pd, parent)
			n, parent = parent, n
		}
		// Zig-zig: one rotation at the grandparent plus a color swap
		// settles the violation.
		t.rotate(pd.flip(), grandparent)
		grandparent.color, parent.color = parent.color, grandparent.color
		n = parent
	}
	t.root.color = black
}
