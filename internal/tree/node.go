package tree

import "github.com/gostonefire/parcelindex/internal/model"

// node - One parcel and the two subtrees it owns.
// Everything in left is strictly lighter and everything in right strictly heavier than parcel.
type node struct {
	parcel      model.Parcel
	left, right *node
}

// insert - Inserts n into the subtree rooted at root and returns the new root of that subtree.
// A parcel with the same weight as a parcel already on its path is dropped, inserted is then false.
func insert(root, n *node) (newRoot *node, inserted bool) {
	if root == nil {
		return n, true
	}

	switch {
	case n.parcel.Weight > root.parcel.Weight:
		root.right, inserted = insert(root.right, n)
	case n.parcel.Weight < root.parcel.Weight:
		root.left, inserted = insert(root.left, n)
	}

	return root, inserted
}

func (n *node) inOrder(yield func(model.Parcel) bool) bool {
	if n == nil {
		return true
	}
	return n.left.inOrder(yield) && yield(n.parcel) && n.right.inOrder(yield)
}

// lighter - Yields parcels lighter than threshold. Once a node is below the threshold its whole
// left subtree is too, so only the right side needs to be searched further.
func (n *node) lighter(threshold int64, yield func(model.Parcel) bool) bool {
	if n == nil {
		return true
	}
	if n.parcel.Weight < threshold {
		return n.left.inOrder(yield) && yield(n.parcel) && n.right.lighter(threshold, yield)
	}
	return n.left.lighter(threshold, yield)
}

// heavier - Mirror of lighter.
func (n *node) heavier(threshold int64, yield func(model.Parcel) bool) bool {
	if n == nil {
		return true
	}
	if n.parcel.Weight > threshold {
		return n.left.heavier(threshold, yield) && yield(n.parcel) && n.right.inOrder(yield)
	}
	return n.right.heavier(threshold, yield)
}

// cheapest - Full scan for the node with the lowest value. On equal values the node itself wins over
// its subtrees and the left subtree wins over the right.
func (n *node) cheapest() *node {
	best := n
	if n.left != nil {
		if c := n.left.cheapest(); c.parcel.Value < best.parcel.Value {
			best = c
		}
	}
	if n.right != nil {
		if c := n.right.cheapest(); c.parcel.Value < best.parcel.Value {
			best = c
		}
	}
	return best
}

func (n *node) mostExpensive() *node {
	best := n
	if n.left != nil {
		if c := n.left.mostExpensive(); c.parcel.Value > best.parcel.Value {
			best = c
		}
	}
	if n.right != nil {
		if c := n.right.mostExpensive(); c.parcel.Value > best.parcel.Value {
			best = c
		}
	}
	return best
}

// accumulate - Adds weights and values in ascending weight order, so the value sum rounds
// the same way as summing over inOrder.
func (n *node) accumulate(weight *int64, value *float64) {
	if n == nil {
		return
	}
	n.left.accumulate(weight, value)
	*weight += n.parcel.Weight
	*value += n.parcel.Value
	n.right.accumulate(weight, value)
}

func (n *node) height() int64 {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// destroy - Releases the subtree post-order, children before the node itself, and returns
// the number of nodes released.
func (n *node) destroy() (released int64) {
	if n == nil {
		return
	}
	released = n.left.destroy() + n.right.destroy() + 1
	n.left, n.right = nil, nil
	n.parcel = model.Parcel{}

	return
}
