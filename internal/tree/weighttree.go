package tree

import (
	"github.com/gostonefire/parcelindex/internal/model"
	"iter"
)

// WeightTree - An unbalanced binary search tree of parcels ordered by weight.
// It is not safe for concurrent use.
type WeightTree struct {
	root *node
	size int64
}

// NewWeightTree - Returns a pointer to a new empty WeightTree
func NewWeightTree() *WeightTree {
	return &WeightTree{}
}

// Insert - Inserts a parcel into the tree.
// If a parcel with the very same weight is met on the way down the new parcel is silently dropped.
//
// It returns:
//   - inserted is true if the parcel was stored, false if it was dropped due to an equal weight
func (W *WeightTree) Insert(parcel model.Parcel) (inserted bool) {
	W.root, inserted = insert(W.root, &node{parcel: parcel})
	if inserted {
		W.size++
	}

	return
}

// Root - Returns the parcel at the root of the tree, ok is false if the tree is empty
func (W *WeightTree) Root() (parcel model.Parcel, ok bool) {
	if W.root == nil {
		return
	}

	return W.root.parcel, true
}

// Len - Returns the number of parcels stored in the tree
func (W *WeightTree) Len() int64 {
	return W.size
}

// IsEmpty - Returns true if the tree holds no parcels
func (W *WeightTree) IsEmpty() bool {
	return W.root == nil
}

// Height - Returns the number of nodes on the longest path from the root to a leaf
func (W *WeightTree) Height() int64 {
	return W.root.height()
}

// InOrder - Returns an iterator over all parcels in ascending weight order.
// The iterator can be ranged over any number of times.
func (W *WeightTree) InOrder() iter.Seq[model.Parcel] {
	return func(yield func(model.Parcel) bool) {
		W.root.inOrder(yield)
	}
}

// LighterThan - Returns an iterator over parcels with a weight strictly below threshold, in ascending weight order
func (W *WeightTree) LighterThan(threshold int64) iter.Seq[model.Parcel] {
	return func(yield func(model.Parcel) bool) {
		W.root.lighter(threshold, yield)
	}
}

// HeavierThan - Returns an iterator over parcels with a weight strictly above threshold, in ascending weight order
func (W *WeightTree) HeavierThan(threshold int64) iter.Seq[model.Parcel] {
	return func(yield func(model.Parcel) bool) {
		W.root.heavier(threshold, yield)
	}
}

// MinWeight - Returns the lightest parcel, ok is false if the tree is empty
func (W *WeightTree) MinWeight() (parcel model.Parcel, ok bool) {
	if W.root == nil {
		return
	}

	var n *node
	for n = W.root; n.left != nil; n = n.left {
	}

	return n.parcel, true
}

// MaxWeight - Returns the heaviest parcel, ok is false if the tree is empty
func (W *WeightTree) MaxWeight() (parcel model.Parcel, ok bool) {
	if W.root == nil {
		return
	}

	var n *node
	for n = W.root; n.right != nil; n = n.right {
	}

	return n.parcel, true
}

// Cheapest - Returns the parcel with the lowest value, ok is false if the tree is empty.
// Value is unrelated to the tree order so every node is visited.
func (W *WeightTree) Cheapest() (parcel model.Parcel, ok bool) {
	if W.root == nil {
		return
	}

	return W.root.cheapest().parcel, true
}

// MostExpensive - Returns the parcel with the highest value, ok is false if the tree is empty.
func (W *WeightTree) MostExpensive() (parcel model.Parcel, ok bool) {
	if W.root == nil {
		return
	}

	return W.root.mostExpensive().parcel, true
}

// TotalWeight - Returns the sum of weights of all parcels, zero for an empty tree
func (W *WeightTree) TotalWeight() int64 {
	weight, _ := W.Totals()
	return weight
}

// TotalValue - Returns the sum of values of all parcels, zero for an empty tree
func (W *WeightTree) TotalValue() float64 {
	_, value := W.Totals()
	return value
}

// Totals - Returns the sums of weights and values of all parcels in one pass, zeros for an empty tree
func (W *WeightTree) Totals() (weight int64, value float64) {
	W.root.accumulate(&weight, &value)
	return
}

// Destroy - Releases every node of the tree and leaves it empty.
//
// It returns:
//   - released is the number of parcels that were released
func (W *WeightTree) Destroy() (released int64) {
	released = W.root.destroy()
	W.root = nil
	W.size = 0

	return
}
