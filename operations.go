package parcelindex

import (
	"fmt"
	"github.com/gostonefire/parcelindex/internal/tree"
	"iter"
)

// DestinationExists - Returns true if the bucket of destination holds a tree whose root parcel is for that very
// destination. Only the root is checked, so a destination sharing its bucket with a destination inserted before
// it is reported as missing, and a present destination may share its tree with parcels of other destinations.
//   - destination is the destination country, matched exactly
func (P *ParcelIndex) DestinationExists(destination string) bool {
	_, err := P.lookup(destination)
	return err == nil
}

// ListAll - Returns all parcels in the bucket of destination by ascending weight.
//   - destination is the destination country
//
// It returns:
//   - parcels is an iterator over the parcels, it can be ranged over repeatedly
//   - err is either of type DestinationNotFound or a standard error, if something went wrong
func (P *ParcelIndex) ListAll(destination string) (parcels iter.Seq[Parcel], err error) {
	wt, err := P.lookup(destination)
	if err != nil {
		return
	}

	parcels = wt.InOrder()

	return
}

// ListLighterThan - Returns parcels in the bucket of destination weighing strictly less than weight, by ascending weight.
//   - destination is the destination country
//   - weight is the threshold in grams
//
// It returns:
//   - parcels is an iterator over the parcels, it can be ranged over repeatedly
//   - err is either of type DestinationNotFound or a standard error, if something went wrong
func (P *ParcelIndex) ListLighterThan(destination string, weight int64) (parcels iter.Seq[Parcel], err error) {
	wt, err := P.lookup(destination)
	if err != nil {
		return
	}

	parcels = wt.LighterThan(weight)

	return
}

// ListHeavierThan - Returns parcels in the bucket of destination weighing strictly more than weight, by ascending weight.
//   - destination is the destination country
//   - weight is the threshold in grams
//
// It returns:
//   - parcels is an iterator over the parcels, it can be ranged over repeatedly
//   - err is either of type DestinationNotFound or a standard error, if something went wrong
func (P *ParcelIndex) ListHeavierThan(destination string, weight int64) (parcels iter.Seq[Parcel], err error) {
	wt, err := P.lookup(destination)
	if err != nil {
		return
	}

	parcels = wt.HeavierThan(weight)

	return
}

// Totals - Returns the total weight and total value of the parcels in the bucket of destination.
func (P *ParcelIndex) Totals(destination string) (totalWeight int64, totalValue float64, err error) {
	wt, err := P.lookup(destination)
	if err != nil {
		return
	}

	totalWeight, totalValue = wt.Totals()

	return
}

// ExtremesByValue - Returns the cheapest and the most expensive parcel in the bucket of destination.
// Among parcels of equal value the one found first wins, which is stable for a given tree.
func (P *ParcelIndex) ExtremesByValue(destination string) (cheapest, mostExpensive Parcel, err error) {
	wt, err := P.lookup(destination)
	if err != nil {
		return
	}

	cheapest, _ = wt.Cheapest()
	mostExpensive, _ = wt.MostExpensive()

	return
}

// ExtremesByWeight - Returns the lightest and the heaviest parcel in the bucket of destination.
func (P *ParcelIndex) ExtremesByWeight(destination string) (lightest, heaviest Parcel, err error) {
	wt, err := P.lookup(destination)
	if err != nil {
		return
	}

	lightest, _ = wt.MinWeight()
	heaviest, _ = wt.MaxWeight()

	return
}

// lookupRoot - Returns the tree in the bucket of destination, nil if the bucket is empty
func (P *ParcelIndex) lookupRoot(destination string) (weightTree *tree.WeightTree, err error) {
	bucketNo, err := P.GetBucketNo(destination)
	if err != nil {
		return
	}

	weightTree, err = P.bucketManagement.GetBucket(bucketNo)
	if err != nil {
		err = fmt.Errorf("error while getting bucket %d: %s", bucketNo, err)
		return
	}

	return
}

// lookup - Returns the tree in the bucket of destination if the bucket is occupied and its root parcel is for
// destination. A tree returned from here is never empty.
//
// It returns:
//   - weightTree is the tree of the bucket
//   - err is either of type DestinationNotFound or a standard error, if something went wrong
func (P *ParcelIndex) lookup(destination string) (weightTree *tree.WeightTree, err error) {
	weightTree, err = P.lookupRoot(destination)
	if err != nil {
		return
	}

	if weightTree != nil {
		if root, ok := weightTree.Root(); ok && root.Destination == destination {
			return
		}
	}

	weightTree = nil
	err = DestinationNotFound{msg: fmt.Sprintf("destination %q not found", destination)}

	return
}
