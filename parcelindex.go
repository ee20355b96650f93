package parcelindex

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/gostonefire/parcelindex/hashfunc"
	"github.com/gostonefire/parcelindex/internal/conf"
	"github.com/gostonefire/parcelindex/internal/model"
	"github.com/gostonefire/parcelindex/internal/storage"
	"github.com/gostonefire/parcelindex/internal/tree"
	"iter"
	"math"
)

// Parcel - A parcel record as stored in and returned from the index
type Parcel = model.Parcel

// BucketManagement - Interface for any bucket storage implementation
type BucketManagement interface {
	GetBucketNo(key []byte) (bucketNo int64, err error)
	GetBucket(bucketNo int64) (weightTree *tree.WeightTree, err error)
	Set(parcel model.Parcel) (inserted bool, err error)
	Clear() (released int64)
	GetStorageParameters() (params model.StorageParameters)
}

// IndexConf - Is a struct used in the call to NewParcelIndex holding configuration for the index.
//   - BucketCount is the number of buckets to distribute destinations over, the internal hash algorithm rounds it up to the nearest prime
//   - MaxDestinationLength is the longest destination in bytes accepted by Insert, 0 (zero) means no limit
//   - HashAlgorithm is an optional custom hash algorithm following the hashfunc.HashAlgorithm interface, nil gives the internal djb2
type IndexConf struct {
	BucketCount          int64
	MaxDestinationLength int
	HashAlgorithm        hashfunc.HashAlgorithm
}

// DefaultIndexConf - Returns the configuration used by the courier tooling, 127 buckets and destinations of at
// most 19 bytes hashed with djb2.
func DefaultIndexConf() IndexConf {
	return IndexConf{
		BucketCount:          conf.DefaultBucketCount,
		MaxDestinationLength: conf.MaxDestinationLength,
	}
}

// IndexInfo - Information structure containing some information about the index created
//   - NumberOfBuckets is the total number of available buckets in the index
//   - InternalAlgorithm is true if the internal djb2 hash algorithm is used
//   - SessionID identifies the index for its lifetime, from load through teardown
type IndexInfo struct {
	NumberOfBuckets   int64
	InternalAlgorithm bool
	SessionID         uuid.UUID
}

// IndexStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of parcels stored
//   - OccupiedBuckets is the number of buckets holding a tree
//   - MaxTreeHeight is the height of the highest tree in any bucket
//   - BucketDistribution is the number of parcels stored in each available bucket
type IndexStat struct {
	Records            int64
	OccupiedBuckets    int64
	MaxTreeHeight      int64
	BucketDistribution []int64
}

// ParcelIndex - The main implementation struct.
// A ParcelIndex is populated once, queried, and then torn down. It is not safe for concurrent use.
type ParcelIndex struct {
	bucketManagement     BucketManagement
	numberOfBuckets      int64
	maxDestinationLength int
	sessionID            uuid.UUID
}

// NewParcelIndex - Returns a new empty index prepared with a fixed number of buckets.
//   - indexConf is an IndexConf struct, DefaultIndexConf gives the standard settings
//
// It returns:
//   - parcelIndex is a pointer to a ParcelIndex struct
//   - indexInfo is an IndexInfo struct containing some data regarding the index created.
//   - err is a normal go Error which should be nil if everything went ok
func NewParcelIndex(indexConf IndexConf) (parcelIndex *ParcelIndex, indexInfo IndexInfo, err error) {
	// Check if bucket count is valid
	if indexConf.BucketCount <= 0 {
		err = fmt.Errorf("bucket count must be a positive value higher than 0 (zero)")
		return
	}

	// Check if max destination length is valid
	if indexConf.MaxDestinationLength < 0 {
		err = fmt.Errorf("max destination length can not be negative")
		return
	}

	var bm BucketManagement
	bm, err = storage.NewBucketTable(model.TableConf{
		NumberOfBucketsNeeded: indexConf.BucketCount,
		HashAlgorithm:         indexConf.HashAlgorithm,
	})
	if err != nil {
		err = fmt.Errorf("error while creating bucket table: %s", err)
		return
	}

	sp := bm.GetStorageParameters()

	// Prepare return data
	parcelIndex = &ParcelIndex{
		bucketManagement:     bm,
		numberOfBuckets:      sp.NumberOfBucketsAvailable,
		maxDestinationLength: indexConf.MaxDestinationLength,
		sessionID:            uuid.New(),
	}

	indexInfo = IndexInfo{
		NumberOfBuckets:   sp.NumberOfBucketsAvailable,
		InternalAlgorithm: sp.InternalAlgorithm,
		SessionID:         parcelIndex.sessionID,
	}

	return
}

// Insert - Adds a parcel to the tree of the bucket its destination hashes to.
// A parcel whose weight equals the weight of a parcel already met on its way down the tree is dropped, that is
// not an error but is reported through inserted.
//   - destination is the destination country, it can not be empty
//   - weight is the weight in grams, it can not be negative
//   - value is the monetary value, it can not be negative
//
// It returns:
//   - inserted is true if the parcel was stored, false if it was dropped
//   - err is an InvalidParcel error if the parcel was refused, or a standard error if something went wrong
func (P *ParcelIndex) Insert(destination string, weight int64, value float64) (inserted bool, err error) {
	// Check validity of the parcel
	if destination == "" {
		err = InvalidParcel{msg: "destination can not be empty"}
		return
	}
	if P.maxDestinationLength > 0 && len(destination) > P.maxDestinationLength {
		err = InvalidParcel{msg: fmt.Sprintf("destination %q is too long, max length is %d", destination, P.maxDestinationLength)}
		return
	}
	if weight < 0 {
		err = InvalidParcel{msg: fmt.Sprintf("weight can not be negative, got %d", weight)}
		return
	}
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		err = InvalidParcel{msg: fmt.Sprintf("value must be a finite non negative number, got %v", value)}
		return
	}

	inserted, err = P.bucketManagement.Set(model.Parcel{Destination: destination, Weight: weight, Value: value})
	if err != nil {
		err = fmt.Errorf("error while inserting parcel for %s: %s", destination, err)
	}

	return
}

// GetBucketNo - Returns which bucket number the given destination results in
//   - destination is the destination country
func (P *ParcelIndex) GetBucketNo(destination string) (bucketNo int64, err error) {
	return P.bucketManagement.GetBucketNo([]byte(destination))
}

// Info - Returns information about the index
func (P *ParcelIndex) Info() (indexInfo IndexInfo) {
	sp := P.bucketManagement.GetStorageParameters()
	indexInfo = IndexInfo{
		NumberOfBuckets:   sp.NumberOfBucketsAvailable,
		InternalAlgorithm: sp.InternalAlgorithm,
		SessionID:         P.sessionID,
	}

	return
}

// All - Returns an iterator over every parcel in the index, bucket by bucket in bucket number order and by
// ascending weight within each bucket.
func (P *ParcelIndex) All() iter.Seq[Parcel] {
	return func(yield func(Parcel) bool) {
		for i := int64(0); i < P.numberOfBuckets; i++ {
			wt, err := P.bucketManagement.GetBucket(i)
			if err != nil || wt == nil {
				continue
			}
			for p := range wt.InOrder() {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Stat - Walks through the entire set of buckets and produce an IndexStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of parcels per bucket, false will set IndexStat.BucketDistribution to nil.
func (P *ParcelIndex) Stat(includeDistribution bool) (indexStat *IndexStat, err error) {
	var wt *tree.WeightTree
	var is IndexStat

	if includeDistribution {
		is.BucketDistribution = make([]int64, P.numberOfBuckets)
	}

	// Iterate over every available bucket
	for i := int64(0); i < P.numberOfBuckets; i++ {
		wt, err = P.bucketManagement.GetBucket(i)
		if err != nil {
			return
		}
		if wt == nil || wt.IsEmpty() {
			continue
		}

		is.OccupiedBuckets++
		is.Records += wt.Len()
		is.MaxTreeHeight = max(is.MaxTreeHeight, wt.Height())
		if includeDistribution {
			is.BucketDistribution[i] = wt.Len()
		}
	}

	indexStat = &is
	return
}

// Teardown - Destroys every tree in the index and leaves it empty. The index can still be queried afterwards,
// all destinations will then be reported as not found.
//
// It returns:
//   - released is the number of parcels released, 0 (zero) if the index was already torn down
func (P *ParcelIndex) Teardown() (released int64) {
	return P.bucketManagement.Clear()
}
