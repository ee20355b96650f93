package storage

import (
	"fmt"
	"github.com/gostonefire/parcelindex/hashfunc"
	"github.com/gostonefire/parcelindex/internal/hash"
	"github.com/gostonefire/parcelindex/internal/model"
	"github.com/gostonefire/parcelindex/internal/tree"
)

// BucketTable - Represents a fixed number of buckets where each occupied bucket holds one tree.WeightTree.
// Destinations colliding in a bucket share the same tree, which is ordered by weight only.
type BucketTable struct {
	buckets                  []*tree.WeightTree
	numberOfBucketsNeeded    int64
	numberOfBucketsAvailable int64
	hashAlgorithm            hashfunc.HashAlgorithm
	internalAlgorithm        bool
}

// NewBucketTable - Returns a pointer to a new, empty, BucketTable
//   - tableConf is a model.TableConf struct providing configuration for the table
//
// It returns:
//   - bucketTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewBucketTable(tableConf model.TableConf) (bucketTable *BucketTable, err error) {
	if tableConf.NumberOfBucketsNeeded <= 0 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if tableConf.HashAlgorithm == nil {
		tableConf.HashAlgorithm = hash.NewDjb2HashAlgorithm(tableConf.NumberOfBucketsNeeded)
		internalAlg = true
	} else {
		tableConf.HashAlgorithm.SetTableSize(tableConf.NumberOfBucketsNeeded)
	}

	numberOfBuckets := tableConf.HashAlgorithm.GetTableSize()
	if numberOfBuckets <= 0 {
		err = fmt.Errorf("hash algorithm reports a table size of %d, it must be higher than 0 (zero)", numberOfBuckets)
		return
	}

	bucketTable = &BucketTable{
		buckets:                  make([]*tree.WeightTree, numberOfBuckets),
		numberOfBucketsNeeded:    tableConf.NumberOfBucketsNeeded,
		numberOfBucketsAvailable: numberOfBuckets,
		hashAlgorithm:            tableConf.HashAlgorithm,
		internalAlgorithm:        internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from BucketTable
func (B *BucketTable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBucketsNeeded:    B.numberOfBucketsNeeded,
		NumberOfBucketsAvailable: B.numberOfBucketsAvailable,
		InternalAlgorithm:        B.internalAlgorithm,
	}

	return
}

// GetBucketNo - Returns which bucket number the given key results in
//   - key is the destination of a parcel
func (B *BucketTable) GetBucketNo(key []byte) (bucketNo int64, err error) {
	bucketNo = B.hashAlgorithm.HashFunc1(key)
	if bucketNo < 0 || bucketNo >= B.numberOfBucketsAvailable {
		err = fmt.Errorf("recieved bucket number %d from hash algorithm is outside permitted range", bucketNo)
		return
	}

	return
}

// GetBucket - Returns the tree stored in a bucket
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - weightTree is the tree in the bucket, nil if the bucket is empty
//   - err is standard error
func (B *BucketTable) GetBucket(bucketNo int64) (weightTree *tree.WeightTree, err error) {
	if bucketNo < 0 || bucketNo >= B.numberOfBucketsAvailable {
		err = fmt.Errorf("bucket number %d is outside permitted range", bucketNo)
		return
	}

	weightTree = B.buckets[bucketNo]

	return
}

// Set - Inserts a parcel in the tree of the bucket its destination hashes to, the tree is created if the
// bucket was empty.
//   - parcel is the parcel to insert
//
// It returns:
//   - inserted is false if the parcel was dropped because its bucket already holds a parcel of the same weight on its path
//   - err is a standard error, if something went wrong
func (B *BucketTable) Set(parcel model.Parcel) (inserted bool, err error) {
	bucketNo, err := B.GetBucketNo([]byte(parcel.Destination))
	if err != nil {
		return
	}

	if B.buckets[bucketNo] == nil {
		B.buckets[bucketNo] = tree.NewWeightTree()
	}
	inserted = B.buckets[bucketNo].Insert(parcel)

	return
}

// Clear - Destroys the tree of every bucket and leaves all buckets empty
//
// It returns:
//   - released is the total number of parcels released
func (B *BucketTable) Clear() (released int64) {
	for i, t := range B.buckets {
		if t != nil {
			released += t.Destroy()
			B.buckets[i] = nil
		}
	}

	return
}
