package model

import hashfunc "github.com/gostonefire/parcelindex/hashfunc"

// Parcel - Represents one parcel record, it is never changed once created
//   - Destination is the destination country
//   - Weight is the weight in grams
//   - Value is the monetary value of the parcel
type Parcel struct {
	Destination string  `json:"destination" cbor:"destination"`
	Weight      int64   `json:"weight" cbor:"weight"`
	Value       float64 `json:"value" cbor:"value"`
}

// StorageParameters - Represents parameters of the bucket storage in use
type StorageParameters struct {
	NumberOfBucketsNeeded    int64
	NumberOfBucketsAvailable int64
	InternalAlgorithm        bool
}

// TableConf - Is a struct to be passed in the call to storage.NewBucketTable and contains configuration
// for the bucket table.
//   - NumberOfBucketsNeeded is the number of buckets asked for, the hash algorithm decides the actual number
//   - HashAlgorithm is the hash function to use, nil selects the internal djb2 algorithm
type TableConf struct {
	NumberOfBucketsNeeded int64
	HashAlgorithm         hashfunc.HashAlgorithm
}
