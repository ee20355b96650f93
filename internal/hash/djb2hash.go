package hash

import (
	"github.com/gostonefire/parcelindex/internal/conf"
	"github.com/gostonefire/parcelindex/internal/utils"
)

// Djb2HashAlgorithm - The internally used bucket selection algorithm is implemented using the djb2 string hash
// (seed 5381, hash = hash*33 + byte) in 32-bit unsigned arithmetic and then applying bucket = hash % actualTableSize
// to get the bucket number, where actualTableSize is the nearest prime equal to or bigger than the requested table size.
type Djb2HashAlgorithm struct {
	tableSize int64
}

// NewDjb2HashAlgorithm - Returns a pointer to a new Djb2HashAlgorithm instance
func NewDjb2HashAlgorithm(tableSize int64) *Djb2HashAlgorithm {
	ha := &Djb2HashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest prime equal to or bigger than the requested table size.
//   - tableSize is the number of buckets the index will address
func (D *Djb2HashAlgorithm) SetTableSize(tableSize int64) {
	D.tableSize = utils.RoundUpPrime(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (D *Djb2HashAlgorithm) HashFunc1(key []byte) int64 {
	return int64(uint64(Djb2(key)) % uint64(D.tableSize))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (D *Djb2HashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// Djb2 - Returns the unreduced djb2 hash of key
func Djb2(key []byte) uint32 {
	h := conf.Djb2Seed
	for _, c := range key {
		h = h<<5 + h + uint32(c)
	}

	return h
}
