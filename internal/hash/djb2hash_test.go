//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDjb2(t *testing.T) {
	t.Run("hashes known strings", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, uint32(5381), Djb2([]byte{}), "empty key gives the seed")
		assert.Equal(t, uint32(225521551), Djb2([]byte("Japan")), "correct hash for Japan")
		assert.Equal(t, uint32(2873224029), Djb2([]byte("Canada")), "correct hash for Canada")
	})
}

func TestDjb2HashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size rounded up to a prime", func(t *testing.T) {
		// Prepare
		h := NewDjb2HashAlgorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(11), tableSize, "correct tableSize value")
	})

	t.Run("keeps a prime table size", func(t *testing.T) {
		// Prepare
		h := NewDjb2HashAlgorithm(127)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(127), tableSize, "correct tableSize value")
	})
}

func TestDjb2HashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		h := NewDjb2HashAlgorithm(127)

		// Execute
		japan := h.HashFunc1([]byte("Japan"))
		canada := h.HashFunc1([]byte("Canada"))

		// Check
		assert.Equal(t, int64(31), japan, "correct bucket for Japan")
		assert.Equal(t, int64(32), canada, "correct bucket for Canada")
	})

	t.Run("colliding destinations share a bucket", func(t *testing.T) {
		// Prepare
		h := NewDjb2HashAlgorithm(127)

		// Execute and Check
		assert.Equal(t, h.HashFunc1([]byte("Japan")), h.HashFunc1([]byte("Mali")), "Japan and Mali collide")
	})

	t.Run("is deterministic", func(t *testing.T) {
		// Prepare
		h1 := NewDjb2HashAlgorithm(127)
		h2 := NewDjb2HashAlgorithm(127)

		// Execute and Check
		for _, key := range []string{"", "Japan", "Canada", "Switzerland", "a very long destination name indeed"} {
			b := h1.HashFunc1([]byte(key))
			assert.Equal(t, b, h1.HashFunc1([]byte(key)), "same bucket on repeated calls")
			assert.Equal(t, b, h2.HashFunc1([]byte(key)), "same bucket across instances")
			assert.True(t, b >= 0 && b < h1.GetTableSize(), "bucket within table")
		}
	})
}

func TestDjb2HashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewDjb2HashAlgorithm(10)
		assert.Equal(t, int64(11), h.GetTableSize(), "correct tableSize value")

		// Execute
		h.SetTableSize(100)

		// Check
		assert.Equal(t, int64(101), h.GetTableSize(), "correct tableSize value")
		assert.Equal(t, int64(225521551%101), h.HashFunc1([]byte("Japan")), "bucket follows new table size")
	})
}
