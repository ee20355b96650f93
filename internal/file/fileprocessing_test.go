//go:build integration

package file

import (
	"fmt"
	"github.com/gostonefire/parcelindex/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// recordingInserter - Inserter that records parcels and drops repeated weights per destination
type recordingInserter struct {
	parcels []model.Parcel
	seen    map[string]bool
}

func newRecordingInserter() *recordingInserter {
	return &recordingInserter{seen: make(map[string]bool)}
}

func (R *recordingInserter) Insert(destination string, weight int64, value float64) (inserted bool, err error) {
	if weight < 0 {
		err = fmt.Errorf("weight can not be negative, got %d", weight)
		return
	}
	key := fmt.Sprintf("%s/%d", destination, weight)
	if R.seen[key] {
		return
	}
	R.seen[key] = true
	R.parcels = append(R.parcels, model.Parcel{Destination: destination, Weight: weight, Value: value})

	return true, nil
}

const courierData = `Japan, 100, 10.00
Japan, 50, 25.00

Canada, 200, 5.00
Japan, 50, 1.00
not an entry
Mali, -5, 3.00
`

func writeCourierFile(t *testing.T, data string) string {
	name := filepath.Join(t.TempDir(), "couriers.txt")
	err := os.WriteFile(name, []byte(data), 0644)
	require.NoError(t, err, "writes courier file")
	return name
}

func TestLoad(t *testing.T) {
	t.Run("loads entries and counts skipped lines", func(t *testing.T) {
		// Prepare
		inserter := newRecordingInserter()

		// Execute
		loadStat, err := Load(strings.NewReader(courierData), inserter, zaptest.NewLogger(t).Sugar())

		// Check
		require.NoError(t, err, "loads courier data")
		assert.Equal(t, LoadStat{Lines: 7, Inserted: 3, Dropped: 1, Malformed: 1, Rejected: 1}, loadStat, "correct statistics")
		assert.Equal(t, []model.Parcel{
			{Destination: "Japan", Weight: 100, Value: 10.0},
			{Destination: "Japan", Weight: 50, Value: 25.0},
			{Destination: "Canada", Weight: 200, Value: 5.0},
		}, inserter.parcels, "parcels inserted in file order")
	})

	t.Run("empty input loads nothing", func(t *testing.T) {
		// Prepare
		inserter := newRecordingInserter()

		// Execute
		loadStat, err := Load(strings.NewReader(""), inserter, zaptest.NewLogger(t).Sugar())

		// Check
		require.NoError(t, err, "loads empty data")
		assert.Equal(t, LoadStat{}, loadStat, "nothing counted")
		assert.Empty(t, inserter.parcels, "nothing inserted")
	})
}

func TestLoadFile(t *testing.T) {
	for _, useMMap := range []bool{false, true} {
		t.Run(fmt.Sprintf("loads courier file with mmap %t", useMMap), func(t *testing.T) {
			// Prepare
			name := writeCourierFile(t, courierData)
			inserter := newRecordingInserter()

			// Execute
			loadStat, err := LoadFile(name, useMMap, inserter, zaptest.NewLogger(t).Sugar())

			// Check
			require.NoError(t, err, "loads courier file")
			assert.Equal(t, int64(3), loadStat.Inserted, "correct number inserted")
			assert.Len(t, inserter.parcels, 3, "parcels inserted")
		})

		t.Run(fmt.Sprintf("error on missing file with mmap %t", useMMap), func(t *testing.T) {
			// Prepare
			name := filepath.Join(t.TempDir(), "missing.txt")

			// Execute
			_, err := LoadFile(name, useMMap, newRecordingInserter(), zaptest.NewLogger(t).Sugar())

			// Check
			assert.Error(t, err, "missing file reported")
		})
	}
}
