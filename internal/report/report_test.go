//go:build unit

package report

import (
	"bytes"
	"github.com/fxamacker/cbor/v2"
	"github.com/gostonefire/parcelindex/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"slices"
	"testing"
)

var testParcels = []model.Parcel{
	{Destination: "Japan", Weight: 50, Value: 25.0},
	{Destination: "Japan", Weight: 100, Value: 10.0},
}

func TestParseFormat(t *testing.T) {
	t.Run("parses known formats", func(t *testing.T) {
		for _, name := range []string{"text", "json", "cbor"} {
			// Execute
			format, err := ParseFormat(name)

			// Check
			assert.NoErrorf(t, err, "parses %s", name)
			assert.Equal(t, name, format.String(), "round trips the name")
		}
	})

	t.Run("error on unknown format", func(t *testing.T) {
		// Execute
		_, err := ParseFormat("xml")

		// Check
		assert.Error(t, err, "unknown format refused")
	})
}

func TestWriter_Text(t *testing.T) {
	t.Run("writes parcels in the courier layout", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		w := NewWriter(&buf, Text)

		// Execute
		err := w.Parcels(slices.Values(testParcels))

		// Check
		require.NoError(t, err, "writes parcels")
		assert.Equal(t,
			"Destination:\t     Japan\t Weight:     50 gms\t Value: $   25.00\n"+
				"Destination:\t     Japan\t Weight:    100 gms\t Value: $   10.00\n",
			buf.String(), "correct text")
	})

	t.Run("writes totals, pairs and not found", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		w := NewWriter(&buf, Text)

		// Execute
		require.NoError(t, w.Totals("Japan", 150, 35.0), "writes totals")
		require.NoError(t, w.Pair("Lightest", testParcels[0], "Heaviest", testParcels[1]), "writes pair")
		require.NoError(t, w.NotFound("Germany"), "writes not found")

		// Check
		assert.Equal(t,
			"Destination:\t     Japan\t Total weight:    150 gms\t Total value: $   35.00\n"+
				"Lightest:\n"+
				"Destination:\t     Japan\t Weight:     50 gms\t Value: $   25.00\n"+
				"Heaviest:\n"+
				"Destination:\t     Japan\t Weight:    100 gms\t Value: $   10.00\n"+
				"Destination Germany not found\n",
			buf.String(), "correct text")
	})
}

func TestWriter_JSON(t *testing.T) {
	t.Run("writes results as json documents", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		w := NewWriter(&buf, JSON)

		// Execute
		require.NoError(t, w.Parcels(slices.Values(testParcels)), "writes parcels")
		require.NoError(t, w.Parcels(slices.Values([]model.Parcel{})), "writes no parcels")
		require.NoError(t, w.Totals("Japan", 150, 35.0), "writes totals")
		require.NoError(t, w.NotFound("Germany"), "writes not found")

		// Check
		assert.Equal(t,
			`[{"destination":"Japan","weight":50,"value":25},{"destination":"Japan","weight":100,"value":10}]`+"\n"+
				"[]\n"+
				`{"destination":"Japan","totalWeight":150,"totalValue":35}`+"\n"+
				`{"destination":"Germany","found":false}`+"\n",
			buf.String(), "correct json")
	})
}

func TestWriter_CBOR(t *testing.T) {
	t.Run("writes results as cbor data items", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		w := NewWriter(&buf, CBOR)

		// Execute
		require.NoError(t, w.Parcels(slices.Values(testParcels)), "writes parcels")
		require.NoError(t, w.Pair("cheapest", testParcels[1], "mostExpensive", testParcels[0]), "writes pair")

		// Check
		dec := cbor.NewDecoder(&buf)
		var parcels []model.Parcel
		require.NoError(t, dec.Decode(&parcels), "decodes parcels")
		assert.Equal(t, testParcels, parcels, "correct parcels")

		var pair map[string]model.Parcel
		require.NoError(t, dec.Decode(&pair), "decodes pair")
		assert.Equal(t, testParcels[1], pair["cheapest"], "correct cheapest")
		assert.Equal(t, testParcels[0], pair["mostExpensive"], "correct most expensive")
	})
}
