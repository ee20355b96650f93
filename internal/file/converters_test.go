//go:build unit

package file

import (
	"github.com/gostonefire/parcelindex/internal/model"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseEntry(t *testing.T) {
	t.Run("parses valid entries", func(t *testing.T) {
		// Prepare
		entries := map[string]model.Parcel{
			"Japan, 100, 10.00\n":           {Destination: "Japan", Weight: 100, Value: 10.0},
			"Canada,200,5.5":                {Destination: "Canada", Weight: 200, Value: 5.5},
			"United Kingdom, 75, 12.25\r\n": {Destination: "United Kingdom", Weight: 75, Value: 12.25},
			"  Mali ,  0 , 0  ":             {Destination: "Mali", Weight: 0, Value: 0},
		}

		for line, expected := range entries {
			// Execute
			parcel, err := ParseEntry(line)

			// Check
			assert.NoErrorf(t, err, "parses %q", line)
			assert.Equalf(t, expected, parcel, "correct parcel from %q", line)
		}
	})

	t.Run("error on malformed entries", func(t *testing.T) {
		// Prepare
		lines := []string{
			"",
			"Japan",
			"Japan, 100",
			"Japan, 100, 10.00, extra",
			", 100, 10.00",
			"Area51, 100, 10.00",
			"Japan, heavy, 10.00",
			"Japan, 10.5, 10.00",
			"Japan, 100, cheap",
		}

		for _, line := range lines {
			// Execute
			_, err := ParseEntry(line)

			// Check
			assert.Errorf(t, err, "refuses %q", line)
		}
	})
}

func TestFormatEntry(t *testing.T) {
	t.Run("formats an entry that parses back", func(t *testing.T) {
		// Prepare
		parcel := model.Parcel{Destination: "Japan", Weight: 100, Value: 10.5}

		// Execute
		line := FormatEntry(parcel)

		// Check
		assert.Equal(t, "Japan, 100, 10.50", line, "correct entry")
		back, err := ParseEntry(line)
		assert.NoError(t, err, "parses formatted entry")
		assert.Equal(t, parcel, back, "same parcel")
	})
}

func TestClearNewLine(t *testing.T) {
	t.Run("removes line terminators", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, "Japan", ClearNewLine("Japan\n"), "removes newline")
		assert.Equal(t, "Japan", ClearNewLine("Japan\r\n"), "removes carriage return and newline")
		assert.Equal(t, "Japan", ClearNewLine("Japan"), "leaves line without terminator")
		assert.Equal(t, "", ClearNewLine("\n"), "empty line")
	})
}
