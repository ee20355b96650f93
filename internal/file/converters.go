package file

import (
	"fmt"
	"github.com/gostonefire/parcelindex/internal/model"
	"strconv"
	"strings"
)

// ClearNewLine - Removes a trailing line terminator, "\n" or "\r\n", from line
func ClearNewLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// ParseEntry - Converts one courier file entry on the form "Destination, weight, value" to a model.Parcel.
// The destination may contain spaces but neither commas nor digits, weight is an integer and value a decimal number.
// Any trailing line terminator is removed before parsing.
//   - line is the entry to parse
//
// It returns:
//   - parcel is the parsed parcel, validity of weight and value ranges is left to the index
//   - err is a standard error if the entry is malformed
func ParseEntry(line string) (parcel model.Parcel, err error) {
	fields := strings.Split(ClearNewLine(line), ",")
	if len(fields) != 3 {
		err = fmt.Errorf("expected 3 comma separated fields, got %d", len(fields))
		return
	}

	destination := strings.TrimSpace(fields[0])
	if destination == "" {
		err = fmt.Errorf("destination is missing")
		return
	}
	if strings.ContainsAny(destination, "0123456789") {
		err = fmt.Errorf("destination %q contains digits", destination)
		return
	}

	weight, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		err = fmt.Errorf("error while parsing weight: %s", err)
		return
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		err = fmt.Errorf("error while parsing value: %s", err)
		return
	}

	parcel = model.Parcel{Destination: destination, Weight: weight, Value: value}

	return
}

// FormatEntry - Converts a model.Parcel to a courier file entry, without line terminator
func FormatEntry(parcel model.Parcel) string {
	return fmt.Sprintf("%s, %d, %.2f", parcel.Destination, parcel.Weight, parcel.Value)
}
