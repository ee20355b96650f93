package report

import (
	"encoding/json"
	"fmt"
	"github.com/fxamacker/cbor/v2"
	"github.com/gostonefire/parcelindex/internal/model"
	"io"
	"iter"
)

// Format - Output format of a Writer
type Format int

const (
	// Text - Human readable lines, one parcel per line
	Text Format = iota
	// JSON - One JSON document per result
	JSON
	// CBOR - One CBOR data item per result
	CBOR
)

// ParseFormat - Returns the Format named by s, one of "text", "json" or "cbor"
func ParseFormat(s string) (format Format, err error) {
	switch s {
	case "text":
		format = Text
	case "json":
		format = JSON
	case "cbor":
		format = CBOR
	default:
		err = fmt.Errorf("unknown output format %q, expected text, json or cbor", s)
	}

	return
}

// String - Returns the name of the format
func (F Format) String() string {
	switch F {
	case JSON:
		return "json"
	case CBOR:
		return "cbor"
	default:
		return "text"
	}
}

type totalsResult struct {
	Destination string  `json:"destination" cbor:"destination"`
	TotalWeight int64   `json:"totalWeight" cbor:"totalWeight"`
	TotalValue  float64 `json:"totalValue" cbor:"totalValue"`
}

type notFoundResult struct {
	Destination string `json:"destination" cbor:"destination"`
	Found       bool   `json:"found" cbor:"found"`
}

// Writer - Renders query results to an io.Writer in a chosen Format
type Writer struct {
	out    io.Writer
	format Format
}

// NewWriter - Returns a pointer to a new Writer
//   - out is where results are written
//   - format is the format to write results in
func NewWriter(out io.Writer, format Format) *Writer {
	return &Writer{out: out, format: format}
}

// Parcels - Writes every parcel of the sequence, in text format one line per parcel
func (W *Writer) Parcels(parcels iter.Seq[model.Parcel]) (err error) {
	if W.format == Text {
		for p := range parcels {
			if err = W.parcelLine(p); err != nil {
				return
			}
		}
		return
	}

	list := make([]model.Parcel, 0)
	for p := range parcels {
		list = append(list, p)
	}

	return W.encode(list)
}

// Totals - Writes the total weight and value for a destination
func (W *Writer) Totals(destination string, totalWeight int64, totalValue float64) (err error) {
	if W.format == Text {
		_, err = fmt.Fprintf(W.out, "Destination:\t%10s\t Total weight: %6d gms\t Total value: $%8.2f\n",
			destination, totalWeight, totalValue)
		return
	}

	return W.encode(totalsResult{Destination: destination, TotalWeight: totalWeight, TotalValue: totalValue})
}

// Pair - Writes two labelled parcels, such as the cheapest and the most expensive
func (W *Writer) Pair(firstLabel string, first model.Parcel, secondLabel string, second model.Parcel) (err error) {
	if W.format == Text {
		if _, err = fmt.Fprintf(W.out, "%s:\n", firstLabel); err != nil {
			return
		}
		if err = W.parcelLine(first); err != nil {
			return
		}
		if _, err = fmt.Fprintf(W.out, "%s:\n", secondLabel); err != nil {
			return
		}
		return W.parcelLine(second)
	}

	return W.encode(map[string]model.Parcel{firstLabel: first, secondLabel: second})
}

// NotFound - Writes that a destination was not found
func (W *Writer) NotFound(destination string) (err error) {
	if W.format == Text {
		_, err = fmt.Fprintf(W.out, "Destination %s not found\n", destination)
		return
	}

	return W.encode(notFoundResult{Destination: destination, Found: false})
}

// parcelLine - Writes one parcel in the classic courier print layout
func (W *Writer) parcelLine(p model.Parcel) (err error) {
	_, err = fmt.Fprintf(W.out, "Destination:\t%10s\t Weight: %6d gms\t Value: $%8.2f\n", p.Destination, p.Weight, p.Value)
	return
}

func (W *Writer) encode(v any) (err error) {
	switch W.format {
	case JSON:
		err = json.NewEncoder(W.out).Encode(v)
	case CBOR:
		err = cbor.NewEncoder(W.out).Encode(v)
	default:
		err = fmt.Errorf("format %s has no encoder", W.format)
	}
	if err != nil {
		err = fmt.Errorf("error while encoding result as %s: %s", W.format, err)
	}

	return
}
