package main

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/parcelindex"
	"github.com/gostonefire/parcelindex/internal/file"
	"github.com/gostonefire/parcelindex/internal/report"
	"io"
	"strconv"
	"strings"
)

const menuText = `
1. Display all parcels for a destination
2. Display parcels lighter or heavier than a weight
3. Display total weight and value for a destination
4. Display cheapest and most expensive parcel for a destination
5. Display lightest and heaviest parcel for a destination
6. Display all parcels
7. Exit
`

// menu - The interactive query loop over a loaded index
type menu struct {
	index   *parcelindex.ParcelIndex
	in      *bufio.Scanner
	prompt  io.Writer
	results *report.Writer
}

// runMenu - Reads menu choices from in until exit is chosen or in is exhausted.
// Prompts go to prompt and query results to results.
func runMenu(in io.Reader, prompt io.Writer, results *report.Writer, index *parcelindex.ParcelIndex) (err error) {
	m := &menu{
		index:   index,
		in:      bufio.NewScanner(in),
		prompt:  prompt,
		results: results,
	}

	for {
		_, _ = fmt.Fprint(m.prompt, menuText)
		choice, ok := m.readLine("Enter your choice: ")
		if !ok {
			return m.in.Err()
		}

		switch choice {
		case "1":
			err = m.withDestination(m.listAll)
		case "2":
			err = m.withDestination(m.listByWeight)
		case "3":
			err = m.withDestination(m.totals)
		case "4":
			err = m.withDestination(m.extremesByValue)
		case "5":
			err = m.withDestination(m.extremesByWeight)
		case "6":
			err = m.results.Parcels(m.index.All())
		case "7":
			return
		default:
			_, _ = fmt.Fprintln(m.prompt, "Invalid choice")
		}

		if err != nil {
			return
		}
	}
}

// readLine - Prompts for and reads one line with the line terminator removed, ok is false when input is exhausted
func (M *menu) readLine(text string) (line string, ok bool) {
	_, _ = fmt.Fprint(M.prompt, text)
	if !M.in.Scan() {
		return
	}

	return strings.TrimSpace(file.ClearNewLine(M.in.Text())), true
}

// withDestination - Asks for a destination and runs query for it if it is present in the index
func (M *menu) withDestination(query func(destination string) error) (err error) {
	destination, ok := M.readLine("Enter destination: ")
	if !ok {
		return
	}

	if !M.index.DestinationExists(destination) {
		return M.results.NotFound(destination)
	}

	err = query(destination)
	if errors.Is(err, parcelindex.DestinationNotFound{}) {
		err = M.results.NotFound(destination)
	}

	return
}

func (M *menu) listAll(destination string) (err error) {
	parcels, err := M.index.ListAll(destination)
	if err != nil {
		return
	}

	return M.results.Parcels(parcels)
}

func (M *menu) listByWeight(destination string) (err error) {
	text, ok := M.readLine("Enter weight in gms: ")
	if !ok {
		return
	}
	weight, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		_, _ = fmt.Fprintln(M.prompt, "Invalid weight")
		return nil
	}

	direction, ok := M.readLine("Lighter or heavier (l/h): ")
	if !ok {
		return
	}

	switch strings.ToLower(direction) {
	case "l":
		parcels, err := M.index.ListLighterThan(destination, weight)
		if err != nil {
			return err
		}
		return M.results.Parcels(parcels)
	case "h":
		parcels, err := M.index.ListHeavierThan(destination, weight)
		if err != nil {
			return err
		}
		return M.results.Parcels(parcels)
	default:
		_, _ = fmt.Fprintln(M.prompt, "Invalid direction")
	}

	return
}

func (M *menu) totals(destination string) (err error) {
	totalWeight, totalValue, err := M.index.Totals(destination)
	if err != nil {
		return
	}

	return M.results.Totals(destination, totalWeight, totalValue)
}

func (M *menu) extremesByValue(destination string) (err error) {
	cheapest, mostExpensive, err := M.index.ExtremesByValue(destination)
	if err != nil {
		return
	}

	return M.results.Pair("Cheapest", cheapest, "Most expensive", mostExpensive)
}

func (M *menu) extremesByWeight(destination string) (err error) {
	lightest, heaviest, err := M.index.ExtremesByWeight(destination)
	if err != nil {
		return
	}

	return M.results.Pair("Lightest", lightest, "Heaviest", heaviest)
}
