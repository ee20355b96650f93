package file

import (
	"bufio"
	"fmt"
	"go.uber.org/zap"
	"golang.org/x/exp/mmap"
	"io"
	"os"
	"strings"
)

// Inserter - Interface for anything taking parsed parcels, a parcelindex.ParcelIndex for instance
type Inserter interface {
	Insert(destination string, weight int64, value float64) (inserted bool, err error)
}

// LoadStat - Statistics from loading a courier file
//   - Lines is the number of lines read, blank lines included
//   - Inserted is the number of parcels stored
//   - Dropped is the number of parcels dropped by the inserter due to an already stored weight
//   - Malformed is the number of lines that could not be parsed
//   - Rejected is the number of parsed parcels the inserter refused with an error
type LoadStat struct {
	Lines     int64
	Inserted  int64
	Dropped   int64
	Malformed int64
	Rejected  int64
}

// mmapFile - A memory mapped file read sequentially
type mmapFile struct {
	*io.SectionReader
	readerAt *mmap.ReaderAt
}

// Close - Unmaps the file
func (M mmapFile) Close() error {
	return M.readerAt.Close()
}

// OpenCourierFile - Opens a courier file for reading, make sure to close it when done.
//   - name is the name of the file (including path)
//   - useMMap set to true memory maps the file instead of reading it through the os file
func OpenCourierFile(name string, useMMap bool) (f io.ReadCloser, err error) {
	if useMMap {
		var readerAt *mmap.ReaderAt
		readerAt, err = mmap.Open(name)
		if err != nil {
			err = fmt.Errorf("error while memory mapping courier file: %s", err)
			return
		}
		f = mmapFile{SectionReader: io.NewSectionReader(readerAt, 0, int64(readerAt.Len())), readerAt: readerAt}
		return
	}

	f, err = os.Open(name)
	if err != nil {
		err = fmt.Errorf("error while opening courier file: %s", err)
		return
	}

	return
}

// Load - Reads courier entries line by line from r and hands each parsed parcel to inserter.
// Malformed lines and parcels refused by the inserter are logged and skipped, blank lines are ignored.
//   - r is the source of courier entries
//   - inserter receives every parsed parcel
//   - log is the logger to report skipped lines and a summary to
//
// It returns:
//   - loadStat is a LoadStat struct with counts from the load
//   - err is a standard error if reading failed, parcels read before the failure stay inserted
func Load(r io.Reader, inserter Inserter, log *zap.SugaredLogger) (loadStat LoadStat, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		loadStat.Lines++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		parcel, parseErr := ParseEntry(line)
		if parseErr != nil {
			loadStat.Malformed++
			log.Warnw("skipping malformed entry", "line", loadStat.Lines, "entry", line, "error", parseErr)
			continue
		}

		inserted, insertErr := inserter.Insert(parcel.Destination, parcel.Weight, parcel.Value)
		switch {
		case insertErr != nil:
			loadStat.Rejected++
			log.Warnw("skipping rejected parcel", "line", loadStat.Lines, "entry", line, "error", insertErr)
		case !inserted:
			loadStat.Dropped++
			log.Debugw("dropped parcel with an already stored weight",
				"line", loadStat.Lines, "destination", parcel.Destination, "weight", parcel.Weight)
		default:
			loadStat.Inserted++
		}
	}

	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("error while reading courier file: %s", err)
		return
	}

	log.Infow("courier entries loaded",
		"lines", loadStat.Lines,
		"inserted", loadStat.Inserted,
		"dropped", loadStat.Dropped,
		"malformed", loadStat.Malformed,
		"rejected", loadStat.Rejected,
	)

	return
}

// LoadFile - Opens the named courier file, loads it through Load and closes it again
func LoadFile(name string, useMMap bool, inserter Inserter, log *zap.SugaredLogger) (loadStat LoadStat, err error) {
	f, err := OpenCourierFile(name, useMMap)
	if err != nil {
		return
	}
	defer func(f io.ReadCloser) { _ = f.Close() }(f)

	loadStat, err = Load(f, inserter, log.With("file", name))

	return
}
