package main

import (
	"flag"
	"fmt"
	"github.com/gostonefire/parcelindex"
	"github.com/gostonefire/parcelindex/internal/conf"
	"github.com/gostonefire/parcelindex/internal/file"
	"github.com/gostonefire/parcelindex/internal/report"
	"go.uber.org/zap"
	"io"
	"os"
)

const (
	ErrDefault = 1 + iota
	ErrConfig
	ErrFileLoad
	ErrStdErr
)

var (
	courierFile  string
	bucketCount  int64
	useMMap      bool
	outputFormat string
	verbose      bool
	showStat     bool
)

func init() {
	flag.StringVar(&courierFile, "file", conf.DefaultCourierFile, "courier file to load")
	flag.Int64Var(&bucketCount, "buckets", conf.DefaultBucketCount, "number of buckets, rounded up to a prime")
	flag.BoolVar(&useMMap, "mmap", false, "use mmap")
	flag.StringVar(&outputFormat, "format", "text", "output format: text, json or cbor")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.BoolVar(&showStat, "stat", false, "log bucket statistics after loading")
}

func main() {
	flag.Parse()

	format, err := report.ParseFormat(outputFormat)
	exitOnErr(err, ErrConfig)

	log, err := newLogger(verbose)
	exitOnErr(err, ErrConfig)

	indexConf := parcelindex.DefaultIndexConf()
	indexConf.BucketCount = bucketCount
	pi, info, err := parcelindex.NewParcelIndex(indexConf)
	exitOnErr(err, ErrConfig)
	log = log.With("session", info.SessionID.String())
	log.Debugw("parcel index created", "buckets", info.NumberOfBuckets)

	_, err = file.LoadFile(courierFile, useMMap, pi, log)
	exitOnErr(err, ErrFileLoad)

	if showStat {
		stat, err := pi.Stat(false)
		exitOnErr(err, ErrDefault)
		log.Infow("bucket statistics",
			"records", stat.Records,
			"occupiedBuckets", stat.OccupiedBuckets,
			"maxTreeHeight", stat.MaxTreeHeight,
		)
	}

	// Keep stdout clean for machine readable formats
	var prompt io.Writer = os.Stdout
	if format != report.Text {
		prompt = os.Stderr
	}

	err = runMenu(os.Stdin, prompt, report.NewWriter(os.Stdout, format), pi)
	log.Infow("parcel index torn down", "released", pi.Teardown())
	_ = log.Sync()
	exitOnErr(err, ErrDefault)
}

// newLogger - Returns a production logger, or a development logger at debug level if verbose is set
func newLogger(verbose bool) (log *zap.SugaredLogger, err error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		err = fmt.Errorf("error while building logger: %s", err)
		return
	}
	log = l.Named("parcelindex").Sugar()

	return
}

func exitOnErr(err error, code int) {
	if err != nil {
		if _, printErr := fmt.Fprintln(os.Stderr, err); printErr != nil {
			os.Exit(ErrStdErr)
		}
		os.Exit(code)
	}
}
