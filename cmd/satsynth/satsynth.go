// Command-line tool for generating synthetic satellite instrument data, e.g.
// for testing epoch decoders and range selections without real instrument
// files.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mholt/archiver/v3"
	"github.com/spacesci/gosat/pkg/epoch"
	"github.com/spacesci/gosat/pkg/instrument"
)

const (
	version = "0.1"
)

var (
	outpFormat string
)

func main() {
	log.SetFlags(0)

	fs := flag.NewFlagSet("satsynth/"+version, flag.ExitOnError)
	instID := fs.String("instrument", "icon_ivm", "Instrument ID \"platform_name\" to generate data for.")
	catalogFile := fs.String("catalog", "", "YAML instrument catalog to use instead of the built-in one.")
	dateStr := fs.String("date", "", "Day to generate, e.g. 2020-01-01. Defaults to the instrument's test date.")
	freq := fs.String("freq", "", "Sampling frequency code, e.g. 30S. Defaults to the instrument's sampling.")
	num := fs.Int("num", 0, "Keep only the first N samples of the day.")
	period := fs.Float64("period", 5820, "Period of the cyclic data series in seconds.")
	dataMin := fs.Float64("min", 0, "Lower bound of the cyclic data series.")
	dataMax := fs.Float64("max", 24, "Upper bound of the cyclic data series.")
	counter := fs.Bool("counter", false, "Generate the period counter instead of the cyclic series.")
	outFile := fs.String("o", "", "Output file, gzipped if it ends in .gz. Defaults to stdout.")
	fs.StringVar(&outpFormat, "format", "epochs", "Format specifies the format of the output: epochs, csv, json.")

	fs.Usage = func() {
		fmt.Println(`satsynth - generate synthetic satellite instrument data

Usage:
    satsynth [flags]

Flags:`)
		fs.PrintDefaults()
		fmt.Println(`
Examples:
    # One day of ICON MIGHTI epochs at its default sampling
    $ satsynth -instrument=icon_mighti

    # The first hour of ICON IVM samples with data values, as CSV
    $ satsynth -instrument=icon_ivm -num=3600 -format=csv

    # Epochs for an instrument from your own catalog, gzipped
    $ satsynth -catalog=instruments.yaml -instrument=dmsp_ivm -o=epochs.txt.gz`)
		fmt.Printf("\nVersion: satsynth %s\n", version)
	}

	fs.Parse(os.Args[1:])
	if args := fs.Args(); len(args) > 0 {
		fmt.Fprintf(os.Stderr, "unknown arguments: %s\n", strings.Join(args, " "))
		fs.Usage()
		os.Exit(1)
	}

	cat := instrument.DefaultCatalog()
	if *catalogFile != "" {
		var err error
		cat, err = instrument.LoadCatalogFile(*catalogFile)
		if err != nil {
			log.Fatalf("load catalog: %v", err)
		}
	}

	desc, err := cat.GetID(*instID)
	if err != nil {
		log.Fatalf("%v", err)
	}

	day := desc.TestDate
	if *dateStr != "" {
		day, err = epoch.ParseEpoch(*dateStr)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}
	sampling := desc.Freq
	if *freq != "" {
		sampling = *freq
	}

	idx, err := instrument.Times(day, *num, sampling)
	if err != nil {
		log.Fatalf("%v", err)
	}
	uts := idx.SecondsOfDay()
	data := instrument.FakeData(uts[0], uts, *period, *dataMin, *dataMax, !*counter)

	var buf bytes.Buffer
	if err := writeRecords(&buf, desc, day, sampling, idx, data); err != nil {
		log.Fatalf("%v", err)
	}
	if err := writeOutput(*outFile, &buf); err != nil {
		log.Fatalf("%v", err)
	}
}

func writeRecords(w io.Writer, desc instrument.Descriptor, day time.Time, freq string, idx epoch.Index, data []float64) error {
	switch outpFormat {
	case "epochs":
		fmt.Fprintf(w, "# %s %s at %s\n", desc.ID(), day.Format("2006-01-02"), freq)
		for _, epo := range idx {
			fmt.Fprintln(w, epo.Format(time.RFC3339Nano))
		}
	case "csv":
		for i, epo := range idx {
			fmt.Fprintf(w, "%s,%g\n", epo.Format(time.RFC3339Nano), data[i])
		}
	case "json":
		type record struct {
			Epoch time.Time `json:"epoch"`
			Value float64   `json:"value"`
		}
		doc := struct {
			Instrument string   `json:"instrument"`
			Date       string   `json:"date"`
			Freq       string   `json:"freq"`
			Records    []record `json:"records"`
		}{Instrument: desc.ID(), Date: day.Format("2006-01-02"), Freq: freq}
		doc.Records = make([]record, len(idx))
		for i, epo := range idx {
			doc.Records[i] = record{Epoch: epo, Value: data[i]}
		}
		return json.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("unknown output format: %q", outpFormat)
	}
	return nil
}

// writeOutput writes buf to the file at path, gzipped for .gz files, or to
// stdout if no path is given.
func writeOutput(path string, buf *bytes.Buffer) error {
	if path == "" {
		_, err := buf.WriteTo(os.Stdout)
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if strings.HasSuffix(path, ".gz") {
		return archiver.NewGz().Compress(buf, f)
	}
	_, err = buf.WriteTo(f)
	return err
}
