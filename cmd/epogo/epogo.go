// Command-line tool for time-axis handling of satellite instrument data:
// day-of-year conversions, date parsing, sampling-frequency inference and
// date-range expansion.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mholt/archiver/v3"
	"github.com/spacesci/gosat/pkg/epoch"
	"github.com/urfave/cli/v2"
)

func main() {
	log.SetFlags(0)

	app := &cli.App{
		Name:    "epogo",
		Usage:   "one more time-axis tool",
		Version: "0.1.0",
		Commands: []*cli.Command{
			{
				Name:      "doy",
				Usage:     "Convert dates to year and day of year",
				ArgsUsage: "DATE...",
				Action:    doDoy,
			},
			{
				Name:      "cal",
				Usage:     "Convert a year and days of year back to dates",
				ArgsUsage: "YEAR DOY...",
				Action:    doCal,
			},
			{
				Name:      "parse",
				Usage:     "Parse a date given as year, month and day strings",
				ArgsUsage: "YEAR MONTH DAY",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "century",
						Value: epoch.DefaultCentury,
						Usage: "century anchor for 2-digit years",
					},
				},
				Action: doParse,
			},
			{
				Name:  "freq",
				Usage: "Infer the sampling frequency of an epoch file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "epoch file, gunzipped if it ends in .gz (default: stdin)",
					},
					&cli.BoolFlag{
						Name:  "stats",
						Usage: "print full sequence statistics as JSON",
					},
				},
				Action: doFreq,
			},
			{
				Name:  "expand",
				Usage: "Expand start/stop intervals into an epoch sequence",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "start",
						Usage:    "interval start DATE, repeatable",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:     "stop",
						Usage:    "interval stop DATE, repeatable",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "freq",
						Value: "D",
						Usage: "frequency code, e.g. D, 01H, 30S",
					},
				},
				Action: doExpand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func doDoy(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("doy needs at least one date", 1)
	}
	for _, arg := range c.Args().Slice() {
		t, err := epoch.ParseEpoch(arg)
		if err != nil {
			return err
		}
		year, doy := epoch.YearDoy(t)
		fmt.Printf("%d %03d\n", year, doy)
	}
	return nil
}

func doCal(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.Exit("cal needs a year and at least one day of year", 1)
	}
	args := c.Args().Slice()
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("parse year %q: %v", args[0], err)
	}
	for _, arg := range args[1:] {
		doy, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("parse doy %q: %v", arg, err)
		}
		fmt.Println(epoch.ParseDoy(year, doy).Format("2006-01-02"))
	}
	return nil
}

func doParse(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit("parse needs year, month and day", 1)
	}
	args := c.Args().Slice()
	d, err := epoch.ParseDateInCentury(c.Int("century"), args[0], args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Println(d.Format("2006-01-02"))
	return nil
}

func doFreq(c *cli.Context) error {
	epochs, err := readEpochs(c.String("input"))
	if err != nil {
		return err
	}

	if c.Bool("stats") {
		stats, err := epochs.ComputeStats()
		if err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(stats)
	}

	code, err := epoch.CalcFreq(epochs)
	if err != nil {
		return err
	}
	fmt.Println(code)
	return nil
}

func doExpand(c *cli.Context) error {
	starts, err := parseEpochs(c.StringSlice("start"))
	if err != nil {
		return err
	}
	stops, err := parseEpochs(c.StringSlice("stop"))
	if err != nil {
		return err
	}

	freq := c.String("freq")
	idx, err := epoch.DateRangeList(starts, stops, freq)
	if err != nil {
		return err
	}

	f, err := epoch.ParseFreq(freq)
	if err != nil {
		return err
	}
	format := time.RFC3339Nano
	if f.Duration()%(24*time.Hour) == 0 {
		format = "2006-01-02"
	}
	for _, epo := range idx {
		fmt.Println(epo.Format(format))
	}
	return nil
}

// readEpochs decodes the epoch records from the file at path, or from stdin
// if path is empty. Files ending in .gz are decompressed first.
func readEpochs(path string) (epoch.Index, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
		if strings.HasSuffix(path, ".gz") {
			var buf bytes.Buffer
			if err := archiver.NewGz().Decompress(f, &buf); err != nil {
				return nil, fmt.Errorf("decompress %s: %v", path, err)
			}
			r = &buf
		}
	}

	dec := epoch.NewDecoder(r)
	var epochs epoch.Index
	for dec.NextEpoch() {
		epochs = append(epochs, dec.Epoch())
	}
	return epochs, dec.Err()
}

func parseEpochs(args []string) ([]time.Time, error) {
	epochs := make([]time.Time, len(args))
	for i, arg := range args {
		t, err := epoch.ParseEpoch(arg)
		if err != nil {
			return nil, err
		}
		epochs[i] = t
	}
	return epochs, nil
}
