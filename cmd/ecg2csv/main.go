// Command ecg2csv converts a Sierra ECG XML file to CSV, one column per lead.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/pkg/errors"

	sierraecg "github.com/Krzysieq77/sierra-ecg-tools"
)

var repbeats = flag.Bool("repbeats", false, "append representative beat columns")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file.xml > out.csv\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	name := flag.Arg(0)
	if name == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(name, *repbeats); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(name string, repbeats bool) error {
	f, err := sierraecg.ReadFile(name, &sierraecg.Options{IncludeRepbeats: repbeats})
	if err != nil {
		return err
	}

	columns := make([][]int16, 0, len(f.Leads))
	header := make([]string, 0, len(f.Leads))
	for _, lead := range f.Leads {
		header = append(header, lead.Label)
		columns = append(columns, lead.Samples)
	}
	if repbeats {
		for _, lead := range f.Leads {
			beat, ok := f.Repbeats[lead.Label]
			if !ok {
				continue
			}
			header = append(header, "rep:"+beat.Label)
			columns = append(columns, beat.Samples)
		}
	}

	w := csv.NewWriter(os.Stdout)
	if err := w.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	rows := 0
	for _, col := range columns {
		if len(col) > rows {
			rows = len(col)
		}
	}

	record := make([]string, len(columns))
	for i := 0; i < rows; i++ {
		for j, col := range columns {
			if i < len(col) {
				record[j] = strconv.Itoa(int(col[i]))
			} else {
				record[j] = ""
			}
		}
		if err := w.Write(record); err != nil {
			return errors.Wrap(err, "write csv record")
		}
	}
	w.Flush()

	return errors.Wrap(w.Error(), "flush csv")
}
