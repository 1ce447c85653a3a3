/*
	the readtable package reads per-position base call tables, cleans them and turns them into records for assembly
*/
package readtable

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/will-rowe/dbgasm/src/misc"
)

// ErrNoRecords is returned when a table holds no usable segments
var ErrNoRecords = errors.New("no usable segments in read table")

// the columns of a read table
const numColumns = 6

// bases gives the base for each one-hot column of a row
var bases = [4]byte{'A', 'C', 'G', 'T'}

// Row is a single base call: the segment it belongs to, its 1-based position and a one-hot ACGT vector
type Row struct {
	SegmentNr int
	Position  int
	Calls     [4]int // A, C, G, T
}

// Table is a read table, rows are held in file order
type Table []Row

// Read parses a headerless CSV read table (SegmentNr,Position,A,C,G,T), a leading header line is skipped
func Read(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = numColumns
	reader.TrimLeadingSpace = true
	table := Table{}
	for line := 1; ; line++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read line %d of read table: %w", line, err)
		}
		if line == 1 && isHeader(fields) {
			continue
		}
		row, err := parseRow(fields)
		if err != nil {
			return nil, fmt.Errorf("could not parse line %d of read table: %w", line, err)
		}
		table = append(table, row)
	}
	return table, nil
}

// ReadFile opens and parses a read table, gzipped tables are handled
func ReadFile(fileName string) (Table, error) {
	fh, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	var r io.Reader = fh
	if strings.HasSuffix(fileName, ".gz") {
		gz, err := gzip.NewReader(fh)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return Read(r)
}

// isHeader reports if a line looks like column names rather than data
func isHeader(fields []string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	return err != nil
}

// parseRow converts the fields of a CSV line to a Row
func parseRow(fields []string) (Row, error) {
	values := make([]int, numColumns)
	for i, field := range fields {
		value, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Row{}, fmt.Errorf("non-integer value in column %d: %q", i+1, field)
		}
		values[i] = value
	}
	return Row{
		SegmentNr: values[0],
		Position:  values[1],
		Calls:     [4]int{values[2], values[3], values[4], values[5]},
	}, nil
}

// Sum returns the total of the base calls in the row
func (row Row) Sum() int {
	return row.Calls[0] + row.Calls[1] + row.Calls[2] + row.Calls[3]
}

// Base returns the called base, the first column holding the largest value
func (row Row) Base() byte {
	best := 0
	for i := 1; i < len(row.Calls); i++ {
		if row.Calls[i] > row.Calls[best] {
			best = i
		}
	}
	return bases[best]
}

// KmerSizeFromName derives the k-mer size from the digits at the end of a file name (e.g. reads_5.csv gives 5)
func KmerSizeFromName(fileName string) (int, error) {
	name := misc.StripExt(filepath.Base(fileName))
	end := len(name)
	start := end
	for start > 0 && unicode.IsDigit(rune(name[start-1])) {
		start--
	}
	if start == end {
		return 0, fmt.Errorf("could not derive the k-mer size from the file name: %v", fileName)
	}
	return strconv.Atoi(name[start:end])
}
