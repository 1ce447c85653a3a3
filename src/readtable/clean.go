package readtable

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/will-rowe/dbgasm/src/seqio"
)

// Clean removes the segments that can't be trusted, keeping the remaining rows in file order:
//  1. exact duplicate rows are dropped, then segments with missing positions are removed
//  2. segments with more than one call for a position are removed
//  3. segments with a row that isn't a single call are removed
//  4. segments identical to an earlier segment are removed
func (table Table) Clean() Table {
	cleaned := table.dropDuplicateRows()
	cleaned = cleaned.dropSegments(cleaned.missingPositions())
	cleaned = cleaned.dropSegments(cleaned.inconsistentCalls())
	cleaned = cleaned.dropSegments(cleaned.badCalls())
	cleaned = cleaned.dropSegments(cleaned.duplicateSegments())
	return cleaned
}

// Segments returns the segment numbers held in the table, in ascending order
func (table Table) Segments() []int {
	seen := make(map[int]struct{})
	segments := []int{}
	for _, row := range table {
		if _, ok := seen[row.SegmentNr]; !ok {
			seen[row.SegmentNr] = struct{}{}
			segments = append(segments, row.SegmentNr)
		}
	}
	sort.Ints(segments)
	return segments
}

// Records converts each segment to a record, ordered by segment number, with bases ordered by position
func (table Table) Records() ([]*seqio.Record, error) {
	grouped := make(map[int]Table)
	for _, row := range table {
		grouped[row.SegmentNr] = append(grouped[row.SegmentNr], row)
	}
	records := []*seqio.Record{}
	for _, segmentNr := range table.Segments() {
		rows := grouped[segmentNr]
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
		seq := make([]byte, len(rows))
		for i, row := range rows {
			seq[i] = row.Base()
		}
		records = append(records, &seqio.Record{ID: []byte(strconv.Itoa(segmentNr)), Seq: seq})
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

// dropDuplicateRows keeps the first occurrence of each row
func (table Table) dropDuplicateRows() Table {
	seen := make(map[Row]struct{}, len(table))
	kept := make(Table, 0, len(table))
	for _, row := range table {
		if _, ok := seen[row]; ok {
			continue
		}
		seen[row] = struct{}{}
		kept = append(kept, row)
	}
	return kept
}

// dropSegments removes every row of the listed segments
func (table Table) dropSegments(segments map[int]struct{}) Table {
	if len(segments) == 0 {
		return table
	}
	kept := make(Table, 0, len(table))
	for _, row := range table {
		if _, ok := segments[row.SegmentNr]; !ok {
			kept = append(kept, row)
		}
	}
	return kept
}

// missingPositions finds segments whose highest position is greater than the number of positions they hold
func (table Table) missingPositions() map[int]struct{} {
	maxPos := make(map[int]int)
	positions := make(map[int]map[int]struct{})
	for _, row := range table {
		if _, ok := positions[row.SegmentNr]; !ok {
			positions[row.SegmentNr] = make(map[int]struct{})
			maxPos[row.SegmentNr] = row.Position
		}
		positions[row.SegmentNr][row.Position] = struct{}{}
		if row.Position > maxPos[row.SegmentNr] {
			maxPos[row.SegmentNr] = row.Position
		}
	}
	flagged := make(map[int]struct{})
	for segmentNr, highest := range maxPos {
		if highest > len(positions[segmentNr]) {
			flagged[segmentNr] = struct{}{}
		}
	}
	return flagged
}

// inconsistentCalls finds segments holding a position more than once with different calls
func (table Table) inconsistentCalls() map[int]struct{} {
	type key struct{ segmentNr, position int }
	first := make(map[key][4]int)
	flagged := make(map[int]struct{})
	for _, row := range table {
		k := key{row.SegmentNr, row.Position}
		calls, ok := first[k]
		if !ok {
			first[k] = row.Calls
			continue
		}
		if calls != row.Calls {
			flagged[row.SegmentNr] = struct{}{}
		}
	}
	return flagged
}

// badCalls finds segments with a row that isn't exactly one base call
func (table Table) badCalls() map[int]struct{} {
	flagged := make(map[int]struct{})
	for _, row := range table {
		if row.Sum() != 1 {
			flagged[row.SegmentNr] = struct{}{}
		}
	}
	return flagged
}

// duplicateSegments finds segments whose rows are identical to a segment with a lower number
func (table Table) duplicateSegments() map[int]struct{} {
	signatures := make(map[int][]string)
	for _, row := range table {
		signatures[row.SegmentNr] = append(signatures[row.SegmentNr], row.signature())
	}
	seen := make(map[uint64][]string)
	flagged := make(map[int]struct{})
	for _, segmentNr := range table.Segments() {
		signature := strings.Join(signatures[segmentNr], "\\")
		hash := xxhash.Sum64String(signature)
		duplicate := false
		for _, prev := range seen[hash] {
			if prev == signature {
				duplicate = true
				break
			}
		}
		if duplicate {
			flagged[segmentNr] = struct{}{}
			continue
		}
		seen[hash] = append(seen[hash], signature)
	}
	return flagged
}

// signature joins the position and calls of a row
func (row Row) signature() string {
	return strconv.Itoa(row.Position) + strconv.Itoa(row.Calls[0]) + strconv.Itoa(row.Calls[1]) + strconv.Itoa(row.Calls[2]) + strconv.Itoa(row.Calls[3])
}
