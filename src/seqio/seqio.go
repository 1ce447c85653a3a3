/*
	the seqio package contains the record type handed to the assembler, plus readers and k-mer helpers for it
*/
package seqio

import (
	"fmt"
	"unicode"
)

// Record is a single cleaned fragment read: a unique identifier and its full sequence
type Record struct {
	ID  []byte
	Seq []byte
}

// NewRecord is the Record constructor, it checks the bases of the supplied sequence
func NewRecord(id, seq string) (*Record, error) {
	record := &Record{ID: []byte(id), Seq: []byte(seq)}
	if err := record.BaseCheck(); err != nil {
		return nil, err
	}
	return record, nil
}

// BaseCheck is a method to convert bases to upper case and check they are all ACTG
func (Record *Record) BaseCheck() error {
	for i, j := 0, len(Record.Seq); i < j; i++ {
		switch base := unicode.ToUpper(rune(Record.Seq[i])); base {
		case 'A', 'C', 'G', 'T':
			Record.Seq[i] = byte(base)
		default:
			return fmt.Errorf("non \"A\\C\\T\\G\" base (%v) at position %d of record %v", string(Record.Seq[i]), i, string(Record.ID))
		}
	}
	return nil
}

// String returns the sequence held by the record
func (Record *Record) String() string {
	return string(Record.Seq)
}
