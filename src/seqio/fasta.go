package seqio

import (
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	bioseqio "github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ReadFASTA collects the records held in a FASTA file, each entry is base checked
func ReadFASTA(fileName string) ([]*Record, error) {
	fh, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	scanner := bioseqio.NewScanner(fasta.NewReader(fh, linear.NewSeq("", nil, alphabet.DNA)))
	records := []*Record{}
	seen := make(map[string]struct{})
	for scanner.Next() {
		entry := scanner.Seq().(*linear.Seq)
		if _, ok := seen[entry.Name()]; ok {
			return nil, fmt.Errorf("duplicate record ID in fasta file: %v", entry.Name())
		}
		seen[entry.Name()] = struct{}{}
		seq := make([]byte, len(entry.Seq))
		for i, letter := range entry.Seq {
			seq[i] = byte(letter)
		}
		record := &Record{ID: []byte(entry.Name()), Seq: seq}
		if err := record.BaseCheck(); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := scanner.Error(); err != nil {
		return nil, fmt.Errorf("could not read fasta file %v: %w", fileName, err)
	}
	return records, nil
}
