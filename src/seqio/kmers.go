package seqio

import (
	"fmt"

	"github.com/will-rowe/ntHash"
)

// forward strand only, the assembly graph is directed
const canonical = false

// CountKmers returns the total number of k-mers across the records and the number of distinct ones,
// which gives a quick idea of how many parallel edges the assembly graph will carry
func CountKmers(records []*Record, kmerSize int) (int, int, error) {
	if kmerSize < 1 {
		return 0, 0, fmt.Errorf("k-mer size must be positive: %d", kmerSize)
	}
	total := 0
	distinct := make(map[uint64]struct{})
	for _, record := range records {
		if len(record.Seq) < kmerSize {
			return 0, 0, fmt.Errorf("sequence length (%d) is shorter than k-mer length (%d) for record %v", len(record.Seq), kmerSize, string(record.ID))
		}
		seq := record.Seq
		hasher, err := ntHash.New(&seq, uint(kmerSize))
		if err != nil {
			return 0, 0, err
		}
		for hv := range hasher.Hash(canonical) {
			distinct[hv] = struct{}{}
			total++
		}
	}
	return total, len(distinct), nil
}
