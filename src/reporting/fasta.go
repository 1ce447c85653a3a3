package reporting

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/hts/bgzf"
)

// fastaWidth is the line width used for FASTA output
const fastaWidth = 60

// WriteFASTA writes an assembled sequence as a single FASTA entry, bgzf compressed if requested
func WriteFASTA(fileName, id, seq string, compress bool) error {
	fh, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer fh.Close()
	var w io.Writer = fh
	var bw *bgzf.Writer
	if compress {
		bw = bgzf.NewWriter(fh, 1)
		w = bw
	}
	contig := linear.NewSeq(id, alphabet.BytesToLetters([]byte(seq)), alphabet.DNA)
	contig.Desc = fmt.Sprintf("length=%d", len(seq))
	if _, err := fasta.NewWriter(w, fastaWidth).Write(contig); err != nil {
		return fmt.Errorf("could not write fasta for %v: %w", id, err)
	}
	if bw != nil {
		return bw.Close()
	}
	return nil
}
