package seqio

import (
	"os"
	"path/filepath"
	"testing"
)

// setup variables
var (
	testID    = "segment-1"
	testSeq   = "attactcgcta"
	upperSeq  = "ATTACTCGCTA"
	badSeq    = "ATTNCTCG"
	testFasta = ">seq1 first fragment\nATTACTC\nGCTA\n>seq2\nggtt\n"
)

func TestRecordConstructor(t *testing.T) {
	record, err := NewRecord(testID, testSeq)
	if err != nil {
		t.Fatalf("could not generate record using NewRecord: %v", err)
	}
	if record.String() != upperSeq {
		t.Fatalf("BaseCheck did not convert to upper case: %v", record.String())
	}
	if _, err := NewRecord(testID, badSeq); err == nil {
		t.Fatal("NewRecord should reject non-ACTG bases")
	}
}

func TestReadFASTA(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "reads.fasta")
	if err := os.WriteFile(fileName, []byte(testFasta), 0644); err != nil {
		t.Fatal(err)
	}
	records, err := ReadFASTA(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if string(records[0].ID) != "seq1" || records[0].String() != upperSeq {
		t.Fatalf("first record was not read correctly: %v %v", string(records[0].ID), records[0].String())
	}
	if records[1].String() != "GGTT" {
		t.Fatalf("second record was not upper cased: %v", records[1].String())
	}
}

func TestCountKmers(t *testing.T) {
	a, _ := NewRecord("a", upperSeq)
	total, distinct, err := CountKmers([]*Record{a}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if total != 7 || distinct != 7 {
		t.Fatalf("expected 7 total and 7 distinct k-mers, got %d and %d", total, distinct)
	}
	b, _ := NewRecord("b", "AAAAAA")
	total, distinct, err = CountKmers([]*Record{b}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if total != 4 || distinct != 1 {
		t.Fatalf("expected 4 total and 1 distinct k-mers, got %d and %d", total, distinct)
	}
	if _, _, err := CountKmers([]*Record{b}, 7); err == nil {
		t.Fatal("k-mer size longer than the record should fail")
	}
}
