package cmd

import (
	"path/filepath"
	"testing"
)

func TestLoadSettingsFromFlags(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "results")
	if err := assembleCmd.ParseFlags([]string{"--processors", "1", "-k", "4", "-o", outDir, "--fasta", "--compress"}); err != nil {
		t.Fatal(err)
	}
	settings, err := loadSettings(assembleCmd)
	if err != nil {
		t.Fatal(err)
	}
	if settings.Processors != 1 {
		t.Fatalf("--processors was not applied: %d", settings.Processors)
	}
	if settings.KmerSize != 4 || settings.OutDir != outDir || !settings.FASTA || !settings.Compress {
		t.Fatalf("assemble flags were not applied: %+v", settings)
	}
}

func TestLoadSettingsValidation(t *testing.T) {
	if err := watchCmd.ParseFlags([]string{"-k", "1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := loadSettings(watchCmd); err == nil {
		t.Fatal("a k-mer size of 1 should fail validation")
	}
}
