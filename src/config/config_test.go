package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(fileName, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return fileName
}

func TestDefaults(t *testing.T) {
	settings, err := Load(NewViper(), "")
	if err != nil {
		t.Fatal(err)
	}
	if settings.KmerSize != 0 || settings.OutDir != DefaultOutDir || settings.Processors != 1 {
		t.Fatalf("unexpected default settings: %+v", settings)
	}
}

func TestSettingsFile(t *testing.T) {
	fileName := writeSettings(t, "kmer-size: 4\nout-dir: results\ngfa: true\n")
	t.Setenv("DBGASM_PLOT", "true")
	settings, err := Load(NewViper(), fileName)
	if err != nil {
		t.Fatal(err)
	}
	if settings.KmerSize != 4 || settings.OutDir != "results" || !settings.GFA {
		t.Fatalf("settings file was not applied: %+v", settings)
	}
	if !settings.Plot {
		t.Fatal("environment variable was not applied")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	fileName := writeSettings(t, "kmer-size: 4\n")
	t.Setenv("DBGASM_KMER_SIZE", "7")
	settings, err := Load(NewViper(), fileName)
	if err != nil {
		t.Fatal(err)
	}
	if settings.KmerSize != 7 {
		t.Fatalf("expected the environment to set k=7, got %d", settings.KmerSize)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		pass     bool
	}{
		{"derived k", Settings{OutDir: "out"}, true},
		{"fixed k", Settings{KmerSize: 2, OutDir: "out"}, true},
		{"k too small", Settings{KmerSize: 1, OutDir: "out"}, false},
		{"no out dir", Settings{KmerSize: 3}, false},
		{"negative processors", Settings{OutDir: "out", Processors: -1}, false},
		{"compress without fasta", Settings{OutDir: "out", Compress: true}, false},
		{"compressed fasta", Settings{OutDir: "out", Compress: true, FASTA: true}, true},
	}
	for _, tt := range tests {
		err := tt.settings.Validate()
		if (err == nil) != tt.pass {
			t.Errorf("%v: Validate returned %v", tt.name, err)
		}
	}
}

func TestMissingSettingsFile(t *testing.T) {
	if _, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("a missing settings file should fail")
	}
}
