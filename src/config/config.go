// Package config holds the dbgasm settings, which are gathered by viper from the command line,
// the environment (DBGASM_*) and an optional settings file
package config

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variables that override settings
const EnvPrefix = "DBGASM"

// DefaultOutDir is where results are written if no directory is given
const DefaultOutDir = "./dbgasm-results"

// Settings are the assembly settings
type Settings struct {
	// the k-mer size, 0 means it is derived from each input file name
	KmerSize int `mapstructure:"kmer-size"`

	// the directory to write results to
	OutDir string `mapstructure:"out-dir"`

	// the number of inputs that can be read at once
	Processors int `mapstructure:"processors"`

	// optional outputs
	Plot      bool `mapstructure:"plot"`
	GFA       bool `mapstructure:"gfa"`
	FASTA     bool `mapstructure:"fasta"`
	Compress  bool `mapstructure:"compress"`
	Summary   bool `mapstructure:"summary"`
	DumpGraph bool `mapstructure:"dump-graph"`
}

// Validate checks the settings
func (s *Settings) Validate() error {
	if err := validation.ValidateStruct(s,
		validation.Field(&s.KmerSize, validation.When(s.KmerSize != 0, validation.Min(2))),
		validation.Field(&s.OutDir, validation.Required),
		validation.Field(&s.Processors, validation.Min(0)),
	); err != nil {
		return err
	}
	if s.Compress && !s.FASTA {
		return fmt.Errorf("compress requires fasta output")
	}
	return nil
}

// NewViper returns a viper instance with the default settings and environment overrides set up
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("kmer-size", 0)
	v.SetDefault("out-dir", DefaultOutDir)
	v.SetDefault("processors", 1)
	v.SetDefault("plot", false)
	v.SetDefault("gfa", false)
	v.SetDefault("fasta", false)
	v.SetDefault("compress", false)
	v.SetDefault("summary", false)
	v.SetDefault("dump-graph", false)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional settings file into viper, then unmarshals and validates the settings
func Load(v *viper.Viper, settingsFile string) (*Settings, error) {
	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settingsFile, err)
		}
	}
	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}
	return settings, nil
}
