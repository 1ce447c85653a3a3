package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mholt/archiver"
	"github.com/will-rowe/dbgasm/src/misc"
)

// ErrDuplicateInput is returned when two inputs would write to the same result files
var ErrDuplicateInput = errors.New("duplicate input name")

// TableExts are the extensions for per-position read tables
var TableExts = []string{"csv"}

// FastaExts are the extensions for FASTA fragment files
var FastaExts = []string{"fasta", "fa", "fna"}

// archiveExts are the archive types that are unpacked before reading
var archiveExts = []string{".tar", ".tar.gz", ".tgz", ".zip"}

// isArchive checks a file name against the supported archive types
func isArchive(fileName string) bool {
	for _, ext := range archiveExts {
		if strings.HasSuffix(fileName, ext) {
			return true
		}
	}
	return false
}

// isInput checks a file name against the supported input types
func isInput(fileName string) bool {
	return misc.CheckExt(fileName, append(append([]string{}, TableExts...), FastaExts...)) == nil
}

// ExpandInputs resolves the input list to a list of files
// Directories are searched (not recursively) and archives are unpacked into a sub directory of tmpDir.
func ExpandInputs(inputs []string, tmpDir string) ([]string, error) {
	files := []string{}
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("can't find input: %v", input)
		}
		switch {
		case info.IsDir():
			found, err := searchDir(input)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		case isArchive(input):
			dest := filepath.Join(tmpDir, misc.StripExt(input))
			if err := archiver.Unarchive(input, dest); err != nil {
				return nil, fmt.Errorf("could not unpack %v: %w", input, err)
			}
			found, err := searchDir(dest)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		default:
			if !isInput(input) {
				return nil, fmt.Errorf("unsupported input file: %v", input)
			}
			files = append(files, input)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no read tables or FASTA files found in the input")
	}

	// results are named after the input file, so two inputs can't share a name
	seen := make(map[string]string, len(files))
	for _, file := range files {
		id := misc.StripExt(file)
		if previous, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %v and %v would both write results for %v", ErrDuplicateInput, previous, file, id)
		}
		seen[id] = file
	}
	return files, nil
}

// searchDir returns the supported input files in a directory, in name order
// Archives can nest their files in a single top level directory so one level of sub directories is searched too.
func searchDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := []string{}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			nested, err := os.ReadDir(path)
			if err != nil {
				return nil, err
			}
			for _, n := range nested {
				if !n.IsDir() && isInput(n.Name()) {
					files = append(files, filepath.Join(path, n.Name()))
				}
			}
			continue
		}
		if isInput(entry.Name()) {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}
