// Package reporting writes the assembly results: the sequence file plus optional FASTA, graph plots and run summaries
package reporting

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
)

// replacer cleans up an identifier so that it can be used as a file name
var replacer = strings.NewReplacer("/", "__", "\t", "__", " ", "_")

// FileName returns the path for an output file in dir, based on the input identifier
func FileName(dir, id, ext string) string {
	return filepath.Join(dir, replacer.Replace(id)+ext)
}

// SaveResult writes the assembled sequence (or the failure message) to <dir>/<id>.txt, with no other formatting
func SaveResult(dir, id, text string) (string, error) {
	fileName := FileName(dir, id, ".txt")
	if err := ioutil.WriteFile(fileName, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("could not save result for %v: %w", id, err)
	}
	return fileName, nil
}
