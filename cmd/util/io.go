package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/torsmatch/io/tors"
	"github.com/BurntSushi/torsmatch/selection"
)

// SelectionName derives a selection name from a file path, e.g.,
// "data/1EHZ.tors" becomes "1EHZ".
func SelectionName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ReadSelection reads a torsion angle table from a file. "-" reads stdin.
func ReadSelection(path string) (*selection.Selection, error) {
	if path == "-" {
		return tors.NewReader(os.Stdin).ReadSelection("stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tors.NewReader(f).ReadSelection(SelectionName(path))
}

// CreateFile creates (or truncates) a file, or quits with an error.
func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}
