package file

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-sif/table/types"
)

// Source is a single file containing a serialized table
type Source struct {
	path string
}

// CreateSource is a factory for Sources
func CreateSource(path string) *Source {
	return &Source{path: path}
}

// CreateSources expands each glob into the files it matches, in order.
// Every glob must match at least one file.
func CreateSources(globs ...string) ([]types.Source, error) {
	var sources []types.Source
	for _, glob := range globs {
		matches, err := filepath.Glob(glob)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("glob %s produced 0 files", glob)
		}
		for _, path := range matches {
			sources = append(sources, CreateSource(path))
		}
	}
	return sources, nil
}

// Name returns the path of this Source
func (fs *Source) Name() string {
	return fs.path
}

// Open opens the file behind this Source for reading
func (fs *Source) Open() (io.ReadCloser, error) {
	return os.Open(fs.path)
}

// String returns a string representation of this Source
func (fs *Source) String() string {
	return fmt.Sprintf("File source filename: %s", fs.path)
}
