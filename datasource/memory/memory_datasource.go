// Package memory provides a Source which reads a serialized table from an in-memory buffer
package memory

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
)

// Source is a buffer containing a serialized table
type Source struct {
	name string
	data []byte
}

// CreateSource is a factory for Sources. The name is used to infer a file type
// from its extension, and in log messages.
func CreateSource(name string, data []byte) *Source {
	return &Source{name: name, data: data}
}

// Name returns the name of this Source
func (ms *Source) Name() string {
	return ms.name
}

// Open returns a fresh reader over the buffer
func (ms *Source) Open() (io.ReadCloser, error) {
	return ioutil.NopCloser(bytes.NewReader(ms.data)), nil
}

// String returns a string representation of this Source
func (ms *Source) String() string {
	return fmt.Sprintf("Memory source %s: %d bytes", ms.name, len(ms.data))
}
