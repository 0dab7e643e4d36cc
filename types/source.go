package types

import "io"

// RawTable is the untyped product of a Parser: a header, the rows beneath it, and any
// column types which the format itself recorded.
type RawTable struct {
	Columns     []string
	Rows        [][]interface{}
	ColumnTypes map[string]ColumnType
}

// A Source is a named stream of serialized table data, such as a file on disk or an in-memory buffer
type Source interface {
	Name() string                  // for logging, and for inferring a file type from an extension
	Open() (io.ReadCloser, error) // Open produces a fresh reader over the full content of this Source
}

// A Parser is capable of parsing raw data from a Source into a RawTable.
// Parse returns a nil RawTable (and no error) when the input holds no header at all.
type Parser interface {
	Parse(r io.Reader) (*RawTable, error)
}
