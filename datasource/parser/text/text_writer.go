// Package text writes human-readable reports of tables
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-sif/table"
)

// DefaultMaxRows is the number of rows reported when no positive limit is configured
const DefaultMaxRows = 50

// WriterConf configures a text Writer
type WriterConf struct {
	MaxRows int // The maximum number of rows rendered. Defaults to DefaultMaxRows.
}

// Writer produces text reports of Tables
type Writer struct {
	conf *WriterConf
}

// CreateWriter returns a new text Writer
func CreateWriter(conf *WriterConf) *Writer {
	if conf == nil {
		conf = &WriterConf{}
	}
	if conf.MaxRows <= 0 {
		conf.MaxRows = DefaultMaxRows
	}
	return &Writer{conf: conf}
}

// Write emits a header block describing the size of t, followed by its rendering
func (tw *Writer) Write(w io.Writer, t *table.Table) error {
	_, err := fmt.Fprintf(w, "Table: %d rows, %d columns\n%s\n\n", t.NumRows(), t.NumColumns(), strings.Repeat("=", 60))
	if err != nil {
		return err
	}
	return t.Render(w, tw.conf.MaxRows)
}
