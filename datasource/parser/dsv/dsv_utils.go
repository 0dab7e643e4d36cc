package dsv

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// scanRow converts a record into row cells, replacing the configured nil value
func scanRow(conf *ParserConf, record []string) []interface{} {
	row := make([]interface{}, len(record))
	for i, colVal := range record {
		if conf.NilValue != "" && colVal == conf.NilValue {
			continue
		}
		row[i] = colVal
	}
	return row
}

// lookupEncoding resolves an encoding label. The empty label means UTF-8, which needs no transformation.
func lookupEncoding(label string) (encoding.Encoding, error) {
	if label == "" {
		return nil, nil
	}
	return htmlindex.Get(label)
}

func decodeReader(r io.Reader, label string) (io.Reader, error) {
	enc, err := lookupEncoding(label)
	if err != nil || enc == nil {
		return r, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// encodeWriter wraps w in an encoder. The result must be closed to flush any buffered output.
func encodeWriter(w io.Writer, label string) (io.WriteCloser, error) {
	enc, err := lookupEncoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nopWriteCloser{w}, nil
	}
	return transform.NewWriter(w, enc.NewEncoder()), nil
}
