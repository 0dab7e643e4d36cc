package blob

import (
	"bytes"
	"encoding/gob"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/go-sif/table"
	iutil "github.com/go-sif/table/internal/util"
	"github.com/hashicorp/go-multierror"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// WriterConf configures a blob Writer
type WriterConf struct {
	Compression Compression // Defaults to None
}

// Writer serializes Tables as blobs
type Writer struct {
	conf *WriterConf
}

// CreateWriter returns a new blob Writer
func CreateWriter(conf *WriterConf) *Writer {
	if conf == nil {
		conf = &WriterConf{}
	}
	return &Writer{conf: conf}
}

// Write serializes the rows, columns and declared column types of t
func (bw *Writer) Write(w io.Writer, t *table.Table) error {
	record := &Record{
		Rows:        make([][]interface{}, 0, t.NumRows()),
		Columns:     t.ColumnNames(),
		ColumnTypes: make(map[string]string),
	}
	err := t.ForEachRow(func(rowNum int, row []interface{}) error {
		record.Rows = append(record.Rows, append([]interface{}(nil), row...))
		return nil
	})
	if err != nil {
		return err
	}
	for name, colType := range t.DeclaredColumnTypes() {
		record.ColumnTypes[name] = colType.String()
	}
	payload := new(bytes.Buffer)
	if err := gob.NewEncoder(payload).Encode(record); err != nil {
		return err
	}
	h := header{compression: bw.conf.Compression, checksum: xxhash.Sum64(payload.Bytes())}
	if err := h.writeTo(w); err != nil {
		return err
	}
	return compress(w, bw.conf.Compression, payload.Bytes())
}

func compress(w io.Writer, compression Compression, payload []byte) error {
	switch compression {
	case LZ4:
		return compressLZ4(w, payload)
	case Zstd:
		return compressZstd(w, payload)
	}
	_, err := w.Write(payload)
	return err
}

func compressLZ4(w io.Writer, payload []byte) error {
	compressor := lz4.NewWriter(w)
	var multierr *multierror.Error
	if _, err := compressor.Write(payload); err != nil {
		multierr = multierror.Append(multierr, err)
	}
	if err := compressor.Close(); err != nil {
		multierr = multierror.Append(multierr, err)
	}
	return iutil.MultiErrorOrNil(multierr)
}

func compressZstd(w io.Writer, payload []byte) error {
	compressor, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	defer compressor.Close()
	_, err = w.Write(compressor.EncodeAll(payload, nil))
	return err
}
