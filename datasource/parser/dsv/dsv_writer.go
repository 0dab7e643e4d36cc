package dsv

import (
	"encoding/csv"
	"io"

	"github.com/go-sif/table"
	"github.com/go-sif/table/coerce"
	iutil "github.com/go-sif/table/internal/util"
	"github.com/hashicorp/go-multierror"
)

var encodeWriterFn = encodeWriter

// WriterConf configures a DSV Writer
type WriterConf struct {
	Delimiter rune   // The delimiter separating columns in the file. Defaults to ,
	Encoding  string // The character encoding of the file, as an HTML encoding label. Defaults to UTF-8.
	UseCRLF   bool   // Terminate records with \r\n instead of \n
}

// Writer serializes Tables as DSV data
type Writer struct {
	conf *WriterConf
}

// CreateWriter returns a new DSV Writer
func CreateWriter(conf *WriterConf) *Writer {
	if conf == nil {
		conf = &WriterConf{}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Writer{conf: conf}
}

// Write emits the header row of t, followed by one record per row. Absent cells are written as empty fields.
func (dw *Writer) Write(w io.Writer, t *table.Table) (err error) {
	encoded, err := encodeWriterFn(w, dw.conf.Encoding)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := encoded.Close(); closeErr != nil {
			err = iutil.MultiErrorOrNil(multierror.Append(err, closeErr))
		}
	}()
	writer := csv.NewWriter(encoded)
	writer.Comma = dw.conf.Delimiter
	writer.UseCRLF = dw.conf.UseCRLF
	if err := writer.Write(t.ColumnNames()); err != nil {
		return err
	}
	record := make([]string, t.NumColumns())
	err = t.ForEachRow(func(rowNum int, row []interface{}) error {
		for i, cell := range row {
			record[i] = coerce.Format(cell)
		}
		return writer.Write(record)
	})
	if err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
