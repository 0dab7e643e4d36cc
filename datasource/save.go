package datasource

import (
	"io"
	"os"

	"github.com/go-sif/table"
	"github.com/go-sif/table/datasource/parser/blob"
	"github.com/go-sif/table/datasource/parser/dsv"
	"github.com/go-sif/table/datasource/parser/jsonl"
	"github.com/go-sif/table/datasource/parser/text"
	errors "github.com/go-sif/table/errors"
	iutil "github.com/go-sif/table/internal/util"
	"github.com/go-sif/table/logging"
	"github.com/hashicorp/go-multierror"
)

// A Writer is capable of serializing a Table
type Writer interface {
	Write(w io.Writer, t *table.Table) error
}

// SaveConf configures Save
type SaveConf struct {
	FileType FileType         // The format to write. Defaults to the format inferred from the path, or Text.
	DSV      *dsv.WriterConf  // Configures csv and tsv writing
	Blob     *blob.WriterConf // Configures pickle writing
	Text     *text.WriterConf // Configures text reports
}

// CreateWriter returns a Writer for the given file type
func CreateWriter(fileType FileType, conf *SaveConf) (Writer, error) {
	if conf == nil {
		conf = &SaveConf{}
	}
	switch fileType {
	case CSV, TSV:
		dsvConf := &dsv.WriterConf{}
		if conf.DSV != nil {
			*dsvConf = *conf.DSV
		}
		if fileType == TSV && dsvConf.Delimiter == 0 {
			dsvConf.Delimiter = '\t'
		}
		return dsv.CreateWriter(dsvConf), nil
	case JSONL:
		return jsonl.CreateWriter(), nil
	case Pickle:
		blobConf := &blob.WriterConf{}
		if conf.Blob != nil {
			*blobConf = *conf.Blob
		}
		return blob.CreateWriter(blobConf), nil
	case Text:
		textConf := &text.WriterConf{}
		if conf.Text != nil {
			*textConf = *conf.Text
		}
		return text.CreateWriter(textConf), nil
	}
	return nil, errors.UnknownFileTypeError{FileType: string(fileType)}
}

// Save writes t to the file at path. Paths with an unrecognized extension are saved as text reports.
func Save(t *table.Table, path string, conf *SaveConf) (err error) {
	if conf == nil {
		conf = &SaveConf{}
	}
	fileType := conf.FileType
	if fileType == "" {
		inferred, ok := FileTypeFromName(path)
		if !ok {
			inferred = Text
		}
		fileType = inferred
	}
	writer, err := CreateWriter(fileType, conf)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = iutil.MultiErrorOrNil(multierror.Append(err, closeErr))
		}
	}()
	if err := writer.Write(f, t); err != nil {
		return err
	}
	logging.Infof("Saved table %s to %s as %s", t.ID(), path, fileType)
	return nil
}
