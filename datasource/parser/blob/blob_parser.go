package blob

import (
	"bytes"
	"encoding/gob"
	"io"
	"io/ioutil"

	"github.com/cespare/xxhash/v2"
	errors "github.com/go-sif/table/errors"
	"github.com/go-sif/table/types"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// Parser produces RawTables from blobs
type Parser struct{}

// CreateParser returns a new blob Parser
func CreateParser() *Parser {
	return &Parser{}
}

// Parse verifies and decodes a blob. The compression algorithm is read from the blob itself.
func (p *Parser) Parse(r io.Reader) (*types.RawTable, error) {
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	payload, err := decompress(r, h.compression)
	if err != nil {
		return nil, errors.CorruptBlobError{Reason: err.Error()}
	}
	if xxhash.Sum64(payload) != h.checksum {
		return nil, errors.CorruptBlobError{Reason: "checksum mismatch"}
	}
	record := &Record{}
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(record); err != nil {
		return nil, errors.CorruptBlobError{Reason: err.Error()}
	}
	result := &types.RawTable{
		Columns:     record.Columns,
		Rows:        record.Rows,
		ColumnTypes: make(map[string]types.ColumnType, len(record.ColumnTypes)),
	}
	for name, tag := range record.ColumnTypes {
		colType, err := types.ParseColumnType(tag)
		if err != nil {
			return nil, err
		}
		result.ColumnTypes[name] = colType
	}
	return result, nil
}

func decompress(r io.Reader, compression Compression) ([]byte, error) {
	switch compression {
	case LZ4:
		return ioutil.ReadAll(lz4.NewReader(r))
	case Zstd:
		compressed, err := ioutil.ReadAll(r)
		if err != nil {
			return nil, err
		}
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(compressed, nil)
	default:
		return ioutil.ReadAll(r)
	}
}
