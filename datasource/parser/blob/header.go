package blob

import (
	"encoding/binary"
	"io"

	errors "github.com/go-sif/table/errors"
)

// Compression identifies the algorithm used to compress the payload of a blob
type Compression uint8

const (
	// None stores the payload uncompressed
	None Compression = iota
	// LZ4 compresses the payload with github.com/pierrec/lz4
	LZ4
	// Zstd compresses the payload with github.com/klauspost/compress/zstd
	Zstd
)

const (
	version    uint8 = 1
	headerSize       = 4 + 1 + 1 + 8
)

var magic = [4]byte{'T', 'B', 'L', 'B'}

type header struct {
	compression Compression
	checksum    uint64 // xxhash of the uncompressed payload
}

func (h header) writeTo(w io.Writer) error {
	buff := make([]byte, headerSize)
	copy(buff, magic[:])
	buff[4] = version
	buff[5] = byte(h.compression)
	binary.BigEndian.PutUint64(buff[6:], h.checksum)
	_, err := w.Write(buff)
	return err
}

func readHeader(r io.Reader) (header, error) {
	buff := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buff); err == io.EOF || err == io.ErrUnexpectedEOF {
		return header{}, errors.CorruptBlobError{Reason: "truncated header"}
	} else if err != nil {
		return header{}, err
	}
	if string(buff[:4]) != string(magic[:]) {
		return header{}, errors.CorruptBlobError{Reason: "unrecognized format"}
	}
	if buff[4] != version {
		return header{}, errors.CorruptBlobError{Reason: "unsupported version"}
	}
	h := header{
		compression: Compression(buff[5]),
		checksum:    binary.BigEndian.Uint64(buff[6:]),
	}
	if h.compression > Zstd {
		return header{}, errors.CorruptBlobError{Reason: "unknown compression"}
	}
	return h, nil
}
