// Package blob persists tables as self-describing binary blobs. A blob holds a gob-encoded
// record of a table's rows, columns and declared column types, behind a short header which
// identifies the format, the compression algorithm used for the payload, and a checksum.
package blob
