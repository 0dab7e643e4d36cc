// Package dsv reads and writes delimiter-separated tables, such as CSV and TSV files.
// The first record of each input is its header. Character encodings other than UTF-8
// are resolved by name via golang.org/x/text/encoding/htmlindex.
package dsv
