// Package datasource loads Tables from, and saves Tables to, serialized sources.
// The format of a source is selected by an explicit FileType, or inferred from the
// extension of its name.
package datasource
