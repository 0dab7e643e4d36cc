package errors

import (
	"fmt"
	"strings"
)

// RowIndexError occurs when a row selection falls outside of a Table
type RowIndexError struct {
	Start   int
	Stop    int
	NumRows int
}

// Error returns a textual representation of this RowIndexError
func (e RowIndexError) Error() string {
	if e.Start < 0 || e.Start >= e.NumRows {
		return fmt.Sprintf("Invalid start index %d for table with %d rows", e.Start, e.NumRows)
	}
	return fmt.Sprintf("Invalid stop index %d for start index %d in table with %d rows", e.Stop, e.Start, e.NumRows)
}

// ColumnIndexError occurs when a column is referenced by a position outside of a Schema
type ColumnIndexError struct {
	Index      int
	NumColumns int
}

// Error returns a textual representation of this ColumnIndexError
func (e ColumnIndexError) Error() string {
	return fmt.Sprintf("Invalid column index %d for schema with %d columns", e.Index, e.NumColumns)
}

// UnknownColumnError occurs when a column is referenced by a name which does not exist in a Schema
type UnknownColumnError struct{ Name string }

// Error returns a textual representation of this UnknownColumnError
func (e UnknownColumnError) Error() string {
	return fmt.Sprintf("Schema does not contain column with name %s", e.Name)
}

// DuplicateColumnError occurs when a Schema would contain the same column name twice
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Schema already contains column with name %s", e.Name)
}

// InvalidColumnTypeError occurs when a column type tag is not one of none, bool, int, float, datetime or str
type InvalidColumnTypeError struct{ Type string }

// Error returns a textual representation of this InvalidColumnTypeError
func (e InvalidColumnTypeError) Error() string {
	return fmt.Sprintf("Invalid column type %q", e.Type)
}

// ValueCountError occurs when the number of values written to a column does not match the number of rows
type ValueCountError struct {
	Values int
	Rows   int
}

// Error returns a textual representation of this ValueCountError
func (e ValueCountError) Error() string {
	return fmt.Sprintf("Values count (%d) doesn't match row count (%d)", e.Values, e.Rows)
}

// NotSingleRowError occurs when a single-value accessor is used on a Table without exactly one row
type NotSingleRowError struct{ NumRows int }

// Error returns a textual representation of this NotSingleRowError
func (e NotSingleRowError) Error() string {
	return fmt.Sprintf("Table must have exactly one row, but has %d", e.NumRows)
}

// NoValuesError occurs when a selection by value is requested without any values
type NoValuesError struct{}

// Error returns a textual representation of this NoValuesError
func (e NoValuesError) Error() string {
	return "No values provided"
}

// NoMatchingRowsError occurs when no row matches any value in a selection by value
type NoMatchingRowsError struct{ Values []string }

// Error returns a textual representation of this NoMatchingRowsError
func (e NoMatchingRowsError) Error() string {
	return fmt.Sprintf("No rows found with values: [%s]", strings.Join(e.Values, ", "))
}

// SchemaMismatchError occurs when tables or sources with differing columns are merged
type SchemaMismatchError struct {
	Source   string
	Expected []string
	Actual   []string
}

// Error returns a textual representation of this SchemaMismatchError
func (e SchemaMismatchError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("Column mismatch: expected %v, found %v", e.Expected, e.Actual)
	}
	return fmt.Sprintf("Column mismatch in %s: expected %v, found %v", e.Source, e.Expected, e.Actual)
}

// UnknownFileTypeError occurs when a file type cannot be resolved for loading or saving
type UnknownFileTypeError struct{ FileType string }

// Error returns a textual representation of this UnknownFileTypeError
func (e UnknownFileTypeError) Error() string {
	return fmt.Sprintf("Unknown file type: %q", e.FileType)
}

// CorruptBlobError occurs when a serialized table cannot be trusted
type CorruptBlobError struct{ Reason string }

// Error returns a textual representation of this CorruptBlobError
func (e CorruptBlobError) Error() string {
	return fmt.Sprintf("Corrupt table blob: %s", e.Reason)
}
