package schema

import (
	"fmt"

	errors "github.com/go-sif/table/errors"
	"github.com/go-sif/table/types"
)

// Schema is an ordered list of column names, along with any
// types declared for those columns. Column order defines the
// position of each cell within a row.
type Schema struct {
	columns  []string
	index    map[string]int
	declared map[string]types.ColumnType
}

// CreateSchema is a factory for Schemas. Column names must be unique.
func CreateSchema(columns []string) (*Schema, error) {
	s := &Schema{
		columns:  make([]string, 0, len(columns)),
		index:    make(map[string]int, len(columns)),
		declared: make(map[string]types.ColumnType),
	}
	for _, name := range columns {
		if _, exists := s.index[name]; exists {
			return nil, errors.DuplicateColumnError{Name: name}
		}
		s.index[name] = len(s.columns)
		s.columns = append(s.columns, name)
	}
	return s, nil
}

// PositionalNames produces the names col_0, col_1, ... for n unnamed columns
func PositionalNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("col_%d", i)
	}
	return names
}

// Equals returns nil iff this and another Schema contain the same columns, in the same order
func (s *Schema) Equals(otherSchema *Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return errors.SchemaMismatchError{Expected: s.ColumnNames(), Actual: otherSchema.ColumnNames()}
	}
	for i, name := range s.columns {
		if otherSchema.columns[i] != name {
			return errors.SchemaMismatchError{Expected: s.ColumnNames(), Actual: otherSchema.ColumnNames()}
		}
	}
	return nil
}

// Clone returns a copy of this Schema
func (s *Schema) Clone() *Schema {
	newIndex := make(map[string]int, len(s.index))
	for k, v := range s.index {
		newIndex[k] = v
	}
	return &Schema{
		columns:  s.ColumnNames(),
		index:    newIndex,
		declared: s.DeclaredTypes(),
	}
}

// NumColumns returns the number of columns in this Schema
func (s *Schema) NumColumns() int {
	return len(s.columns)
}

// ColumnNames returns the names in the schema, in index order
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.columns))
	copy(names, s.columns)
	return names
}

// Name returns the name of the column at the given position
func (s *Schema) Name(idx int) (string, error) {
	if idx < 0 || idx >= len(s.columns) {
		return "", errors.ColumnIndexError{Index: idx, NumColumns: len(s.columns)}
	}
	return s.columns[idx], nil
}

// Index returns the position of the column with the given name
func (s *Schema) Index(colName string) (int, error) {
	idx, ok := s.index[colName]
	if !ok {
		return -1, errors.UnknownColumnError{Name: colName}
	}
	return idx, nil
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *Schema) HasColumn(colName string) bool {
	_, ok := s.index[colName]
	return ok
}

// ColumnType returns the declared type of a column, or StringColumnType if none was declared
func (s *Schema) ColumnType(colName string) types.ColumnType {
	if t, ok := s.declared[colName]; ok {
		return t
	}
	return types.StringColumnType
}

// ColumnTypes returns the effective types in the schema, in index order
func (s *Schema) ColumnTypes() []types.ColumnType {
	colTypes := make([]types.ColumnType, len(s.columns))
	for i, name := range s.columns {
		colTypes[i] = s.ColumnType(name)
	}
	return colTypes
}

// DeclaredTypes returns a copy of the explicitly declared column types
func (s *Schema) DeclaredTypes() map[string]types.ColumnType {
	declared := make(map[string]types.ColumnType, len(s.declared))
	for k, v := range s.declared {
		declared[k] = v
	}
	return declared
}

// IsDeclared returns true iff a type has been explicitly declared for the given column
func (s *Schema) IsDeclared(colName string) bool {
	_, ok := s.declared[colName]
	return ok
}

// SetColumnType declares the type of an existing column
func (s *Schema) SetColumnType(colName string, colType types.ColumnType) error {
	if !s.HasColumn(colName) {
		return errors.UnknownColumnError{Name: colName}
	}
	if !colType.IsValid() {
		return errors.InvalidColumnTypeError{Type: colType.String()}
	}
	s.declared[colName] = colType
	return nil
}
