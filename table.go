package table

import (
	"fmt"
	"log"

	"github.com/go-sif/table/internal/rowstore"
	iutil "github.com/go-sif/table/internal/util"
	"github.com/go-sif/table/logging"
	"github.com/go-sif/table/schema"
	"github.com/go-sif/table/types"
	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
)

// Table is an in-memory table of rows, described by a Schema.
//
// A Table either owns its rows, or is a view of a parent Table, created by a selection.
// A view reads the rows of its parent until its first mutation, at which point it
// copies the selected rows and permanently forgets its parent. Likewise, a Table whose
// rows are referenced by a view copies them before its own next mutation, so that
// neither side ever observes the other's writes.
//
// Tables are not safe for concurrent use.
type Table struct {
	id        string
	schema    *schema.Schema
	store     *rowstore.Store
	selection []int  // positions within store, iff this Table is a view
	parent    *Table // non-nil iff this Table is a view
}

// Create builds a Table from a copy of rows. If no column names are given, names are
// generated from the width of the first row (col_0, col_1, ...). Every row is padded
// with nil or truncated to the number of columns.
func Create(rows [][]interface{}, columns []string) (*Table, error) {
	return CreateWithTypes(rows, columns, nil)
}

// CreateWithTypes builds a Table as Create does, declaring types for some or all of its
// columns. Declared types only govern how cells are read and written: stored cells
// are not converted.
func CreateWithTypes(rows [][]interface{}, columns []string, declared map[string]types.ColumnType) (*Table, error) {
	if len(columns) == 0 && len(rows) > 0 {
		columns = schema.PositionalNames(len(rows[0]))
	}
	s, err := schema.CreateSchema(columns)
	if err != nil {
		return nil, err
	}
	var multierr *multierror.Error
	for name, colType := range declared {
		if err := s.SetColumnType(name, colType); err != nil {
			multierr = multierror.Append(multierr, err)
		}
	}
	if err := iutil.MultiErrorOrNil(multierr); err != nil {
		return nil, err
	}
	return &Table{
		id:     newTableID(),
		schema: s,
		store:  rowstore.Create(rows, s.NumColumns()),
	}, nil
}

// newView creates a Table which reads the given positions of parent's store
func newView(parent *Table, selection []int) *Table {
	parent.store.MarkShared()
	return &Table{
		id:        newTableID(),
		schema:    parent.schema.Clone(),
		store:     parent.store,
		selection: selection,
		parent:    parent,
	}
}

// newOwned creates a Table with a private copy of the given positions of source's store
func newOwned(source *Table, selection []int) *Table {
	return &Table{
		id:     newTableID(),
		schema: source.schema.Clone(),
		store:  source.store.Select(selection),
	}
}

func newTableID() string {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID for Table: %v", err)
	}
	return id.String()
}

// ID returns the unique identifier of this Table
func (t *Table) ID() string {
	return t.id
}

// IsView returns true iff this Table still shares its rows with a parent Table
func (t *Table) IsView() bool {
	return t.parent != nil
}

// Parent returns the Table this Table is a view of, or nil
func (t *Table) Parent() *Table {
	return t.parent
}

// NumRows returns the number of rows in this Table
func (t *Table) NumRows() int {
	if t.selection != nil {
		return len(t.selection)
	}
	return t.store.NumRows()
}

// NumColumns returns the number of columns in this Table
func (t *Table) NumColumns() int {
	return t.schema.NumColumns()
}

// ColumnNames returns the column names of this Table, in order
func (t *Table) ColumnNames() []string {
	return t.schema.ColumnNames()
}

// ForEachRow iterates over the raw, stored cells of each row in order. The row
// slice is reused between calls, and must not be retained.
func (t *Table) ForEachRow(fn func(rowNum int, row []interface{}) error) error {
	buff := make([]interface{}, t.NumColumns())
	for i := 0; i < t.NumRows(); i++ {
		copy(buff, t.row(i))
		if err := fn(i, buff); err != nil {
			return err
		}
	}
	return nil
}

// String returns a short description of this Table
func (t *Table) String() string {
	return fmt.Sprintf("Table(rows=%d, cols=%d)", t.NumRows(), t.NumColumns())
}

// row returns the stored cells of a row of this Table, resolving views
func (t *Table) row(rowNum int) []interface{} {
	return t.store.Row(t.storeIndex(rowNum))
}

func (t *Table) storeIndex(rowNum int) int {
	if t.selection != nil {
		return t.selection[rowNum]
	}
	return rowNum
}

// rowIndices returns the store positions of every row of this Table
func (t *Table) rowIndices() []int {
	indices := make([]int, t.NumRows())
	for i := range indices {
		indices[i] = t.storeIndex(i)
	}
	return indices
}

// ensureOwned is the copy-on-write step, and must precede every mutation of
// rows or schema. A view materializes its selection and drops its parent;
// an owner whose store has been shared with a view takes a private copy.
func (t *Table) ensureOwned() {
	if t.parent != nil {
		logging.Debugf("Table %s: materializing %d rows viewed from table %s", t.id, len(t.selection), t.parent.id)
		t.store = t.store.Select(t.selection)
		t.selection = nil
		t.parent = nil
		return
	}
	if t.store.IsShared() {
		logging.Debugf("Table %s: copying %d rows shared with views", t.id, t.store.NumRows())
		t.store = t.store.Clone()
	}
}

// resolveColumn returns the position of a column, by name
func (t *Table) resolveColumn(colName string) (int, error) {
	return t.schema.Index(colName)
}

// resolveColumnAt returns the name of a column, by position
func (t *Table) resolveColumnAt(colNum int) (string, error) {
	return t.schema.Name(colNum)
}
