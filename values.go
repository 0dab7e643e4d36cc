package table

import (
	"github.com/go-sif/table/coerce"
	errors "github.com/go-sif/table/errors"
	iutil "github.com/go-sif/table/internal/util"
	"github.com/go-sif/table/logging"
	"github.com/go-sif/table/types"
	"github.com/hashicorp/go-multierror"
)

// DefaultSamples is the number of leading rows inspected per column by AutoDetectColumnTypes
const DefaultSamples = 10

// GetValues returns every value in the named column, converted to the column's type
func (t *Table) GetValues(colName string) ([]interface{}, error) {
	colNum, err := t.resolveColumn(colName)
	if err != nil {
		return nil, err
	}
	return t.getValues(colName, colNum), nil
}

// GetValuesAt returns every value in the column at the given position, converted to the column's type
func (t *Table) GetValuesAt(colNum int) ([]interface{}, error) {
	colName, err := t.resolveColumnAt(colNum)
	if err != nil {
		return nil, err
	}
	return t.getValues(colName, colNum), nil
}

func (t *Table) getValues(colName string, colNum int) []interface{} {
	colType := t.schema.ColumnType(colName)
	values := make([]interface{}, t.NumRows())
	for i := range values {
		values[i] = coerce.CastCell(t.row(i)[colNum], colType)
	}
	return values
}

// GetValue returns the single value of the named column. The Table must contain exactly one row.
func (t *Table) GetValue(colName string) (interface{}, error) {
	if t.NumRows() != 1 {
		return nil, errors.NotSingleRowError{NumRows: t.NumRows()}
	}
	values, err := t.GetValues(colName)
	if err != nil {
		return nil, err
	}
	return values[0], nil
}

// GetValueAt returns the single value of the column at the given position. The Table must contain exactly one row.
func (t *Table) GetValueAt(colNum int) (interface{}, error) {
	if t.NumRows() != 1 {
		return nil, errors.NotSingleRowError{NumRows: t.NumRows()}
	}
	values, err := t.GetValuesAt(colNum)
	if err != nil {
		return nil, err
	}
	return values[0], nil
}

// SetValues overwrites every value in the named column, converting each to the column's type.
// There must be exactly one value per row.
func (t *Table) SetValues(colName string, values []interface{}) error {
	colNum, err := t.resolveColumn(colName)
	if err != nil {
		return err
	}
	return t.setValues(colName, colNum, values)
}

// SetValuesAt overwrites every value in the column at the given position, converting each to
// the column's type. There must be exactly one value per row.
func (t *Table) SetValuesAt(colNum int, values []interface{}) error {
	colName, err := t.resolveColumnAt(colNum)
	if err != nil {
		return err
	}
	return t.setValues(colName, colNum, values)
}

func (t *Table) setValues(colName string, colNum int, values []interface{}) error {
	if len(values) != t.NumRows() {
		return errors.ValueCountError{Values: len(values), Rows: t.NumRows()}
	}
	t.ensureOwned()
	colType := t.schema.ColumnType(colName)
	for i, v := range values {
		t.store.Set(i, colNum, coerce.CastCell(v, colType))
	}
	return nil
}

// SetValue overwrites the single value of the named column. The Table must contain exactly one row.
func (t *Table) SetValue(colName string, value interface{}) error {
	if t.NumRows() != 1 {
		return errors.NotSingleRowError{NumRows: t.NumRows()}
	}
	return t.SetValues(colName, []interface{}{value})
}

// SetValueAt overwrites the single value of the column at the given position. The Table must contain exactly one row.
func (t *Table) SetValueAt(colNum int, value interface{}) error {
	if t.NumRows() != 1 {
		return errors.NotSingleRowError{NumRows: t.NumRows()}
	}
	return t.SetValuesAt(colNum, []interface{}{value})
}

// ColumnTypes returns the effective type of every column, in order. Undeclared columns are strings.
func (t *Table) ColumnTypes() []types.ColumnType {
	return t.schema.ColumnTypes()
}

// ColumnTypesByName returns the effective type of every column, by name
func (t *Table) ColumnTypesByName() map[string]types.ColumnType {
	result := make(map[string]types.ColumnType, t.NumColumns())
	for _, name := range t.schema.ColumnNames() {
		result[name] = t.schema.ColumnType(name)
	}
	return result
}

// DeclaredColumnTypes returns only the column types which have been declared or detected
func (t *Table) DeclaredColumnTypes() map[string]types.ColumnType {
	return t.schema.DeclaredTypes()
}

// SetColumnTypes declares the types of columns by position, and converts every cell of those
// columns to the new type. Every entry is validated before anything is changed.
func (t *Table) SetColumnTypes(colTypes map[int]types.ColumnType) error {
	byName := make(map[string]types.ColumnType, len(colTypes))
	var multierr *multierror.Error
	for colNum, colType := range colTypes {
		colName, err := t.resolveColumnAt(colNum)
		if err != nil {
			multierr = multierror.Append(multierr, err)
			continue
		}
		byName[colName] = colType
	}
	if err := iutil.MultiErrorOrNil(multierr); err != nil {
		return err
	}
	return t.SetColumnTypesByName(byName)
}

// SetColumnTypesByName declares the types of columns by name, and converts every cell of those
// columns to the new type. Every entry is validated before anything is changed.
func (t *Table) SetColumnTypesByName(colTypes map[string]types.ColumnType) error {
	var multierr *multierror.Error
	for colName, colType := range colTypes {
		if !t.schema.HasColumn(colName) {
			multierr = multierror.Append(multierr, errors.UnknownColumnError{Name: colName})
		}
		if !colType.IsValid() {
			multierr = multierror.Append(multierr, errors.InvalidColumnTypeError{Type: colType.String()})
		}
	}
	if err := iutil.MultiErrorOrNil(multierr); err != nil {
		return err
	}
	t.ensureOwned()
	for colName, colType := range colTypes {
		colNum, _ := t.resolveColumn(colName)
		t.applyColumnType(colName, colNum, colType)
	}
	return nil
}

// AutoDetectColumnTypes infers a type for every column from its first samples rows, then
// converts every cell of the column to that type. Cells which cannot be converted become nil.
// A samples value <= 0 uses DefaultSamples rather than sampling no rows.
func (t *Table) AutoDetectColumnTypes(samples int) {
	if samples <= 0 {
		samples = DefaultSamples
	}
	if samples > t.NumRows() {
		samples = t.NumRows()
	}
	t.ensureOwned()
	for colNum, colName := range t.schema.ColumnNames() {
		sampled := make([]interface{}, samples)
		for i := range sampled {
			sampled[i] = t.store.Get(i, colNum)
		}
		colType := coerce.InferColumnType(sampled)
		logging.Debugf("Table %s: detected column %s as %s", t.id, colName, colType)
		t.applyColumnType(colName, colNum, colType)
	}
}

// applyColumnType records a column type and converts the column's stored cells. The Table must be owned.
func (t *Table) applyColumnType(colName string, colNum int, colType types.ColumnType) {
	// validated by callers
	_ = t.schema.SetColumnType(colName, colType)
	for i := 0; i < t.store.NumRows(); i++ {
		t.store.Set(i, colNum, coerce.CastCell(t.store.Get(i, colNum), colType))
	}
}
