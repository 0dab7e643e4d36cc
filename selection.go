package table

import (
	"github.com/go-sif/table/coerce"
	errors "github.com/go-sif/table/errors"
)

// GetRowsByNumber selects the rows in the half-open range [start, stop), which must
// satisfy 0 <= start < stop <= NumRows(). If deepCopy is true, the result owns a private
// copy of the rows. Otherwise the result is a view of this Table.
func (t *Table) GetRowsByNumber(start int, stop int, deepCopy bool) (*Table, error) {
	numRows := t.NumRows()
	if start < 0 || start >= numRows {
		return nil, errors.RowIndexError{Start: start, Stop: stop, NumRows: numRows}
	}
	if stop <= start || stop > numRows {
		return nil, errors.RowIndexError{Start: start, Stop: stop, NumRows: numRows}
	}
	selection := make([]int, 0, stop-start)
	for i := start; i < stop; i++ {
		selection = append(selection, t.storeIndex(i))
	}
	return t.selectRows(selection, deepCopy), nil
}

// GetRowByNumber selects the single row at position rowNum, as GetRowsByNumber does
func (t *Table) GetRowByNumber(rowNum int, deepCopy bool) (*Table, error) {
	if rowNum < 0 || rowNum >= t.NumRows() {
		return nil, errors.RowIndexError{Start: rowNum, NumRows: t.NumRows()}
	}
	return t.GetRowsByNumber(rowNum, rowNum+1, deepCopy)
}

// GetRowsByIndex selects every row whose first cell, formatted as text, equals the
// textual form of any of the given values. Rows keep their original order and are
// never duplicated. Bools format as "true"/"false", so a stored "True" does not match
// the value true. If deepCopy is true, the result owns a private copy of the rows.
// Otherwise the result is a view of this Table.
func (t *Table) GetRowsByIndex(deepCopy bool, values ...interface{}) (*Table, error) {
	if len(values) == 0 {
		return nil, errors.NoValuesError{}
	}
	wanted := make(map[string]struct{}, len(values))
	wantedList := make([]string, 0, len(values))
	for _, v := range values {
		key := coerce.Format(v)
		if _, ok := wanted[key]; !ok {
			wantedList = append(wantedList, key)
		}
		wanted[key] = struct{}{}
	}
	var selection []int
	if t.NumColumns() > 0 {
		for i := 0; i < t.NumRows(); i++ {
			first := t.row(i)[0]
			if first == nil {
				continue
			}
			if _, ok := wanted[coerce.Format(first)]; ok {
				selection = append(selection, t.storeIndex(i))
			}
		}
	}
	if len(selection) == 0 {
		return nil, errors.NoMatchingRowsError{Values: wantedList}
	}
	return t.selectRows(selection, deepCopy), nil
}

func (t *Table) selectRows(selection []int, deepCopy bool) *Table {
	if deepCopy {
		return newOwned(t, selection)
	}
	return newView(t, selection)
}

// Concat produces a new Table containing the rows of every given Table, in order.
// All Tables must have identical column names. The result carries the declared
// column types of the first Table, and is never a view.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return Create(nil, nil)
	}
	first := tables[0]
	for _, other := range tables[1:] {
		if err := first.schema.Equals(other.schema); err != nil {
			return nil, err
		}
	}
	result := newOwned(first, first.rowIndices())
	for _, other := range tables[1:] {
		rows := make([][]interface{}, other.NumRows())
		for i := range rows {
			rows[i] = other.row(i)
		}
		result.store.Append(rows)
	}
	return result, nil
}
