// Package rowstore holds the rows of a Table. A Store which has been shared with
// a view is frozen: neither its owner nor its views write to it again, and both
// take a private copy before their first mutation.
package rowstore

// Store is an ordered sequence of fixed-width rows
type Store struct {
	width  int
	rows   [][]interface{}
	shared bool
}

// Create builds a Store from a copy of rows, padding short rows with nil
// and truncating long rows so that every row is exactly width cells wide
func Create(rows [][]interface{}, width int) *Store {
	s := &Store{
		width: width,
		rows:  make([][]interface{}, 0, len(rows)),
	}
	s.Append(rows)
	return s
}

// Normalize returns a copy of row which is exactly width cells wide
func Normalize(row []interface{}, width int) []interface{} {
	normalized := make([]interface{}, width)
	copy(normalized, row)
	return normalized
}

// Width returns the number of cells in each row
func (s *Store) Width() int {
	return s.width
}

// NumRows returns the number of rows in this Store
func (s *Store) NumRows() int {
	return len(s.rows)
}

// Row returns the row at the given position. The result must not be modified.
func (s *Store) Row(rowNum int) []interface{} {
	return s.rows[rowNum]
}

// Get returns a single cell
func (s *Store) Get(rowNum int, colNum int) interface{} {
	return s.rows[rowNum][colNum]
}

// Set overwrites a single cell. Shared Stores must not be written to.
func (s *Store) Set(rowNum int, colNum int, value interface{}) {
	if s.shared {
		panic("rowstore: write to a shared Store")
	}
	s.rows[rowNum][colNum] = value
}

// Append normalizes and appends copies of rows
func (s *Store) Append(rows [][]interface{}) {
	if s.shared {
		panic("rowstore: write to a shared Store")
	}
	for _, row := range rows {
		s.rows = append(s.rows, Normalize(row, s.width))
	}
}

// MarkShared freezes this Store because a view now references it
func (s *Store) MarkShared() {
	s.shared = true
}

// IsShared returns true iff this Store has been referenced by a view
func (s *Store) IsShared() bool {
	return s.shared
}

// Clone returns an unshared deep copy of this Store
func (s *Store) Clone() *Store {
	return Create(s.rows, s.width)
}

// Select returns an unshared deep copy of the rows at the given positions, in the given order
func (s *Store) Select(rowNums []int) *Store {
	selected := &Store{
		width: s.width,
		rows:  make([][]interface{}, len(rowNums)),
	}
	for i, rowNum := range rowNums {
		selected.rows[i] = Normalize(s.rows[rowNum], s.width)
	}
	return selected
}
