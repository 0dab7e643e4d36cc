package table

import (
	"testing"

	errors "github.com/go-sif/table/errors"
	"github.com/stretchr/testify/require"
)

func TestGetRowsByNumberValidRanges(t *testing.T) {
	table := createTestTable(t)
	for start := 0; start < table.NumRows(); start++ {
		for stop := start + 1; stop <= table.NumRows(); stop++ {
			for _, deepCopy := range []bool{true, false} {
				selected, err := table.GetRowsByNumber(start, stop, deepCopy)
				require.Nil(t, err)
				require.Equal(t, stop-start, selected.NumRows())
				require.Equal(t, !deepCopy, selected.IsView())
				ids, err := selected.GetValues("ID")
				require.Nil(t, err)
				for i, id := range ids {
					require.Equal(t, formatInt(start+i+1), id)
				}
			}
		}
	}
}

func formatInt(i int) string {
	return string(rune('0' + i))
}

func TestGetRowsByNumberInvalidRanges(t *testing.T) {
	table := createTestTable(t)
	invalid := [][2]int{
		{-1, 2},
		{4, 5},
		{10, 11},
		{2, 2},
		{2, 1},
		{0, 5},
	}
	for _, r := range invalid {
		_, err := table.GetRowsByNumber(r[0], r[1], false)
		require.NotNil(t, err, "range %v", r)
		_, ok := err.(errors.RowIndexError)
		require.True(t, ok)
	}
}

func TestGetRowByNumber(t *testing.T) {
	table := createTestTable(t)
	row, err := table.GetRowByNumber(2, false)
	require.Nil(t, err)
	require.Equal(t, 1, row.NumRows())
	name, err := row.GetValue("Name")
	require.Nil(t, err)
	require.Equal(t, "C", name)

	_, err = table.GetRowByNumber(4, false)
	require.NotNil(t, err)
	_, err = table.GetRowByNumber(-1, true)
	require.NotNil(t, err)

	empty, err := Create(nil, []string{"a"})
	require.Nil(t, err)
	_, err = empty.GetRowByNumber(0, false)
	require.NotNil(t, err)
}

func TestGetRowsByNumberCopyIsIndependent(t *testing.T) {
	table := createTestTable(t)
	copied, err := table.GetRowsByNumber(0, 2, true)
	require.Nil(t, err)
	require.Nil(t, copied.Parent())
	require.Nil(t, copied.SetValues("Name", []interface{}{"x", "y"}))
	names, err := table.GetValues("Name")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"A", "B", "C", "D"}, names)
}

func TestGetRowsByIndex(t *testing.T) {
	table := createTestTable(t)
	selected, err := table.GetRowsByIndex(false, "3", 1)
	require.Nil(t, err)
	require.True(t, selected.IsView())
	// source order is preserved, regardless of the order of requested values
	names, err := selected.GetValues("Name")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"A", "C"}, names)

	// repeated values never duplicate rows
	selected, err = table.GetRowsByIndex(true, 2, "2", int64(2))
	require.Nil(t, err)
	require.False(t, selected.IsView())
	require.Equal(t, 1, selected.NumRows())
}

func TestGetRowsByIndexMatchesOnlyRequestedValues(t *testing.T) {
	table, err := Create([][]interface{}{
		{"a", 1},
		{nil, 2},
		{"b", 3},
		{"a", 4},
	}, []string{"key", "n"})
	require.Nil(t, err)
	selected, err := table.GetRowsByIndex(false, "a")
	require.Nil(t, err)
	keys, err := selected.GetValues("key")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"a", "a"}, keys)
	ns, err := selected.GetValues("n")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"1", "4"}, ns)
}

func TestGetRowsByIndexMatchesBoolsByFormattedText(t *testing.T) {
	table, err := Create([][]interface{}{{"True", 1}, {"true", 2}, {true, 3}}, []string{"flag", "n"})
	require.Nil(t, err)
	selected, err := table.GetRowsByIndex(false, true)
	require.Nil(t, err)
	ns, err := selected.GetValues("n")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"2", "3"}, ns)
}

func TestGetRowsByIndexErrors(t *testing.T) {
	table := createTestTable(t)
	_, err := table.GetRowsByIndex(false)
	require.NotNil(t, err)
	_, ok := err.(errors.NoValuesError)
	require.True(t, ok)

	_, err = table.GetRowsByIndex(false, "missing", 99)
	require.NotNil(t, err)
	noMatch, ok := err.(errors.NoMatchingRowsError)
	require.True(t, ok)
	require.Equal(t, []string{"missing", "99"}, noMatch.Values)
}

func TestConcat(t *testing.T) {
	first := createTestTable(t)
	second := createTestTable(t)
	view, err := second.GetRowsByNumber(0, 2, false)
	require.Nil(t, err)

	merged, err := Concat(first, view)
	require.Nil(t, err)
	require.False(t, merged.IsView())
	require.Equal(t, 6, merged.NumRows())
	names, err := merged.GetValues("Name")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"A", "B", "C", "D", "A", "B"}, names)

	other, err := Create([][]interface{}{{1}}, []string{"ID"})
	require.Nil(t, err)
	_, err = Concat(first, other)
	require.NotNil(t, err)
	_, ok := err.(errors.SchemaMismatchError)
	require.True(t, ok)

	empty, err := Concat()
	require.Nil(t, err)
	require.Equal(t, 0, empty.NumRows())
}
