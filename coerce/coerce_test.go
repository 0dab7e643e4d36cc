package coerce

import (
	"math"
	"testing"
	"time"

	"github.com/go-sif/table/types"
	"github.com/stretchr/testify/require"
)

func TestDetectCellType(t *testing.T) {
	cases := []struct {
		value    interface{}
		expected types.ColumnType
	}{
		{nil, types.NoneColumnType},
		{"", types.NoneColumnType},
		{true, types.BoolColumnType},
		{"TRUE", types.BoolColumnType},
		{" no ", types.BoolColumnType},
		{"1", types.BoolColumnType},
		{"0", types.BoolColumnType},
		{"42", types.IntColumnType},
		{" -7 ", types.IntColumnType},
		{"3.0", types.FloatColumnType},
		{"1e5", types.FloatColumnType},
		{"2024-01-31", types.DateTimeColumnType},
		{"31.01.2024", types.DateTimeColumnType},
		{"2024/01/31", types.DateTimeColumnType},
		{"2024-01-31 12:30:00", types.DateTimeColumnType},
		{"31.01.2024 12:30:00", types.DateTimeColumnType},
		{" 2024-01-31", types.StringColumnType},
		{"hello", types.StringColumnType},
		{"  ", types.StringColumnType},
		{int64(5), types.IntColumnType},
		{5, types.IntColumnType},
		{uint8(5), types.IntColumnType},
		{10.5, types.FloatColumnType},
		{float32(1.5), types.FloatColumnType},
		{time.Now(), types.DateTimeColumnType},
		{[]byte("x"), types.StringColumnType},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, DetectCellType(c.value), "value %#v", c.value)
	}
}

func TestInferColumnType(t *testing.T) {
	require.Equal(t, types.StringColumnType, InferColumnType(nil))
	require.Equal(t, types.StringColumnType, InferColumnType([]interface{}{nil, ""}))
	require.Equal(t, types.IntColumnType, InferColumnType([]interface{}{"1", "2", "3"}))
	require.Equal(t, types.FloatColumnType, InferColumnType([]interface{}{10.5, nil}))
	// "1" and "0" are booleans, "5" and "7" are ints. The tie goes to int.
	require.Equal(t, types.IntColumnType, InferColumnType([]interface{}{"1", "0", "5", "7"}))
	// frequency beats priority
	require.Equal(t, types.StringColumnType, InferColumnType([]interface{}{"a", "b", "2024-01-01"}))
	// datetime wins ties with everything
	require.Equal(t, types.DateTimeColumnType, InferColumnType([]interface{}{"a", "2024-01-01"}))
}

func TestCastCellToInt(t *testing.T) {
	require.Equal(t, int64(3), CastCell("3.0", types.IntColumnType))
	require.Equal(t, int64(3), CastCell("3.9", types.IntColumnType))
	require.Equal(t, int64(-3), CastCell(" -3.9 ", types.IntColumnType))
	require.Equal(t, int64(1), CastCell(true, types.IntColumnType))
	require.Equal(t, int64(7), CastCell(7, types.IntColumnType))
	require.Equal(t, int64(9007199254740993), CastCell(int64(9007199254740993), types.IntColumnType))
	require.Equal(t, int64(math.MaxInt64), CastCell(int64(math.MaxInt64), types.IntColumnType))
	require.Equal(t, int64(math.MinInt64), CastCell(int64(math.MinInt64), types.IntColumnType))
	require.Equal(t, int64(math.MaxInt64), CastCell(" 9223372036854775807 ", types.IntColumnType))
	require.Equal(t, int64(math.MaxInt64), CastCell(uint64(math.MaxInt64), types.IntColumnType))
	require.Nil(t, CastCell(uint64(math.MaxUint64), types.IntColumnType))
	require.Nil(t, CastCell("9223372036854775808", types.IntColumnType))
	require.Nil(t, CastCell("abc", types.IntColumnType))
	require.Nil(t, CastCell("", types.IntColumnType))
	require.Nil(t, CastCell(math.Inf(1), types.IntColumnType))
	require.Nil(t, CastCell(math.NaN(), types.IntColumnType))
	require.Nil(t, CastCell(time.Now(), types.IntColumnType))
}

func TestCastCellToFloat(t *testing.T) {
	require.Equal(t, 10.5, CastCell("10.5", types.FloatColumnType))
	require.Equal(t, 2.0, CastCell(int64(2), types.FloatColumnType))
	require.Equal(t, 0.0, CastCell(false, types.FloatColumnType))
	require.Nil(t, CastCell("ten", types.FloatColumnType))
}

func TestCastCellToBool(t *testing.T) {
	for _, s := range []string{"true", "1", "Yes", " t ", "Y"} {
		require.Equal(t, true, CastCell(s, types.BoolColumnType), s)
	}
	for _, s := range []string{"false", "0", "NO", "f", "n"} {
		require.Equal(t, false, CastCell(s, types.BoolColumnType), s)
	}
	require.Equal(t, true, CastCell("5", types.BoolColumnType))
	require.Equal(t, false, CastCell("00", types.BoolColumnType))
	require.Equal(t, true, CastCell("maybe", types.BoolColumnType))
	require.Equal(t, false, CastCell(0.3, types.BoolColumnType))
	require.Equal(t, true, CastCell(2.5, types.BoolColumnType))
	require.Equal(t, true, CastCell(math.NaN(), types.BoolColumnType))
	require.Equal(t, false, CastCell(int64(0), types.BoolColumnType))
	require.Nil(t, CastCell("", types.BoolColumnType))
}

func TestCastCellToDateTime(t *testing.T) {
	expected := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	require.Equal(t, expected, CastCell("2024-01-31", types.DateTimeColumnType))
	require.Equal(t, expected, CastCell(" 31.01.2024 ", types.DateTimeColumnType))
	require.Equal(t, expected, CastCell("2024/1/31", types.DateTimeColumnType))
	require.Equal(t, time.Date(2024, 1, 31, 12, 30, 5, 0, time.UTC), CastCell("31.01.2024 12:30:05", types.DateTimeColumnType))
	require.Nil(t, CastCell("31/01/2024", types.DateTimeColumnType))
	require.Nil(t, CastCell(int64(20240131), types.DateTimeColumnType))
}

func TestCastCellToString(t *testing.T) {
	require.Equal(t, "10.0", CastCell(10.0, types.StringColumnType))
	require.Equal(t, "10.5", CastCell(10.5, types.StringColumnType))
	require.Equal(t, "1234567.0", CastCell(1234567.0, types.StringColumnType))
	require.Equal(t, "1e+21", CastCell(1e21, types.StringColumnType))
	require.Equal(t, "42", CastCell(int64(42), types.StringColumnType))
	require.Equal(t, "true", CastCell(true, types.StringColumnType))
	require.Equal(t, "2024-01-31 12:30:00", CastCell(time.Date(2024, 1, 31, 12, 30, 0, 0, time.UTC), types.StringColumnType))
	require.Nil(t, CastCell(nil, types.StringColumnType))
}

func TestCastCellNoneAndInvalidTargets(t *testing.T) {
	require.Nil(t, CastCell("anything", types.NoneColumnType))
	require.Equal(t, "anything", CastCell("anything", types.ColumnType(42)))
}

func TestCastCellIdempotence(t *testing.T) {
	now := time.Date(2021, 6, 1, 8, 0, 0, 0, time.UTC)
	values := map[types.ColumnType]interface{}{
		types.IntColumnType:      int64(-12),
		types.FloatColumnType:    3.25,
		types.BoolColumnType:     false,
		types.DateTimeColumnType: now,
		types.StringColumnType:   "text",
	}
	for colType, v := range values {
		require.Equal(t, v, CastCell(v, colType), colType.String())
		require.Equal(t, v, CastCell(CastCell(v, colType), colType), colType.String())
	}
	for _, v := range []int64{math.MaxInt64, math.MinInt64, 9007199254740993} {
		require.Equal(t, v, CastCell(v, types.IntColumnType))
		require.Equal(t, v, CastCell(Format(v), types.IntColumnType))
	}
}

func TestFormatIsDetectedAsItsOwnType(t *testing.T) {
	values := []interface{}{int64(12), 12.0, 0.5, 1e-7, time.Date(2021, 6, 1, 8, 0, 0, 0, time.UTC)}
	for _, v := range values {
		require.Equal(t, DetectCellType(v), DetectCellType(Format(v)), "value %#v", v)
	}
}
