// Package coerce detects the type of individual cells and converts cells between types.
// Every function in this package is total: unparseable input degrades to nil, the
// absent marker, and never produces an error.
package coerce

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-sif/table/types"
)

// DetectCellType returns the most specific ColumnType describing a single value
func DetectCellType(v interface{}) types.ColumnType {
	switch val := v.(type) {
	case nil:
		return types.NoneColumnType
	case bool:
		return types.BoolColumnType
	case string:
		return detectText(val)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return types.IntColumnType
	case float32, float64:
		return types.FloatColumnType
	case time.Time:
		return types.DateTimeColumnType
	default:
		return types.StringColumnType
	}
}

func detectText(s string) types.ColumnType {
	if s == "" {
		return types.NoneColumnType
	}
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "true", "false", "yes", "no", "1", "0":
		return types.BoolColumnType
	}
	if _, err := strconv.ParseInt(trimmed, 10, 64); err == nil && !strings.Contains(s, ".") {
		return types.IntColumnType
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return types.FloatColumnType
	}
	if _, ok := parseDateTime(s); ok {
		return types.DateTimeColumnType
	}
	return types.StringColumnType
}

// InferColumnType votes on a ColumnType for a column, given a sample of its cells.
// Absent samples are ignored; a column with no present samples is a string column.
// The most frequent type wins, and ties are broken by ColumnType.Priority.
func InferColumnType(samples []interface{}) types.ColumnType {
	var counts [len(typeOrder)]int
	seen := false
	for _, v := range samples {
		t := DetectCellType(v)
		if t == types.NoneColumnType {
			continue
		}
		counts[t]++
		seen = true
	}
	if !seen {
		return types.StringColumnType
	}
	best := types.NoneColumnType
	for _, t := range typeOrder {
		if counts[t] == 0 {
			continue
		}
		if best == types.NoneColumnType ||
			counts[t] > counts[best] ||
			(counts[t] == counts[best] && t.Priority() > best.Priority()) {
			best = t
		}
	}
	return best
}

var typeOrder = [...]types.ColumnType{
	types.NoneColumnType,
	types.BoolColumnType,
	types.IntColumnType,
	types.FloatColumnType,
	types.DateTimeColumnType,
	types.StringColumnType,
}
