package types

import (
	"strings"

	errors "github.com/go-sif/table/errors"
)

// ColumnType is the type tag declared for, or inferred from, a column of cells.
// It is a closed enumeration; values outside of it are rejected by IsValid.
type ColumnType uint8

const (
	// NoneColumnType marks absent values. A column declared as none reads back only nil values.
	NoneColumnType ColumnType = iota
	// BoolColumnType stores bool values
	BoolColumnType
	// IntColumnType stores int64 values
	IntColumnType
	// FloatColumnType stores float64 values
	FloatColumnType
	// DateTimeColumnType stores time.Time values
	DateTimeColumnType
	// StringColumnType stores string values, and is the default for undeclared columns
	StringColumnType
)

var columnTypeNames = [...]string{
	NoneColumnType:     "none",
	BoolColumnType:     "bool",
	IntColumnType:      "int",
	FloatColumnType:    "float",
	DateTimeColumnType: "datetime",
	StringColumnType:   "str",
}

// priorities break ties between equally-frequent types during inference, favouring more specific types
var columnTypePriorities = [...]int{
	NoneColumnType:     0,
	BoolColumnType:     2,
	IntColumnType:      4,
	FloatColumnType:    3,
	DateTimeColumnType: 5,
	StringColumnType:   1,
}

// AllColumnTypes lists every valid ColumnType in declaration order
func AllColumnTypes() []ColumnType {
	return []ColumnType{NoneColumnType, BoolColumnType, IntColumnType, FloatColumnType, DateTimeColumnType, StringColumnType}
}

// IsValid returns true iff t is a member of the ColumnType enumeration
func (t ColumnType) IsValid() bool {
	return int(t) < len(columnTypeNames)
}

// String returns the textual tag for this ColumnType
func (t ColumnType) String() string {
	if !t.IsValid() {
		return "invalid"
	}
	return columnTypeNames[t]
}

// Priority returns the inference priority of this ColumnType. Higher wins ties.
func (t ColumnType) Priority() int {
	if !t.IsValid() {
		return 0
	}
	return columnTypePriorities[t]
}

// ParseColumnType converts a textual tag (none, bool, int, float, datetime, str) into a ColumnType
func ParseColumnType(tag string) (ColumnType, error) {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	for i, name := range columnTypeNames {
		if name == normalized {
			return ColumnType(i), nil
		}
	}
	return NoneColumnType, errors.InvalidColumnTypeError{Type: tag}
}
