package coerce

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-sif/table/types"
)

// CastCell converts v to the canonical representation of target: nil, bool, int64,
// float64, time.Time or string. Values which cannot be converted become nil.
// An invalid target returns v unchanged.
func CastCell(v interface{}, target types.ColumnType) interface{} {
	if !target.IsValid() {
		return v
	}
	if target == types.NoneColumnType || v == nil {
		return nil
	}
	if s, ok := v.(string); ok && s == "" {
		return nil
	}
	switch target {
	case types.StringColumnType:
		return Format(v)
	case types.IntColumnType:
		if i, ok := toInt(v); ok {
			return i
		}
		f, ok := toFloat(v)
		if !ok {
			return nil
		}
		i, ok := truncate(f)
		if !ok {
			return nil
		}
		return i
	case types.FloatColumnType:
		f, ok := toFloat(v)
		if !ok {
			return nil
		}
		return f
	case types.BoolColumnType:
		return toBool(v)
	case types.DateTimeColumnType:
		switch val := v.(type) {
		case time.Time:
			return val
		case string:
			if t, ok := parseDateTime(strings.TrimSpace(val)); ok {
				return t
			}
		}
		return nil
	}
	return v
}

// toInt converts integer kinds and integral text without a float round trip,
// so int64 values beyond 2^53 keep their precision
func toInt(v interface{}) (int64, bool) {
	switch val := v.(type) {
	case int64:
		return val, true
	case int:
		return int64(val), true
	case int8:
		return int64(val), true
	case int16:
		return int64(val), true
	case int32:
		return int64(val), true
	case uint:
		if uint64(val) > math.MaxInt64 {
			return 0, false
		}
		return int64(val), true
	case uint8:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint32:
		return int64(val), true
	case uint64:
		if val > math.MaxInt64 {
			return 0, false
		}
		return int64(val), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// toFloat widens any numeric or boolean value, or parses numeric text
func toFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// truncate converts f to an int64, rounding toward zero. NaN, infinities and
// out-of-range values cannot be represented.
func truncate(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, false
	}
	return int64(t), true
}

func toBool(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "1", "yes", "t", "y":
			return true
		case "false", "0", "no", "f", "n":
			return false
		}
		if i, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64); err == nil {
			return i != 0
		}
		return truthy(val)
	case time.Time:
		return true
	}
	if f, ok := toFloat(v); ok {
		if i, ok := truncate(f); ok {
			return i != 0
		}
		// NaN and infinities are truthy
		return true
	}
	return truthy(v)
}

// truthy treats empty collections and zero values of unknown kinds as false
func truthy(v interface{}) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return false
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	}
	return !rv.IsZero()
}
