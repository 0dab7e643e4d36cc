package coerce

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Format produces the textual representation of a cell. nil formats as the empty string.
// Floats always keep a decimal point or an exponent, so that formatted text is detected
// as a float again.
func Format(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return formatFloat(val, 64)
	case float32:
		return formatFloat(float64(val), 32)
	case time.Time:
		return val.Format(DateTimeLayout)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func formatFloat(f float64, bitSize int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	format := byte('f')
	if abs := math.Abs(f); abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		format = 'g'
	}
	s := strconv.FormatFloat(f, format, -1, bitSize)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
