package jsonl

import (
	"io"
	"math"

	"github.com/go-sif/table"
	"github.com/go-sif/table/coerce"
	json "github.com/json-iterator/go"
)

// Writer serializes Tables as JSON Lines, with object keys in column order
type Writer struct {
	bufferSize int
}

// CreateWriter returns a new JSONL Writer
func CreateWriter() *Writer {
	return &Writer{bufferSize: 4096}
}

// Write emits one JSON object per row of t. Absent cells are written as null, and
// datetimes and other non-JSON values as text.
func (jw *Writer) Write(w io.Writer, t *table.Table) error {
	stream := json.NewStream(json.ConfigCompatibleWithStandardLibrary, w, jw.bufferSize)
	columns := t.ColumnNames()
	err := t.ForEachRow(func(rowNum int, row []interface{}) error {
		stream.WriteObjectStart()
		for i, cell := range row {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(columns[i])
			writeValue(stream, cell)
		}
		stream.WriteObjectEnd()
		stream.WriteRaw("\n")
		if stream.Buffered() >= jw.bufferSize {
			return stream.Flush()
		}
		return stream.Error
	})
	if err != nil {
		return err
	}
	return stream.Flush()
}

func writeValue(stream *json.Stream, cell interface{}) {
	switch val := cell.(type) {
	case nil:
		stream.WriteNil()
	case bool:
		stream.WriteBool(val)
	case int64:
		stream.WriteInt64(val)
	case int:
		stream.WriteInt(val)
	case float64:
		writeFloat(stream, val)
	case float32:
		writeFloat(stream, float64(val))
	case string:
		stream.WriteString(val)
	default:
		stream.WriteString(coerce.Format(val))
	}
}

// floats keep their decimal point, so that they are read back as floats
func writeFloat(stream *json.Stream, f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		stream.WriteNil()
		return
	}
	stream.WriteRaw(coerce.Format(f))
}
