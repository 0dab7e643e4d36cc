package blob

import (
	"encoding/gob"
	"time"
)

func init() {
	// cells are stored as interface{} values
	gob.Register(time.Time{})
}

// Record is the serialized form of a table
type Record struct {
	Rows        [][]interface{}
	Columns     []string
	ColumnTypes map[string]string // declared column types, by column name, as textual tags
}
