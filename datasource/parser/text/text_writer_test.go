package text

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-sif/table"
	"github.com/stretchr/testify/require"
)

func TestTextWriter(t *testing.T) {
	tbl, err := table.Create([][]interface{}{
		{1, "A"},
		{2, nil},
		{3, "C"},
	}, []string{"ID", "Name"})
	require.Nil(t, err)
	var buf bytes.Buffer
	require.Nil(t, CreateWriter(&WriterConf{MaxRows: 2}).Write(&buf, tbl))
	expected := "Table: 3 rows, 2 columns\n" +
		strings.Repeat("=", 60) + "\n\n" +
		"ID | Name\n" +
		"---------\n" +
		"1  | A   \n" +
		"2  | None\n" +
		"... and 1 more rows\n"
	require.Equal(t, expected, buf.String())
}

func TestTextWriterEmptyTable(t *testing.T) {
	tbl, err := table.Create(nil, []string{"ID"})
	require.Nil(t, err)
	var buf bytes.Buffer
	require.Nil(t, CreateWriter(nil).Write(&buf, tbl))
	require.Equal(t, "Table: 0 rows, 1 columns\n"+strings.Repeat("=", 60)+"\n\nEmpty table\n", buf.String())
}

func TestTextWriterDefaultLimit(t *testing.T) {
	rows := make([][]interface{}, DefaultMaxRows+1)
	for i := range rows {
		rows[i] = []interface{}{i}
	}
	tbl, err := table.Create(rows, []string{"n"})
	require.Nil(t, err)
	var buf bytes.Buffer
	require.Nil(t, CreateWriter(&WriterConf{MaxRows: -1}).Write(&buf, tbl))
	require.True(t, strings.HasSuffix(buf.String(), "... and 1 more rows\n"))
}
