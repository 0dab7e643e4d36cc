package jsonl

import (
	"bufio"
	"io"
	"strings"

	"github.com/go-sif/table/types"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	Columns       []string // Column names, as gjson paths. Defaults to the keys of the first object, in order.
	SkipLines     int      // The number of lines to ignore from the beginning of each file. Defaults to 0.
	MaxBufferSize int      // Maximum size in bytes of the buffer used to read lines from the file
}

// Parser produces RawTables from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Columns are parsed lazily from each row of JSON using their column name, which should be a gjson path. Values within the JSON which do not correspond to a column are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data into a RawTable. Blank lines are ignored. Input without any
// objects produces a nil RawTable, unless columns were configured.
func (p *Parser) Parse(r io.Reader) (*types.RawTable, error) {
	// start parsing by creating a scanner
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.SkipLines; i++ {
		if !scanner.Scan() {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var result *types.RawTable
	var paths []string
	if len(p.conf.Columns) > 0 {
		result = &types.RawTable{Columns: append([]string(nil), p.conf.Columns...)}
		paths = result.Columns
	}
	for lineNum := p.conf.SkipLines + 1; scanner.Scan(); lineNum++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if result == nil {
			columns, err := objectKeys(line, lineNum)
			if err != nil {
				return nil, err
			}
			result = &types.RawTable{Columns: columns}
			paths = make([]string, len(columns))
			for i, key := range columns {
				paths[i] = escapePath(key)
			}
		}
		row, err := scanRow(paths, line, lineNum)
		if err != nil {
			return nil, err
		}
		result.Rows = append(result.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
