package dsv

import (
	"encoding/csv"
	"io"

	"github.com/go-sif/table/types"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	SkipLines  int    // The number of records to ignore before the header of each file. Defaults to 0.
	Delimiter  rune   // The delimiter separating columns in the file. Defaults to ,
	Comment    rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue   string // A special string which represents nil values in the dataset. Defaults to none, in which case empty fields are kept as empty strings.
	Encoding   string // The character encoding of the file, as an HTML encoding label such as windows-1251. Defaults to UTF-8.
	LazyQuotes bool   // Permit bare quotes within unquoted fields, and non-doubled quotes within quoted fields
}

// Parser produces RawTables from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse parses DSV data into a RawTable. Rows may be ragged, and are normalized
// by the Table they are loaded into. Empty input produces a nil RawTable.
func (p *Parser) Parse(r io.Reader) (*types.RawTable, error) {
	decoded, err := decodeReader(r, p.conf.Encoding)
	if err != nil {
		return nil, err
	}
	// start parsing by creating a reader
	reader := csv.NewReader(decoded)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.LazyQuotes = p.conf.LazyQuotes
	reader.FieldsPerRecord = -1

	// ignore leading lines, if configured to do so
	for i := 0; i < p.conf.SkipLines; i++ {
		_, err := reader.Read()
		if err == io.EOF {
			return nil, nil
		} else if err != nil {
			return nil, err
		}
	}
	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	result := &types.RawTable{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return result, nil
		} else if err != nil {
			return nil, err
		}
		result.Rows = append(result.Rows, scanRow(p.conf, record))
	}
}
