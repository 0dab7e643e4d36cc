package datasource

import (
	"context"
	"fmt"

	"github.com/go-sif/table"
	"github.com/go-sif/table/datasource/file"
	"github.com/go-sif/table/datasource/parser/blob"
	"github.com/go-sif/table/datasource/parser/dsv"
	"github.com/go-sif/table/datasource/parser/jsonl"
	errors "github.com/go-sif/table/errors"
	"github.com/go-sif/table/logging"
	"github.com/go-sif/table/types"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// DefaultParallelism is the number of sources parsed at once when no positive limit is configured
const DefaultParallelism = 4

// LoadConf configures Load
type LoadConf struct {
	FileType    FileType          // The format of every source. Defaults to the format inferred from the name of the first source.
	DetectTypes bool              // Run AutoDetectColumnTypes on the loaded Table
	Samples     int               // The number of rows sampled per column when detecting types. Defaults to table.DefaultSamples.
	Parallelism int               // The maximum number of sources parsed at once. Defaults to DefaultParallelism.
	DSV         *dsv.ParserConf   // Configures csv and tsv parsing
	JSONL       *jsonl.ParserConf // Configures jsonl parsing
}

// CreateParser returns a Parser for the given file type. Text reports cannot be parsed.
func CreateParser(fileType FileType, conf *LoadConf) (types.Parser, error) {
	if conf == nil {
		conf = &LoadConf{}
	}
	switch fileType {
	case CSV, TSV:
		dsvConf := &dsv.ParserConf{}
		if conf.DSV != nil {
			*dsvConf = *conf.DSV
		}
		if fileType == TSV && dsvConf.Delimiter == 0 {
			dsvConf.Delimiter = '\t'
		}
		return dsv.CreateParser(dsvConf), nil
	case JSONL:
		jsonlConf := &jsonl.ParserConf{}
		if conf.JSONL != nil {
			*jsonlConf = *conf.JSONL
		}
		return jsonl.CreateParser(jsonlConf), nil
	case Pickle:
		return blob.CreateParser(), nil
	}
	return nil, errors.UnknownFileTypeError{FileType: string(fileType)}
}

// LoadFiles loads a single Table from every file matched by the given globs, as Load does
func LoadFiles(ctx context.Context, conf *LoadConf, globs ...string) (*table.Table, error) {
	sources, err := file.CreateSources(globs...)
	if err != nil {
		return nil, err
	}
	return Load(ctx, conf, sources...)
}

// Load parses every source and concatenates their rows, in source order, into a single
// Table. Every source must have the same columns as the first non-empty source. Column
// types recorded by the first non-empty source are declared on the result.
func Load(ctx context.Context, conf *LoadConf, sources ...types.Source) (*table.Table, error) {
	if conf == nil {
		conf = &LoadConf{}
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no sources to load")
	}
	fileType := conf.FileType
	if fileType == "" {
		inferred, ok := FileTypeFromName(sources[0].Name())
		if !ok {
			return nil, errors.UnknownFileTypeError{FileType: sources[0].Name()}
		}
		fileType = inferred
	}
	parser, err := CreateParser(fileType, conf)
	if err != nil {
		return nil, err
	}
	raws, err := parseAll(ctx, parser, sources, conf.Parallelism)
	if err != nil {
		return nil, err
	}
	result, err := merge(sources, raws)
	if err != nil {
		return nil, err
	}
	logging.Infof("Loaded table %s with %d rows from %d %s sources", result.ID(), result.NumRows(), len(sources), fileType)
	if conf.DetectTypes {
		result.AutoDetectColumnTypes(conf.Samples)
	}
	return result, nil
}

// parseAll parses sources concurrently, returning their RawTables in source order
func parseAll(ctx context.Context, parser types.Parser, sources []types.Source, parallelism int) ([]*types.RawTable, error) {
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}
	raws := make([]*types.RawTable, len(sources))
	limit := semaphore.NewWeighted(int64(parallelism))
	g, gctx := errgroup.WithContext(ctx)
	for i := range sources {
		if err := limit.Acquire(gctx, 1); err != nil {
			break
		}
		i := i
		g.Go(func() error {
			defer limit.Release(1)
			raw, err := parseSource(gctx, parser, sources[i])
			if err != nil {
				return err
			}
			raws[i] = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// a cancelled context may have stopped scheduling before any source failed
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return raws, nil
}

func parseSource(ctx context.Context, parser types.Parser, source types.Source) (*types.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, err := source.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := r.Close(); err != nil {
			logging.Warnf("couldn't close source %s: %v", source.Name(), err)
		}
	}()
	raw, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", source.Name(), err)
	}
	if raw == nil {
		logging.Debugf("Skipping empty source %s", source.Name())
	}
	return raw, nil
}

// merge concatenates RawTables into a Table, requiring identical columns
func merge(sources []types.Source, raws []*types.RawTable) (*table.Table, error) {
	var first *types.RawTable
	var rows [][]interface{}
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		if first == nil {
			first = raw
		} else if !sameColumns(first.Columns, raw.Columns) {
			return nil, errors.SchemaMismatchError{
				Source:   sources[i].Name(),
				Expected: first.Columns,
				Actual:   raw.Columns,
			}
		}
		rows = append(rows, raw.Rows...)
	}
	if first == nil {
		return table.Create(nil, nil)
	}
	return table.CreateWithTypes(rows, first.Columns, first.ColumnTypes)
}

func sameColumns(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
