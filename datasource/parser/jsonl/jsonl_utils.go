package jsonl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sif/table/logging"
	"github.com/tidwall/gjson"
)

// parseValue converts a located JSON value into a cell. Nested objects and arrays are kept as raw JSON text.
func parseValue(val gjson.Result) interface{} {
	switch val.Type {
	case gjson.Null:
		return nil
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		if !strings.ContainsAny(val.Raw, ".eE") {
			if i, err := strconv.ParseInt(val.Raw, 10, 64); err == nil {
				return i
			}
		}
		return val.Float()
	case gjson.String:
		return val.String()
	default:
		return val.Raw
	}
}

// objectKeys lists the top-level keys of a JSON object, in order
func objectKeys(line string, lineNum int) ([]string, error) {
	parsed, err := parseLine(line, lineNum)
	if err != nil {
		return nil, err
	}
	var keys []string
	parsed.ForEach(func(key, value gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys, nil
}

// Parses a line of JSON into row cells, locating each column by its path
func scanRow(paths []string, line string, lineNum int) ([]interface{}, error) {
	parsed, err := parseLine(line, lineNum)
	if err != nil {
		return nil, err
	}
	row := make([]interface{}, len(paths))
	for i, path := range paths {
		val := parsed.Get(path)
		if !val.Exists() {
			continue
		}
		row[i] = parseValue(val)
	}
	return row, nil
}

func parseLine(line string, lineNum int) (gjson.Result, error) {
	if !gjson.Valid(line) {
		logging.Warnf("Unable to parse line %d:\n\t%s", lineNum, line)
		return gjson.Result{}, fmt.Errorf("line %d is not valid JSON", lineNum)
	}
	parsed := gjson.Parse(line)
	if parsed.Type != gjson.JSON || !strings.HasPrefix(parsed.Raw, "{") {
		return gjson.Result{}, fmt.Errorf("line %d is not a JSON object", lineNum)
	}
	return parsed, nil
}

// escapePath turns an object key into a gjson path which matches only that key
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@', '!', '=', '<', '>', '%':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
