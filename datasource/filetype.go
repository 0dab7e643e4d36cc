package datasource

import (
	"path/filepath"
	"strings"

	errors "github.com/go-sif/table/errors"
)

// FileType identifies a serialization format
type FileType string

const (
	// CSV is comma-separated text
	CSV FileType = "csv"
	// TSV is tab-separated text
	TSV FileType = "tsv"
	// Pickle is a binary table blob
	Pickle FileType = "pickle"
	// JSONL is JSON lines, one object per row
	JSONL FileType = "jsonl"
	// Text is a human-readable report, which can be written but not read
	Text FileType = "txt"
)

var extensions = map[string]FileType{
	"csv":    CSV,
	"tsv":    TSV,
	"pkl":    Pickle,
	"pickle": Pickle,
	"blob":   Pickle,
	"jsonl":  JSONL,
	"ndjson": JSONL,
	"txt":    Text,
}

// ParseFileType resolves a file type token, such as csv or pickle
func ParseFileType(token string) (FileType, error) {
	switch fileType := FileType(strings.ToLower(strings.TrimSpace(token))); fileType {
	case CSV, TSV, Pickle, JSONL, Text:
		return fileType, nil
	}
	return "", errors.UnknownFileTypeError{FileType: token}
}

// FileTypeFromName infers a file type from the extension of a file name, case-insensitively
func FileTypeFromName(name string) (FileType, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	fileType, ok := extensions[ext]
	return fileType, ok
}
