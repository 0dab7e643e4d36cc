// Package jsonl reads and writes tables as JSON Lines, one object per row. This parser uses https://github.com/tidwall/gjson to process data, and supports column names formatted as gjson paths.
package jsonl
