// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/codesphere-cloud/csvappend/internal/record"
)

// Reader delivers records of a fixed schema one at a time. Next returns io.EOF
// once the stream is exhausted.
type Reader interface {
	Schema() record.Schema
	Next() (record.Record, error)
}

const (
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
)

// New builds a Reader for the named input format. fields is only used by
// jsonl input; csv input takes its schema from the header row.
func New(inputFormat string, r io.Reader, delimiter rune, fields []string) (Reader, error) {
	switch strings.ToLower(inputFormat) {
	case "", FormatCSV:
		return NewCSVReader(r, delimiter)
	case FormatJSONL, "ndjson":
		return NewJSONLReader(r, fields)
	}
	return nil, fmt.Errorf("unknown input format %q (must be csv or jsonl)", inputFormat)
}

// ReadAll drains r. It is meant for small inputs and tests.
func ReadAll(r Reader) ([]record.Record, error) {
	var records []record.Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}
