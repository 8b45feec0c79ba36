// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/codesphere-cloud/csvappend/internal/record"
)

// CSVReader reads delimited input whose first row names the fields.
type CSVReader struct {
	r      *csv.Reader
	schema record.Schema
}

func NewCSVReader(r io.Reader, delimiter rune) (*CSVReader, error) {
	cr := csv.NewReader(r)
	if delimiter != 0 {
		cr.Comma = delimiter
	}
	// Width mismatches are left to the formatter so they carry a record index.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("input has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return &CSVReader{r: cr, schema: record.Schema(header)}, nil
}

func (c *CSVReader) Schema() record.Schema {
	return c.schema
}

func (c *CSVReader) Next() (record.Record, error) {
	row, err := c.r.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input row: %w", err)
	}
	values := make([]any, len(row))
	for i, v := range row {
		values[i] = v
	}
	return record.New(c.schema, values...), nil
}
