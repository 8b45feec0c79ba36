// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package record

// Field is a single named value of a record.
type Field struct {
	Name  string
	Value any
}

// Record is one row of fields in schema order.
type Record []Field

// Schema holds the field names of a session. It is fixed for the session's lifetime
// and assumed to match the header of the target file.
type Schema []string

func (s Schema) Width() int {
	return len(s)
}

// New builds a record by pairing the schema names with values by position.
// Values beyond the schema width are kept with an empty name.
func New(schema Schema, values ...any) Record {
	n := len(values)
	if len(schema) > n {
		n = len(schema)
	}
	rec := make(Record, n)
	for i := range rec {
		if i < len(schema) {
			rec[i].Name = schema[i]
		}
		if i < len(values) {
			rec[i].Value = values[i]
		}
	}
	return rec
}

func (r Record) Values() []any {
	values := make([]any, len(r))
	for i, f := range r {
		values[i] = f.Value
	}
	return values
}
