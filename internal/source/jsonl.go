// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/codesphere-cloud/csvappend/internal/record"
)

// JSONLReader reads one JSON object per line. The schema is either given or
// taken from the key order of the first object.
type JSONLReader struct {
	r      *bufio.Reader
	schema record.Schema
	line   int

	peeked *object
}

type object struct {
	keys   []string
	values map[string]any
}

func NewJSONLReader(r io.Reader, fields []string) (*JSONLReader, error) {
	j := &JSONLReader{r: bufio.NewReader(r)}
	if len(fields) > 0 {
		j.schema = record.Schema(fields)
		return j, nil
	}

	obj, err := j.nextObject()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("input is empty and no fields were given")
	}
	if err != nil {
		return nil, err
	}
	if len(obj.keys) == 0 {
		return nil, fmt.Errorf("first input object on line %d has no fields", j.line)
	}
	j.schema = record.Schema(obj.keys)
	j.peeked = obj
	return j, nil
}

func (j *JSONLReader) Schema() record.Schema {
	return j.schema
}

func (j *JSONLReader) Next() (record.Record, error) {
	obj := j.peeked
	j.peeked = nil
	if obj == nil {
		var err error
		obj, err = j.nextObject()
		if err != nil {
			return nil, err
		}
	}

	rec := make(record.Record, 0, len(j.schema))
	inSchema := make(map[string]bool, len(j.schema))
	for _, name := range j.schema {
		inSchema[name] = true
		rec = append(rec, record.Field{Name: name, Value: obj.values[name]})
	}
	for _, key := range obj.keys {
		if !inSchema[key] {
			rec = append(rec, record.Field{Name: key, Value: obj.values[key]})
		}
	}
	return rec, nil
}

func (j *JSONLReader) nextObject() (*object, error) {
	for {
		line, err := j.r.ReadBytes('\n')
		if len(line) == 0 && err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		j.line++

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		obj, perr := decodeObject(line)
		if perr != nil {
			return nil, fmt.Errorf("invalid JSON object on line %d: %w", j.line, perr)
		}
		return obj, nil
	}
}

// decodeObject keeps the key order of the object, which a map would lose.
func decodeObject(line []byte) (*object, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected an object, got %v", tok)
	}

	obj := &object{values: map[string]any{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		value, err := convertValue(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		if _, seen := obj.values[key]; !seen {
			obj.keys = append(obj.keys, key)
		}
		obj.values[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after object")
	}
	return obj, nil
}

// convertValue maps JSON scalars to Go values. Objects and arrays are kept as
// raw JSON, which the formatter rejects.
func convertValue(raw json.RawMessage) (any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty value")
	}
	switch raw[0] {
	case 'n':
		return nil, nil
	case 't', 'f':
		var b bool
		err := json.Unmarshal(raw, &b)
		return b, err
	case '"':
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	case '{', '[':
		return raw, nil
	}

	// Numbers keep their input text unless they are integers that survive the
	// conversion to int64 unchanged.
	n := json.Number(raw)
	if i, err := n.Int64(); err == nil && strconv.FormatInt(i, 10) == n.String() {
		return i, nil
	}
	return n, nil
}
