// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/codesphere-cloud/csvappend/internal/record"
)

// Formatter renders records of a fixed schema into delimited lines.
type Formatter struct {
	schema record.Schema
	opts   Options
}

func NewFormatter(schema record.Schema, opts Options) (*Formatter, error) {
	if schema.Width() == 0 {
		return nil, fmt.Errorf("schema has no fields")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Formatter{schema: schema, opts: opts}, nil
}

func (f *Formatter) Schema() record.Schema {
	return f.schema
}

func (f *Formatter) Options() Options {
	return f.opts
}

// Format renders rec without a line terminator.
func (f *Formatter) Format(rec record.Record) (string, error) {
	return Format(rec, f.schema.Width(), f.opts)
}

// Format joins the rendered fields of rec with the configured delimiter, quoting
// fields according to opts.Quoting. The result never carries a line terminator.
// Format has no side effects; equal inputs always give equal output.
func Format(rec record.Record, width int, opts Options) (string, error) {
	if len(rec) != width {
		return "", &FormatError{
			Index: -1,
			Field: -1,
			Err:   fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(rec), width),
		}
	}

	var b strings.Builder
	for i, field := range rec {
		text, numeric, err := renderValue(field.Value)
		if err != nil {
			return "", &FormatError{Index: -1, Field: i, Name: field.Name, Err: err}
		}
		if i > 0 {
			b.WriteRune(opts.Delimiter)
		}

		quote := shouldQuote(text, numeric, opts)
		// A lone empty field would otherwise produce a blank line, which readers skip.
		if width == 1 && text == "" {
			quote = true
		}
		if quote && opts.Quoting == QuoteNone {
			return "", &FormatError{Index: -1, Field: i, Name: field.Name, Err: ErrNeedsQuoting}
		}
		writeField(&b, text, quote, opts.Quote)
	}
	return b.String(), nil
}

func shouldQuote(text string, numeric bool, opts Options) bool {
	switch opts.Quoting {
	case QuoteAlways:
		return true
	case QuoteNonNumeric:
		if !numeric {
			return true
		}
	}
	return fieldNeedsQuote(text, opts.Delimiter, opts.Quote)
}

func writeField(b *strings.Builder, field string, quote bool, quoteChar rune) {
	if !quote {
		b.WriteString(field)
		return
	}
	b.WriteRune(quoteChar)
	start := 0
	for i, r := range field {
		if r == quoteChar {
			b.WriteString(field[start:i])
			b.WriteRune(quoteChar)
			b.WriteRune(quoteChar)
			start = i + utf8.RuneLen(quoteChar)
		}
	}
	b.WriteString(field[start:])
	b.WriteRune(quoteChar)
}

func fieldNeedsQuote(field string, comma, quote rune) bool {
	for _, r := range field {
		switch r {
		case comma, quote, '\n', '\r':
			return true
		}
	}
	return false
}
