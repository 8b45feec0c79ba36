// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedValue = errors.New("value cannot be represented as text")
	ErrFieldCount       = errors.New("wrong number of fields")
	ErrNeedsQuoting     = errors.New("field needs quoting but quoting is disabled")
	ErrUnrepresentable  = errors.New("text cannot be represented in the target encoding")
)

// FormatError reports a record that could not be rendered. Index is the
// zero-based position of the record in the input stream, or -1 when unknown.
// Field is the zero-based field position, or -1 when the whole record is at fault.
type FormatError struct {
	Index int
	Field int
	Name  string
	Err   error
}

func (e *FormatError) Error() string {
	msg := "failed to format record"
	if e.Index >= 0 {
		msg = fmt.Sprintf("failed to format record %d", e.Index)
	}
	if e.Field >= 0 {
		if e.Name != "" {
			msg = fmt.Sprintf("%s: field %d (%s)", msg, e.Field, e.Name)
		} else {
			msg = fmt.Sprintf("%s: field %d", msg, e.Field)
		}
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
