// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package appender

import (
	"errors"
	"fmt"
)

var (
	ErrSessionClosed  = errors.New("append session is closed")
	ErrTargetReplaced = errors.New("target file was moved or deleted")
)

// MissingTargetFileError is returned when the target does not exist. The
// appender never creates files, so this is terminal.
type MissingTargetFileError struct {
	Path string
	Err  error
}

func (e *MissingTargetFileError) Error() string {
	return fmt.Sprintf("the output file %s does not exist", e.Path)
}

func (e *MissingTargetFileError) Unwrap() error {
	return e.Err
}

// FileAccessError is returned when the target exists but cannot be opened for
// appending: a directory, missing write permission or a lock held elsewhere.
type FileAccessError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FileAccessError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot append to %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("cannot append to %s: %s: %v", e.Path, e.Reason, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// WriteError reports an I/O failure during an append. Written is the number of
// complete lines that landed in this session before the failure; Index is the
// zero-based index of the record that failed.
type WriteError struct {
	Path    string
	Index   int
	Written int
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to append record %d to %s (%d lines written): %v", e.Index, e.Path, e.Written, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
