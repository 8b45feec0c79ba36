// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package util

import (
	"os"

	"golang.org/x/sys/unix"
)

func checkWritable(path string) error {
	if err := unix.Access(path, unix.W_OK); err != nil {
		return &os.PathError{Op: "access", Path: path, Err: err}
	}
	return nil
}
