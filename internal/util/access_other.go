// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package util

import (
	"os"
)

// Without access(2) the read-only attribute is the best available hint; the
// append open reports everything else.
func checkWritable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0200 == 0 {
		return &os.PathError{Op: "access", Path: path, Err: os.ErrPermission}
	}
	return nil
}
