// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"io"
	"os"
)

// AppendFile is the part of *os.File an append session needs.
type AppendFile interface {
	io.Writer
	Name() string
	Stat() (os.FileInfo, error)
	Sync() error
	Close() error
}

type FileIO interface {
	Open(filename string) (*os.File, error)
	Stat(path string) (os.FileInfo, error)
	CheckWritable(path string) error
	OpenAppend(filename string) (AppendFile, error)
}

type FilesystemWriter struct{}

func NewFilesystemWriter() *FilesystemWriter {
	return &FilesystemWriter{}
}

func (fs *FilesystemWriter) Open(filename string) (*os.File, error) {
	return os.Open(filename)
}

func (fs *FilesystemWriter) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (fs *FilesystemWriter) CheckWritable(path string) error {
	return checkWritable(path)
}

// OpenAppend opens an existing file for appending. The file is never created
// or truncated.
func (fs *FilesystemWriter) OpenAppend(filename string) (AppendFile, error) {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func CloseFileIgnoreError(f io.Closer) {
	_ = f.Close()
}
