// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package appender

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/lithammer/shortuuid"

	"github.com/codesphere-cloud/csvappend/internal/format"
	"github.com/codesphere-cloud/csvappend/internal/textenc"
	"github.com/codesphere-cloud/csvappend/internal/util"
)

type State int

const (
	Unopened State = iota
	Open
	Closed
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unopened"
	}
}

// Session owns the append handle of one target file. It is not safe for
// concurrent use and cannot be reopened once closed.
type Session struct {
	ID string

	fileIO   util.FileIO
	path     string
	encoding *textenc.Encoding
	sync     bool
	progress io.Writer

	state      State
	file       util.AppendFile
	opened     os.FileInfo
	counter    *util.WriteCounter
	pendingBOM bool
	lines      int
}

// NewSession prepares a session in the Unopened state. With sync set every
// line is fsynced before WriteLine returns.
func NewSession(fileIO util.FileIO, path string, enc *textenc.Encoding, sync bool) *Session {
	return &Session{
		ID:       shortuuid.New(),
		fileIO:   fileIO,
		path:     path,
		encoding: enc,
		sync:     sync,
	}
}

// progressInterval limits how often the status line is redrawn.
const progressInterval = 100 * time.Millisecond

// ReportProgress prints a status line to w while lines are written. It must be
// called before Open.
func (s *Session) ReportProgress(w io.Writer) {
	s.progress = w
}

// OpenSession creates a session and opens it.
func OpenSession(fileIO util.FileIO, path string, enc *textenc.Encoding, sync bool) (*Session, error) {
	s := NewSession(fileIO, path, enc, sync)
	if err := s.Open(); err != nil {
		return nil, err
	}
	return s, nil
}

// Open checks that the target is an existing, writable regular file and opens
// it in append mode.
func (s *Session) Open() error {
	if s.state != Unopened {
		return fmt.Errorf("cannot open session %s in state %s", s.ID, s.state)
	}

	info, err := s.fileIO.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &MissingTargetFileError{Path: s.path, Err: err}
		}
		return &FileAccessError{Path: s.path, Reason: "failed to stat file", Err: err}
	}
	if info.IsDir() {
		return &FileAccessError{Path: s.path, Reason: "path is a directory"}
	}
	if !info.Mode().IsRegular() {
		return &FileAccessError{Path: s.path, Reason: "not a regular file"}
	}
	if err := s.fileIO.CheckWritable(s.path); err != nil {
		return &FileAccessError{Path: s.path, Reason: "write permission denied", Err: err}
	}

	f, err := s.fileIO.OpenAppend(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &MissingTargetFileError{Path: s.path, Err: err}
		}
		return &FileAccessError{Path: s.path, Reason: "failed to open file for appending, it may be locked by another process", Err: err}
	}
	opened, err := f.Stat()
	if err != nil {
		util.CloseFileIgnoreError(f)
		return &FileAccessError{Path: s.path, Reason: "failed to stat opened file", Err: err}
	}

	s.file = f
	s.opened = opened
	s.counter = util.NewWriteCounter(f)
	s.counter.Progress = s.progress
	s.counter.Interval = progressInterval
	s.pendingBOM = s.encoding.HasBOM() && opened.Size() == 0
	s.state = Open

	log.Printf("Opened %s for appending (session %s, encoding %s, %d bytes present)", s.path, s.ID, s.encoding, opened.Size())
	return nil
}

// WriteLine appends line and the line ending as one write. Any failure closes
// the session.
func (s *Session) WriteLine(line string, ending format.LineEnding) error {
	if s.state != Open {
		return fmt.Errorf("failed to write to %s: %w", s.path, ErrSessionClosed)
	}

	data, err := s.encoding.Encode(line + ending.Sequence())
	if err != nil {
		s.abort()
		return &format.FormatError{
			Index: s.lines,
			Field: -1,
			Err:   fmt.Errorf("%w: %w", format.ErrUnrepresentable, err),
		}
	}
	if s.pendingBOM {
		data = append(append([]byte{}, s.encoding.BOM...), data...)
	}

	if err := s.checkTarget(); err != nil {
		s.abort()
		return s.writeError(err)
	}

	n, err := s.counter.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.abort()
		return s.writeError(err)
	}
	if s.sync {
		if err := s.file.Sync(); err != nil {
			s.abort()
			return s.writeError(fmt.Errorf("failed to sync: %w", err))
		}
	}

	s.pendingBOM = false
	s.lines++
	return nil
}

// Close syncs and releases the file handle. Closing a closed session is a no-op.
func (s *Session) Close() error {
	if s.state == Closed {
		return nil
	}
	if s.state == Unopened {
		s.state = Closed
		return nil
	}
	s.state = Closed
	s.counter.Done()

	syncErr := s.file.Sync()
	closeErr := s.file.Close()
	if err := errors.Join(syncErr, closeErr); err != nil {
		return fmt.Errorf("failed to close %s: %w", s.path, err)
	}
	return nil
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Path() string {
	return s.path
}

func (s *Session) Encoding() *textenc.Encoding {
	return s.encoding
}

// Lines returns the number of complete lines written in this session.
func (s *Session) Lines() int {
	return s.lines
}

// Bytes returns the number of bytes that reached the file, BOM included.
func (s *Session) Bytes() int64 {
	if s.counter == nil {
		return 0
	}
	return s.counter.Written
}

// checkTarget fails when the path no longer names the file that was opened.
func (s *Session) checkTarget() error {
	current, err := s.fileIO.Stat(s.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTargetReplaced, err)
	}
	if !os.SameFile(current, s.opened) {
		return ErrTargetReplaced
	}
	return nil
}

func (s *Session) writeError(err error) error {
	return &WriteError{Path: s.path, Index: s.lines, Written: s.lines, Err: err}
}

func (s *Session) abort() {
	if s.state != Open {
		return
	}
	s.state = Closed
	s.counter.Done()
	util.CloseFileIgnoreError(s.file)
	log.Printf("Session %s aborted after %d lines appended to %s", s.ID, s.lines, s.path)
}
