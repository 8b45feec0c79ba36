// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package appender

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/codesphere-cloud/csvappend/internal/format"
	"github.com/codesphere-cloud/csvappend/internal/record"
	"github.com/codesphere-cloud/csvappend/internal/source"
	"github.com/codesphere-cloud/csvappend/internal/textenc"
	"github.com/codesphere-cloud/csvappend/internal/util"
)

type Config struct {
	Path     string
	Schema   record.Schema
	Format   format.Options
	Encoding *textenc.Encoding
	Sync     bool
	// Progress receives a status line while records are written. Nil disables it.
	Progress io.Writer
}

// Result summarizes a finished session.
type Result struct {
	SessionID  string
	Path       string
	Records    int
	Bytes      int64
	Encoding   string
	LineEnding string
}

// Appender formats records and appends them through one session. The first
// error aborts the session; every later call returns that same error.
type Appender struct {
	session   *Session
	formatter *format.Formatter
	ending    format.LineEnding
	index     int
	err       error
}

func New(fileIO util.FileIO, cfg Config) (*Appender, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("enter a filename")
	}
	enc := cfg.Encoding
	if enc == nil {
		var err error
		enc, err = textenc.Lookup(textenc.Default)
		if err != nil {
			return nil, err
		}
	}
	formatter, err := format.NewFormatter(cfg.Schema, cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid format options: %w", err)
	}

	session := NewSession(fileIO, cfg.Path, enc, cfg.Sync)
	if cfg.Progress != nil {
		session.ReportProgress(cfg.Progress)
	}
	if err := session.Open(); err != nil {
		return nil, err
	}
	return &Appender{
		session:   session,
		formatter: formatter,
		ending:    cfg.Format.LineEnding,
	}, nil
}

// ProcessRecord formats rec and appends it as one line.
func (a *Appender) ProcessRecord(rec record.Record) error {
	if a.err != nil {
		return a.err
	}

	line, err := a.formatter.Format(rec)
	if err == nil {
		err = a.session.WriteLine(line, a.ending)
	}
	if err != nil {
		a.fail(err)
		return a.err
	}
	a.index++
	return nil
}

// Close ends the session. The result is valid even after a failed record and
// reports what actually landed in the file.
func (a *Appender) Close() (Result, error) {
	err := a.session.Close()
	res := a.Result()
	if err == nil && a.err == nil {
		log.Printf("Session %s: %d records were appended to %s (%s)", res.SessionID, res.Records, res.Path, util.ByteCountToHumanReadable(res.Bytes))
	}
	return res, err
}

func (a *Appender) Result() Result {
	return Result{
		SessionID:  a.session.ID,
		Path:       a.session.Path(),
		Records:    a.session.Lines(),
		Bytes:      a.session.Bytes(),
		Encoding:   a.session.Encoding().Name,
		LineEnding: a.ending.String(),
	}
}

func (a *Appender) Session() *Session {
	return a.session
}

func (a *Appender) fail(err error) {
	var fe *format.FormatError
	if errors.As(err, &fe) {
		fe.Index = a.index
	}
	var we *WriteError
	if errors.As(err, &we) {
		we.Index = a.index
	}
	// No record is ever skipped.
	if closeErr := a.session.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	a.err = err
}

// AppendAll appends every record of src to the configured target. The schema
// of src is used when cfg.Schema is empty.
func AppendAll(fileIO util.FileIO, cfg Config, src source.Reader) (Result, error) {
	if len(cfg.Schema) == 0 {
		cfg.Schema = src.Schema()
	}
	a, err := New(fileIO, cfg)
	if err != nil {
		return Result{}, err
	}

	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			a.fail(fmt.Errorf("failed to read record %d: %w", a.index, err))
			return a.Result(), a.err
		}
		if err := a.ProcessRecord(rec); err != nil {
			return a.Result(), err
		}
	}
	return a.Close()
}
