// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package appender_test

import (
	"bytes"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/codesphere-cloud/csvappend/internal/appender"
	"github.com/codesphere-cloud/csvappend/internal/format"
	"github.com/codesphere-cloud/csvappend/internal/record"
	"github.com/codesphere-cloud/csvappend/internal/source"
	"github.com/codesphere-cloud/csvappend/internal/util"
)

var _ = Describe("Appender", func() {
	var (
		fileIO util.FileIO
		cfg    appender.Config
		schema record.Schema
	)

	BeforeEach(func() {
		fileIO = util.NewFilesystemWriter()
		schema = record.Schema{"a", "b", "c"}
		cfg = appender.Config{
			Schema:   schema,
			Format:   format.DefaultOptions(),
			Encoding: encoding("utf-8"),
		}
	})

	It("appends formatted records and reports the result", func() {
		cfg.Path = targetFile("a,b,c\n1,2,3\n")
		a, err := appender.New(fileIO, cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(a.ProcessRecord(record.New(schema, 4, 5, 6))).To(Succeed())
		Expect(a.ProcessRecord(record.New(schema, "x,y", nil, true))).To(Succeed())
		res, err := a.Close()
		Expect(err).NotTo(HaveOccurred())

		Expect(readFile(cfg.Path)).To(Equal("a,b,c\n1,2,3\n4,5,6\n\"x,y\",,true\n"))
		Expect(res.Records).To(Equal(2))
		Expect(res.Bytes).To(Equal(int64(len("4,5,6\n\"x,y\",,true\n"))))
		Expect(res.Path).To(Equal(cfg.Path))
		Expect(res.Encoding).To(Equal("utf-8"))
		Expect(res.LineEnding).To(Equal("lf"))
		Expect(res.SessionID).To(Equal(a.Session().ID))
	})

	It("defaults to UTF-8 when no encoding is configured", func() {
		cfg.Path = targetFile("")
		cfg.Encoding = nil
		a, err := appender.New(fileIO, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Session().Encoding().Name).To(Equal("utf-8"))
		_, err = a.Close()
		Expect(err).NotTo(HaveOccurred())
	})

	It("requires a path", func() {
		_, err := appender.New(fileIO, cfg)
		Expect(err).To(MatchError("enter a filename"))
	})

	It("rejects invalid format options before touching the file", func() {
		cfg.Path = filepath.Join(GinkgoT().TempDir(), "missing.csv")
		cfg.Format.Delimiter = '\n'
		_, err := appender.New(fileIO, cfg)
		Expect(err).To(MatchError(ContainSubstring("invalid format options")))
	})

	It("aborts the session on a record that cannot be formatted", func() {
		cfg.Path = targetFile("")
		a, err := appender.New(fileIO, cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(a.ProcessRecord(record.New(schema, 1, 2, 3))).To(Succeed())
		err = a.ProcessRecord(record.New(schema, 1, 2, 3, 4))
		Expect(a.ProcessRecord(record.New(schema, 7, 8, 9))).To(MatchError(err))

		var fe *format.FormatError
		Expect(errors.As(err, &fe)).To(BeTrue())
		Expect(fe.Index).To(Equal(1))
		Expect(errors.Is(err, format.ErrFieldCount)).To(BeTrue())
		Expect(a.Session().State()).To(Equal(appender.Closed))

		res, err := a.Close()
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Records).To(Equal(1))
		Expect(readFile(cfg.Path)).To(Equal("1,2,3\n"))
	})

	It("keeps the close error of an aborted session", func() {
		cfg.Path = targetFile("")
		syncErr := errors.New("sync failed")
		faulty := &faultyFileIO{FilesystemWriter: util.NewFilesystemWriter(), syncErr: syncErr}
		a, err := appender.New(faulty, cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(a.ProcessRecord(record.New(schema, 1, 2, 3))).To(Succeed())
		err = a.ProcessRecord(record.New(schema, 1, 2, 3, 4))

		var fe *format.FormatError
		Expect(errors.As(err, &fe)).To(BeTrue())
		Expect(fe.Index).To(Equal(1))
		Expect(errors.Is(err, syncErr)).To(BeTrue())
		Expect(a.ProcessRecord(record.New(schema, 7, 8, 9))).To(MatchError(err))
	})

	It("does not report success when closing after a failed record", func() {
		var logs bytes.Buffer
		log.SetOutput(&logs)
		DeferCleanup(func() { log.SetOutput(io.Discard) })

		cfg.Path = targetFile("")
		a, err := appender.New(fileIO, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.ProcessRecord(record.New(schema, 1, 2, 3, 4))).NotTo(Succeed())

		_, err = a.Close()
		Expect(err).NotTo(HaveOccurred())
		Expect(logs.String()).NotTo(ContainSubstring("records were appended"))
	})

	It("logs the summary after a clean close", func() {
		var logs bytes.Buffer
		log.SetOutput(&logs)
		DeferCleanup(func() { log.SetOutput(io.Discard) })

		cfg.Path = targetFile("")
		a, err := appender.New(fileIO, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.ProcessRecord(record.New(schema, 1, 2, 3))).To(Succeed())

		_, err = a.Close()
		Expect(err).NotTo(HaveOccurred())
		Expect(logs.String()).To(ContainSubstring("1 records were appended to " + cfg.Path))
	})

	It("reports progress when asked to", func() {
		var progress bytes.Buffer
		cfg.Path = targetFile("")
		cfg.Progress = &progress
		a, err := appender.New(fileIO, cfg)
		Expect(err).NotTo(HaveOccurred())

		time.Sleep(150 * time.Millisecond)
		Expect(a.ProcessRecord(record.New(schema, 1, 2, 3))).To(Succeed())
		_, err = a.Close()
		Expect(err).NotTo(HaveOccurred())

		Expect(progress.String()).To(ContainSubstring("Appending... 6 B written"))
		Expect(progress.String()).To(HaveSuffix("\n"))
		Expect(readFile(cfg.Path)).To(Equal("1,2,3\n"))
	})

	Describe("AppendAll", func() {
		It("writes JSON numbers exactly as they appear in the input", func() {
			cfg.Path = targetFile("id,amount,big\n")
			cfg.Schema = nil
			src, err := source.NewJSONLReader(strings.NewReader(`{"id":12345678901234567890,"amount":1.10,"big":1e400}`+"\n"+`{"id":7,"amount":-0.0,"big":null}`), nil)
			Expect(err).NotTo(HaveOccurred())

			res, err := appender.AppendAll(fileIO, cfg, src)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Records).To(Equal(2))
			Expect(readFile(cfg.Path)).To(Equal("id,amount,big\n12345678901234567890,1.10,1e400\n7,-0.0,\n"))
		})

		It("appends a whole stream with CRLF line endings", func() {
			cfg.Path = targetFile("a;b\r\n")
			cfg.Schema = nil
			cfg.Format.Delimiter = ';'
			cfg.Format.LineEnding = format.CRLF
			src, err := source.NewCSVReader(strings.NewReader("a,b\n1,x;y\n2,z\n"), ',')
			Expect(err).NotTo(HaveOccurred())

			res, err := appender.AppendAll(fileIO, cfg, src)
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Records).To(Equal(2))
			Expect(readFile(cfg.Path)).To(Equal("a;b\r\n1;\"x;y\"\r\n2;z\r\n"))
		})

		It("reports the failing record index and the lines written on a write error", func() {
			cfg.Path = targetFile("a,b,c\n")
			faulty := &faultyFileIO{FilesystemWriter: util.NewFilesystemWriter(), failOnWrite: 2, err: errors.New("disk full")}
			src, err := source.NewCSVReader(strings.NewReader("a,b,c\n1,2,3\n4,5,6\n7,8,9\n"), ',')
			Expect(err).NotTo(HaveOccurred())

			res, err := appender.AppendAll(faulty, cfg, src)

			var we *appender.WriteError
			Expect(errors.As(err, &we)).To(BeTrue())
			Expect(we.Index).To(Equal(1))
			Expect(we.Written).To(Equal(1))
			Expect(res.Records).To(Equal(1))
			Expect(readFile(cfg.Path)).To(Equal("a,b,c\n1,2,3\n"))
		})

		It("stops at the first record of the wrong width", func() {
			cfg.Path = targetFile("")
			src, err := source.NewCSVReader(strings.NewReader("a,b,c\n1,2,3\n4,5,6\n7,8\n10,11,12\n"), ',')
			Expect(err).NotTo(HaveOccurred())

			res, err := appender.AppendAll(fileIO, cfg, src)

			var fe *format.FormatError
			Expect(errors.As(err, &fe)).To(BeTrue())
			Expect(fe.Index).To(Equal(2))
			Expect(res.Records).To(Equal(2))
			Expect(readFile(cfg.Path)).To(Equal("1,2,3\n4,5,6\n"))
		})

		It("fails with MissingTargetFileError before reading any input", func() {
			cfg.Path = filepath.Join(GinkgoT().TempDir(), "missing.csv")
			src, err := source.NewJSONLReader(strings.NewReader(`{"a":1,"b":2,"c":3}`), nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = appender.AppendAll(fileIO, cfg, src)

			var missing *appender.MissingTargetFileError
			Expect(errors.As(err, &missing)).To(BeTrue())
		})

		It("surfaces input errors with the record index", func() {
			cfg.Path = targetFile("")
			cfg.Schema = nil
			src, err := source.NewJSONLReader(strings.NewReader("{\"a\":1}\nnot json\n"), nil)
			Expect(err).NotTo(HaveOccurred())

			res, err := appender.AppendAll(fileIO, cfg, src)
			Expect(err).To(MatchError(ContainSubstring("failed to read record 1")))
			Expect(res.Records).To(Equal(1))
			Expect(readFile(cfg.Path)).To(Equal("1\n"))
		})

		It("leaves the file untouched for an empty stream", func() {
			cfg.Path = targetFile("a,b,c\n")
			src, err := source.NewCSVReader(strings.NewReader("a,b,c\n"), ',')
			Expect(err).NotTo(HaveOccurred())

			res, err := appender.AppendAll(fileIO, cfg, src)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Records).To(Equal(0))
			Expect(readFile(cfg.Path)).To(Equal("a,b,c\n"))
		})

		It("rejects nested JSON values", func() {
			cfg.Path = targetFile("")
			cfg.Schema = nil
			src, err := source.NewJSONLReader(strings.NewReader(`{"id":1,"tags":["x"]}`), nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = appender.AppendAll(fileIO, cfg, src)
			Expect(errors.Is(err, format.ErrUnsupportedValue)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring("record 0: field 1 (tags)")))
		})
	})
})
