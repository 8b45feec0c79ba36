// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	"github.com/codesphere-cloud/csvappend/cli/cmd"
	"github.com/codesphere-cloud/csvappend/internal/appender"
	"github.com/codesphere-cloud/csvappend/internal/env"
	"github.com/codesphere-cloud/csvappend/internal/util"
)

var _ = Describe("AppendCmd", func() {
	var (
		mockEnv         *env.MockEnv
		mockTableWriter *util.MockTableWriter
		c               cmd.AppendCmd
		dir             string
		target          string
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		target = filepath.Join(dir, "out.csv")
		Expect(os.WriteFile(target, []byte("id,name\n"), 0644)).To(Succeed())

		mockEnv = env.NewMockEnv(GinkgoT())
		mockTableWriter = util.NewMockTableWriter(GinkgoT())
		c = cmd.AppendCmd{
			Opts: cmd.AppendOpts{
				GlobalOptions: &cmd.GlobalOptions{},
				Input:         "-",
				InputFormat:   "csv",
			},
			Env:         mockEnv,
			FileIO:      util.NewFilesystemWriter(),
			TableWriter: mockTableWriter,
		}
	})

	readTarget := func() string {
		content, err := os.ReadFile(target)
		Expect(err).NotTo(HaveOccurred())
		return string(content)
	}

	Describe("LoadConfig", func() {
		It("uses the defaults when nothing is set", func() {
			mockEnv.EXPECT().GetConfigFile().Return("")
			mockEnv.EXPECT().GetTarget().Return("")

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Target).To(BeEmpty())
			Expect(cfg.Delimiter).To(Equal(","))
			Expect(cfg.Encoding).To(Equal("utf-8"))
		})

		It("lets the environment override the settings file and flags override both", func() {
			settings := filepath.Join(dir, "settings.yaml")
			Expect(os.WriteFile(settings, []byte("target: from-file.csv\ndelimiter: ';'\nencoding: latin-1\n"), 0644)).To(Succeed())
			c.Opts.ConfigFile = settings
			c.Opts.Encoding = "cp1252"
			c.Opts.Sync = true
			mockEnv.EXPECT().GetTarget().Return("from-env.csv")

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Target).To(Equal("from-env.csv"))
			Expect(cfg.Delimiter).To(Equal(";"))
			Expect(cfg.Encoding).To(Equal("cp1252"))
			Expect(cfg.Sync).To(BeTrue())

			c.Opts.Target = "from-flag.csv"
			c.Opts.Quote = "'"
			cfg, err = c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Target).To(Equal("from-flag.csv"))
			Expect(cfg.Quote).To(Equal("'"))
		})

		It("reads the settings file named by the environment", func() {
			settings := filepath.Join(dir, "settings.yaml")
			Expect(os.WriteFile(settings, []byte("lineEnding: crlf\n"), 0644)).To(Succeed())
			mockEnv.EXPECT().GetConfigFile().Return(settings)
			mockEnv.EXPECT().GetTarget().Return("")

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.LineEnding).To(Equal("crlf"))
		})

		It("fails when the settings file is missing", func() {
			c.Opts.ConfigFile = filepath.Join(dir, "missing.yaml")

			_, err := c.LoadConfig()
			Expect(err).To(MatchError(ContainSubstring("failed to open config file")))
		})
	})

	Describe("RunE", func() {
		BeforeEach(func() {
			mockEnv.EXPECT().GetConfigFile().Return("").Maybe()
			mockEnv.EXPECT().GetTarget().Return("").Maybe()
		})

		It("appends the records read from stdin and prints a summary", func() {
			c.Opts.Target = target
			c.Stdin = strings.NewReader("id,name\n1,Ada\n2,\"Lovelace, A.\"\n")
			mockTableWriter.EXPECT().AppendHeader(table.Row{"Session", "File", "Records", "Bytes", "Encoding", "Line Ending"})
			mockTableWriter.EXPECT().AppendRow(mock.MatchedBy(func(row table.Row) bool {
				return row[1] == target && row[2] == 2 && row[4] == "utf-8" && row[5] == "lf"
			}))
			mockTableWriter.EXPECT().Render().Return("")

			Expect(c.RunE(nil, nil)).To(Succeed())
			Expect(readTarget()).To(Equal("id,name\n1,Ada\n2,\"Lovelace, A.\"\n"))
		})

		It("reads JSON Lines from an input file", func() {
			input := filepath.Join(dir, "rows.jsonl")
			Expect(os.WriteFile(input, []byte(`{"name":"Ada","id":1}`+"\n"+`{"id":2}`+"\n"), 0644)).To(Succeed())
			c.Opts.Target = target
			c.Opts.Input = input
			c.Opts.InputFormat = "jsonl"
			c.Opts.Fields = []string{"id", "name"}
			c.Opts.Delimiter = ";"
			c.Opts.LineEnding = "crlf"
			mockTableWriter.EXPECT().AppendHeader(mock.Anything)
			mockTableWriter.EXPECT().AppendRow(mock.Anything)
			mockTableWriter.EXPECT().Render().Return("")

			Expect(c.RunE(nil, nil)).To(Succeed())
			Expect(readTarget()).To(Equal("id,name\n1;Ada\r\n2;\r\n"))
		})

		It("reads CSV input with a custom delimiter", func() {
			c.Opts.Target = target
			c.Opts.InputDelimiter = "tab"
			c.Stdin = strings.NewReader("id\tname\n3\tGrace\n")
			mockTableWriter.EXPECT().AppendHeader(mock.Anything)
			mockTableWriter.EXPECT().AppendRow(mock.Anything)
			mockTableWriter.EXPECT().Render().Return("")

			Expect(c.RunE(nil, nil)).To(Succeed())
			Expect(readTarget()).To(Equal("id,name\n3,Grace\n"))
		})

		It("uses the quote character given on the command line", func() {
			c.Opts.Target = target
			c.Opts.Quote = "'"
			c.Opts.Quoting = "always"
			c.Stdin = strings.NewReader("id,name\n1,O'Brien\n")
			mockTableWriter.EXPECT().AppendHeader(mock.Anything)
			mockTableWriter.EXPECT().AppendRow(mock.Anything)
			mockTableWriter.EXPECT().Render().Return("")

			Expect(c.RunE(nil, nil)).To(Succeed())
			Expect(readTarget()).To(Equal("id,name\n'1','O''Brien'\n"))
		})

		It("fails without creating a missing target", func() {
			missing := filepath.Join(dir, "missing.csv")
			c.Opts.Target = missing
			c.Stdin = strings.NewReader("id,name\n1,Ada\n")

			err := c.RunE(nil, nil)
			var missingErr *appender.MissingTargetFileError
			Expect(errors.As(err, &missingErr)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring("does not exist")))
			_, statErr := os.Stat(missing)
			Expect(os.IsNotExist(statErr)).To(BeTrue())
		})

		It("rejects an invalid configuration", func() {
			c.Opts.Target = target
			c.Opts.Quoting = "sometimes"

			err := c.RunE(nil, nil)
			Expect(err).To(MatchError(ContainSubstring("invalid configuration")))
			Expect(readTarget()).To(Equal("id,name\n"))
		})

		It("rejects an unknown input format", func() {
			c.Opts.Target = target
			c.Opts.InputFormat = "xml"
			c.Stdin = strings.NewReader("")

			err := c.RunE(nil, nil)
			Expect(err).To(MatchError(ContainSubstring("unknown input format")))
		})

		It("rejects an invalid input delimiter", func() {
			c.Opts.Target = target
			c.Opts.InputDelimiter = ";;"
			c.Stdin = strings.NewReader("")

			err := c.RunE(nil, nil)
			Expect(err).To(MatchError(ContainSubstring("invalid input delimiter")))
		})

		It("keeps the records written before a formatting failure", func() {
			c.Opts.Target = target
			c.Opts.Quoting = "none"
			c.Stdin = strings.NewReader("id,name\n1,Ada\n2,\"a,b\"\n3,Grace\n")

			err := c.RunE(nil, nil)
			Expect(err).To(MatchError(ContainSubstring("failed to append records")))
			Expect(err).To(MatchError(ContainSubstring("record 1")))
			Expect(readTarget()).To(Equal("id,name\n1,Ada\n"))
		})
	})

	It("registers its flags", func() {
		appendCmd, _, err := cmd.GetRootCmd().Find([]string{"append"})
		Expect(err).NotTo(HaveOccurred())
		for _, name := range []string{"target", "delimiter", "quote", "quoting", "encoding", "line-ending", "sync", "progress", "input", "input-format", "input-delimiter", "fields"} {
			Expect(appendCmd.Flags().Lookup(name)).NotTo(BeNil(), name)
		}
		Expect(appendCmd.Flags().Lookup("input").DefValue).To(Equal("-"))
		Expect(appendCmd.Flags().Lookup("input-format").DefValue).To(Equal("csv"))
	})
})
