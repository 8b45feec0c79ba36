// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	stdio "io"
	"log"
	"os"

	"github.com/codesphere-cloud/cs-go/pkg/io"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/codesphere-cloud/csvappend/internal/appender"
	"github.com/codesphere-cloud/csvappend/internal/config"
	"github.com/codesphere-cloud/csvappend/internal/env"
	"github.com/codesphere-cloud/csvappend/internal/format"
	"github.com/codesphere-cloud/csvappend/internal/source"
	"github.com/codesphere-cloud/csvappend/internal/util"
)

type AppendCmd struct {
	cmd         *cobra.Command
	Opts        AppendOpts
	Env         env.Env
	FileIO      util.FileIO
	TableWriter util.TableWriter
	Stdin       stdio.Reader
	ProgressOut stdio.Writer
}

// AppendOpts holds the flag values. Empty strings mean "not set" so the
// settings file and environment can supply the value.
type AppendOpts struct {
	*GlobalOptions
	Target         string
	Delimiter      string
	Quote          string
	Quoting        string
	Encoding       string
	LineEnding     string
	Sync           bool
	Progress       bool
	Input          string
	InputFormat    string
	InputDelimiter string
	Fields         []string
}

func (c *AppendCmd) RunE(_ *cobra.Command, args []string) error {
	cfg, err := c.LoadConfig()
	if err != nil {
		return err
	}
	appendCfg, err := cfg.AppenderConfig()
	if err != nil {
		return err
	}
	if c.Opts.Progress {
		appendCfg.Progress = c.ProgressOut
	}

	in, err := c.openInput()
	if err != nil {
		return err
	}
	defer util.CloseFileIgnoreError(in)

	inputDelimiter := ','
	if c.Opts.InputDelimiter != "" {
		inputDelimiter, err = format.ParseDelimiter(c.Opts.InputDelimiter)
		if err != nil {
			return fmt.Errorf("invalid input delimiter: %w", err)
		}
	}
	src, err := source.New(c.Opts.InputFormat, in, inputDelimiter, c.Opts.Fields)
	if err != nil {
		return fmt.Errorf("failed to read input %s: %w", c.Opts.Input, err)
	}

	res, err := appender.AppendAll(c.FileIO, appendCfg, src)
	if err != nil {
		log.Printf("%d records were appended to %s before the failure", res.Records, appendCfg.Path)
		return fmt.Errorf("failed to append records: %w", err)
	}

	c.PrintSummary(res)
	return nil
}

func AddAppendCmd(rootCmd *cobra.Command, opts *GlobalOptions) {
	appendCmd := AppendCmd{
		cmd: &cobra.Command{
			Use:   "append",
			Short: "Append records to an existing file",
			Long: io.Long(`Append records read from a CSV or JSON Lines input to an existing file.

				The target file must already exist; it is never created or truncated and no header
				row is written. The input schema is assumed to match the target's columns.
				Settings are read from the settings file, then CSVAPPEND_TARGET, then flags.`),
			Example: formatExamples("append", []io.Example{
				{Cmd: "--target out.csv < rows.csv", Desc: "Append the rows of a CSV file read from stdin"},
				{Cmd: "--target out.txt --delimiter ';' --encoding windows-1252 --line-ending crlf --input rows.csv", Desc: "Append to a semicolon separated Windows file"},
				{Cmd: "--target out.csv --input-format jsonl --fields id,name,amount --input rows.jsonl", Desc: "Append JSON Lines records in a fixed column order"},
				{Cmd: "--config settings.yaml --input rows.csv", Desc: "Use a settings file"},
			}),
			Args: cobra.ExactArgs(0),
		},
		Opts:   AppendOpts{GlobalOptions: opts},
		Env:    env.NewEnv(),
		FileIO:      util.NewFilesystemWriter(),
		Stdin:       os.Stdin,
		ProgressOut: os.Stderr,
	}
	appendCmd.TableWriter = util.GetTableWriter(os.Stdout)

	flags := appendCmd.cmd.Flags()
	flags.StringVarP(&appendCmd.Opts.Target, "target", "t", "", "Path of the existing file to append to")
	flags.StringVarP(&appendCmd.Opts.Delimiter, "delimiter", "d", "", "Field delimiter, a single character or 'tab' (default ,)")
	flags.StringVar(&appendCmd.Opts.Quote, "quote", "", "Quote character (default \")")
	flags.StringVarP(&appendCmd.Opts.Quoting, "quoting", "q", "", "Quoting policy: needed, always, nonnumeric or none (default needed)")
	flags.StringVarP(&appendCmd.Opts.Encoding, "encoding", "e", "", "Text encoding of the target file, see 'csvappend encodings' (default utf-8)")
	flags.StringVarP(&appendCmd.Opts.LineEnding, "line-ending", "l", "", "Line ending: lf, crlf or cr (default lf)")
	flags.BoolVar(&appendCmd.Opts.Sync, "sync", false, "Flush every line to stable storage before continuing")
	flags.BoolVar(&appendCmd.Opts.Progress, "progress", false, "Print the number of bytes written to stderr while appending")
	flags.StringVarP(&appendCmd.Opts.Input, "input", "i", "-", "Input file, - reads stdin")
	flags.StringVarP(&appendCmd.Opts.InputFormat, "input-format", "f", source.FormatCSV, "Input format: csv or jsonl")
	flags.StringVar(&appendCmd.Opts.InputDelimiter, "input-delimiter", "", "Field delimiter of csv input (default ,)")
	flags.StringSliceVar(&appendCmd.Opts.Fields, "fields", nil, "Field order of jsonl input (default: keys of the first object)")

	rootCmd.AddCommand(appendCmd.cmd)
	appendCmd.cmd.RunE = appendCmd.RunE
}

// LoadConfig merges the settings file, the environment and the flags, in
// increasing order of precedence.
func (c *AppendCmd) LoadConfig() (*config.Config, error) {
	cfg := config.Default()

	configFile := ""
	if c.Opts.GlobalOptions != nil {
		configFile = c.Opts.ConfigFile
	}
	if configFile == "" {
		configFile = c.Env.GetConfigFile()
	}
	if configFile != "" {
		var err error
		cfg, err = config.Load(c.FileIO, configFile)
		if err != nil {
			return nil, err
		}
	}

	if target := c.Env.GetTarget(); target != "" {
		cfg.Target = target
	}

	overrides := []struct {
		value string
		dst   *string
	}{
		{c.Opts.Target, &cfg.Target},
		{c.Opts.Delimiter, &cfg.Delimiter},
		{c.Opts.Quote, &cfg.Quote},
		{c.Opts.Quoting, &cfg.Quoting},
		{c.Opts.Encoding, &cfg.Encoding},
		{c.Opts.LineEnding, &cfg.LineEnding},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.dst = o.value
		}
	}
	if c.Opts.Sync {
		cfg.Sync = true
	}
	return cfg, nil
}

func (c *AppendCmd) openInput() (stdio.ReadCloser, error) {
	if c.Opts.Input == "" || c.Opts.Input == "-" {
		return stdio.NopCloser(c.Stdin), nil
	}
	f, err := c.FileIO.Open(util.ExpandPath(c.Opts.Input))
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", c.Opts.Input, err)
	}
	return f, nil
}

func (c *AppendCmd) PrintSummary(res appender.Result) {
	c.TableWriter.AppendHeader(table.Row{"Session", "File", "Records", "Bytes", "Encoding", "Line Ending"})
	c.TableWriter.AppendRow(table.Row{res.SessionID, res.Path, res.Records, util.ByteCountToHumanReadable(res.Bytes), res.Encoding, res.LineEnding})
	c.TableWriter.Render()
}
