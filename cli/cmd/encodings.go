// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/codesphere-cloud/cs-go/pkg/io"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/codesphere-cloud/csvappend/internal/textenc"
	"github.com/codesphere-cloud/csvappend/internal/util"
)

type EncodingsCmd struct {
	cmd         *cobra.Command
	TableWriter util.TableWriter
}

func (c *EncodingsCmd) RunE(_ *cobra.Command, args []string) error {
	c.PrintEncodingsTable(textenc.All())
	return nil
}

func AddEncodingsCmd(rootCmd *cobra.Command) {
	encodings := EncodingsCmd{
		cmd: &cobra.Command{
			Use:   "encodings",
			Short: "List supported text encodings",
			Long: io.Long(`List the text encodings the append command can write.

				Encodings with a byte order mark write it only when the target file is empty.`),
			Args: cobra.ExactArgs(0),
		},
		TableWriter: util.GetTableWriter(os.Stdout),
	}
	encodings.cmd.RunE = encodings.RunE
	rootCmd.AddCommand(encodings.cmd)
}

func (c *EncodingsCmd) PrintEncodingsTable(encodings []*textenc.Encoding) {
	c.TableWriter.AppendHeader(table.Row{"Name", "Aliases", "BOM", "Description"})
	for _, e := range encodings {
		bom := ""
		if e.HasBOM() {
			bom = fmt.Sprintf("% X", e.BOM)
		}
		c.TableWriter.AppendRow(table.Row{e.Name, strings.Join(e.Aliases, ", "), bom, e.Description})
	}
	c.TableWriter.Render()
}
