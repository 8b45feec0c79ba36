package util

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

type TableWriter interface {
	AppendHeader(row table.Row, configs ...table.RowConfig)
	AppendRow(row table.Row, configs ...table.RowConfig)
	Render() string
}

func GetTableWriter(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleDefault)
	t.SetOutputMirror(out)
	return t
}
