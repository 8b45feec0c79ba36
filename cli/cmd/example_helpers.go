package cmd

import (
	"strings"

	"github.com/codesphere-cloud/cs-go/pkg/io"
)

const binaryName = "csvappend"

// formatExamples renders examples like io.FormatExampleCommands, but always
// with the installed binary name so generated docs do not show go-build paths.
func formatExamples(cmdName string, examples []io.Example) string {
	lines := make([]string, 0, len(examples))
	for _, ex := range examples {
		var b strings.Builder
		if ex.Desc != "" {
			b.WriteString("# " + ex.Desc + "\n")
		}
		b.WriteString("$ " + binaryName)
		if cmdName != "" {
			b.WriteString(" " + cmdName)
		}
		if ex.Cmd != "" {
			b.WriteString(" " + ex.Cmd)
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n\n")
}
