/*
Copyright © 2025 Codesphere Inc.
*/
package cmd

import (
	"fmt"

	"github.com/codesphere-cloud/csvappend/internal/version"
	"github.com/spf13/cobra"
)

type VersionCmd struct {
	cmd *cobra.Command
}

func (c *VersionCmd) RunE(_ *cobra.Command, args []string) error {
	fmt.Printf("csvappend version: %s\n", version.Version())
	fmt.Printf("Commit: %s\n", version.Commit())
	fmt.Printf("Build Date: %s\n", version.BuildDate())
	fmt.Printf("Platform: %s\n", version.Platform())

	return nil
}

func AddVersionCmd(rootCmd *cobra.Command) {
	version := VersionCmd{
		cmd: &cobra.Command{
			Use:   "version",
			Short: "Print version",
			Long:  `Print current version of csvappend.`,
		},
	}
	rootCmd.AddCommand(version.cmd)
	version.cmd.RunE = version.RunE
}
