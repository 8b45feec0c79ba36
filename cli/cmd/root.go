// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"log"
	"os"

	"github.com/codesphere-cloud/cs-go/pkg/io"
	"github.com/spf13/cobra"
)

type GlobalOptions struct {
	ConfigFile string
}

// GetRootCmd adds all child commands to the root command and sets flags appropriately.
func GetRootCmd() *cobra.Command {
	opts := GlobalOptions{}
	rootCmd := &cobra.Command{
		Use:   "csvappend",
		Short: "Append records to an existing CSV file",
		Long: io.Long(`Append records to an existing CSV file

			Records are appended to a file that already exists. The file is never created,
			no header row is written and the existing content is never read or rewritten.
			Delimiter, quoting, text encoding and line endings are configurable.`),
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "Path to a YAML settings file (env CSVAPPEND_CONFIG)")

	AddVersionCmd(rootCmd)
	AddAppendCmd(rootCmd, &opts)
	AddEncodingsCmd(rootCmd)

	return rootCmd
}

// Execute executes the root command. This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	//Disable printing timestamps on log lines
	log.SetFlags(0)

	err := GetRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
