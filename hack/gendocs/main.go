// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log"

	csvappend "github.com/codesphere-cloud/csvappend/cli/cmd"
	"github.com/spf13/cobra/doc"
)

func main() {
	root := csvappend.GetRootCmd()
	root.DisableAutoGenTag = true

	err := doc.GenMarkdownTree(root, "docs")
	if err != nil {
		log.Fatal(err)
	}
}
