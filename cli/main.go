// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/codesphere-cloud/csvappend/cli/cmd"
)

func main() {
	cmd.Execute()
}
