// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"github.com/jedib0t/go-pretty/v6/table"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	"github.com/codesphere-cloud/csvappend/cli/cmd"
	"github.com/codesphere-cloud/csvappend/internal/textenc"
	"github.com/codesphere-cloud/csvappend/internal/util"
)

var _ = Describe("EncodingsCmd", func() {
	var (
		mockTableWriter *util.MockTableWriter
		c               cmd.EncodingsCmd
	)

	BeforeEach(func() {
		mockTableWriter = util.NewMockTableWriter(GinkgoT())
		c = cmd.EncodingsCmd{TableWriter: mockTableWriter}
		mockTableWriter.EXPECT().AppendHeader(table.Row{"Name", "Aliases", "BOM", "Description"})
		mockTableWriter.EXPECT().Render().Return("")
	})

	It("shows the byte order mark of an encoding", func() {
		enc, err := textenc.Lookup("utf-8-sig")
		Expect(err).NotTo(HaveOccurred())
		mockTableWriter.EXPECT().AppendRow(table.Row{"utf-8-sig", "utf-8-bom, utf8-bom", "EF BB BF", "Unicode UTF-8 with byte order mark"})

		c.PrintEncodingsTable([]*textenc.Encoding{enc})
	})

	It("leaves the BOM column empty for plain encodings", func() {
		enc, err := textenc.Lookup("latin1")
		Expect(err).NotTo(HaveOccurred())
		mockTableWriter.EXPECT().AppendRow(table.Row{"latin-1", "latin1, iso-8859-1, iso8859-1, cp28591", "", "ISO 8859-1 Western European"})

		c.PrintEncodingsTable([]*textenc.Encoding{enc})
	})

	It("lists every supported encoding", func() {
		mockTableWriter.EXPECT().AppendRow(mock.Anything).Times(len(textenc.All()))

		Expect(c.RunE(nil, nil)).To(Succeed())
	})
})
