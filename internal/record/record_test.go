// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package record_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/codesphere-cloud/csvappend/internal/record"
)

var _ = Describe("New", func() {
	schema := record.Schema{"id", "name", "amount"}

	It("pairs names and values by position", func() {
		rec := record.New(schema, 1, "Ada", 2.5)
		Expect(rec).To(Equal(record.Record{
			{Name: "id", Value: 1},
			{Name: "name", Value: "Ada"},
			{Name: "amount", Value: 2.5},
		}))
		Expect(schema.Width()).To(Equal(3))
	})

	It("fills missing values with nil", func() {
		rec := record.New(schema, 1)
		Expect(rec).To(HaveLen(3))
		Expect(rec.Values()).To(Equal([]any{1, nil, nil}))
	})

	It("keeps extra values without a name", func() {
		rec := record.New(schema, 1, "Ada", 2.5, true)
		Expect(rec).To(HaveLen(4))
		Expect(rec[3]).To(Equal(record.Field{Value: true}))
	})
})
