/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package cmd

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tenant index command", func() {
	It("Writes the name of the tenant index", func() {
		buffer := &bytes.Buffer{}
		command := NewTenantIndexCommand()
		command.SetOut(buffer)
		command.SetErr(buffer)
		command.SetArgs([]string{
			"--tenant", "sales",
		})
		err := command.Execute()
		Expect(err).ToNot(HaveOccurred())
		Expect(buffer.String()).To(Equal(".kibana_2258376375_sales\n"))
	})

	It("Honours the index flag", func() {
		buffer := &bytes.Buffer{}
		command := NewTenantIndexCommand()
		command.SetOut(buffer)
		command.SetErr(buffer)
		command.SetArgs([]string{
			"--index", ".opensearch",
			"--tenant", "ops",
		})
		err := command.Execute()
		Expect(err).ToNot(HaveOccurred())
		Expect(buffer.String()).To(Equal(".opensearch_3089275291_ops\n"))
	})

	It("Fails without a tenant", func() {
		command := NewTenantIndexCommand()
		command.SetOut(&bytes.Buffer{})
		command.SetErr(&bytes.Buffer{})
		command.SetArgs([]string{})
		err := command.Execute()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("tenant is mandatory"))
	})
})
