/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package config

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Loader", func() {
	It("Fails if logger is not set", func() {
		config, err := NewLoader().
			Build()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("logger is mandatory"))
		Expect(config).To(BeNil())
	})

	It("Returns the defaults when there is no document", func() {
		config, err := NewLoader().
			SetLogger(logger).
			Build()
		Expect(err).ToNot(HaveOccurred())
		Expect(config.MultitenancyEnabled).To(BeTrue())
		Expect(config.ServerUsername).To(Equal("kibanaserver"))
		Expect(config.IndexName).To(Equal(".kibana"))
	})

	It("Overrides only the values present in the document", func() {
		config, err := NewLoader().
			SetLogger(logger).
			SetData([]byte("multitenancy_enabled: false\n")).
			Build()
		Expect(err).ToNot(HaveOccurred())
		Expect(config.MultitenancyEnabled).To(BeFalse())
		Expect(config.ServerUsername).To(Equal("kibanaserver"))
		Expect(config.IndexName).To(Equal(".kibana"))
	})

	It("Loads the document from a file", func() {
		file, err := os.CreateTemp("", "config-*.yaml")
		Expect(err).ToNot(HaveOccurred())
		defer func() {
			err := os.Remove(file.Name())
			Expect(err).ToNot(HaveOccurred())
		}()
		_, err = file.WriteString("index_name: .opensearch_dashboards\n")
		Expect(err).ToNot(HaveOccurred())
		err = file.Close()
		Expect(err).ToNot(HaveOccurred())
		config, err := NewLoader().
			SetLogger(logger).
			SetFile(file.Name()).
			Build()
		Expect(err).ToNot(HaveOccurred())
		Expect(config.IndexName).To(Equal(".opensearch_dashboards"))
	})

	It("Rejects unknown fields", func() {
		config, err := NewLoader().
			SetLogger(logger).
			SetData([]byte("junk: true\n")).
			Build()
		Expect(err).To(HaveOccurred())
		Expect(config).To(BeNil())
	})

	It("Rejects an empty server username", func() {
		config, err := NewLoader().
			SetLogger(logger).
			SetData([]byte("server_username: \"\"\n")).
			Build()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("server username"))
		Expect(config).To(BeNil())
	})

	It("Rejects an empty index name", func() {
		config, err := NewLoader().
			SetLogger(logger).
			SetData([]byte("index_name: \"\"\n")).
			Build()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("index name"))
		Expect(config).To(BeNil())
	})
})
