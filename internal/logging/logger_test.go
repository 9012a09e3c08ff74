/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package logging

import (
	"bytes"
	"context"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	It("Writes to the given writer", func() {
		buffer := &bytes.Buffer{}
		logger, err := NewLogger().
			SetWriter(buffer).
			Build()
		Expect(err).ToNot(HaveOccurred())
		logger.Info("my message")
		Expect(buffer.String()).To(ContainSubstring("my message"))
	})

	It("Honours the level", func() {
		buffer := &bytes.Buffer{}
		logger, err := NewLogger().
			SetLevel("warn").
			SetWriter(buffer).
			Build()
		Expect(err).ToNot(HaveOccurred())
		logger.Debug("my debug message")
		logger.Warn("my warning message")
		Expect(buffer.String()).ToNot(ContainSubstring("my debug message"))
		Expect(buffer.String()).To(ContainSubstring("my warning message"))
	})

	It("Accepts levels ignoring case", func() {
		logger, err := NewLogger().
			SetLevel("DEBUG").
			SetWriter(&bytes.Buffer{}).
			Build()
		Expect(err).ToNot(HaveOccurred())
		Expect(logger.Enabled(context.Background(), slog.LevelDebug)).To(BeTrue())
	})

	It("Fails for an unknown level", func() {
		logger, err := NewLogger().
			SetLevel("junk").
			Build()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("junk"))
		Expect(logger).To(BeNil())
	})
})
