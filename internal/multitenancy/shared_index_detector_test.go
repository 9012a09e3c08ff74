/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package multitenancy

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hardik-k-shah/security/internal/cluster"
)

var _ = Describe("Shared index detection", func() {
	DescribeTable(
		"Detects if the shared index is the only target",
		func(indices, aliases []string, expected bool) {
			resolved := cluster.NewResolved(indices, aliases)
			Expect(ResolvesToSharedIndex(resolved, ".kibana")).To(Equal(expected))
		},
		Entry(
			"Only the shared index",
			[]string{".kibana"}, nil, true,
		),
		Entry(
			"Only the shared alias",
			[]string{".kibana_1"}, []string{".kibana"}, true,
		),
		Entry(
			"Shared index plus another index",
			[]string{".kibana", "other"}, nil, false,
		),
		Entry(
			"Single index with another name",
			[]string{"other"}, nil, false,
		),
		Entry(
			"Shared alias plus another alias",
			[]string{".kibana_1", "other_1"}, []string{".kibana", "other"}, false,
		),
		Entry(
			"Nothing resolved",
			nil, nil, false,
		),
	)
})
