/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package collections

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Set", func() {
	It("Contains the values it was created with", func() {
		set := NewSet("a", "b")
		Expect(set.Contains("a")).To(BeTrue())
		Expect(set.Contains("b")).To(BeTrue())
		Expect(set.Contains("c")).To(BeFalse())
	})

	It("Ignores duplicate values", func() {
		set := NewSet("a", "a", "b")
		Expect(set.Size()).To(Equal(2))
	})

	It("Reports emptiness", func() {
		Expect(NewSet[string]().Empty()).To(BeTrue())
		Expect(NewSet("a").Empty()).To(BeFalse())
	})

	It("Returns all the values", func() {
		set := NewSet("a", "b", "c")
		Expect(set.Values()).To(ConsistOf("a", "b", "c"))
	})

	It("Computes the union without modifying the operands", func() {
		first := NewSet("a", "b")
		second := NewSet("b", "c")
		union := first.Union(second)
		Expect(union.Values()).To(ConsistOf("a", "b", "c"))
		Expect(first.Size()).To(Equal(2))
		Expect(second.Size()).To(Equal(2))
	})

	It("Compares sets by membership", func() {
		Expect(NewSet("a", "b").Equal(NewSet("b", "a"))).To(BeTrue())
		Expect(NewSet("a").Equal(NewSet("a", "b"))).To(BeFalse())
		Expect(NewSet("a").Equal(NewSet("b"))).To(BeFalse())
	})
})
