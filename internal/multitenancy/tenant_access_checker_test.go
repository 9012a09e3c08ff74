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
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hardik-k-shah/security/internal/auth"
)

var _ = Describe("Tenant access checker", func() {
	var (
		ctx     context.Context
		checker *TenantAccessChecker
		user    *auth.User
	)

	BeforeEach(func() {
		var err error

		// Create the context:
		ctx = context.Background()

		// Create the checker:
		checker, err = NewTenantAccessChecker().
			SetLogger(logger).
			Build()
		Expect(err).ToNot(HaveOccurred())
		Expect(checker).ToNot(BeNil())

		// Create the user:
		user = &auth.User{
			Name: "alice",
		}
	})

	Describe("Builder", func() {
		It("Fails if logger is not set", func() {
			checker, err := NewTenantAccessChecker().
				Build()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("logger is mandatory"))
			Expect(checker).To(BeNil())
		})
	})

	It("Denies a tenant that is absent from the table, for any action", func() {
		tenants := auth.Permissions{
			"sales": true,
		}
		Expect(checker.IsAllowed(ctx, user, "indices:data/read/get", tenants, "ops")).To(BeFalse())
		Expect(checker.IsAllowed(ctx, user, "indices:data/write/index", tenants, "ops")).To(BeFalse())
		Expect(checker.IsAllowed(ctx, user, "indices:admin/create", tenants, "ops")).To(BeFalse())
	})

	It("Denies write actions for a read only tenant", func() {
		tenants := auth.Permissions{
			"ops": false,
		}
		Expect(checker.IsAllowed(ctx, user, "indices:data/write/index", tenants, "ops")).To(BeFalse())
		Expect(checker.IsAllowed(ctx, user, "indices:data/write/bulk", tenants, "ops")).To(BeFalse())
	})

	It("Allows read actions for a read only tenant", func() {
		tenants := auth.Permissions{
			"ops": false,
		}
		Expect(checker.IsAllowed(ctx, user, "indices:data/read/get", tenants, "ops")).To(BeTrue())
		Expect(checker.IsAllowed(ctx, user, "indices:data/read/search", tenants, "ops")).To(BeTrue())
	})

	It("Allows any action for a writable tenant", func() {
		tenants := auth.Permissions{
			"sales": true,
		}
		Expect(checker.IsAllowed(ctx, user, "indices:data/read/get", tenants, "sales")).To(BeTrue())
		Expect(checker.IsAllowed(ctx, user, "indices:data/write/index", tenants, "sales")).To(BeTrue())
	})
})
