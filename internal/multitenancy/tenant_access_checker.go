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
	"errors"
	"log/slog"
	"strings"

	"github.com/hardik-k-shah/security/internal/auth"
)

// writeActionPrefix is the prefix shared by the names of all the actions that modify data.
const writeActionPrefix = "indices:data/write"

// TenantAccessCheckerBuilder contains the data and logic needed to create a tenant access checker.
type TenantAccessCheckerBuilder struct {
	logger *slog.Logger
}

// TenantAccessChecker decides if a tenant may perform an action, according to the permissions table supplied by the
// caller.
type TenantAccessChecker struct {
	logger *slog.Logger
}

// NewTenantAccessChecker creates a builder that can then be used to configure and create a tenant access checker.
func NewTenantAccessChecker() *TenantAccessCheckerBuilder {
	return &TenantAccessCheckerBuilder{}
}

// SetLogger sets the logger that will be used to write to the log. This is mandatory.
func (b *TenantAccessCheckerBuilder) SetLogger(value *slog.Logger) *TenantAccessCheckerBuilder {
	b.logger = value
	return b
}

// Build uses the data stored in the builder to create a new tenant access checker.
func (b *TenantAccessCheckerBuilder) Build() (result *TenantAccessChecker, err error) {
	// Check that the logger has been set:
	if b.logger == nil {
		err = errors.New("logger is mandatory")
		return
	}

	// Create the checker:
	result = &TenantAccessChecker{
		logger: b.logger,
	}
	return
}

// IsAllowed returns true if the given tenant may perform the given action. A tenant that is absent from the table
// has no access at all, and a tenant marked read only may not perform write actions.
func (c *TenantAccessChecker) IsAllowed(ctx context.Context, user *auth.User, action string,
	tenants auth.Permissions, tenant string) bool {
	writable, present := tenants[tenant]
	if !present {
		c.logger.WarnContext(
			ctx,
			"Tenant is not allowed for user",
			slog.String("tenant", tenant),
			slog.String("user", user.Name),
		)
		return false
	}
	if !writable && strings.HasPrefix(action, writeActionPrefix) {
		c.logger.WarnContext(
			ctx,
			"Tenant is not allowed to write",
			slog.String("tenant", tenant),
			slog.String("user", user.Name),
			slog.String("action", action),
		)
		return false
	}
	return true
}
