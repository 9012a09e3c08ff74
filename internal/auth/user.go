/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package auth

// UserTenant is the reserved tenant identifier that users send to request their own private tenant. It must be
// replaced with the name of the requesting user before any further processing.
const UserTenant = "__user__"

// GlobalTenant is the reserved tenant identifier that represents the shared state that doesn't belong to any
// specific tenant. Access to it is gated by its own entry in the permissions table.
const GlobalTenant = "global_tenant"

// User contains the details of the user that sent a request, as authenticated by the upstream layers.
type User struct {
	// Name is the name of the user.
	Name string `json:"name" yaml:"name"`

	// RequestedTenant is the tenant that the user asked to work with. It may be empty, the UserTenant sentinel,
	// or the identifier of a regular tenant.
	RequestedTenant string `json:"requested_tenant" yaml:"requested_tenant"`
}

// Permissions is the table that maps tenant identifiers to their write capability. A tenant that is present with a
// true value can read and write, a tenant that is present with a false value can only read, and a tenant that is
// absent has no access at all.
type Permissions map[string]bool
