/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package cluster

import (
	"github.com/hardik-k-shah/security/internal/collections"
)

// Resolved contains the concrete index names and the alias names that a request was determined to touch. It is
// computed by an external resolver from the raw index expressions of the request and passed into each evaluation.
type Resolved struct {
	// Indices is the set of concrete index names.
	Indices collections.Set[string]

	// Aliases is the set of alias names.
	Aliases collections.Set[string]
}

// NewResolved creates a resolved target set from the given index and alias names.
func NewResolved(indices []string, aliases []string) Resolved {
	return Resolved{
		Indices: collections.NewSet(indices...),
		Aliases: collections.NewSet(aliases...),
	}
}
