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
	"github.com/hardik-k-shah/security/internal/cluster"
)

// ResolvesToSharedIndex reports whether the resolved targets denote exclusively the shared dashboards index: either
// the concrete index set is exactly that one name, or the alias set is exactly that one name. Requests that touch
// the shared index together with anything else don't qualify.
func ResolvesToSharedIndex(resolved cluster.Resolved, index string) bool {
	if resolved.Indices.Size() == 1 && resolved.Indices.Contains(index) {
		return true
	}
	return resolved.Aliases.Size() == 1 && resolved.Aliases.Contains(index)
}
