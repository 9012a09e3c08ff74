/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package requests

// RefreshRequest makes recent changes to one or more indexes visible to search.
type RefreshRequest struct {
	indices []string
}

// NewRefreshRequest creates a request that refreshes the given indexes.
func NewRefreshRequest(indices ...string) *RefreshRequest {
	return &RefreshRequest{
		indices: indices,
	}
}

func (r *RefreshRequest) Kind() string {
	return "refresh"
}

func (r *RefreshRequest) Indices() []string {
	return r.indices
}

func (r *RefreshRequest) SetIndices(values ...string) {
	r.indices = values
}
