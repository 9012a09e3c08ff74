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

import (
	"maps"
)

// CreateIndexRequest creates a new index, optionally with an alias and settings. Note that executing it against an
// index that already exists is expected during concurrent evaluations, and the executor must treat that outcome as
// success.
type CreateIndexRequest struct {
	index    string
	alias    string
	settings map[string]string
}

// NewCreateIndexRequest creates a request that creates an index with the given name.
func NewCreateIndexRequest(index string) *CreateIndexRequest {
	return &CreateIndexRequest{
		index: index,
	}
}

func (r *CreateIndexRequest) Kind() string {
	return "create_index"
}

func (r *CreateIndexRequest) Index() string {
	return r.index
}

func (r *CreateIndexRequest) SetIndex(value string) {
	r.index = value
}

// Alias returns the alias that will point to the new index, or the empty string if there is none.
func (r *CreateIndexRequest) Alias() string {
	return r.alias
}

// SetAlias sets the alias that will point to the new index and returns the request, to allow chaining.
func (r *CreateIndexRequest) SetAlias(value string) *CreateIndexRequest {
	r.alias = value
	return r
}

// Settings returns the settings of the new index.
func (r *CreateIndexRequest) Settings() map[string]string {
	return r.settings
}

// SetSettings sets the settings of the new index and returns the request, to allow chaining. The given map is
// copied, so later changes to it don't affect the request.
func (r *CreateIndexRequest) SetSettings(value map[string]string) *CreateIndexRequest {
	r.settings = maps.Clone(value)
	return r
}
