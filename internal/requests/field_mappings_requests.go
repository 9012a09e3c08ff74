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

// GetFieldMappingsRequest retrieves the mappings of one or more fields of one or more indexes. It is read only and
// its targets are already resolved when it reaches the interceptor, so it never needs rewriting.
type GetFieldMappingsRequest struct {
	indices []string
	fields  []string
}

// NewGetFieldMappingsRequest creates a request that retrieves the mappings of the given fields from the given
// indexes.
func NewGetFieldMappingsRequest(indices []string, fields []string) *GetFieldMappingsRequest {
	return &GetFieldMappingsRequest{
		indices: indices,
		fields:  fields,
	}
}

func (r *GetFieldMappingsRequest) Kind() string {
	return "get_field_mappings"
}

// Indices returns the names of the indexes that the request targets.
func (r *GetFieldMappingsRequest) Indices() []string {
	return r.indices
}

// Fields returns the names of the fields whose mappings are requested.
func (r *GetFieldMappingsRequest) Fields() []string {
	return r.fields
}

// GetFieldMappingsIndexRequest is the per index form of GetFieldMappingsRequest, also read only and already
// resolved.
type GetFieldMappingsIndexRequest struct {
	index  string
	fields []string
}

// NewGetFieldMappingsIndexRequest creates a request that retrieves the mappings of the given fields from the given
// index.
func NewGetFieldMappingsIndexRequest(index string, fields []string) *GetFieldMappingsIndexRequest {
	return &GetFieldMappingsIndexRequest{
		index:  index,
		fields: fields,
	}
}

func (r *GetFieldMappingsIndexRequest) Kind() string {
	return "get_field_mappings_index"
}

// Index returns the name of the index that the request targets.
func (r *GetFieldMappingsIndexRequest) Index() string {
	return r.index
}

// Fields returns the names of the fields whose mappings are requested.
func (r *GetFieldMappingsIndexRequest) Fields() []string {
	return r.fields
}
