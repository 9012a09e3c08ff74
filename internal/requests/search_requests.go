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

// SearchRequest runs a query against one or more indexes.
type SearchRequest struct {
	indices []string
}

// NewSearchRequest creates a request that searches the given indexes.
func NewSearchRequest(indices ...string) *SearchRequest {
	return &SearchRequest{
		indices: indices,
	}
}

func (r *SearchRequest) Kind() string {
	return "search"
}

func (r *SearchRequest) Indices() []string {
	return r.indices
}

func (r *SearchRequest) SetIndices(values ...string) {
	r.indices = values
}

// MultiSearchRequest groups multiple search requests so that they can be executed together.
type MultiSearchRequest struct {
	requests []*SearchRequest
}

// NewMultiSearchRequest creates an empty multi search request.
func NewMultiSearchRequest() *MultiSearchRequest {
	return &MultiSearchRequest{}
}

// Add appends search requests to the multi search request and returns it, to allow chaining.
func (r *MultiSearchRequest) Add(values ...*SearchRequest) *MultiSearchRequest {
	r.requests = append(r.requests, values...)
	return r
}

func (r *MultiSearchRequest) Kind() string {
	return "msearch"
}

// Requests returns the search requests contained in the multi search request.
func (r *MultiSearchRequest) Requests() []*SearchRequest {
	return r.requests
}
