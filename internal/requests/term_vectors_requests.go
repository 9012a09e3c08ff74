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

// TermVectorsRequest retrieves the term vectors of a single document.
type TermVectorsRequest struct {
	index string
	id    string
}

// NewTermVectorsRequest creates a request that retrieves the term vectors of the document with the given identifier
// from the given index.
func NewTermVectorsRequest(index, id string) *TermVectorsRequest {
	return &TermVectorsRequest{
		index: index,
		id:    id,
	}
}

func (r *TermVectorsRequest) Kind() string {
	return "termvectors"
}

func (r *TermVectorsRequest) Index() string {
	return r.index
}

func (r *TermVectorsRequest) SetIndex(value string) {
	r.index = value
}

func (r *TermVectorsRequest) ID() string {
	return r.id
}

// MultiTermVectorsRequest groups multiple term vectors requests so that they can be executed together.
type MultiTermVectorsRequest struct {
	requests []*TermVectorsRequest
}

// NewMultiTermVectorsRequest creates an empty multi term vectors request.
func NewMultiTermVectorsRequest() *MultiTermVectorsRequest {
	return &MultiTermVectorsRequest{}
}

// Add appends term vectors requests to the multi term vectors request and returns it, to allow chaining.
func (r *MultiTermVectorsRequest) Add(values ...*TermVectorsRequest) *MultiTermVectorsRequest {
	r.requests = append(r.requests, values...)
	return r
}

func (r *MultiTermVectorsRequest) Kind() string {
	return "mtermvectors"
}

// Requests returns the term vectors requests contained in the multi term vectors request.
func (r *MultiTermVectorsRequest) Requests() []*TermVectorsRequest {
	return r.requests
}
