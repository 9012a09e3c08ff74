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

// BulkRequest groups multiple document requests so that they can be executed together.
type BulkRequest struct {
	requests []DocumentRequest
}

// NewBulkRequest creates an empty bulk request.
func NewBulkRequest() *BulkRequest {
	return &BulkRequest{}
}

// Add appends document requests to the bulk request and returns it, to allow chaining.
func (r *BulkRequest) Add(values ...DocumentRequest) *BulkRequest {
	r.requests = append(r.requests, values...)
	return r
}

func (r *BulkRequest) Kind() string {
	return "bulk"
}

// Requests returns the document requests contained in the bulk request.
func (r *BulkRequest) Requests() []DocumentRequest {
	return r.requests
}
