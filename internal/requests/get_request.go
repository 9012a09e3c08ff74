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

// GetRequest fetches a single document from an index.
type GetRequest struct {
	index string
	id    string
}

// NewGetRequest creates a request that fetches the document with the given identifier from the given index.
func NewGetRequest(index, id string) *GetRequest {
	return &GetRequest{
		index: index,
		id:    id,
	}
}

func (r *GetRequest) Kind() string {
	return "get"
}

func (r *GetRequest) Index() string {
	return r.index
}

func (r *GetRequest) SetIndex(value string) {
	r.index = value
}

// ID returns the identifier of the document.
func (r *GetRequest) ID() string {
	return r.id
}
