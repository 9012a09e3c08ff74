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

// MultiGetItem identifies one document to fetch as part of a multi get request.
type MultiGetItem struct {
	index string
	id    string
}

// NewMultiGetItem creates an item that fetches the document with the given identifier from the given index.
func NewMultiGetItem(index, id string) *MultiGetItem {
	return &MultiGetItem{
		index: index,
		id:    id,
	}
}

func (i *MultiGetItem) Index() string {
	return i.index
}

func (i *MultiGetItem) SetIndex(value string) {
	i.index = value
}

func (i *MultiGetItem) ID() string {
	return i.id
}

// MultiGetRequest fetches multiple documents, possibly from different indexes, in one round trip.
type MultiGetRequest struct {
	items []*MultiGetItem
}

// NewMultiGetRequest creates an empty multi get request.
func NewMultiGetRequest() *MultiGetRequest {
	return &MultiGetRequest{}
}

// Add appends items to the multi get request and returns it, to allow chaining.
func (r *MultiGetRequest) Add(values ...*MultiGetItem) *MultiGetRequest {
	r.items = append(r.items, values...)
	return r
}

func (r *MultiGetRequest) Kind() string {
	return "mget"
}

// Items returns the items contained in the multi get request.
func (r *MultiGetRequest) Items() []*MultiGetItem {
	return r.items
}
