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

// IndexRequest writes a single document to an index, creating it or replacing it.
type IndexRequest struct {
	index string
	id    string
}

// NewIndexRequest creates a request that writes the document with the given identifier to the given index.
func NewIndexRequest(index, id string) *IndexRequest {
	return &IndexRequest{
		index: index,
		id:    id,
	}
}

func (r *IndexRequest) Kind() string {
	return "index"
}

func (r *IndexRequest) Index() string {
	return r.index
}

func (r *IndexRequest) SetIndex(value string) {
	r.index = value
}

func (r *IndexRequest) ID() string {
	return r.id
}

// DeleteRequest deletes a single document from an index.
type DeleteRequest struct {
	index string
	id    string
}

// NewDeleteRequest creates a request that deletes the document with the given identifier from the given index.
func NewDeleteRequest(index, id string) *DeleteRequest {
	return &DeleteRequest{
		index: index,
		id:    id,
	}
}

func (r *DeleteRequest) Kind() string {
	return "delete"
}

func (r *DeleteRequest) Index() string {
	return r.index
}

func (r *DeleteRequest) SetIndex(value string) {
	r.index = value
}

func (r *DeleteRequest) ID() string {
	return r.id
}

// UpdateRequest applies a partial update to a single document of an index.
type UpdateRequest struct {
	index string
	id    string
}

// NewUpdateRequest creates a request that updates the document with the given identifier in the given index.
func NewUpdateRequest(index, id string) *UpdateRequest {
	return &UpdateRequest{
		index: index,
		id:    id,
	}
}

func (r *UpdateRequest) Kind() string {
	return "update"
}

func (r *UpdateRequest) Index() string {
	return r.index
}

func (r *UpdateRequest) SetIndex(value string) {
	r.index = value
}

func (r *UpdateRequest) ID() string {
	return r.id
}
