/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

// Package requests contains the storage requests that the privileges interceptor knows how to inspect and rewrite.
// The set of types is closed: the rewriter dispatches over it and logs a warning for anything else, so new request
// types must be added here and handled there.
package requests

// Request is implemented by all storage requests.
type Request interface {
	// Kind returns the name of the request type, intended for logging.
	Kind() string
}

// IndexSettable is implemented by requests that target exactly one index and allow replacing it.
type IndexSettable interface {
	// Index returns the name of the index that the request targets.
	Index() string

	// SetIndex replaces the index that the request targets.
	SetIndex(value string)
}

// IndicesReplaceable is implemented by requests whose complete list of index targets can be replaced.
type IndicesReplaceable interface {
	// Indices returns the names of the indexes that the request targets.
	Indices() []string

	// SetIndices replaces the indexes that the request targets.
	SetIndices(values ...string)
}

// DocumentRequest is implemented by the requests that write, update or delete a single document, and that can
// therefore also appear as items of a bulk request.
type DocumentRequest interface {
	Request
	IndexSettable

	// ID returns the identifier of the document.
	ID() string
}
