/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package cluster

import (
	"fmt"
)

// AbstractionKind is the kind of entry that a name points to in the index namespace.
type AbstractionKind string

const (
	// AbstractionKindIndex indicates that the name is a concrete index.
	AbstractionKindIndex AbstractionKind = "index"

	// AbstractionKindAlias indicates that the name is an alias.
	AbstractionKindAlias AbstractionKind = "alias"
)

// Abstraction is an entry of the index namespace: a name together with the kind of thing it points to.
type Abstraction struct {
	// Kind is the kind of entry.
	Kind AbstractionKind

	// Name is the name of the index or alias.
	Name string
}

// SnapshotBuilder contains the data and logic needed to create a snapshot of the index namespace.
type SnapshotBuilder struct {
	entries map[string]Abstraction
}

// Snapshot is a point in time, read only view of the index and alias namespace of the cluster. It is taken by the
// caller before evaluating a request and passed by value into each evaluation, so evaluations are pure functions of
// their inputs and safe for concurrent use.
type Snapshot struct {
	entries map[string]Abstraction
}

// NewSnapshot creates a builder that can then be used to configure and create a snapshot of the index namespace.
func NewSnapshot() *SnapshotBuilder {
	return &SnapshotBuilder{
		entries: map[string]Abstraction{},
	}
}

// AddIndex adds a concrete index to the namespace.
func (b *SnapshotBuilder) AddIndex(name string) *SnapshotBuilder {
	b.entries[name] = Abstraction{
		Kind: AbstractionKindIndex,
		Name: name,
	}
	return b
}

// AddAlias adds an alias to the namespace.
func (b *SnapshotBuilder) AddAlias(name string) *SnapshotBuilder {
	b.entries[name] = Abstraction{
		Kind: AbstractionKindAlias,
		Name: name,
	}
	return b
}

// Build uses the data stored in the builder to create a new snapshot.
func (b *SnapshotBuilder) Build() (result *Snapshot, err error) {
	// Check that no name is empty:
	for name := range b.entries {
		if name == "" {
			err = fmt.Errorf("names of indexes and aliases can't be empty")
			return
		}
	}

	// Copy the entries so that later changes to the builder don't affect the snapshot:
	entries := make(map[string]Abstraction, len(b.entries))
	for name, entry := range b.entries {
		entries[name] = entry
	}

	// Create the snapshot:
	result = &Snapshot{
		entries: entries,
	}
	return
}

// Lookup returns the namespace entry with the given name, and a flag indicating if it exists.
func (s *Snapshot) Lookup(name string) (result Abstraction, ok bool) {
	result, ok = s.entries[name]
	return
}

// Contains returns true if the namespace has an entry with the given name, be it an index or an alias.
func (s *Snapshot) Contains(name string) bool {
	_, ok := s.entries[name]
	return ok
}
