/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package collections

import (
	"maps"
)

// Set is an unordered collection of unique values.
type Set[T comparable] struct {
	members map[T]struct{}
}

// NewSet creates a new set containing the given values.
func NewSet[T comparable](values ...T) Set[T] {
	members := make(map[T]struct{}, len(values))
	for _, value := range values {
		members[value] = struct{}{}
	}
	return Set[T]{
		members: members,
	}
}

// Contains returns true if the given value is a member of the set.
func (s Set[T]) Contains(value T) bool {
	_, ok := s.members[value]
	return ok
}

// Size returns the number of members of the set.
func (s Set[T]) Size() int {
	return len(s.members)
}

// Empty returns true if the set has no members.
func (s Set[T]) Empty() bool {
	return len(s.members) == 0
}

// Values returns a slice containing the members of the set, in no particular order.
func (s Set[T]) Values() []T {
	result := make([]T, 0, len(s.members))
	for value := range s.members {
		result = append(result, value)
	}
	return result
}

// Union returns a new set containing the members of this set and the members of the given set. Neither of the two
// original sets is modified.
func (s Set[T]) Union(other Set[T]) Set[T] {
	members := make(map[T]struct{}, len(s.members)+len(other.members))
	maps.Copy(members, s.members)
	maps.Copy(members, other.members)
	return Set[T]{
		members: members,
	}
}

// Equal returns true if this set and the given set have exactly the same members.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s.members) != len(other.members) {
		return false
	}
	for value := range s.members {
		if !other.Contains(value) {
			return false
		}
	}
	return true
}
