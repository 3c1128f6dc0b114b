// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package sortedset provides a generic sorted, duplicate-free container for
// any type equipped with a total order via Cmp.  It exists to hold the
// diff-sets produced during FastFDs discovery, which must be kept sorted
// according to the attribute-set total order and de-duplicated as they are
// generated.
package sortedset

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
)

// Comparable provides an interface which types used in a Set must implement.
type Comparable[T any] interface {
	// Cmp returns < 0 if this is less than other, 0 if they are equal, or > 0
	// if this is greater than other.
	Cmp(other T) int
}

// Set is an array of unique, sorted values (i.e. no duplicates), ordered
// according to each element's Cmp implementation.
type Set[T Comparable[T]] []T

// New creates a sorted set from a given array by first cloning that array,
// then sorting and de-duplicating it.  The given array is not mutated.
func New[T Comparable[T]](items ...T) *Set[T] {
	var nitems Set[T] = slices.Clone(items)
	return Raw(nitems...)
}

// Raw creates a sorted set from a given array without first cloning it, so
// the array may be mutated by this call and subsequent calls on the result.
func Raw[T Comparable[T]](items ...T) *Set[T] {
	var nitems Set[T] = items

	slices.SortFunc(nitems, func(a, b T) int {
		return a.Cmp(b)
	})

	nitems = removeSortedDuplicates(nitems)

	return &nitems
}

// removeSortedDuplicates drops adjacent equal elements from an already-sorted
// slice, in place.
func removeSortedDuplicates[T Comparable[T]](items []T) []T {
	if len(items) == 0 {
		return items
	}

	n := 1

	for i := 1; i < len(items); i++ {
		if items[i].Cmp(items[n-1]) != 0 {
			items[n] = items[i]
			n++
		}
	}

	return items[:n]
}

// ToArray extracts the underlying array from this sorted set.
func (p *Set[T]) ToArray() []T {
	return *p
}

// Len returns the number of elements in this sorted set.
func (p *Set[T]) Len() int {
	return len(*p)
}

// Find returns the index of the matching element in this set, or MaxUint if
// absent.
func (p *Set[T]) Find(element T) uint {
	data := *p
	i := sort.Search(len(data), func(i int) bool {
		return element.Cmp(data[i]) <= 0
	})

	if i < len(data) && data[i].Cmp(element) == 0 {
		return uint(i)
	}

	return math.MaxUint
}

// Contains returns true if a given element is in the set.
func (p *Set[T]) Contains(element T) bool {
	return p.Find(element) != math.MaxUint
}

// Insert an element into this sorted set, maintaining sort order and
// uniqueness.
func (p *Set[T]) Insert(element T) {
	data := *p
	i := sort.Search(len(data), func(i int) bool {
		return element.Cmp(data[i]) <= 0
	})

	if i >= len(data) || data[i].Cmp(element) != 0 {
		ndata := make([]T, len(data)+1)
		copy(ndata, data[0:i])
		ndata[i] = element
		copy(ndata[i+1:], data[i:])
		*p = ndata
	}
}

//nolint:revive
func (p *Set[T]) String() string {
	var r strings.Builder

	first := true

	r.WriteString("{")

	for _, item := range *p {
		if !first {
			r.WriteString(",")
		}

		first = false

		r.WriteString(fmt.Sprintf("%v", any(item)))
	}

	r.WriteString("}")

	return r.String()
}
