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
package fd

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// AttributeSet (the "Vertical" of the FastFDs literature) is a fixed-width
// bit-indexed set of column positions.  All AttributeSets participating in a
// single discovery share the same width, namely the schema's column count.
// Value semantics are preserved by copy-on-write: every operation which would
// otherwise mutate shared storage clones first.
type AttributeSet struct {
	width uint
	words []uint64
}

// EmptyAttributeSet constructs the empty AttributeSet of the given width.
func EmptyAttributeSet(width uint) AttributeSet {
	return AttributeSet{width, make([]uint64, wordCount(width))}
}

// NewAttributeSet constructs an AttributeSet of the given width containing
// exactly the given columns.
func NewAttributeSet(width uint, columns ...uint) AttributeSet {
	s := EmptyAttributeSet(width)
	for _, c := range columns {
		s = s.With(c)
	}

	return s
}

func wordCount(width uint) uint {
	return (width + 63) / 64
}

// Width returns the fixed width of this attribute set (i.e. schema.numColumns).
func (p AttributeSet) Width() uint {
	return p.width
}

func (p AttributeSet) clone() AttributeSet {
	return AttributeSet{p.width, slices.Clone(p.words)}
}

// Contains checks whether a given column is a member of this set.
func (p AttributeSet) Contains(column uint) bool {
	word, bit := column/64, column%64
	if word >= uint(len(p.words)) {
		return false
	}

	return (p.words[word] & (uint64(1) << bit)) != 0
}

// ContainsSet checks whether this set is a superset of (or equal to) other:
// (this & other) == other.
func (p AttributeSet) ContainsSet(other AttributeSet) bool {
	for w := range other.words {
		var mine uint64
		if w < len(p.words) {
			mine = p.words[w]
		}

		if (mine & other.words[w]) != other.words[w] {
			return false
		}
	}

	return true
}

// Intersects checks whether this set shares at least one column with other:
// (this & other) != 0.
func (p AttributeSet) Intersects(other AttributeSet) bool {
	n := min(len(p.words), len(other.words))
	for w := 0; w < n; w++ {
		if (p.words[w] & other.words[w]) != 0 {
			return true
		}
	}

	return false
}

// With returns a new set equal to this one plus the given column.
func (p AttributeSet) With(column uint) AttributeSet {
	r := p.clone()
	word, bit := column/64, column%64

	for uint(len(r.words)) <= word {
		r.words = append(r.words, 0)
	}

	r.words[word] |= uint64(1) << bit

	return r
}

// Without returns a new set equal to this one minus the given column.
func (p AttributeSet) Without(column uint) AttributeSet {
	r := p.clone()
	word, bit := column/64, column%64

	if word < uint(len(r.words)) {
		r.words[word] &= ^(uint64(1) << bit)
	}

	return r
}

// WithoutSet returns a new set equal to this one minus every column in other.
func (p AttributeSet) WithoutSet(other AttributeSet) AttributeSet {
	r := p.clone()
	n := min(len(r.words), len(other.words))

	for w := 0; w < n; w++ {
		r.words[w] &^= other.words[w]
	}

	return r
}

// Union returns a new set containing every column in either this set or
// other.
func (p AttributeSet) Union(other AttributeSet) AttributeSet {
	width := max(p.width, other.width)
	r := AttributeSet{width, make([]uint64, wordCount(width))}

	for w := range r.words {
		var a, b uint64
		if w < len(p.words) {
			a = p.words[w]
		}

		if w < len(other.words) {
			b = other.words[w]
		}

		r.words[w] = a | b
	}

	return r
}

// Intersect returns a new set containing every column in both this set and
// other.
func (p AttributeSet) Intersect(other AttributeSet) AttributeSet {
	width := max(p.width, other.width)
	r := AttributeSet{width, make([]uint64, wordCount(width))}
	n := min(len(p.words), len(other.words))

	for w := 0; w < n; w++ {
		r.words[w] = p.words[w] & other.words[w]
	}

	return r
}

// Invert returns the complement of this set over its width: every column not
// in this set.
func (p AttributeSet) Invert() AttributeSet {
	r := EmptyAttributeSet(p.width)

	for w := range r.words {
		var v uint64
		if w < len(p.words) {
			v = p.words[w]
		}

		r.words[w] = ^v
	}
	// Mask off any bits beyond width in the final word.
	if rem := p.width % 64; rem != 0 && len(r.words) > 0 {
		mask := (uint64(1) << rem) - 1
		r.words[len(r.words)-1] &= mask
	}

	return r
}

// Arity returns the number of columns contained in this set (its popcount).
func (p AttributeSet) Arity() uint {
	var count uint
	for _, w := range p.words {
		count += uint(bits.OnesCount64(w))
	}

	return count
}

// IsEmpty returns true iff this set has no members.
func (p AttributeSet) IsEmpty() bool {
	for _, w := range p.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Columns returns the member columns of this set in ascending order.
func (p AttributeSet) Columns() []uint {
	var cols []uint

	for w, word := range p.words {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			cols = append(cols, uint(w*64+bit))
			word &= word - 1
		}
	}

	return cols
}

// Equals reports whether this set is identical (bit-for-bit) to other, given
// equal schema width. Part of the hash.Hasher[AttributeSet] interface used to
// de-duplicate agree-sets.
func (p AttributeSet) Equals(other AttributeSet) bool {
	n := max(len(p.words), len(other.words))

	for w := 0; w < n; w++ {
		var a, b uint64
		if w < len(p.words) {
			a = p.words[w]
		}

		if w < len(other.words) {
			b = other.words[w]
		}

		if a != b {
			return false
		}
	}

	return true
}

// Hash returns a 64-bit FNV-1a hash of this set's member bits.  Part of the
// hash.Hasher[AttributeSet] interface.
func (p AttributeSet) Hash() uint64 {
	const (
		offset64 uint64 = 14695981039346656037
		prime64  uint64 = 1099511628211
	)

	h := offset64

	for _, w := range p.words {
		for i := 0; i < 8; i++ {
			h ^= (w >> (8 * i)) & 0xff
			h *= prime64
		}
	}

	return h
}

// Cmp implements the total order defined over AttributeSets: the set whose
// lowest differing bit is set is considered the greater.  This is NOT the
// same as treating the bitset as an unsigned integer (which would use the
// highest differing bit); it is deliberately inverted, matching the
// reference FastFDs ordering used to sort and deduplicate diff-sets.
//
// Returns <0 if p<other, 0 if equal, >0 if p>other.
func (p AttributeSet) Cmp(other AttributeSet) int {
	n := max(len(p.words), len(other.words))

	for w := 0; w < n; w++ {
		var a, b uint64
		if w < len(p.words) {
			a = p.words[w]
		}

		if w < len(other.words) {
			b = other.words[w]
		}

		if xor := a ^ b; xor != 0 {
			bit := bits.TrailingZeros64(xor)
			if (b>>bit)&1 != 0 {
				return -1
			}

			return 1
		}
	}

	return 0
}

// LessEq reports whether p<=other under the Cmp total order.  It is not part
// of pkg/util/collection/sortedset.Comparable, which Cmp alone satisfies;
// LessEq is provided as a convenience for call-sites that prefer boolean
// comparisons.
func (p AttributeSet) LessEq(other AttributeSet) bool {
	return p.Cmp(other) <= 0
}

//nolint:revive
func (p AttributeSet) String() string {
	cols := p.Columns()

	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprintf("%d", c)
	}

	return "[" + strings.Join(parts, ",") + "]"
}
