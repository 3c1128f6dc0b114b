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

// IdentifierSet is a per-row descriptor built from every column's dictionary
// code at that row.  Its canonical form here is simply the row's code vector
// (one code per column, NullCode for missing); Intersect scans it alongside
// another row's vector column by column, a sorted-by-column-index merge in
// all but name, since the column index already provides the sort key.
type IdentifierSet struct {
	row   uint
	width uint
	codes []uint
}

// NewIdentifierSet builds the IdentifierSet for the given row of a relation.
func NewIdentifierSet(relation *Relation, row uint) IdentifierSet {
	codes := make([]uint, relation.NumColumns())

	for i, cd := range relation.AllColumnData() {
		codes[i] = cd.Code(row)
	}

	return IdentifierSet{row, relation.NumColumns(), codes}
}

// Row returns the row index this IdentifierSet describes.
func (p IdentifierSet) Row() uint {
	return p.row
}

// Intersect computes the agree-set of this row against other: bit i is set
// iff both rows hold the same, non-null, dictionary code in column i.
func (p IdentifierSet) Intersect(other IdentifierSet) AttributeSet {
	agree := EmptyAttributeSet(p.width)

	for i := uint(0); i < p.width; i++ {
		code := p.codes[i]
		if code != NullCode && code == other.codes[i] {
			agree = agree.With(i)
		}
	}

	return agree
}
