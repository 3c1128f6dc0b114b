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

// fdSink is a deduplicating collector for discovered FDs, plus the
// post-processing pass that folds constant columns discovered via every
// other single attribute back down to their proper empty-LHS form.
type fdSink struct {
	fds []FD
}

// register appends an FD unless it (lhs, rhs) has already been registered.
func (s *fdSink) register(lhs AttributeSet, rhs Column) {
	for _, existing := range s.fds {
		if existing.RHS.Index == rhs.Index && existing.LHS.Equals(lhs) {
			return
		}
	}

	s.fds = append(s.fds, NewFD(lhs, rhs))
}

// verifyFDsWithEmptyLHS replaces, for every column c that received an
// arity-1 FD from each of the other numColumns-1 columns and whose PLI shows
// it constant over every row, the whole set of FDs with RHS c by the single
// FD EmptyVertical -> c. This corrects the case
// where a constant column is discovered piecemeal through every other
// attribute instead of directly through the empty LHS.
func (s *fdSink) verifyFDsWithEmptyLHS(relation *Relation) {
	numColumns := relation.NumColumns()
	arityOneCount := make([]uint, numColumns)

	for _, f := range s.fds {
		if f.LHS.Arity() == 1 {
			arityOneCount[f.RHS.Index]++
		}
	}

	for i := uint(0); i < numColumns; i++ {
		if arityOneCount[i] != numColumns-1 {
			continue
		}

		if !relation.ColumnData(i).PLI().IsConstant(relation.NumRows()) {
			continue
		}

		column := relation.Schema().Column(i)

		kept := s.fds[:0]

		for _, f := range s.fds {
			if f.RHS.Index != i {
				kept = append(kept, f)
			}
		}

		s.fds = append(kept, NewFD(relation.EmptyVertical(), column))
	}
}
