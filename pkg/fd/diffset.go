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
	"github.com/aartdem/fastfds/pkg/util/collection/hash"
	"github.com/aartdem/fastfds/pkg/util/collection/sortedset"
)

// computeDiffSets builds the canonical sorted, de-duplicated list of
// difference sets for a relation: the columns on which some pair of rows
// disagrees, taken over every pair of rows that could possibly agree on
// anything.
func computeDiffSets(relation *Relation) []AttributeSet {
	maxReps := computeMaxRepresentation(relation)

	identifierSets := buildIdentifierSets(relation, maxReps)

	if len(identifierSets) == 0 {
		return []AttributeSet{relation.FullVertical()}
	}

	agreeSets := hash.NewSet[AttributeSet](uint(len(identifierSets)))

	for i := 0; i < len(identifierSets)-1; i++ {
		for j := i + 1; j < len(identifierSets); j++ {
			agreeSets.Insert(identifierSets[i].Intersect(identifierSets[j]))
		}
	}

	// Force-insert the empty agree-set: every pair of rows trivially agrees
	// on nothing at worst, and its inverse (the universal set) anchors the
	// diff-sets so downstream per-RHS modulation always has something to
	// consume.
	agreeSets.Insert(relation.EmptyVertical())

	diffSets := make([]AttributeSet, 0, agreeSets.Size())
	agreeSets.ForEach(func(agree AttributeSet) {
		diffSets = append(diffSets, agree.Invert())
	})

	return sortedset.New(diffSets...).ToArray()
}

// buildIdentifierSets constructs one IdentifierSet per distinct row index
// appearing in any maximal cluster, visiting each row at most once.
func buildIdentifierSets(relation *Relation, maxReps [][]uint) []IdentifierSet {
	var (
		sets    []IdentifierSet
		visited = make(map[uint]bool)
	)

	for _, cluster := range maxReps {
		for _, row := range cluster {
			if visited[row] {
				continue
			}

			visited[row] = true

			sets = append(sets, NewIdentifierSet(relation, row))
		}
	}

	return sets
}
