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

// computeMaxRepresentation computes the set of ⊆-maximal clusters across
// every column's PLI: no returned cluster is a proper subset of another.
// Every row pair which could ever produce a non-empty agree-set sits inside
// at least one maximal cluster, so it suffices to enumerate pairs only
// within these clusters.
//
// It seeds with the first non-empty PLI's clusters; for each subsequent
// PLI's clusters, anything already covered by an existing maximal cluster is
// discarded, and any existing maximal cluster that the new cluster
// supersedes is dropped.
//
// Clusters from a single column's PLI are pairwise disjoint (they partition
// that column's non-null rows by dictionary code), so incoming clusters from
// the same PLI never need to be checked against each other -- only against
// clusters already accumulated from earlier columns.
func computeMaxRepresentation(relation *Relation) [][]uint {
	var nonEmpty []*PositionListIndex

	for _, cd := range relation.AllColumnData() {
		if cd.PLI().Size() > 0 {
			nonEmpty = append(nonEmpty, cd.PLI())
		}
	}

	if len(nonEmpty) == 0 {
		return nil
	}

	maxReps := append([][]uint(nil), nonEmpty[0].Clusters()...)

	for _, pli := range nonEmpty[1:] {
		for _, p := range pli.Clusters() {
			if absorbedByExisting(maxReps, p) {
				continue
			}

			maxReps = replaceSubsetsWith(maxReps, p)
		}
	}

	return maxReps
}

// absorbedByExisting reports whether some existing maximal cluster already
// contains p as a subset (including p being an exact duplicate).
func absorbedByExisting(maxReps [][]uint, p []uint) bool {
	for _, m := range maxReps {
		if containsSorted(m, p) {
			return true
		}
	}

	return false
}

// replaceSubsetsWith drops every existing cluster that p strictly (or
// non-strictly) supersedes, then appends p.
func replaceSubsetsWith(maxReps [][]uint, p []uint) [][]uint {
	next := make([][]uint, 0, len(maxReps)+1)

	for _, m := range maxReps {
		if !containsSorted(p, m) {
			next = append(next, m)
		}
	}

	return append(next, p)
}

// containsSorted reports whether subset ⊆ superset, given both are sorted
// ascending with no duplicates.  Linear in the combined length.
func containsSorted(superset, subset []uint) bool {
	if len(subset) > len(superset) {
		return false
	}

	i := 0

	for _, v := range subset {
		for i < len(superset) && superset[i] < v {
			i++
		}

		if i >= len(superset) || superset[i] != v {
			return false
		}

		i++
	}

	return true
}
