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

import "sort"

// diffSetsModulo computes the minimal elements of {D \ {col} : D in
// diffSets, col in D}. diffSets must already be sorted by the AttributeSet
// total order; a previously accepted element is then guaranteed to have been
// enumerated before any set it could be a subset of, so a single streaming
// subset test against what has been accepted so far suffices.
func diffSetsModulo(diffSets []AttributeSet, col uint) []AttributeSet {
	var mod []AttributeSet

	for _, d := range diffSets {
		if !d.Contains(col) {
			continue
		}

		minimal := true

		for _, m := range mod {
			if d.ContainsSet(m) {
				minimal = false
				break
			}
		}

		if minimal {
			mod = append(mod, d.Without(col))
		}
	}

	return mod
}

// coverOrdering orders candidates (coverage in diffSets desc, column index
// asc) for the DFS attribute ordering. coverage(c) is the number of sets in
// diffSets containing c.
func coverOrdering(candidates []uint, diffSets []AttributeSet) []uint {
	coverage := make(map[uint]int, len(candidates))
	for _, c := range candidates {
		n := 0

		for _, d := range diffSets {
			if d.Contains(c) {
				n++
			}
		}

		coverage[c] = n
	}

	ordered := append([]uint(nil), candidates...)
	sort.SliceStable(ordered, func(i, j int) bool {
		ci, cj := ordered[i], ordered[j]
		if coverage[ci] != coverage[cj] {
			return coverage[ci] > coverage[cj]
		}

		return ci < cj
	})

	return ordered
}

// coverSearch finds every minimal cover of diffSetsMod, recursing over the
// dynamically-recomputed attribute ordering, and reports each via emit.
type coverSearch struct {
	diffSetsMod []AttributeSet
	width       uint
	rhs         uint
	emit        func(lhs AttributeSet)
}

// find runs the DFS from the empty path. The initial ordering holds every
// column but rhs, regardless of whether it still appears in diffSetsMod;
// only later recursion levels drop zero-coverage attributes.
func (s *coverSearch) find() {
	candidates := make([]uint, 0, s.width)

	for c := uint(0); c < s.width; c++ {
		if c != s.rhs {
			candidates = append(candidates, c)
		}
	}

	ordering := coverOrdering(candidates, s.diffSetsMod)
	s.recurse(EmptyAttributeSet(s.width), s.diffSetsMod, ordering)
}

// recurse implements findCovers: path is the LHS built so far, current is
// the residual list of diff-sets not yet hit, and ordering is the suffix of
// candidate attributes still eligible at this recursion level.
func (s *coverSearch) recurse(path AttributeSet, current []AttributeSet, ordering []uint) {
	if len(current) == 0 {
		if s.isMinimalCover(path) {
			s.emit(path)
		}

		return
	}

	if len(ordering) == 0 {
		return
	}

	for i, c := range ordering {
		next := make([]AttributeSet, 0, len(current))

		for _, d := range current {
			if !d.Contains(c) {
				next = append(next, d)
			}
		}

		var nextCandidates []uint

		for _, cand := range ordering[i+1:] {
			for _, d := range next {
				if d.Contains(cand) {
					nextCandidates = append(nextCandidates, cand)
					break
				}
			}
		}

		nextOrdering := coverOrdering(nextCandidates, next)
		s.recurse(path.With(c), next, nextOrdering)
	}
}

// isMinimalCover reports whether path covers the full diffSetsMod and no
// proper subset of path (obtained by dropping one column) also covers it.
func (s *coverSearch) isMinimalCover(path AttributeSet) bool {
	for _, c := range path.Columns() {
		if isCover(path.Without(c), s.diffSetsMod) {
			return false
		}
	}

	return true
}

// isCover reports whether candidate intersects every set in sets.
func isCover(candidate AttributeSet, sets []AttributeSet) bool {
	for _, s := range sets {
		if !candidate.Intersects(s) {
			return false
		}
	}

	return true
}
