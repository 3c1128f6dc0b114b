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
	"sort"
	"testing"

	"github.com/aartdem/fastfds/pkg/util/assert"
)

// buildRelation constructs a Relation from row-major tuples of dictionary
// codes (0 reserved for null) over the given column names.
func buildRelation(t *testing.T, names []string, rows [][]uint) *Relation {
	t.Helper()

	schema := NewSchema(names...)
	columns := make([][]uint, len(names))

	for c := range names {
		col := make([]uint, len(rows))
		for r, row := range rows {
			col[r] = row[c]
		}

		columns[c] = col
	}

	r, err := NewRelation(schema, columns)
	if err != nil {
		t.Fatalf("unexpected error building relation: %v", err)
	}

	return r
}

func fdStrings(t *testing.T, fds []FD, schema *Schema) []string {
	t.Helper()

	out := make([]string, len(fds))
	for i, f := range fds {
		out[i] = PrintFD(f, schema)
	}

	sort.Strings(out)

	return out
}

func assertFDSet(t *testing.T, relation *Relation, expected []string) {
	t.Helper()

	fds, err := Discover(relation, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sort.Strings(expected)
	assert.Equal(t, expected, fdStrings(t, fds, relation.Schema()))
}

// S1: empty relation, both columns vacuously constant.
func Test_Discover_S1_EmptyRelation(t *testing.T) {
	r := buildRelation(t, []string{"A", "B"}, nil)
	assertFDSet(t, r, []string{"[] -> A", "[] -> B"})
}

// S2: single column, all distinct values -> no FD possible.
func Test_Discover_S2_SingleColumnAllDistinct(t *testing.T) {
	r := buildRelation(t, []string{"A"}, [][]uint{{1}, {2}, {3}})
	assertFDSet(t, r, []string{})
}

// S3: constant column A. The raw cover search also finds B -> A (since A
// never varies, every other column trivially determines it too), but the
// sink's empty-LHS verification folds that, and every other singleton-LHS
// FD into A, down to the single minimal ∅ -> A, matching the minimality
// invariant (a FD with a strict, also-sound subset of its LHS is never
// minimal).
func Test_Discover_S3_ConstantColumn(t *testing.T) {
	r := buildRelation(t, []string{"A", "B"}, [][]uint{{1, 1}, {1, 2}, {1, 3}})
	assertFDSet(t, r, []string{"[] -> A"})
}

// S4: A is a key column (every value distinct), so A -> B holds; B repeats
// a value across rows with different A values, so nothing determines A.
func Test_Discover_S4_KeyColumn(t *testing.T) {
	r := buildRelation(t, []string{"A", "B"}, [][]uint{{1, 10}, {2, 20}, {3, 10}})
	assertFDSet(t, r, []string{"{A} -> B"})
}

// S5: the classic three-column cyclic example -- every pair determines the
// third, and no single column determines another.
func Test_Discover_S5_CompositeDependency(t *testing.T) {
	r := buildRelation(t, []string{"A", "B", "C"}, [][]uint{
		{1, 1, 1},
		{1, 2, 2},
		{2, 1, 2},
		{2, 2, 1},
	})
	assertFDSet(t, r, []string{
		"{A|B} -> C",
		"{A|C} -> B",
		"{B|C} -> A",
	})
}

// S6: regression fixture -- C determines B (C partitions finer than B, with
// every C-value mapping to exactly one B-value), A varies independently of
// both, and nothing else determines anything.
func Test_Discover_S6_Regression(t *testing.T) {
	r := buildRelation(t, []string{"A", "B", "C"}, [][]uint{
		{1, 1, 10},
		{2, 1, 10},
		{1, 1, 20},
		{2, 1, 20},
		{1, 2, 30},
		{2, 2, 30},
	})
	assertFDSet(t, r, []string{"{C} -> B"})
}

func Test_Discover_02_RejectsEmptySchema(t *testing.T) {
	schema := NewSchema()

	r := &Relation{schema: schema}
	_, err := Discover(r, nil)
	if err == nil {
		t.Fatalf("expected an error for an empty schema")
	}
}

// Test_Discover_03_Soundness checks, for every emitted FD, that every pair
// of rows agreeing on the LHS also agrees on the RHS -- directly against
// the raw rows, independent of how the algorithm got there.
func Test_Discover_03_Soundness(t *testing.T) {
	rows := [][]uint{
		{1, 1, 1},
		{1, 2, 2},
		{2, 1, 2},
		{2, 2, 1},
		{1, 1, 1},
	}
	r := buildRelation(t, []string{"A", "B", "C"}, rows)

	fds, err := Discover(r, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, f := range fds {
		for i := range rows {
			for j := range rows {
				if i == j {
					continue
				}

				if !agreeOn(rows[i], rows[j], f.LHS) {
					continue
				}

				if rows[i][f.RHS.Index] != rows[j][f.RHS.Index] {
					t.Fatalf("unsound FD %s: rows %d,%d agree on LHS but disagree on RHS", PrintFD(f, r.Schema()), i, j)
				}
			}
		}
	}
}

func agreeOn(a, b []uint, lhs AttributeSet) bool {
	for _, c := range lhs.Columns() {
		if a[c] != b[c] {
			return false
		}
	}

	return true
}

// Test_Discover_04_NonTriviality checks that no emitted FD's LHS contains
// its own RHS.
func Test_Discover_04_NonTriviality(t *testing.T) {
	r := buildRelation(t, []string{"A", "B", "C"}, [][]uint{
		{1, 1, 1},
		{1, 2, 2},
		{2, 1, 2},
		{2, 2, 1},
	})

	fds, err := Discover(r, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, f := range fds {
		if f.LHS.Contains(f.RHS.Index) {
			t.Fatalf("trivial FD emitted: %s", PrintFD(f, r.Schema()))
		}
	}
}

// Test_Discover_05_Determinism checks that two runs over the same relation
// produce the identical FD set.
func Test_Discover_05_Determinism(t *testing.T) {
	r := buildRelation(t, []string{"A", "B", "C"}, [][]uint{
		{1, 1, 1},
		{1, 2, 2},
		{2, 1, 2},
		{2, 2, 1},
	})

	first, err := Discover(r, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := Discover(r, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, fdStrings(t, first, r.Schema()), fdStrings(t, second, r.Schema()))
}

// Test_Discover_06_Minimality checks that no emitted FD has a strict subset
// of its LHS also present among the emitted FDs for the same RHS (a
// necessary, if not sufficient, symptom of a minimality violation).
func Test_Discover_06_Minimality(t *testing.T) {
	r := buildRelation(t, []string{"A", "B", "C"}, [][]uint{
		{1, 1, 1},
		{1, 2, 2},
		{2, 1, 2},
		{2, 2, 1},
	})

	fds, err := Discover(r, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, f := range fds {
		for _, g := range fds {
			if f.RHS.Index != g.RHS.Index || f.LHS.Equals(g.LHS) {
				continue
			}

			if f.LHS.ContainsSet(g.LHS) && !f.LHS.Equals(g.LHS) {
				t.Fatalf("non-minimal FD emitted: %s dominated by %s", PrintFD(f, r.Schema()), PrintFD(g, r.Schema()))
			}
		}
	}
}
