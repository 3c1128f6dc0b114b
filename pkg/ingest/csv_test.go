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
package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aartdem/fastfds/pkg/util/assert"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	return path
}

func Test_LoadCSV_01_CommaDelimited(t *testing.T) {
	path := writeTempFile(t, "data.csv", "A,B\n1,x\n2,y\n1,x\n")

	relation, dict, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, []string{"A", "B"}, dict.ColumnNames())
	assert.Equal(t, uint(3), relation.NumRows())
	assert.Equal(t, uint(2), relation.NumColumns())

	// Rows 0 and 2 share the same A and B cell text, so they must share codes.
	assert.Equal(t, relation.ColumnData(0).Code(0), relation.ColumnData(0).Code(2))
	assert.Equal(t, relation.ColumnData(1).Code(0), relation.ColumnData(1).Code(2))
	assert.Equal(t, "x", dict.Value(1, relation.ColumnData(1).Code(0)))
}

func Test_LoadCSV_02_TabDelimited(t *testing.T) {
	path := writeTempFile(t, "data.tsv", "A\tB\n1\tx\n2\ty\n")

	relation, dict, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, uint(2), relation.NumRows())
	assert.Equal(t, []string{"A", "B"}, dict.ColumnNames())
}

func Test_LoadCSV_03_EmptyCellIsNullCode(t *testing.T) {
	path := writeTempFile(t, "data.csv", "A,B\n1,\n2,y\n")

	relation, _, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, uint(0), relation.ColumnData(1).Code(0))
}

func Test_LoadCSV_04_DictionaryRoundTrip(t *testing.T) {
	path := writeTempFile(t, "data.csv", "Name,City\nAda,London\nAlan,Paris\nAda,London\n")

	relation, dict, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for row := uint(0); row < relation.NumRows(); row++ {
		code := relation.ColumnData(0).Code(row)
		if code == 0 {
			t.Fatalf("row %d: unexpected NullCode for a populated cell", row)
		}
	}

	assert.Equal(t, "Ada", dict.Value(0, relation.ColumnData(0).Code(0)))
	assert.Equal(t, "London", dict.Value(1, relation.ColumnData(1).Code(0)))
}

func Test_LoadCSV_05_MissingFile(t *testing.T) {
	_, _, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func Test_LoadCSV_06_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "data.csv", "")

	_, _, err := LoadCSV(path)
	if err == nil {
		t.Fatalf("expected an error for an empty file")
	}
}
