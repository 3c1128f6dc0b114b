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

import "fmt"

// Relation is a loaded columnar, dictionary-encoded table: a Schema plus, for
// every column, its per-row codes and PLI.  Relation is constructed once per
// discovery and is read-only thereafter.
type Relation struct {
	schema  *Schema
	numRows uint
	columns []*ColumnData
}

// NewRelation constructs a Relation from a schema and, for each schema
// column in order, that column's per-row dictionary codes.  Every codes
// slice must have the same length (the number of rows); NullCode (0) marks a
// missing value.
func NewRelation(schema *Schema, columns [][]uint) (*Relation, error) {
	if schema.NumColumns() == 0 {
		return nil, fmt.Errorf("FD mining is meaningless on an empty relation")
	}

	if uint(len(columns)) != schema.NumColumns() {
		return nil, fmt.Errorf("expected %d columns, got %d", schema.NumColumns(), len(columns))
	}

	var numRows uint
	if len(columns) > 0 {
		numRows = uint(len(columns[0]))
	}

	data := make([]*ColumnData, len(columns))

	for i, codes := range columns {
		if uint(len(codes)) != numRows {
			return nil, fmt.Errorf("column %d has %d rows, expected %d", i, len(codes), numRows)
		}

		data[i] = NewColumnData(schema.Column(uint(i)), codes)
	}

	return &Relation{schema, numRows, data}, nil
}

// NumRows returns the number of rows (tuples) in this relation.
func (r *Relation) NumRows() uint {
	return r.numRows
}

// NumColumns returns the number of columns in this relation's schema.
func (r *Relation) NumColumns() uint {
	return r.schema.NumColumns()
}

// Schema returns this relation's schema.
func (r *Relation) Schema() *Schema {
	return r.schema
}

// ColumnData returns the per-column data for the given column index.
func (r *Relation) ColumnData(index uint) *ColumnData {
	return r.columns[index]
}

// AllColumnData returns every column's data, in schema order.
func (r *Relation) AllColumnData() []*ColumnData {
	return r.columns
}

// EmptyVertical returns the empty AttributeSet over this relation's schema.
func (r *Relation) EmptyVertical() AttributeSet {
	return r.schema.EmptyVertical()
}

// Vertical constructs an AttributeSet over this relation's schema.
func (r *Relation) Vertical(columns ...uint) AttributeSet {
	return r.schema.Vertical(columns...)
}

// FullVertical returns the AttributeSet containing every column of this
// relation's schema.
func (r *Relation) FullVertical() AttributeSet {
	return r.schema.FullVertical()
}
