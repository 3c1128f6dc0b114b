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

// Column represents a single column of a Schema.  Its identity is the pair
// (schema, index); rather than holding a live back-reference to its Schema
// (which would require either a pointer cycle or a weak reference), a Column
// holds only its own index and resolves its schema through whichever call
// carries the Schema value.
type Column struct {
	// Index is this column's position in the schema, 0..numColumns-1.
	Index uint
	// Name is the column's declared name.
	Name string
}

// NewColumn constructs a new column at the given index.
func NewColumn(index uint, name string) Column {
	return Column{index, name}
}

//nolint:revive
func (c Column) String() string {
	return c.Name
}

// Schema is an ordered sequence of Columns, shared read-only by every
// AttributeSet and Relation built from it.
type Schema struct {
	columns []Column
}

// NewSchema constructs a schema from an ordered list of column names.
func NewSchema(names ...string) *Schema {
	columns := make([]Column, len(names))
	for i, n := range names {
		columns[i] = NewColumn(uint(i), n)
	}

	return &Schema{columns}
}

// NumColumns returns the number of columns in this schema.
func (s *Schema) NumColumns() uint {
	return uint(len(s.columns))
}

// Column returns the column at the given index.
func (s *Schema) Column(index uint) Column {
	return s.columns[index]
}

// Columns returns every column in this schema, in index order.
func (s *Schema) Columns() []Column {
	return s.columns
}

// EmptyVertical returns the empty AttributeSet for this schema.
func (s *Schema) EmptyVertical() AttributeSet {
	return EmptyAttributeSet(s.NumColumns())
}

// Vertical constructs an AttributeSet over this schema containing the given
// columns.
func (s *Schema) Vertical(columns ...uint) AttributeSet {
	return NewAttributeSet(s.NumColumns(), columns...)
}

// FullVertical returns the AttributeSet containing every column in this
// schema.
func (s *Schema) FullVertical() AttributeSet {
	return s.EmptyVertical().Invert()
}

// ColumnNames returns the names of the given columns, in the order given.
func (s *Schema) ColumnNames(columns []uint) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = s.columns[c].Name
	}

	return names
}

//nolint:revive
func (s *Schema) String() string {
	return fmt.Sprintf("%v", s.columns)
}
