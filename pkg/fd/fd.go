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
	"strings"
)

// FD is a discovered functional dependency LHS -> RHS: every pair of rows
// agreeing on every column of LHS also agrees on RHS. LHS never contains
// RHS.
type FD struct {
	LHS AttributeSet
	RHS Column
}

// NewFD constructs the FD lhs -> rhs.
func NewFD(lhs AttributeSet, rhs Column) FD {
	return FD{lhs, rhs}
}

// String renders the FD using column indices rather than names, since FD
// itself holds no schema reference; use PrintFD for the name-based form.
func (f FD) String() string {
	cols := f.LHS.Columns()
	if len(cols) == 0 {
		return fmt.Sprintf("[] -> %d", f.RHS.Index)
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = fmt.Sprintf("%d", c)
	}

	return fmt.Sprintf("{%s} -> %d", strings.Join(names, "|"), f.RHS.Index)
}

// PrintFD renders fd's canonical printable form using schema for column
// names: "{colName|colName|...} -> colName", LHS columns in ascending index
// order, empty LHS as "[]".
func PrintFD(fd FD, schema *Schema) string {
	cols := fd.LHS.Columns()
	if len(cols) == 0 {
		return fmt.Sprintf("[] -> %s", fd.RHS.Name)
	}

	names := schema.ColumnNames(cols)

	return fmt.Sprintf("{%s} -> %s", strings.Join(names, "|"), fd.RHS.Name)
}
