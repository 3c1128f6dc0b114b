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

// NullCode is the reserved dictionary code meaning "missing/null value".  It
// never participates in a cluster: two rows both holding NullCode are never
// considered to agree on that column, matching SQL NULL semantics.
const NullCode = 0

// PositionListIndex (PLI) partitions the row indices of one column into
// equivalence clusters of rows sharing the same dictionary code, excluding
// singleton clusters (a code seen by exactly one row) and excluding NullCode
// entirely.  Cluster order is the order in which each code was first seen in
// the source table.
type PositionListIndex struct {
	clusters [][]uint
	size     uint
}

// NewPositionListIndex builds a PLI from a column's per-row dictionary codes.
func NewPositionListIndex(codes []uint) *PositionListIndex {
	var (
		order  []uint
		groups = make(map[uint][]uint)
	)

	for row, code := range codes {
		if code == NullCode {
			continue
		}

		if _, ok := groups[code]; !ok {
			order = append(order, code)
		}

		groups[code] = append(groups[code], uint(row))
	}

	pli := &PositionListIndex{}

	for _, code := range order {
		rows := groups[code]
		if len(rows) < 2 {
			continue
		}

		pli.clusters = append(pli.clusters, rows)
		pli.size += uint(len(rows))
	}

	return pli
}

// Clusters returns the ordered list of equivalence clusters, each of size >=
// 2, in first-occurrence order.
func (p *PositionListIndex) Clusters() [][]uint {
	return p.clusters
}

// Size returns the sum of all cluster sizes (i.e. rows participating in some
// non-singleton cluster).
func (p *PositionListIndex) Size() uint {
	return p.size
}

// NumNonSingletonClusters returns the number of (non-singleton) clusters.
func (p *PositionListIndex) NumNonSingletonClusters() uint {
	return uint(len(p.clusters))
}

// IsConstant reports whether this PLI shows every row of the relation sharing
// one value: a single cluster whose size equals numRows. A relation with no
// rows satisfies this vacuously -- there are no rows to disagree.
func (p *PositionListIndex) IsConstant(numRows uint) bool {
	if numRows == 0 {
		return true
	}

	return len(p.clusters) == 1 && p.size == numRows
}

// ColumnData holds one column's per-row dictionary codes together with its
// derived PLI.
type ColumnData struct {
	column Column
	codes  []uint
	pli    *PositionListIndex
}

// NewColumnData constructs ColumnData for a column given its per-row
// dictionary codes (0 reserved for null).
func NewColumnData(column Column, codes []uint) *ColumnData {
	return &ColumnData{column, codes, NewPositionListIndex(codes)}
}

// Column returns the Column this data belongs to.
func (c *ColumnData) Column() Column {
	return c.column
}

// Code returns the dictionary code of this column at the given row.
func (c *ColumnData) Code(row uint) uint {
	return c.codes[row]
}

// PLI returns this column's position list index.
func (c *ColumnData) PLI() *PositionListIndex {
	return c.pli
}
