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

// Package fd implements FastFDs, a difference-set based algorithm for
// discovering every minimal exact functional dependency holding over a
// columnar, dictionary-encoded relation.
package fd

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Discover runs FastFDs over relation and returns every minimal, non-trivial
// exact functional dependency it holds. log receives progress messages at
// each pipeline stage boundary; pass nil to discard them.
func Discover(relation *Relation, log *logrus.Entry) ([]FD, error) {
	if relation.NumColumns() == 0 {
		return nil, fmt.Errorf("FD mining is meaningless on an empty relation")
	}

	if log == nil {
		log = discardEntry()
	}

	diffSets := computeDiffSets(relation)
	log.WithField("count", len(diffSets)).Debug("computed diff-sets")

	if len(diffSets) == 1 && diffSets[0].IsEmpty() {
		return nil, nil
	}

	sink := &fdSink{}

	for _, column := range relation.Schema().Columns() {
		mod := diffSetsModulo(diffSets, column.Index)

		switch {
		case len(mod) == 0:
			log.WithField("rhs", column.Name).Debug("constant column, registering empty LHS")
			sink.register(relation.EmptyVertical(), column)
		case len(mod) == 1 && mod[0].IsEmpty():
			log.WithField("rhs", column.Name).Debug("no cover possible")
		default:
			search := &coverSearch{
				diffSetsMod: mod,
				width:       relation.NumColumns(),
				rhs:         column.Index,
				emit: func(lhs AttributeSet) {
					sink.register(lhs, column)
				},
			}
			search.find()
		}
	}

	sink.verifyFDsWithEmptyLHS(relation)

	return sink.fds, nil
}

func discardEntry() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(nullWriter{})

	return logrus.NewEntry(l)
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
