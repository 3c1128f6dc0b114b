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
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aartdem/fastfds/pkg/fd"
)

// LoadCSV reads a CSV or tab-delimited file with a single header row and
// builds a fd.Relation from it. Each column is dictionary-encoded
// independently, in first-occurrence order; empty cells map to fd.NullCode.
func LoadCSV(path string) (*fd.Relation, *Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	header, rows, err := readTable(f, path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	schema := fd.NewSchema(header...)
	encoders := make([]*columnEncoder, len(header))

	for i := range header {
		encoders[i] = newColumnEncoder()
	}

	columns := make([][]uint, len(header))
	for c := range header {
		columns[c] = make([]uint, len(rows))
	}

	for r, row := range rows {
		for c := range header {
			var cell string
			if c < len(row) {
				cell = row[c]
			}

			columns[c][r] = encoders[c].encode(cell)
		}
	}

	relation, err := fd.NewRelation(schema, columns)
	if err != nil {
		return nil, nil, err
	}

	dict := &Dictionary{
		columnNames: header,
		codeToValue: make([][]string, len(header)),
	}

	for c, e := range encoders {
		dict.codeToValue[c] = e.values
	}

	return relation, dict, nil
}

// readTable dispatches on file extension: ".csv" uses encoding/csv,
// anything else is treated as tab-delimited.
func readTable(f *os.File, path string) ([]string, [][]string, error) {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		rdr := csv.NewReader(f)

		data, err := rdr.ReadAll()
		if err != nil {
			return nil, nil, err
		}

		if len(data) == 0 {
			return nil, nil, fmt.Errorf("empty file")
		}

		return data[0], data[1:], nil
	}

	var (
		header []string
		rows   [][]string
	)

	s := bufio.NewScanner(f)
	for s.Scan() {
		row := strings.Split(s.Text(), "\t")
		if header == nil {
			header = row
			continue
		}

		rows = append(rows, row)
	}

	if err := s.Err(); err != nil {
		return nil, nil, err
	}

	if header == nil {
		return nil, nil, fmt.Errorf("empty file")
	}

	return header, rows, nil
}
