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
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aartdem/fastfds/pkg/fd"
	"github.com/aartdem/fastfds/pkg/ingest"
	"github.com/aartdem/fastfds/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// discoverCmd represents the discover command.
var discoverCmd = &cobra.Command{
	Use:   "discover <file.csv>",
	Short: "Discover minimal functional dependencies in a data file.",
	Long:  "Discover every minimal, non-trivial exact functional dependency holding over a CSV or tab-delimited data file.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		excluded := GetStringSlice(cmd, "exclude")
		format := GetString(cmd, "format")

		if format != "text" && format != "json" {
			fmt.Printf("unknown format %q, expected \"text\" or \"json\"\n", format)
			os.Exit(1)
		}

		relation, dict, err := ingest.LoadCSV(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		relation, err = excludeColumns(relation, dict.ColumnNames(), excluded)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fds, err := fd.Discover(relation, log.WithField("cmd", "discover"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		lines := printableFDs(fds, relation.Schema())

		if format == "json" {
			printJSON(lines)
		} else {
			printText(lines)
		}
	},
}

// excludeColumns drops the named columns from relation, returning a relation
// over the remaining columns in their original order. Excluding every column
// is rejected the same way an empty schema is.
func excludeColumns(relation *fd.Relation, names []string, excluded []string) (*fd.Relation, error) {
	if len(excluded) == 0 {
		return relation, nil
	}

	drop := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		drop[name] = true
	}

	var (
		keptNames []string
		keptData  [][]uint
	)

	for _, col := range relation.Schema().Columns() {
		if drop[col.Name] {
			continue
		}

		keptNames = append(keptNames, col.Name)

		data := relation.ColumnData(col.Index)
		codes := make([]uint, relation.NumRows())

		for r := uint(0); r < relation.NumRows(); r++ {
			codes[r] = data.Code(r)
		}

		keptData = append(keptData, codes)
	}

	schema := fd.NewSchema(keptNames...)

	return fd.NewRelation(schema, keptData)
}

func printableFDs(fds []fd.FD, schema *fd.Schema) []string {
	lines := make([]string, len(fds))
	for i, f := range fds {
		lines[i] = fd.PrintFD(f, schema)
	}

	sort.Strings(lines)

	return lines
}

func printText(lines []string) {
	width := termio.Width()

	for _, line := range lines {
		if uint(len(line)) <= width {
			fmt.Println(line)
			continue
		}

		fmt.Println(wrap(line, width))
	}
}

// wrap breaks a printable FD line across multiple terminal lines at '|'
// boundaries on the LHS when it would otherwise overflow width.
func wrap(line string, width uint) string {
	parts := strings.Split(line, "|")
	if len(parts) == 1 {
		return line
	}

	var (
		b   strings.Builder
		cur string
	)

	for i, p := range parts {
		sep := "|"
		if i == 0 {
			sep = ""
		}

		if uint(len(cur)+len(sep)+len(p)) > width && cur != "" {
			b.WriteString(cur)
			b.WriteString("\n  ")
			cur = p
		} else {
			cur += sep + p
		}
	}

	b.WriteString(cur)

	return b.String()
}

func printJSON(lines []string) {
	out, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println(string(out))
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().StringSlice("exclude", nil, "comma-separated column names to exclude from discovery")
	discoverCmd.Flags().String("format", "text", "output format: text or json")
}
