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

// Package termio provides small terminal-awareness helpers for CLI output
// formatting.
package termio

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used whenever stdout is not a terminal (e.g. piped to a
// file) and no width can be determined.
const DefaultWidth = 80

// Width returns the current width of the terminal attached to stdout, or
// DefaultWidth when stdout is not a terminal.
func Width() uint {
	fd := int(os.Stdout.Fd())

	if !term.IsTerminal(fd) {
		return DefaultWidth
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}

	return uint(w)
}
