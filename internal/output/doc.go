// Copyright 2025 The prtab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package output renders per-pull-request commit tables.
//
// Each table block consists of a title line (`PR #<number> - <title>`), a
// four-column header (SHA, DATE, AUTHOR, MESSAGE), a dash separator row, one
// data row per commit, and a trailing blank line. Commit messages are
// truncated to their first line; dates are printed verbatim as the API
// returned them.
//
// The primary type is Writer, which writes blocks to an io.Writer or file.
// Each block is written atomically, so tables from consecutive pull requests
// never interleave.
package output
