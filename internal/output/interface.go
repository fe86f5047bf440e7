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

package output

import "github.com/prtabhq/prtab/internal/github"

// TableWriter defines the interface for writing pull request commit tables.
// This abstraction allows for different output formats to be implemented in
// the future without changing the orchestration logic.
type TableWriter interface {
	// WriteTable writes one complete table block for the given pull request
	// and its commits. The block is flushed as a single write.
	WriteTable(pr *github.PullRequest, commits []github.Commit) error

	// Close closes the underlying writer and releases any resources.
	// This should be called when all writing is complete.
	Close() error
}
