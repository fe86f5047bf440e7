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

package github

import "context"

// Client defines the interface for interacting with GitHub's API.
// This interface allows for easy mocking in tests.
type Client interface {
	// FetchPullRequest retrieves the metadata of a single pull request,
	// most importantly its title.
	FetchPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error)

	// FetchCommits retrieves the commits of a pull request in the order the
	// API returns them. The list is never re-sorted or deduplicated.
	FetchCommits(ctx context.Context, owner, repo string, number int) ([]Commit, error)
}
