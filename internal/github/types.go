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

// PullRequest represents the metadata of a single GitHub pull request.
// Only the fields prtab displays are decoded; everything else in the
// response body is ignored for forward compatibility.
type PullRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// Commit is one entry of a pull request's commit list, as returned by
// GET /repos/{owner}/{repo}/pulls/{number}/commits.
type Commit struct {
	SHA    string       `json:"sha"`
	Commit CommitDetail `json:"commit"`
}

// CommitDetail carries the git-level commit data nested under "commit".
type CommitDetail struct {
	Author  CommitAuthor `json:"author"`
	Message string       `json:"message"`
}

// CommitAuthor identifies who authored a commit and when. The date is kept
// as the raw API string and displayed verbatim.
type CommitAuthor struct {
	Name string `json:"name"`
	Date string `json:"date"`
}
