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

// Package testutil provides common test helpers for prtab
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// CommitFixture describes one commit served by the mock GitHub server.
type CommitFixture struct {
	SHA     string
	Name    string
	Date    string
	Message string
}

// PullRequestFixture describes one pull request served by the mock server.
type PullRequestFixture struct {
	Number  int
	Title   string
	Commits []CommitFixture
}

// GitHubServer is a mock GitHub REST API server. It serves the single-PR and
// PR-commits endpoints from fixtures and records every request it receives.
type GitHubServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string

	// FailNumber, when non-zero, makes every request for that PR number
	// respond with FailStatus.
	FailNumber int
	FailStatus int
}

// NewGitHubServer creates a mock server for the given owner/repo serving the
// provided pull request fixtures. Unknown pull request numbers get a 404,
// requests without a token get a 401.
func NewGitHubServer(t *testing.T, owner, repo string, prs ...PullRequestFixture) *GitHubServer {
	t.Helper()

	byNumber := make(map[int]PullRequestFixture, len(prs))
	for _, pr := range prs {
		byNumber[pr.Number] = pr
	}

	gs := &GitHubServer{}
	gs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gs.record(r.URL.Path)

		if !strings.HasPrefix(r.Header.Get("Authorization"), "token ") {
			writeAPIError(w, http.StatusUnauthorized, "Requires authentication")
			return
		}

		var number int
		var wantCommits bool
		prefix := fmt.Sprintf("/repos/%s/%s/pulls/", owner, repo)
		rest, ok := strings.CutPrefix(r.URL.Path, prefix)
		if !ok {
			writeAPIError(w, http.StatusNotFound, "Not Found")
			return
		}
		if numStr, found := strings.CutSuffix(rest, "/commits"); found {
			wantCommits = true
			rest = numStr
		}
		if _, err := fmt.Sscanf(rest, "%d", &number); err != nil {
			writeAPIError(w, http.StatusNotFound, "Not Found")
			return
		}

		if gs.FailNumber != 0 && number == gs.FailNumber {
			writeAPIError(w, gs.FailStatus, http.StatusText(gs.FailStatus))
			return
		}

		pr, ok := byNumber[number]
		if !ok {
			writeAPIError(w, http.StatusNotFound, "Not Found")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if wantCommits {
			_ = json.NewEncoder(w).Encode(GenerateCommitsResponse(pr.Commits))
		} else {
			_ = json.NewEncoder(w).Encode(GeneratePullRequestResponse(pr))
		}
	}))

	t.Cleanup(gs.Close)
	return gs
}

// Requests returns the request paths received so far, in order.
func (gs *GitHubServer) Requests() []string {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return append([]string(nil), gs.requests...)
}

// RequestsFor returns how many requests mentioned the given PR number.
func (gs *GitHubServer) RequestsFor(number int) int {
	count := 0
	needle := fmt.Sprintf("/pulls/%d", number)
	for _, p := range gs.Requests() {
		if strings.Contains(p, needle) {
			count++
		}
	}
	return count
}

func (gs *GitHubServer) record(path string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.requests = append(gs.requests, path)
}

// NewErrorServer creates a mock server that always returns the specified error
func NewErrorServer(t *testing.T, statusCode int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, statusCode, http.StatusText(statusCode))
	}))
	t.Cleanup(server.Close)
	return server
}

// GeneratePullRequestResponse generates a single-PR response payload.
// It includes fields prtab does not decode, mirroring the real API.
func GeneratePullRequestResponse(pr PullRequestFixture) map[string]interface{} {
	return map[string]interface{}{
		"number":   pr.Number,
		"title":    pr.Title,
		"state":    "open",
		"html_url": fmt.Sprintf("https://github.example.com/pull/%d", pr.Number),
		"user": map[string]interface{}{
			"login": "octocat",
		},
	}
}

// GenerateCommitsResponse generates a PR commits response payload in
// fixture order, again with extra undecoded fields.
func GenerateCommitsResponse(commits []CommitFixture) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(commits))
	for _, c := range commits {
		out = append(out, map[string]interface{}{
			"sha":     c.SHA,
			"node_id": "MDY6Q29tbWl0",
			"commit": map[string]interface{}{
				"author": map[string]interface{}{
					"name":  c.Name,
					"email": "dev@example.com",
					"date":  c.Date,
				},
				"committer": map[string]interface{}{
					"name": c.Name,
					"date": c.Date,
				},
				"message": c.Message,
			},
		})
	}
	return out
}

func writeAPIError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, `{"message": %q}`, message)
}
