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

package integration

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prtabhq/prtab/test/testutil"
)

func TestCLI_InvalidRepoFormat(t *testing.T) {
	tests := []struct {
		name string
		repo string
	}{
		{name: "missing slash", repo: "invalid-repo-format"},
		{name: "too many slashes", repo: "org/repo/extra"},
		{name: "empty owner", repo: "/repo"},
		{name: "empty repo", repo: "owner/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testutil.RunCLI(t,
				[]string{"fetch", tt.repo, "1", "--token", "x"},
				nil)

			assert.Equal(t, 1, result.ExitCode)
			assert.Contains(t, result.Stderr, "invalid repository format")
		})
	}
}

func TestCLI_InvalidPullRequestNumber(t *testing.T) {
	for _, arg := range []string{"zero", "0"} {
		result := testutil.RunCLI(t,
			[]string{"fetch", "octo/repo", arg, "--token", "x"},
			nil)

		assert.Equal(t, 1, result.ExitCode, "arg %q", arg)
		assert.Contains(t, result.Stderr, "invalid pull request number")
	}
}

func TestCLI_MissingToken(t *testing.T) {
	result := testutil.RunCLI(t,
		[]string{"fetch", "octo/repo", "1"},
		map[string]string{"GITHUB_TOKEN": ""})

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "GitHub token not found")
}

func TestCLI_FetchRendersTablesInOrder(t *testing.T) {
	server := testutil.NewGitHubServer(t, "octo", "repo",
		testutil.PullRequestFixture{
			Number: 42,
			Title:  "Fix bug",
			Commits: []testutil.CommitFixture{
				{SHA: "abc123", Name: "Alice", Date: "2024-01-01", Message: "Fix null pointer\n\nDetails..."},
			},
		},
		testutil.PullRequestFixture{
			Number:  43,
			Title:   "Docs only",
			Commits: nil,
		},
	)

	result := testutil.RunCLI(t,
		[]string{"fetch", "octo/repo", "42", "43", "--endpoint", server.URL, "--token", "test-token"},
		nil)

	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)

	out := result.Stdout
	assert.Contains(t, out, "PR #42 - Fix bug")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "Fix null pointer")
	assert.NotContains(t, out, "Details...")
	assert.Contains(t, out, "PR #43 - Docs only")

	// Input order is output order, blocks never interleave.
	assert.Less(t, strings.Index(out, "PR #42"), strings.Index(out, "PR #43"))
}

func TestCLI_TokenFile(t *testing.T) {
	server := testutil.NewGitHubServer(t, "octo", "repo",
		testutil.PullRequestFixture{Number: 1, Title: "One"})

	tokenPath := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(tokenPath, []byte("  file-token\n"), 0o600))

	result := testutil.RunCLI(t,
		[]string{"fetch", "octo/repo", "1", "--endpoint", server.URL, "--token-file", tokenPath},
		map[string]string{"GITHUB_TOKEN": ""})

	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	assert.Contains(t, result.Stdout, "PR #1 - One")
}

func TestCLI_OutputFile(t *testing.T) {
	server := testutil.NewGitHubServer(t, "octo", "repo",
		testutil.PullRequestFixture{
			Number:  5,
			Title:   "To file",
			Commits: []testutil.CommitFixture{{SHA: "aaa111", Name: "Carol", Date: "2024-02-03", Message: "One commit"}},
		})

	outPath := filepath.Join(t.TempDir(), "tables.txt")
	result := testutil.RunCLI(t,
		[]string{"fetch", "octo/repo", "5", "--endpoint", server.URL, "--token", "x", "--output", outPath},
		nil)

	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	assert.Empty(t, result.Stdout)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "PR #5 - To file")
	assert.Contains(t, string(data), "aaa111")
}

func TestCLI_HaltsOnFirstFailure(t *testing.T) {
	server := testutil.NewGitHubServer(t, "octo", "repo",
		testutil.PullRequestFixture{Number: 1, Title: "One"},
		testutil.PullRequestFixture{Number: 3, Title: "Three"},
	)

	// PR 2 does not exist: the run must stop before PR 3 is ever requested.
	result := testutil.RunCLI(t,
		[]string{"fetch", "octo/repo", "1", "2", "3", "--endpoint", server.URL, "--token", "x"},
		nil)

	assert.Equal(t, 2, result.ExitCode)
	assert.Contains(t, result.Stdout, "PR #1 - One")
	assert.NotContains(t, result.Stdout, "PR #3")
	assert.Zero(t, server.RequestsFor(3))
}

func TestCLI_ServerErrorExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantCode: 2},
		{name: "not found", status: http.StatusNotFound, wantCode: 2},
		{name: "rate limited", status: http.StatusTooManyRequests, wantCode: 2},
		{name: "server error", status: http.StatusInternalServerError, wantCode: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewErrorServer(t, tt.status)

			result := testutil.RunCLI(t,
				[]string{"fetch", "octo/repo", "1", "--endpoint", server.URL, "--token", "x"},
				nil)

			assert.Equal(t, tt.wantCode, result.ExitCode)
			assert.Empty(t, result.Stdout)
		})
	}
}
