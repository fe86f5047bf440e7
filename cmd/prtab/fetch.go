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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prtabhq/prtab/internal/config"
	prtaberrors "github.com/prtabhq/prtab/internal/errors"
	"github.com/prtabhq/prtab/internal/github"
	"github.com/prtabhq/prtab/internal/output"
)

// fetchFlags holds the flag values of the fetch command.
type fetchFlags struct {
	token      string
	tokenFile  string
	endpoint   string
	configPath string
	outputFile string
}

// fetchCmd represents the fetch command
func newFetchCommand() *cobra.Command {
	var flags fetchFlags

	cmd := &cobra.Command{
		Use:   "fetch <owner>/<repo> <pr-number> [<pr-number>...]",
		Short: "Fetch pull requests and print their commit tables",
		Long: `Fetch pull request titles and commit lists from a GitHub repository and
print one table per pull request, in the order given.

The repository must be specified in the format: <owner>/<repo>
For example: golang/go, kubernetes/kubernetes

Authentication is required via GitHub token:
  - Use --token to provide the token directly
  - Use --token-file to read it from a file (trimmed contents are used verbatim)
  - Or set the GITHUB_TOKEN environment variable

Pull requests are fetched strictly one after another; the first failure
aborts the run without fetching the remaining numbers.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.token, "token", "", "GitHub personal access token (overrides --token-file and the environment)")
	cmd.Flags().StringVar(&flags.tokenFile, "token-file", "", "Path to a file containing the GitHub token")
	cmd.Flags().StringVar(&flags.endpoint, "endpoint", "", "GitHub API endpoint (default: https://api.github.com, for GitHub Enterprise)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&flags.outputFile, "output", "", "Output file path (default: stdout)")

	return cmd
}

// runFetch executes the fetch command: it resolves configuration and
// credentials, then walks the pull request numbers in input order. Each
// iteration performs the title fetch, the commit list fetch, and the table
// write before the next number is touched.
func runFetch(ctx context.Context, args []string, flags fetchFlags) error {
	owner, repo, err := parseRepository(args[0])
	if err != nil {
		return err
	}

	numbers, err := parsePullRequestNumbers(args[1:])
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if flags.endpoint != "" {
		cfg.GitHub.APIEndpoint = flags.endpoint
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	token, err := resolveToken(flags.token, flags.tokenFile, cfg.GitHub.TokenEnv)
	if err != nil {
		return err
	}

	var writer output.TableWriter
	if flags.outputFile == "" {
		writer = output.NewWriter(os.Stdout)
	} else {
		fileWriter, fErr := output.NewFileWriter(flags.outputFile)
		if fErr != nil {
			return fErr
		}
		writer = fileWriter
	}
	defer writer.Close()

	client := github.NewRESTClient(token, cfg.GitHub.APIEndpoint)

	return fetchAndRender(ctx, client, writer, owner, repo, numbers)
}

// fetchAndRender runs the sequential per-PR loop against the given client
// and writer. The first fetch or write failure aborts the remaining numbers.
func fetchAndRender(ctx context.Context, client github.Client, writer output.TableWriter, owner, repo string, numbers []int) error {
	for _, number := range numbers {
		pr, err := client.FetchPullRequest(ctx, owner, repo, number)
		if err != nil {
			return err
		}

		commits, err := client.FetchCommits(ctx, owner, repo, number)
		if err != nil {
			return err
		}

		if err := writer.WriteTable(pr, commits); err != nil {
			return err
		}
	}

	return nil
}

// parseRepository parses an owner/repo string into owner and repo components
func parseRepository(repoArg string) (owner, repo string, err error) {
	parts := strings.Split(repoArg, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got: %s", repoArg)
	}

	owner = strings.TrimSpace(parts[0])
	repo = strings.TrimSpace(parts[1])

	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got: %s", repoArg)
	}

	return owner, repo, nil
}

// parsePullRequestNumbers parses the remaining arguments as positive
// pull request numbers, preserving their order.
func parsePullRequestNumbers(args []string) ([]int, error) {
	numbers := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid pull request number: %s", arg)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// resolveToken returns the GitHub token from, in precedence order: the
// --token flag, the --token-file contents (trimmed), or the configured
// environment variable.
func resolveToken(flagToken, tokenFile, tokenEnv string) (string, error) {
	if flagToken != "" {
		return flagToken, nil
	}

	if tokenFile != "" {
		data, err := os.ReadFile(tokenFile)
		if err != nil {
			return "", fmt.Errorf("failed to read token file: %w", err)
		}
		token := strings.TrimSpace(string(data))
		if token == "" {
			return "", fmt.Errorf("token file %s is empty", tokenFile)
		}
		return token, nil
	}

	if token := os.Getenv(tokenEnv); token != "" {
		return token, nil
	}

	return "", fmt.Errorf("GitHub token not found. Set %s, or use --token or --token-file", tokenEnv)
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	// Check for specific error types
	if errors.Is(err, prtaberrors.ErrInvalidToken) ||
		errors.Is(err, prtaberrors.ErrRepoNotFound) ||
		errors.Is(err, prtaberrors.ErrRateLimit) {
		return 2 // Authentication/authorization errors
	}

	if errors.Is(err, prtaberrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
