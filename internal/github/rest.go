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

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	prtaberrors "github.com/prtabhq/prtab/internal/errors"
	"github.com/prtabhq/prtab/internal/giterror"
	"github.com/prtabhq/prtab/pkg/version"
)

// RESTClient implements the Client interface against the GitHub REST v3 API.
//
// The underlying HTTP client carries no timeout and no retry policy: a fetch
// is attempted exactly once and a stalled endpoint stalls the run. Callers
// that need cancellation pass it through the request context.
type RESTClient struct {
	rc        *resty.Client
	inspector giterror.Inspector
}

// NewRESTClient creates a GitHub REST client for the given endpoint
// (e.g. https://api.github.com). Every request it issues carries the
// `Authorization: token <token>` and `User-Agent: prtab/<version>` headers.
func NewRESTClient(token, endpoint string) *RESTClient {
	rc := resty.New().
		SetHostURL(endpoint).
		SetHeader("Authorization", "token "+token).
		SetHeader("Accept", "application/vnd.github.v3+json").
		SetHeader("User-Agent", fmt.Sprintf("prtab/%s", version.Version))

	return &RESTClient{
		rc:        rc,
		inspector: giterror.NewInspector(),
	}
}

// FetchPullRequest retrieves the metadata of a single pull request.
func (c *RESTClient) FetchPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error) {
	body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, number), owner, repo)
	if err != nil {
		return nil, err
	}

	pr := &PullRequest{}
	if err := json.Unmarshal(body, pr); err != nil {
		return nil, fmt.Errorf("failed to decode pull request #%d: %v: %w", number, err, prtaberrors.ErrBadResponse)
	}

	return pr, nil
}

// FetchCommits retrieves the commits of a pull request in API order.
func (c *RESTClient) FetchCommits(ctx context.Context, owner, repo string, number int) ([]Commit, error) {
	body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/pulls/%d/commits", owner, repo, number), owner, repo)
	if err != nil {
		return nil, err
	}

	var commits []Commit
	if err := json.Unmarshal(body, &commits); err != nil {
		return nil, fmt.Errorf("failed to decode commits of pull request #%d: %v: %w", number, err, prtaberrors.ErrBadResponse)
	}

	return commits, nil
}

// get issues a single authenticated GET and returns the response body.
// Transport errors and non-2xx statuses are mapped to sentinel errors.
func (c *RESTClient) get(ctx context.Context, path, owner, repo string) ([]byte, error) {
	log.Debug().Str("path", path).Msg("requesting github api")

	r, err := c.rc.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, c.mapTransportError(err)
	}

	if r.IsError() {
		return nil, c.mapStatusError(r, owner, repo)
	}

	return r.Body(), nil
}

// mapTransportError classifies errors that occurred before any HTTP status
// was received (DNS, refused connections, TLS, canceled contexts).
func (c *RESTClient) mapTransportError(err error) error {
	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to GitHub API: %v: %w", err, prtaberrors.ErrNetworkFailure)
	}
	return fmt.Errorf("github api request failed: %w", err)
}

// mapStatusError maps a non-2xx response to a sentinel error with an
// actionable message. The API's own message field is included when present.
func (c *RESTClient) mapStatusError(r *resty.Response, owner, repo string) error {
	status := r.StatusCode()
	apiMsg := gjson.GetBytes(r.Body(), "message").String()
	if apiMsg == "" {
		apiMsg = http.StatusText(status)
	}

	// Check rate limit first, as 403 can be both auth and rate limit.
	if status == http.StatusTooManyRequests || c.inspector.IsRateLimitError(fmt.Errorf("%s", apiMsg)) {
		return fmt.Errorf("GitHub API rate limit exceeded (%s): %w", apiMsg, prtaberrors.ErrRateLimit)
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("GitHub API authentication failed (%s). Please provide a valid token: %w",
			apiMsg, prtaberrors.ErrInvalidToken)
	case http.StatusNotFound:
		return fmt.Errorf("'%s/%s' or the requested pull request was not found (%s). Please check the repository name and your access permissions: %w",
			owner, repo, apiMsg, prtaberrors.ErrRepoNotFound)
	default:
		return fmt.Errorf("github api returned status %d: %s", status, apiMsg)
	}
}
