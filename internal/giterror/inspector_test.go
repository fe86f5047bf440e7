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

package giterror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspectorAuthErrors(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"401 status", errors.New("github api returned status 401: Unauthorized"), true},
		{"bad credentials", errors.New("Bad credentials"), true},
		{"forbidden", fmt.Errorf("request failed: %w", errors.New("403 Forbidden")), true},
		{"unrelated", errors.New("something else went wrong"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inspector.IsAuthError(tt.err))
		})
	}
}

func TestInspectorNotFoundErrors(t *testing.T) {
	inspector := NewInspector()

	assert.False(t, inspector.IsNotFoundError(nil))
	assert.True(t, inspector.IsNotFoundError(errors.New("github api returned status 404: Not Found")))
	assert.True(t, inspector.IsNotFoundError(errors.New("repository not found")))
	assert.False(t, inspector.IsNotFoundError(errors.New("connection refused")))
}

func TestInspectorRateLimitErrors(t *testing.T) {
	inspector := NewInspector()

	assert.True(t, inspector.IsRateLimitError(errors.New("API rate limit exceeded for user")))
	assert.True(t, inspector.IsRateLimitError(errors.New("received status 429")))
	assert.False(t, inspector.IsRateLimitError(errors.New("404 not found")))
	assert.False(t, inspector.IsRateLimitError(nil))
}

func TestInspectorNetworkErrors(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"connection refused", errors.New(`Get "http://127.0.0.1:1": dial tcp 127.0.0.1:1: connect: connection refused`), true},
		{"dns failure", errors.New("no such host"), true},
		{"timeout", errors.New("context deadline exceeded (Client.Timeout exceeded)"), true},
		{"tls", errors.New("tls handshake failure"), true},
		{"http status", errors.New("github api returned status 500"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inspector.IsNetworkError(tt.err))
		})
	}
}
