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

// Package github provides a minimal client for the GitHub REST v3 API,
// covering the two endpoints prtab needs: single pull request metadata and
// the pull request commit list.
//
// Every request carries the `Authorization: token <token>` and
// `User-Agent: prtab/<version>` headers. Responses are decoded into structs
// that ignore unknown fields, so new API fields never break the client.
// Failures are classified into the sentinel errors of internal/errors; the
// caller treats all of them as fatal.
package github
