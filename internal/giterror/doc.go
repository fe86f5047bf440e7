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

// Package giterror classifies errors returned while talking to the GitHub
// API. HTTP status codes carry most of the signal, but transport-level
// failures (DNS, refused connections, TLS) surface as opaque error strings
// from the HTTP client; the Inspector recognizes those so the CLI can map
// them to the right sentinel error and exit code.
package giterror
