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

// Package version holds the build version of prtab. The Version variable
// is overridden at build time via -ldflags and is reported both by the
// --version flag and in the User-Agent header sent to the GitHub API.
package version

// Version is the current prtab version. Overridden at release time with:
//
//	go build -ldflags "-X github.com/prtabhq/prtab/pkg/version.Version=v1.2.3"
var Version = "dev"
