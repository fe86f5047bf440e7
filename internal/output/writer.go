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

package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gosuri/uitable"

	"github.com/prtabhq/prtab/internal/github"
)

// Writer renders commit tables to a file or io.Writer.
type Writer struct {
	mu        sync.Mutex
	output    io.Writer
	count     int
	closeFunc func() error
}

// NewWriter creates a table writer that writes to the specified output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{output: w}
}

// NewFileWriter creates a table writer that writes to a file.
// The caller must call Close() when done to ensure the file is properly closed.
func NewFileWriter(filename string) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		output:    file,
		closeFunc: file.Close,
	}, nil
}

// WriteTable writes one table block for a pull request and its commits.
// The block is rendered in memory first and flushed with a single write, so
// blocks from consecutive pull requests never interleave.
func (w *Writer) WriteTable(pr *github.PullRequest, commits []github.Commit) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "PR #%d - %s\n", pr.Number, pr.Title)

	table := uitable.New()
	table.AddRow("SHA", "DATE", "AUTHOR", "MESSAGE")
	table.AddRow("---", "----", "------", "-------")
	for _, c := range commits {
		table.AddRow(c.SHA, c.Commit.Author.Date, c.Commit.Author.Name, firstLine(c.Commit.Message))
	}
	fmt.Fprintln(&buf, table.String())

	buf.WriteByte('\n')

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.output.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of table blocks written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the underlying writer if it's a file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}

// firstLine returns the text before the first line break of a commit
// message, with a trailing carriage return stripped.
func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		message = message[:i]
	}
	return strings.TrimRight(message, "\r")
}
