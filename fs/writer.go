// Package fs provides file-based persistence for exported site trees.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/kwrobel/sitetree"
)

// FormatTree serializes a tree as deterministic, diff-friendly JSON: two
// space indentation and a trailing newline.
func FormatTree(root *sitetree.Node) ([]byte, error) {
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Ensure Writer implements sitetree.TreeWriter at compile time.
var _ sitetree.TreeWriter = (*Writer)(nil)

// Writer persists site trees as pretty-printed JSON artifacts with atomic
// update semantics. The artifact lands in a temporary file next to the
// destination and moves into place on success, so a failed write never
// clobbers the previous artifact.
type Writer struct {
	path string
}

// NewWriter creates a new Writer targeting path. Parent directories are
// created on write.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteTree validates and serializes the tree, then replaces the artifact.
// When the existing artifact already holds byte-identical content the write
// is skipped and the result reports Unchanged, keeping the file's mtime
// stable for downstream build tooling.
func (w *Writer) WriteTree(ctx context.Context, root *sitetree.Node) (*sitetree.WriteInfo, error) {
	if root == nil {
		return nil, sitetree.Errorf(sitetree.EINVALID, "tree root required")
	}
	if err := root.Validate(); err != nil {
		return nil, err
	}

	data, err := FormatTree(root)
	if err != nil {
		return nil, err
	}

	info := &sitetree.WriteInfo{
		Path:  w.path,
		Bytes: len(data),
		Hash:  fmt.Sprintf("%x", xxhash.Sum64(data)),
	}

	if prev, err := os.ReadFile(w.path); err == nil && bytes.Equal(prev, data) {
		info.Unchanged = true
		return info, nil
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return nil, err
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		_ = os.Remove(tmp)
		return nil, err
	}
	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return nil, err
	}

	return info, nil
}
