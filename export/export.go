// Package export provides site tree export orchestration.
// It coordinates the directory walk, page classification, title extraction,
// and persistence of the resulting tree artifact.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/kwrobel/sitetree"
)

// Exporter orchestrates the export of a site tree.
type Exporter struct {
	// FS is the filesystem rooted at the directory to scan.
	FS fs.FS

	// SiteName labels the root node of the exported tree.
	SiteName string

	// Classifier decides which pages belong in the tree.
	Classifier sitetree.Classifier

	// Titles extracts display titles from included pages.
	Titles sitetree.TitleExtractor

	// Writer persists the tree. A nil Writer makes Export a dry run.
	Writer sitetree.TreeWriter

	// Extensions lists the file suffixes treated as pages.
	// Defaults to .html when empty.
	Extensions []string

	// Ignore lists directory base names skipped during the walk.
	Ignore []string

	// Logger receives per-page skip notices. Defaults to slog.Default.
	Logger *slog.Logger
}

// Result holds the outcome of an export operation.
type Result struct {
	// Included counts pages that entered the tree.
	Included int

	// Excluded counts pages that opted out.
	Excluded int

	// Unspecified counts pages without a recognized directive.
	Unspecified int

	// Untitled counts included pages that fell back to their file name.
	Untitled int

	// Output describes the written artifact. Nil for dry runs.
	Output *sitetree.WriteInfo
}

// Export walks the site, builds the pruned tree, and persists it. A fully
// pruned site still produces an artifact holding the bare root node, so
// consumers can rely on the file existing after a successful run. Any
// filesystem failure aborts the export before anything is written.
func (e *Exporter) Export(ctx context.Context) (*Result, error) {
	root, result, err := e.BuildTree(ctx)
	if err != nil {
		return nil, err
	}

	if e.Writer == nil {
		return result, nil
	}

	info, err := e.Writer.WriteTree(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("write tree: %w", err)
	}
	result.Output = info

	return result, nil
}

// BuildTree walks the site and returns the pruned tree without persisting
// it. An empty site yields the bare root node.
func (e *Exporter) BuildTree(ctx context.Context) (*sitetree.Node, *Result, error) {
	if e.SiteName == "" {
		return nil, nil, sitetree.Errorf(sitetree.EINVALID, "site name required")
	}

	result := &Result{}
	root, ok, err := e.walkDir(ctx, ".", e.SiteName, result)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		root = &sitetree.Node{Name: e.SiteName}
	}

	return root, result, nil
}

// logger returns the configured logger, falling back to slog.Default.
func (e *Exporter) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}
