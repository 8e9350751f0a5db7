package export

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"github.com/kwrobel/sitetree"
)

// walkDir descends into dir and returns the pruned subtree rooted there.
// The bool reports whether the directory contributed anything: a directory
// without a transitively included page yields (nil, false, nil) and never
// appears in the artifact. dir is root-relative ("." for the scan root);
// name labels the emitted node. Entries arrive from fs.ReadDir sorted by
// name, which fixes the canonical child order.
func (e *Exporter) walkDir(ctx context.Context, dir, name string, result *Result) (*sitetree.Node, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	entries, err := fs.ReadDir(e.FS, dir)
	if err != nil {
		return nil, false, fmt.Errorf("read directory %q: %w", dir, err)
	}

	node := &sitetree.Node{Name: name}
	for _, entry := range entries {
		if entry.IsDir() {
			if slices.Contains(e.Ignore, entry.Name()) {
				continue
			}
			child, ok, err := e.walkDir(ctx, path.Join(dir, entry.Name()), entry.Name(), result)
			if err != nil {
				return nil, false, err
			}
			if ok {
				node.Children = append(node.Children, child)
			}
			continue
		}

		if !e.isPage(entry.Name()) {
			continue
		}
		page, ok, err := e.classifyPage(dir, entry.Name(), result)
		if err != nil {
			return nil, false, err
		}
		if ok {
			node.Children = append(node.Children, page)
		}
	}

	if len(node.Children) == 0 {
		return nil, false, nil
	}
	return node, true, nil
}

// classifyPage reads a single page file and returns its node when the
// verdict is include. Excluded and unspecified pages produce no node; both
// outcomes are logged so site authors can spot unmarked pages.
func (e *Exporter) classifyPage(dir, name string, result *Result) (*sitetree.Node, bool, error) {
	pagePath := path.Join(dir, name)
	data, err := fs.ReadFile(e.FS, pagePath)
	if err != nil {
		return nil, false, fmt.Errorf("read page %q: %w", pagePath, err)
	}
	content := string(data)

	switch e.Classifier.Classify(name, content) {
	case sitetree.VerdictExclude:
		result.Excluded++
		e.logger().Info("page excluded from sitemap", "path", pagePath)
		return nil, false, nil
	case sitetree.VerdictUnspecified:
		result.Unspecified++
		e.logger().Warn("page has no sitemap directive, skipping", "path", pagePath)
		return nil, false, nil
	}

	title, ok := e.Titles.ExtractTitle(content)
	if !ok {
		title = name
		result.Untitled++
		e.logger().Warn("page has no title, using file name", "path", pagePath)
	}

	result.Included++
	return &sitetree.Node{
		Name:    name,
		Path:    pagePath,
		Title:   title,
		Sitemap: true,
	}, true, nil
}

// isPage reports whether the file name carries one of the page extensions.
func (e *Exporter) isPage(name string) bool {
	exts := e.Extensions
	if len(exts) == 0 {
		exts = []string{".html"}
	}
	return slices.Contains(exts, path.Ext(name))
}
