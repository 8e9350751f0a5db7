package export

import (
	"strings"

	"github.com/kwrobel/sitetree"
)

// Outline renders a pruned tree as an indented plain text listing.
// Directories render as "name/", pages as "name (Title)", with two spaces
// of indentation per level.
func Outline(root *sitetree.Node) string {
	return outlineNode(root, 0)
}

// outlineNode returns the fragment for a single subtree. Each call builds
// its own lines and splices in the fragments its children return; no
// accumulator is shared across calls.
func outlineNode(n *sitetree.Node, depth int) string {
	indent := strings.Repeat("  ", depth)
	if n.Sitemap {
		return indent + n.Name + " (" + n.Title + ")\n"
	}

	var b strings.Builder
	b.WriteString(indent + n.Name + "/\n")
	for _, child := range n.Children {
		b.WriteString(outlineNode(child, depth+1))
	}
	return b.String()
}
