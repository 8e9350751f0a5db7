package sitetree

import "context"

// Node is a single entry in the exported site tree: either a directory that
// transitively contains at least one included page, or a page that opted
// into the sitemap. Directories pruned of all pages are never represented.
type Node struct {
	// Name is the base name of the file or directory.
	Name string `json:"name"`

	// Path is the project-relative, slash-separated path. Pages only.
	Path string `json:"path,omitempty"`

	// Title is the display title. Pages only, never empty: when no title
	// can be extracted the file name is used instead.
	Title string `json:"title,omitempty"`

	// Sitemap marks page nodes. Directory nodes omit it.
	Sitemap bool `json:"sitemap,omitempty"`

	// Children holds the ordered child nodes. Directories only; omitted
	// when empty.
	Children []*Node `json:"children,omitempty"`
}

// Validate returns an error if the node or any descendant violates the
// artifact invariants.
func (n *Node) Validate() error {
	if n.Name == "" {
		return Errorf(EINVALID, "node name required")
	}
	if n.Sitemap {
		if n.Path == "" {
			return Errorf(EINVALID, "page node %q requires a path", n.Name)
		}
		if n.Title == "" {
			return Errorf(EINVALID, "page node %q requires a title", n.Path)
		}
		if len(n.Children) > 0 {
			return Errorf(EINVALID, "page node %q cannot have children", n.Path)
		}
	}
	for _, child := range n.Children {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// WriteInfo describes the outcome of persisting the tree artifact.
type WriteInfo struct {
	// Path is the location of the artifact.
	Path string

	// Bytes is the size of the serialized artifact.
	Bytes int

	// Hash is the content digest of the serialized artifact.
	Hash string

	// Unchanged reports that the existing artifact already held identical
	// content, so the write was skipped.
	Unchanged bool
}

// TreeWriter persists an exported tree.
type TreeWriter interface {
	// WriteTree serializes the tree rooted at root and writes it to the
	// configured destination, creating parent directories as needed.
	// The previous artifact survives intact if the write fails partway.
	WriteTree(ctx context.Context, root *Node) (*WriteInfo, error)
}
