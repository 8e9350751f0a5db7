package mock

import (
	"context"

	"github.com/kwrobel/sitetree"
)

var _ sitetree.TreeWriter = (*TreeWriter)(nil)

// TreeWriter is a mock implementation of sitetree.TreeWriter.
type TreeWriter struct {
	WriteTreeFn func(ctx context.Context, root *sitetree.Node) (*sitetree.WriteInfo, error)
}

func (w *TreeWriter) WriteTree(ctx context.Context, root *sitetree.Node) (*sitetree.WriteInfo, error) {
	return w.WriteTreeFn(ctx, root)
}
