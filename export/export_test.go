package export_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/kwrobel/sitetree"
	"github.com/kwrobel/sitetree/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("writes the built tree through the writer", func(t *testing.T) {
		t.Parallel()

		var written *sitetree.Node
		e := testExporter(fstest.MapFS{
			"index.html":      page("include", "Home"),
			"docs/intro.html": page("include", "Introduction"),
			"draft.html":      page("exclude", "Draft"),
		})
		e.Writer = &mock.TreeWriter{
			WriteTreeFn: func(_ context.Context, root *sitetree.Node) (*sitetree.WriteInfo, error) {
				written = root
				return &sitetree.WriteInfo{Path: "data/sitetree.json", Bytes: 321, Hash: "abc"}, nil
			},
		}

		result, err := e.Export(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, result.Included)
		assert.Equal(t, 1, result.Excluded)

		require.NotNil(t, result.Output)
		assert.Equal(t, "data/sitetree.json", result.Output.Path)
		assert.Equal(t, 321, result.Output.Bytes)

		require.NotNil(t, written)
		assert.Equal(t, "site", written.Name)
		require.Len(t, written.Children, 2)
	})

	t.Run("empty site still writes the bare root", func(t *testing.T) {
		t.Parallel()

		var written *sitetree.Node
		e := testExporter(fstest.MapFS{})
		e.Writer = &mock.TreeWriter{
			WriteTreeFn: func(_ context.Context, root *sitetree.Node) (*sitetree.WriteInfo, error) {
				written = root
				return &sitetree.WriteInfo{Path: "data/sitetree.json"}, nil
			},
		}

		result, err := e.Export(context.Background())

		require.NoError(t, err)
		require.NotNil(t, result.Output)
		require.NotNil(t, written)
		assert.Equal(t, "site", written.Name)
		assert.Empty(t, written.Children)
	})

	t.Run("nil writer runs dry", func(t *testing.T) {
		t.Parallel()

		e := testExporter(fstest.MapFS{
			"index.html": page("include", "Home"),
		})

		result, err := e.Export(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, result.Included)
		assert.Nil(t, result.Output)
	})

	t.Run("writer failure is surfaced", func(t *testing.T) {
		t.Parallel()

		e := testExporter(fstest.MapFS{
			"index.html": page("include", "Home"),
		})
		e.Writer = &mock.TreeWriter{
			WriteTreeFn: func(_ context.Context, _ *sitetree.Node) (*sitetree.WriteInfo, error) {
				return nil, errors.New("disk full")
			},
		}

		_, err := e.Export(context.Background())

		require.Error(t, err)
		assert.ErrorContains(t, err, "write tree")
		assert.ErrorContains(t, err, "disk full")
	})

	t.Run("walk failure aborts before the writer runs", func(t *testing.T) {
		t.Parallel()

		writerCalled := false
		e := testExporter(failFS{FS: fstest.MapFS{"bad.html": page("include", "Bad")}, fail: "bad.html"})
		e.Writer = &mock.TreeWriter{
			WriteTreeFn: func(_ context.Context, _ *sitetree.Node) (*sitetree.WriteInfo, error) {
				writerCalled = true
				return &sitetree.WriteInfo{}, nil
			},
		}

		_, err := e.Export(context.Background())

		require.Error(t, err)
		assert.False(t, writerCalled)
	})
}
