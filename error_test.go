package sitetree_test

import (
	"fmt"
	"testing"

	"github.com/kwrobel/sitetree"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := sitetree.Errorf(sitetree.ENOTFOUND, "config file %q not found", "sitetree.yaml")

	assert.Equal(t, sitetree.ENOTFOUND, sitetree.ErrorCode(err))
	assert.Equal(t, "config file \"sitetree.yaml\" not found", sitetree.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitetree.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitetree.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	inner := sitetree.Errorf(sitetree.EINVALID, "unknown strategy %q", "bogus")
	err := fmt.Errorf("resolve config: %w", inner)

	assert.Equal(t, sitetree.EINVALID, sitetree.ErrorCode(err))
	assert.Equal(t, "unknown strategy \"bogus\"", sitetree.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("plain failure")

	assert.Equal(t, sitetree.EINTERNAL, sitetree.ErrorCode(err))
	assert.Equal(t, "Internal error.", sitetree.ErrorMessage(err))
}
