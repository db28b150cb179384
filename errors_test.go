package outletmap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wkleong/outletmap"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := outletmap.Errorf(outletmap.ENOTFOUND, "outlet %q not found", "test")

	assert.Equal(t, outletmap.ENOTFOUND, outletmap.ErrorCode(err))
	assert.Equal(t, "outlet \"test\" not found", outletmap.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, outletmap.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, outletmap.EINTERNAL, outletmap.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, outletmap.ErrorMessage(nil))
}
