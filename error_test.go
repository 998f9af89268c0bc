package mylist_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/mylist"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := mylist.Errorf(mylist.EINVALID, "base URL %q is not absolute", "/x")

	assert.Equal(t, mylist.EINVALID, mylist.ErrorCode(err))
	assert.Equal(t, "base URL \"/x\" is not absolute", mylist.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("read csv: %w", mylist.Errorf(mylist.EINVALID, "bad quote"))

	assert.Equal(t, mylist.EINVALID, mylist.ErrorCode(err))
	assert.Equal(t, "bad quote", mylist.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, mylist.EINTERNAL, mylist.ErrorCode(err))
	assert.Equal(t, "Internal error.", mylist.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mylist.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mylist.ErrorMessage(nil))
}
