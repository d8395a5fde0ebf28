//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"paradise-inn/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_BothIdentitiesVisible(t *testing.T) {
	cause := errs.New("check-out date must be after check-in date")
	sentinel := errs.New("invalid booking request")

	err := errs.Mark(cause, sentinel)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, sentinel)
}

func TestMark_KeepsCauseMessage(t *testing.T) {
	cause := errs.New("invalid password")
	sentinel := errs.New("invalid credentials")

	err := errs.Mark(cause, sentinel)

	assert.Equal(t, cause.Error(), err.Error())
}

func TestMark_NilCauseReturnsSentinel(t *testing.T) {
	sentinel := errs.New("room conflict")

	err := errs.Mark(nil, sentinel)

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, sentinel.Error(), err.Error())
}

func TestMark_WrappedCauseStaysVisible(t *testing.T) {
	cause := errs.New("connection refused")
	sentinel := errs.New("token generation failed")

	err := errs.Mark(errs.Wrap(cause, "failed to sign token"), sentinel)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, sentinel)
}

func TestMark_VerboseFormatKeepsStack(t *testing.T) {
	err := errs.Mark(errs.New("boom"), errs.New("classified"))

	verbose := fmt.Sprintf("%+v", err)
	assert.Contains(t, verbose, "boom")
	assert.Greater(t, len(errs.ExtractStackLines(err, 0)), 1)
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
}

func TestWrap_PrefixesMessage(t *testing.T) {
	err := errs.Wrap(errors.New("no rows"), "failed to load user")

	require.Error(t, err)
	assert.Equal(t, "failed to load user: no rows", err.Error())
}
