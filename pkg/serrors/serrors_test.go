package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"bonddata/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestError_Formatting(t *testing.T) {
	cause := errors.New("boom")

	require.Equal(t, "fetch failed: boom",
		serrors.Wrap(serrors.ErrUnavailable, cause, "fetch failed").Error())
	require.Equal(t, "invalid term", serrors.With(serrors.ErrBadRequest, "invalid term").Error())
	require.Equal(t, "NOT_FOUND", serrors.KindOnly(serrors.ErrNotFound).Error())
}

func TestError_IsMatchesKindAndCause(t *testing.T) {
	cause := errors.New("boom")
	err := serrors.Wrap(serrors.ErrUnavailable, cause, "fetch failed")

	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
}

func TestError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("could not build report: %w",
		serrors.With(serrors.ErrBadRequest, "invalid curve"))

	require.ErrorIs(t, err, serrors.ErrBadRequest)

	var sErr *serrors.Error
	require.ErrorAs(t, err, &sErr)
	require.Equal(t, "invalid curve", sErr.Message())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := serrors.Wrap(serrors.ErrInternal, cause, "wrapped")

	require.Equal(t, cause, errors.Unwrap(err))
	require.Equal(t, cause, err.Cause())
	require.Equal(t, serrors.ErrInternal, err.Kind())
}
