package mailer

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusText(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Your message is both valid, and queued to be delivered.", StatusText(http.StatusAccepted))
	require.Contains(t, StatusText(http.StatusUnauthorized), "authorization")
	require.Equal(t, "An error occurred on a SendGrid server.", StatusText(http.StatusInternalServerError))
	require.Equal(t, "418: An unknown error was encountered!", StatusText(http.StatusTeapot))
}

func TestIsDelivered(t *testing.T) {
	t.Parallel()

	require.True(t, IsDelivered(http.StatusOK))
	require.True(t, IsDelivered(http.StatusAccepted))
	require.False(t, IsDelivered(http.StatusCreated))
	require.False(t, IsDelivered(http.StatusBadRequest))
	require.False(t, IsDelivered(0))
}

func TestResult(t *testing.T) {
	t.Parallel()

	res := NewResult(http.StatusBadRequest, nil, `{"errors":[]}`)
	require.False(t, res.Success)
	require.True(t, res.Received())
	require.Equal(t, "Bad Request!", res.Message())
	require.JSONEq(t, `{"code":400,"headers":{},"body":"{\"errors\":[]}"}`, res.Raw())

	failed := FailedResult(ErrSendFailed)
	require.False(t, failed.Success)
	require.False(t, failed.Received())
	require.Equal(t, ErrSendFailed.Error(), failed.Message())

	// a body read error does not hide the status text of a received response
	partial := NewResult(http.StatusUnauthorized, nil, "")
	partial.Err = errors.New("unexpected EOF")
	require.Contains(t, partial.Message(), "authorization")
}
