package fixture

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsInvalidArgument(t *testing.T) {
	err := &InvalidArgumentError{Field: "count", Message: "must be >= 1, got 0"}
	require.True(t, IsInvalidArgument(err))
	require.Contains(t, err.Error(), "count")

	wrapped := fmt.Errorf("generate: %w", err)
	require.True(t, IsInvalidArgument(wrapped))

	require.False(t, IsInvalidArgument(errors.New("plain error")))
	require.False(t, IsInvalidArgument(nil))
}

func TestIsIOError(t *testing.T) {
	inner := errors.New("disk full")
	err := &IOError{Op: "write", Path: "/tmp/1.bin", Err: inner}
	require.True(t, IsIOError(err))
	require.Contains(t, err.Error(), "/tmp/1.bin")
	require.ErrorIs(t, err, inner)

	wrapped := fmt.Errorf("generate: %w", err)
	require.True(t, IsIOError(wrapped))

	require.False(t, IsIOError(errors.New("plain error")))
	require.False(t, IsInvalidArgument(err))
}
