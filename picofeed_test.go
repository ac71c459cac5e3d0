package picofeed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFeed_AppendAndRead(t *testing.T) {
	f, err := NewFeed()
	require.NoError(t, err)

	kp, err := NewKeypair()
	require.NoError(t, err)

	require.NoError(t, f.Append([]byte("hello"), kp))
	require.NoError(t, f.Append([]byte("world"), kp))

	n, err := f.Len()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	b0, err := f.Get(0)
	require.NoError(t, err)
	require.Equal(t, "hello", string(b0.Body))
	require.True(t, b0.IsGenesis())
}
