package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_InitialCapacity(t *testing.T) {
	buf := New()
	require.Equal(t, Quantum, buf.Cap())
	require.Equal(t, 0, buf.Len())
}

func TestAppend_GrowsInQuanta(t *testing.T) {
	buf := New()
	off := buf.Append(make([]byte, Quantum+1))
	require.Equal(t, 0, off)
	require.Equal(t, Quantum+1, buf.Len())
	require.Equal(t, 2*Quantum, buf.Cap())
}

func TestAppend_PreservesContents(t *testing.T) {
	buf := New()
	buf.Append([]byte("hello"))
	buf.Append([]byte(" world"))
	require.Equal(t, "hello world", string(buf.Bytes()))
}

func TestReset_KeepsCapacity(t *testing.T) {
	buf := New()
	buf.Append(make([]byte, 10))
	cap0 := buf.Cap()
	buf.Reset()
	require.Equal(t, 0, buf.Len())
	require.Equal(t, cap0, buf.Cap())
}

func TestReserve_ReturnsWritableRegion(t *testing.T) {
	buf := New()
	off := buf.Reserve(4)
	copy(buf.Bytes()[off:off+4], []byte{1, 2, 3, 4})
	require.Equal(t, []byte{1, 2, 3, 4}, buf.Bytes())
}
