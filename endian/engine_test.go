package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLE_RoundTrip(t *testing.T) {
	buf := make([]byte, 8)

	LE.PutUint16(buf[:2], 0xBEEF)
	require.Equal(t, uint16(0xBEEF), LE.Uint16(buf[:2]))

	LE.PutUint64(buf, 0x0102030405060708)
	require.Equal(t, uint64(0x0102030405060708), LE.Uint64(buf))
	require.Equal(t, byte(0x08), buf[0], "least significant byte first")
}

func TestLE_AppendUint64(t *testing.T) {
	var buf []byte
	buf = LE.AppendUint64(buf, 1)
	require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, buf)
}
