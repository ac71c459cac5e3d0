package varint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-picofeed/picofeed/errs"
)

func TestRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 16384, 1 << 32, 1<<64 - 1}

	for _, v := range cases {
		enc := Encode(v)
		require.Equal(t, Size(v), len(enc))

		got, n, err := Decode(enc)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, len(enc), n)
	}
}

func TestDecode_TrailingBytesIgnored(t *testing.T) {
	enc := Append(Encode(5), 0xFF) // 5, then an unrelated second varint (255, two bytes)
	v, n, err := Decode(enc)
	require.NoError(t, err)
	require.Equal(t, uint64(5), v)
	require.Equal(t, 1, n)
}

func TestDecode_Truncated(t *testing.T) {
	// 0x80 alone has the continuation bit set with nothing following.
	_, _, err := Decode([]byte{0x80})
	require.ErrorIs(t, err, errs.ErrDecode)
}

func TestDecode_Empty(t *testing.T) {
	_, _, err := Decode(nil)
	require.ErrorIs(t, err, errs.ErrDecode)
}
