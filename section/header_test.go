package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-picofeed/picofeed/errs"
)

func TestHeaderSet_EncodeParse_RoundTrip(t *testing.T) {
	var h HeaderSet
	h.Author[0] = 0xAA
	h.Seq = 7
	h.Compression = 1
	h.Date = 123456
	h.Geo0 = 1
	h.Geo1 = 2
	h.Parent[0] = 0xBB

	buf := h.Encode(nil)
	require.Len(t, buf, h.EncodedSize())

	got, n, err := Parse(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, h.Parent, got.Parent)
	require.Equal(t, h.Author, got.Author)
	require.Equal(t, h.Seq, got.Seq)
	require.Equal(t, h.Compression, got.Compression)
	require.Equal(t, h.Date, got.Date)
	require.Equal(t, h.Geo0, got.Geo0)
	require.Equal(t, h.Geo1, got.Geo1)
	require.True(t, got.HasAuthor)
}

func TestHeaderSet_Encode_OmitsEmptyFields(t *testing.T) {
	var h HeaderSet
	buf := h.Encode(nil)
	require.Empty(t, buf)
	require.Equal(t, 0, h.EncodedSize())
}

func TestParse_AcceptsAnyOrder(t *testing.T) {
	var h HeaderSet
	h.Seq = 3
	h.Compression = 2

	// Emit compression before sequence, the reverse of canonical order.
	var buf []byte
	buf = append(buf, headerTag, TagCompression, h.Compression)
	buf = append(buf, headerTag, TagSequence, 3, 0)

	got, n, err := Parse(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, uint16(3), got.Seq)
	require.Equal(t, uint8(2), got.Compression)
}

func TestParse_DuplicateHeader(t *testing.T) {
	var buf []byte
	buf = append(buf, headerTag, TagCompression, 1)
	buf = append(buf, headerTag, TagCompression, 2)

	_, _, err := Parse(buf)
	require.ErrorIs(t, err, errs.ErrDuplicateHeader)
}

func TestParse_UnknownHeader(t *testing.T) {
	buf := []byte{headerTag, 0x7F, 0, 0, 0, 0, 0, 0, 0, 0}
	_, _, err := Parse(buf)
	require.ErrorIs(t, err, errs.ErrUnknownHeader)
}

func TestParse_POPVersionRejected(t *testing.T) {
	buf := []byte{headerTag, TagPOPVersion, 0}
	_, _, err := Parse(buf)
	require.ErrorIs(t, err, errs.ErrUnsupportedHeader)
}

func TestParse_TruncatedPayload(t *testing.T) {
	buf := []byte{headerTag, TagDate, 1, 2, 3}
	_, _, err := Parse(buf)
	require.ErrorIs(t, err, errs.ErrDecode)
}

func TestParse_StopsAtNonHeaderByte(t *testing.T) {
	var buf []byte
	buf = append(buf, headerTag, TagCompression, 9)
	buf = append(buf, 0x01) // varint length, not a header tag

	_, n, err := Parse(buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestFastWidth_Buckets(t *testing.T) {
	cases := []struct {
		id   byte
		want int
	}{
		{TagPOPVersion, 1},
		{TagCompression, 1},
		{TagSequence, 2},
		{TagMIMECode, 2},
		{TagAppTag, 4},
		{TagDate, 8},
		{TagGeoOrigin, 8},
		{TagGeoDest, 8},
		{TagAuthor, 32},
		{TagParentSig, 64},
	}
	for _, c := range cases {
		got, ok := FastWidth(c.id)
		require.True(t, ok)
		require.Equal(t, c.want, got)
	}

	_, ok := FastWidth(0x80)
	require.False(t, ok)
}
