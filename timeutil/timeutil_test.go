package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromTime_KnownValue(t *testing.T) {
	// Exactly 1 second after the epoch.
	tm := time.Unix(BeginningOfTime+1, 0).UTC()
	require.Equal(t, uint64(100), FromTime(tm))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	v := Now()
	buf := Encode(v)
	require.Equal(t, v, Decode(buf[:]))
}

func TestEncode_UpperBytesZero(t *testing.T) {
	buf := Encode(mask40) // maximum 40-bit value
	require.Equal(t, byte(0), buf[5])
	require.Equal(t, byte(0), buf[6])
	require.Equal(t, byte(0), buf[7])
}

func TestToEpochMillis(t *testing.T) {
	tm := time.Unix(BeginningOfTime+1, 0).UTC()
	v := FromTime(tm)
	require.Equal(t, tm.UnixMilli(), ToEpochMillis(v))
}
