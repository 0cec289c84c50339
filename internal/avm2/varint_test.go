package avm2

import (
	"testing"

	"github.com/stretchr/testify/require"
	"rotmg-proxy/internal/byteio"
)

func TestReadVarUintScenarios(t *testing.T) {
	cases := []struct {
		in   []byte
		want uint32
	}{
		{[]byte{0x9f, 0x14}, 2591},
		{[]byte{0x01}, 1},
		{[]byte{0x81, 0x4c}, 9729},
		{[]byte{0xf4, 0x05}, 756},
	}

	for _, c := range cases {
		r := byteio.New(c.in)
		got, err := readVarUint(r)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
		require.Equal(t, 0, r.Len(), "reader must be empty after decoding %v", c.in)
	}
}

func TestReadVarUintFifthByteAlwaysTerminal(t *testing.T) {
	// Five bytes, each with the high bit set except none matters for the
	// fifth: the decoder must stop after consuming exactly 5 bytes
	// regardless of the high bit of the fifth.
	r := byteio.New([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x2a})
	got, err := readVarUint(r)
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())
	require.NotZero(t, got)
}

func TestReadVarUintInsufficientBytes(t *testing.T) {
	r := byteio.New([]byte{0x81})
	_, err := readVarUint(r)
	require.Error(t, err)
}
