package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"rotmg-proxy/internal/cipher"
)

func TestRawPacketBytesRoundTrip(t *testing.T) {
	// S2: raw packet round trip.
	frame := []byte{0, 0, 0, 6, 5, 6}

	p, err := DecodeRawFrame(frame)
	require.NoError(t, err)
	require.Equal(t, byte(5), p.ID)
	require.Equal(t, []byte{6}, p.Payload)
	require.Equal(t, frame, p.Bytes())
}

func TestDecodeRawFrameInvalidLength(t *testing.T) {
	_, err := DecodeRawFrame([]byte{0, 0, 0, 4, 5})
	require.Error(t, err)
}

func noCipher(t *testing.T) *cipher.RC4 {
	t.Helper()
	c, err := cipher.New([]byte("abcd"))
	require.NoError(t, err)
	return c
}

func TestDecoderNeedsMoreBytes(t *testing.T) {
	d := NewDecoder(noCipher(t))

	d.Feed([]byte{0, 0})
	p, err := d.Next()
	require.NoError(t, err)
	require.Nil(t, p)

	d.Feed([]byte{0, 6, 5})
	p, err = d.Next()
	require.NoError(t, err)
	require.Nil(t, p, "length says 6 bytes total, only 5 buffered")

	d.Feed([]byte{6})
	p, err = d.Next()
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, byte(5), p.ID)
}

func TestDecoderInvalidLength(t *testing.T) {
	d := NewDecoder(noCipher(t))
	d.Feed([]byte{0, 0, 0, 4, 0})
	_, err := d.Next()
	require.Error(t, err)
}

func TestDecoderMaxFrameSize(t *testing.T) {
	d := NewDecoder(noCipher(t))
	d.MaxFrameSize = 10
	d.Feed([]byte{0, 0, 0, 11})
	_, err := d.Next()
	require.Error(t, err)
}

func TestFramedEcho(t *testing.T) {
	// S3: framed echo, three times in sequence.
	keys, err := cipher.SplitKeys([]byte("abcd"))
	require.NoError(t, err)

	sendKey, _ := keys.ForClient()
	recvKey, _ := keys.ForServer()
	clientSend, err := cipher.New(sendKey)
	require.NoError(t, err)
	serverRecv, err := cipher.New(recvKey)
	require.NoError(t, err)

	enc := NewEncoder(clientSend)
	dec := NewDecoder(serverRecv)

	data := []byte{0, 0, 0, 6, 5, 6}
	raw, err := DecodeRawFrame(data)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		frame := enc.Encode(raw)
		dec.Feed(frame)
		got, err := dec.Next()
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, data, got.Bytes())
	}
}
