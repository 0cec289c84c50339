package cipher

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRC4Symmetric(t *testing.T) {
	key := []byte("abcdabcd")
	plain := []byte("the quick brown fox jumps over the lazy dog")

	enc, err := New(key)
	require.NoError(t, err)
	cipherText := make([]byte, len(plain))
	enc.XOR(cipherText, plain)
	require.NotEqual(t, plain, cipherText)

	dec, err := New(key)
	require.NoError(t, err)
	roundTrip := make([]byte, len(cipherText))
	dec.XOR(roundTrip, cipherText)
	require.Equal(t, plain, roundTrip)
}

func TestRC4KnownVector(t *testing.T) {
	// Well-known test vector, key "Key", first 16 keystream bytes against
	// an all-zero plaintext recovers the keystream itself.
	c, err := New([]byte("Key"))
	require.NoError(t, err)

	plain := make([]byte, 16)
	out := make([]byte, 16)
	c.XOR(out, plain)

	want := []byte{
		0xEB, 0x9F, 0x77, 0x81, 0xB7, 0x34, 0xCA, 0x72,
		0xA7, 0x19, 0x4A, 0x28, 0x67, 0xB6, 0x42, 0x95,
	}
	require.Equal(t, want, out)
}

func TestRC4Clone(t *testing.T) {
	c, err := New([]byte("split-key-test"))
	require.NoError(t, err)

	a := c.Clone()
	b := c.Clone()

	part1 := []byte("hello ")
	part2 := []byte("world!")

	outA1 := make([]byte, len(part1))
	a.XOR(outA1, part1)
	outA2 := make([]byte, len(part2))
	a.XOR(outA2, part2)

	outB := make([]byte, len(part1)+len(part2))
	b.XOR(outB, append(append([]byte{}, part1...), part2...))

	require.True(t, bytes.Equal(append(outA1, outA2...), outB))
}

func TestNewRejectsEmptyKey(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestSplitKeys(t *testing.T) {
	kp, err := SplitKeys([]byte("abcd"))
	require.NoError(t, err)
	require.Equal(t, []byte("ab"), kp.A)
	require.Equal(t, []byte("cd"), kp.B)

	_, err = SplitKeys([]byte("abc"))
	require.Error(t, err)

	send, recv := kp.ForClient()
	require.Equal(t, []byte("ab"), send)
	require.Equal(t, []byte("cd"), recv)

	recv2, send2 := kp.ForServer()
	require.Equal(t, []byte("ab"), recv2)
	require.Equal(t, []byte("cd"), send2)
}
