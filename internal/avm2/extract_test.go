package avm2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// varBuilder is a tiny AVM2-varint byte-stream builder used only by
// tests, to hand-construct minimal-but-valid ABC files exercising the
// extraction procedures end to end.
type varBuilder struct{ buf []byte }

func (b *varBuilder) u16(v uint16) *varBuilder {
	b.buf = append(b.buf, byte(v), byte(v>>8))
	return b
}

func (b *varBuilder) u30(v uint32) *varBuilder {
	for {
		cur := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b.buf = append(b.buf, cur|0x80)
			continue
		}
		b.buf = append(b.buf, cur)
		return b
	}
}

func (b *varBuilder) u8(v byte) *varBuilder {
	b.buf = append(b.buf, v)
	return b
}

func (b *varBuilder) bytes(v []byte) *varBuilder {
	b.buf = append(b.buf, v...)
	return b
}

func (b *varBuilder) utf8(s string) *varBuilder {
	b.u30(uint32(len(s)))
	b.buf = append(b.buf, []byte(s)...)
	return b
}

// buildSampleABC constructs an ABC file with a GameServerConnection class
// (one int const, HELLO=5) and a Parameters class (the six named
// constants ExtractBasicParameters reads), plus an "rc4" literal in the
// string pool with the key string two positions after it.
func buildSampleABC() []byte {
	b := &varBuilder{}

	b.u16(16) // minor
	b.u16(46) // major

	// int pool: count=6 (5 real entries)
	b.u30(6)
	b.u30(5)    // idx1 HELLO value
	b.u30(2050) // idx2 PORT
	b.u30(2)    // idx3 TUTORIAL_GAMEID
	b.u30(1)    // idx4 NEXUS_GAMEID
	b.u30(3)    // idx5 RANDOM_REALM_GAMEID

	// uint pool: empty
	b.u30(1)
	// double pool: empty
	b.u30(1)

	// string pool: count=15 (14 real entries)
	b.u30(15)
	b.utf8("rc4")                  // 1
	b.utf8("pad0")                 // 2
	b.utf8("abcdefabcdefabcd")     // 3 (the key, two positions after "rc4")
	b.utf8("GameServerConnection") // 4
	b.utf8("HELLO")                // 5
	b.utf8("Parameters")           // 6
	b.utf8("BUILD_VERSION")        // 7
	b.utf8("1")                    // 8
	b.utf8("MINOR_VERSION")        // 9
	b.utf8("0")                    // 10
	b.utf8("PORT")                 // 11
	b.utf8("TUTORIAL_GAMEID")      // 12
	b.utf8("NEXUS_GAMEID")         // 13
	b.utf8("RANDOM_REALM_GAMEID")  // 14

	// namespace pool: count=2 (1 real entry: public ns, empty name)
	b.u30(2)
	b.u8(0x16).u30(0) // kind=PackageNamespace, name idx=0 (sentinel "")

	// namespace set pool: count=1 (none real)
	b.u30(1)

	// multiname pool: count=10 (9 real entries), all QName ns=1
	b.u30(10)
	for _, nameIdx := range []uint32{4, 5, 6, 7, 9, 11, 12, 13, 14} {
		b.u8(0x07).u30(1).u30(nameIdx)
	}

	// method signatures: count=1, method0 trivial
	b.u30(1)
	b.u30(0) // param_count
	b.u30(0) // return type multiname idx (sentinel "*")
	b.u30(0) // name index
	b.u8(0)  // flags

	// metadata: count=0
	b.u30(0)

	// instance table: count=2
	b.u30(2)

	// instance0: GameServerConnection
	b.u30(1) // name multiname idx
	b.u30(0) // super idx (sentinel)
	b.u8(0)  // flags
	b.u30(0) // interface count
	b.u30(0) // initializer method idx
	b.u30(1) // trait count
	// trait HELLO: const, value = int pool idx 1 (value 5)
	b.u30(2).u8(0x06).u30(0).u30(0).u30(1).u8(0x03)

	// instance1: Parameters
	b.u30(3) // name multiname idx
	b.u30(0) // super idx
	b.u8(0)
	b.u30(0)
	b.u30(0)
	b.u30(6) // trait count
	b.u30(4).u8(0x06).u30(0).u30(0).u30(8).u8(0x01)  // BUILD_VERSION = string idx8 "1"
	b.u30(5).u8(0x06).u30(0).u30(0).u30(10).u8(0x01) // MINOR_VERSION = string idx10 "0"
	b.u30(6).u8(0x06).u30(0).u30(0).u30(2).u8(0x03)  // PORT = int idx2 (2050)
	b.u30(7).u8(0x06).u30(0).u30(0).u30(3).u8(0x03)  // TUTORIAL_GAMEID = int idx3 (2)
	b.u30(8).u8(0x06).u30(0).u30(0).u30(4).u8(0x03)  // NEXUS_GAMEID = int idx4 (1)
	b.u30(9).u8(0x06).u30(0).u30(0).u30(5).u8(0x03)  // RANDOM_REALM_GAMEID = int idx5 (3)

	// class table: 2 entries (paired with instances)
	b.u30(0).u30(0) // class0: cinit idx, trait count 0
	b.u30(0).u30(0) // class1: cinit idx, trait count 0

	// script table: count=1
	b.u30(1)
	b.u30(0).u30(0) // init idx, trait count 0

	// method bodies: count=0
	b.u30(0)

	return b.buf
}

func TestParseABCAndExtract(t *testing.T) {
	abcBytes := buildSampleABC()

	file, err := ParseABC(abcBytes)
	require.NoError(t, err)
	require.Len(t, file.Instances, 2)

	key, err := ExtractRC4Key(file)
	require.NoError(t, err)
	require.Equal(t, "abcdefabcdefabcd", key)

	mapping, err := BuildPacketMapping(file, []string{"Hello", "Update"})
	require.NoError(t, err)
	require.Equal(t, uint8(5), mapping["Hello"])
	_, hasUpdate := mapping["Update"]
	require.False(t, hasUpdate)

	params, err := ExtractBasicParameters(file)
	require.NoError(t, err)
	require.Equal(t, "1.0", params.Version)
	require.EqualValues(t, 2050, params.Port)
	require.EqualValues(t, 2, params.TutorialGameID)
	require.EqualValues(t, 1, params.NexusGameID)
	require.EqualValues(t, 3, params.RandomRealmGameID)

	_, err = file.FindClass("DoesNotExist")
	require.Error(t, err)
}

func TestLocateDoABCUncompressed(t *testing.T) {
	abcBytes := buildSampleABC()

	tagPayload := &varBuilder{}
	tagPayload.buf = append(tagPayload.buf, 0, 0, 0, 0) // flags u32
	tagPayload.bytes([]byte("test\x00"))
	tagPayload.bytes(abcBytes)

	header := uint16(len(tagPayload.buf))
	if header >= 0x3f {
		header = 0x3f
	}
	tagHeader := (uint16(tagCodeDoABC) << 6) | header

	swf := &varBuilder{}
	swf.bytes([]byte("FWS"))
	swf.u8(6)
	swf.buf = append(swf.buf, 0, 0, 0, 0) // file length (unchecked by our parser)
	swf.u8(0)                             // rect: nbits=0 -> 1 byte total
	swf.u16(0) // frame rate
	swf.u16(1) // frame count
	swf.u16(tagHeader)
	if header == 0x3f {
		swf.buf = append(swf.buf, byte(len(tagPayload.buf)), byte(len(tagPayload.buf)>>8), byte(len(tagPayload.buf)>>16), byte(len(tagPayload.buf)>>24))
	}
	swf.bytes(tagPayload.buf)

	got, err := LocateDoABC(swf.buf)
	require.NoError(t, err)
	require.Equal(t, abcBytes, got)
}

func TestLocateDoABCMissing(t *testing.T) {
	swf := &varBuilder{}
	swf.bytes([]byte("FWS"))
	swf.u8(6)
	swf.buf = append(swf.buf, 0, 0, 0, 0)
	swf.u8(0)
	swf.u16(0)
	swf.u16(0)
	// no tags at all (end tag omitted too — body just runs out)

	_, err := LocateDoABC(swf.buf)
	require.Error(t, err)
}
