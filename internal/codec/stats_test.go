package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatDataEncodeString(t *testing.T) {
	// S6: (NAME_STAT, "hi") -> [0x1f, 0x00, 0x02, 'h', 'i']
	s := StringStat(NameStat, "hi")

	w := NewWriter()
	require.NoError(t, s.Encode(w))
	require.Equal(t, []byte{0x1f, 0x00, 0x02, 'h', 'i'}, w.Bytes())

	var got StatData
	require.NoError(t, got.Decode(NewReader(w.Bytes())))
	require.Equal(t, s, got)
}

func TestStatDataEncodeInt(t *testing.T) {
	// S6: (HP_STAT, 100) -> [0x01, 0x00, 0x00, 0x00, 0x64]
	s := IntStat(HPStat, 100)

	w := NewWriter()
	require.NoError(t, s.Encode(w))
	require.Equal(t, []byte{0x01, 0x00, 0x00, 0x00, 0x64}, w.Bytes())

	var got StatData
	require.NoError(t, got.Decode(NewReader(w.Bytes())))
	require.Equal(t, s, got)
}

func TestStatTypeFromByteUnknown(t *testing.T) {
	_, err := StatTypeFromByte(0xfe)
	require.Error(t, err)
	var pfe *PacketFormatError
	require.ErrorAs(t, err, &pfe)
	require.Equal(t, KindUnknownStatType, pfe.Kind)
}

func TestStatTypeIsString(t *testing.T) {
	require.True(t, NameStat.IsString())
	require.True(t, GuildNameStat.IsString())
	require.True(t, PetNameStat.IsString())
	require.False(t, HPStat.IsString())
	require.False(t, MaxHPStat.IsString())
}
