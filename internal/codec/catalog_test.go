package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// round trips a Packet through Encode/Decode and asserts the decoded
// copy equals the original (invariant 2, spec.md §8: decode(encode(P))==P).
func roundTrip(t *testing.T, p Packet) Packet {
	t.Helper()
	w := NewWriter()
	require.NoError(t, p.Encode(w))

	got, ok := newPacket(p.TypeName())
	require.True(t, ok)
	require.NoError(t, got.Decode(NewReader(w.Bytes())))
	return got
}

func TestFailureRoundTrip(t *testing.T) {
	p := &Failure{
		ErrorID:           1,
		ErrorDescription:  "desc",
		ErrorPlace:        "place",
		ErrorConnectionID: "conn",
	}
	require.Equal(t, p, roundTrip(t, p))
}

func TestHelloRoundTrip(t *testing.T) {
	p := &Hello{
		BuildVersion:           "1.0.0",
		GameID:                 5,
		GUID:                   "guid",
		Rand1:                  111,
		Password:               "pw",
		Rand2:                  222,
		Secret:                 "secret",
		KeyTime:                333,
		Key:                    []byte{1, 2, 3},
		MapJSON:                "{}",
		EntryTag:               "tag",
		GameNet:                "net",
		GameNetUserID:          "uid",
		PlayPlatform:           "platform",
		PlatformToken:          "ptoken",
		UserToken:              "utoken",
		Unknown:                "",
		PreviousConnectionGUID: "prevguid",
	}
	require.Equal(t, p, roundTrip(t, p))
}

func TestMoveRoundTrip(t *testing.T) {
	p := &Move{
		TickID:      1,
		Time:        2,
		NewPosition: WorldPosData{X: 1.5, Y: 2.5},
		Records: []WorldPosData{
			{X: 0, Y: 0},
			{X: 3, Y: 4},
		},
	}
	require.Equal(t, p, roundTrip(t, p))
}

func TestEnemyShootRoundTripWithOptions(t *testing.T) {
	numShots := uint8(3)
	angleInc := float32(0.5)
	p := &EnemyShoot{
		BulletID:    1,
		OwnerID:     2,
		BulletType:  3,
		StartingPos: WorldPosData{X: 1, Y: 2},
		Angle:       0.1,
		Damage:      10,
		NumShots:    &numShots,
		AngleInc:    &angleInc,
	}
	require.Equal(t, p, roundTrip(t, p))
}

func TestEnemyShootRoundTripWithoutOptions(t *testing.T) {
	// Older servers stop writing after Damage; the trailing Options
	// must decode as nil rather than error.
	p := &EnemyShoot{
		BulletID:    1,
		OwnerID:     2,
		BulletType:  3,
		StartingPos: WorldPosData{X: 1, Y: 2},
		Angle:       0.1,
		Damage:      10,
	}
	require.Equal(t, p, roundTrip(t, p))
	require.Nil(t, roundTrip(t, p).(*EnemyShoot).NumShots)
	require.Nil(t, roundTrip(t, p).(*EnemyShoot).AngleInc)
}

func TestEnemyShootRoundTripOnlyFirstOption(t *testing.T) {
	numShots := uint8(2)
	p := &EnemyShoot{
		BulletID:    1,
		OwnerID:     2,
		BulletType:  3,
		StartingPos: WorldPosData{X: 1, Y: 2},
		Angle:       0.1,
		Damage:      10,
		NumShots:    &numShots,
	}
	got := roundTrip(t, p).(*EnemyShoot)
	require.NotNil(t, got.NumShots)
	require.Equal(t, numShots, *got.NumShots)
	require.Nil(t, got.AngleInc)
}

func TestSymbolicNamesCount(t *testing.T) {
	// 30 server + 26 client packets.
	require.Len(t, SymbolicNames(), 56)
}

func TestNewPacketUnknown(t *testing.T) {
	_, ok := newPacket("DoesNotExist")
	require.False(t, ok)
}
