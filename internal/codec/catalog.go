package codec

// Packet is the contract every catalog packet type implements: encode
// to / decode from a structured field sequence. Per spec.md §9 "Preserve
// the property that adding a packet is one declaration" — approach (c),
// trait/interface polymorphism, over a runtime field-descriptor
// interpreter or a code generator, since idiomatic Go reaches for an
// interface here rather than either of the other two.
type Packet interface {
	TypeName() string
	Encode(w *Writer) error
	Decode(r *Reader) error
}

// packetFactories is the closed catalog: every symbolic packet name the
// codec knows how to construct. BuildPacketMapping (internal/avm2) is
// given SymbolicNames() to cross-reference against the extracted
// GameServerConnection constants.
var packetFactories = map[string]func() Packet{
	// server-originated
	"Failure":             func() Packet { return &Failure{} },
	"Text":                func() Packet { return &Text{} },
	"Update":              func() Packet { return &Update{} },
	"NewTick":             func() Packet { return &NewTick{} },
	"MapInfo":             func() Packet { return &MapInfo{} },
	"Reconnect":           func() Packet { return &Reconnect{} },
	"EnemyShoot":          func() Packet { return &EnemyShoot{} },
	"CreateSuccess":       func() Packet { return &CreateSuccess{} },
	"Damage":              func() Packet { return &Damage{} },
	"Death":               func() Packet { return &Death{} },
	"Goto":                func() Packet { return &Goto{} },
	"InvResult":           func() Packet { return &InvResult{} },
	"Notification":        func() Packet { return &Notification{} },
	"Ping":                func() Packet { return &Ping{} },
	"PlaySound":           func() Packet { return &PlaySound{} },
	"QuestObjId":          func() Packet { return &QuestObjId{} },
	"ShowEffect":          func() Packet { return &ShowEffect{} },
	"GlobalNotification":  func() Packet { return &GlobalNotification{} },
	"File":                func() Packet { return &File{} },
	"ActivePet":           func() Packet { return &ActivePet{} },
	"DeletePetMessage":    func() Packet { return &DeletePetMessage{} },
	"PetYard":             func() Packet { return &PetYard{} },
	"ImminentArenaWave":   func() Packet { return &ImminentArenaWave{} },
	"ArenaDeath":          func() Packet { return &ArenaDeath{} },
	"NameResult":          func() Packet { return &NameResult{} },
	"GuildResult":         func() Packet { return &GuildResult{} },
	"InvitedToGuild":      func() Packet { return &InvitedToGuild{} },
	"TradeRequested":      func() Packet { return &TradeRequested{} },
	"TradeDone":           func() Packet { return &TradeDone{} },
	"VerifyEmail":         func() Packet { return &VerifyEmail{} },

	// client-originated
	"Hello":         func() Packet { return &Hello{} },
	"Move":          func() Packet { return &Move{} },
	"PlayerShoot":   func() Packet { return &PlayerShoot{} },
	"PlayerText":    func() Packet { return &PlayerText{} },
	"UseItem":       func() Packet { return &UseItem{} },
	"Load":          func() Packet { return &Load{} },
	"Create":        func() Packet { return &Create{} },
	"ChooseName":    func() Packet { return &ChooseName{} },
	"PlayerHit":     func() Packet { return &PlayerHit{} },
	"EnemyHit":      func() Packet { return &EnemyHit{} },
	"OtherHit":      func() Packet { return &OtherHit{} },
	"SquareHit":     func() Packet { return &SquareHit{} },
	"ShootAck":      func() Packet { return &ShootAck{} },
	"GotoAck":       func() Packet { return &GotoAck{} },
	"Teleport":      func() Packet { return &Teleport{} },
	"UsePortal":     func() Packet { return &UsePortal{} },
	"RequestTrade":  func() Packet { return &RequestTrade{} },
	"AcceptTrade":   func() Packet { return &AcceptTrade{} },
	"ChangeTrade":   func() Packet { return &ChangeTrade{} },
	"CancelTrade":   func() Packet { return &CancelTrade{} },
	"Escape":        func() Packet { return &Escape{} },
	"Pong":          func() Packet { return &Pong{} },
	"Buy":           func() Packet { return &Buy{} },
	"GroundDamage":  func() Packet { return &GroundDamage{} },
	"AoeAck":        func() Packet { return &AoeAck{} },
	"InvDrop":       func() Packet { return &InvDrop{} },
}

// SymbolicNames returns every symbolic packet name in the catalog.
func SymbolicNames() []string {
	names := make([]string, 0, len(packetFactories))
	for name := range packetFactories {
		names = append(names, name)
	}
	return names
}

func newPacket(name string) (Packet, bool) {
	factory, ok := packetFactories[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}
