package codec

// Client-originated packets, a representative subset of the full
// catalog. Grounded on rotmg_packets' define_packets! client block.

// Hello is the handshake packet: 18 string/byte-slice/int fields, per
// spec.md §6.
type Hello struct {
	BuildVersion            string
	GameID                  uint32
	GUID                    string
	Rand1                   uint32
	Password                string
	Rand2                   uint32
	Secret                  string
	KeyTime                 uint32
	Key                     []byte
	MapJSON                 string
	EntryTag                string
	GameNet                 string
	GameNetUserID           string
	PlayPlatform            string
	PlatformToken           string
	UserToken               string
	Unknown                 string
	PreviousConnectionGUID  string
}

func (*Hello) TypeName() string { return "Hello" }

func (p *Hello) Encode(w *Writer) error {
	strs := []string{p.BuildVersion}
	if err := w.LPString16(strs[0]); err != nil {
		return err
	}
	w.U32(p.GameID)
	if err := w.LPString16(p.GUID); err != nil {
		return err
	}
	w.U32(p.Rand1)
	if err := w.LPString16(p.Password); err != nil {
		return err
	}
	w.U32(p.Rand2)
	if err := w.LPString16(p.Secret); err != nil {
		return err
	}
	w.U32(p.KeyTime)
	if err := w.LPBytes16(p.Key); err != nil {
		return err
	}
	if err := w.LPString32(p.MapJSON); err != nil {
		return err
	}
	if err := w.LPString16(p.EntryTag); err != nil {
		return err
	}
	if err := w.LPString16(p.GameNet); err != nil {
		return err
	}
	if err := w.LPString16(p.GameNetUserID); err != nil {
		return err
	}
	if err := w.LPString16(p.PlayPlatform); err != nil {
		return err
	}
	if err := w.LPString16(p.PlatformToken); err != nil {
		return err
	}
	if err := w.LPString16(p.UserToken); err != nil {
		return err
	}
	if err := w.LPString16(p.Unknown); err != nil {
		return err
	}
	return w.LPString16(p.PreviousConnectionGUID)
}

func (p *Hello) Decode(r *Reader) error {
	var err error
	if p.BuildVersion, err = r.LPString16(); err != nil {
		return err
	}
	if p.GameID, err = r.U32(); err != nil {
		return err
	}
	if p.GUID, err = r.LPString16(); err != nil {
		return err
	}
	if p.Rand1, err = r.U32(); err != nil {
		return err
	}
	if p.Password, err = r.LPString16(); err != nil {
		return err
	}
	if p.Rand2, err = r.U32(); err != nil {
		return err
	}
	if p.Secret, err = r.LPString16(); err != nil {
		return err
	}
	if p.KeyTime, err = r.U32(); err != nil {
		return err
	}
	if p.Key, err = r.LPBytes16(); err != nil {
		return err
	}
	if p.MapJSON, err = r.LPString32(); err != nil {
		return err
	}
	if p.EntryTag, err = r.LPString16(); err != nil {
		return err
	}
	if p.GameNet, err = r.LPString16(); err != nil {
		return err
	}
	if p.GameNetUserID, err = r.LPString16(); err != nil {
		return err
	}
	if p.PlayPlatform, err = r.LPString16(); err != nil {
		return err
	}
	if p.PlatformToken, err = r.LPString16(); err != nil {
		return err
	}
	if p.UserToken, err = r.LPString16(); err != nil {
		return err
	}
	if p.Unknown, err = r.LPString16(); err != nil {
		return err
	}
	if p.PreviousConnectionGUID, err = r.LPString16(); err != nil {
		return err
	}
	return nil
}

type Move struct {
	TickID      uint32
	Time        uint32
	NewPosition WorldPosData
	Records     []WorldPosData
}

func (*Move) TypeName() string { return "Move" }

func (p *Move) Encode(w *Writer) error {
	w.U32(p.TickID)
	w.U32(p.Time)
	if err := p.NewPosition.Encode(w); err != nil {
		return err
	}
	return w.LPVector16(len(p.Records), func(i int) error { return p.Records[i].Encode(w) })
}

func (p *Move) Decode(r *Reader) error {
	var err error
	if p.TickID, err = r.U32(); err != nil {
		return err
	}
	if p.Time, err = r.U32(); err != nil {
		return err
	}
	if err = p.NewPosition.Decode(r); err != nil {
		return err
	}
	_, err = r.LPVector16(func(i int) error {
		var pos WorldPosData
		if err := pos.Decode(r); err != nil {
			return err
		}
		p.Records = append(p.Records, pos)
		return nil
	})
	return err
}

type PlayerShoot struct {
	Time          uint32
	BulletID      uint8
	ContainerType uint16
	StartingPos   WorldPosData
	Angle         float32
	SpeedMult     uint16
	LifeMult      uint16
}

func (*PlayerShoot) TypeName() string { return "PlayerShoot" }

func (p *PlayerShoot) Encode(w *Writer) error {
	w.U32(p.Time)
	w.U8(p.BulletID)
	w.U16(p.ContainerType)
	if err := p.StartingPos.Encode(w); err != nil {
		return err
	}
	w.F32(p.Angle)
	w.U16(p.SpeedMult)
	w.U16(p.LifeMult)
	return nil
}

func (p *PlayerShoot) Decode(r *Reader) error {
	var err error
	if p.Time, err = r.U32(); err != nil {
		return err
	}
	if p.BulletID, err = r.U8(); err != nil {
		return err
	}
	if p.ContainerType, err = r.U16(); err != nil {
		return err
	}
	if err = p.StartingPos.Decode(r); err != nil {
		return err
	}
	if p.Angle, err = r.F32(); err != nil {
		return err
	}
	if p.SpeedMult, err = r.U16(); err != nil {
		return err
	}
	if p.LifeMult, err = r.U16(); err != nil {
		return err
	}
	return nil
}

type PlayerText struct {
	Text string
}

func (*PlayerText) TypeName() string   { return "PlayerText" }
func (p *PlayerText) Encode(w *Writer) error { return w.LPString16(p.Text) }
func (p *PlayerText) Decode(r *Reader) error {
	v, err := r.LPString16()
	p.Text = v
	return err
}

type UseItem struct {
	Time        uint32
	Slot        SlotObjectData
	ItemUsePos  WorldPosData
	UseType     uint8
}

func (*UseItem) TypeName() string { return "UseItem" }

func (p *UseItem) Encode(w *Writer) error {
	w.U32(p.Time)
	if err := p.Slot.Encode(w); err != nil {
		return err
	}
	if err := p.ItemUsePos.Encode(w); err != nil {
		return err
	}
	w.U8(p.UseType)
	return nil
}

func (p *UseItem) Decode(r *Reader) error {
	var err error
	if p.Time, err = r.U32(); err != nil {
		return err
	}
	if err = p.Slot.Decode(r); err != nil {
		return err
	}
	if err = p.ItemUsePos.Decode(r); err != nil {
		return err
	}
	if p.UseType, err = r.U8(); err != nil {
		return err
	}
	return nil
}

type Load struct {
	CharID        uint32
	IsFromArena   bool
	IsChallenger  bool
}

func (*Load) TypeName() string { return "Load" }
func (p *Load) Encode(w *Writer) error {
	w.U32(p.CharID)
	w.Bool(p.IsFromArena)
	w.Bool(p.IsChallenger)
	return nil
}
func (p *Load) Decode(r *Reader) error {
	var err error
	if p.CharID, err = r.U32(); err != nil {
		return err
	}
	if p.IsFromArena, err = r.Bool(); err != nil {
		return err
	}
	if p.IsChallenger, err = r.Bool(); err != nil {
		return err
	}
	return nil
}

type Create struct {
	ClassType    uint16
	SkinType     uint16
	IsChallenger bool
}

func (*Create) TypeName() string { return "Create" }
func (p *Create) Encode(w *Writer) error {
	w.U16(p.ClassType)
	w.U16(p.SkinType)
	w.Bool(p.IsChallenger)
	return nil
}
func (p *Create) Decode(r *Reader) error {
	var err error
	if p.ClassType, err = r.U16(); err != nil {
		return err
	}
	if p.SkinType, err = r.U16(); err != nil {
		return err
	}
	if p.IsChallenger, err = r.Bool(); err != nil {
		return err
	}
	return nil
}

type ChooseName struct {
	Name string
}

func (*ChooseName) TypeName() string    { return "ChooseName" }
func (p *ChooseName) Encode(w *Writer) error { return w.LPString16(p.Name) }
func (p *ChooseName) Decode(r *Reader) error {
	v, err := r.LPString16()
	p.Name = v
	return err
}

type PlayerHit struct {
	BulletID uint8
	ObjectID uint32
}

func (*PlayerHit) TypeName() string { return "PlayerHit" }
func (p *PlayerHit) Encode(w *Writer) error {
	w.U8(p.BulletID)
	w.U32(p.ObjectID)
	return nil
}
func (p *PlayerHit) Decode(r *Reader) error {
	var err error
	if p.BulletID, err = r.U8(); err != nil {
		return err
	}
	if p.ObjectID, err = r.U32(); err != nil {
		return err
	}
	return nil
}

type EnemyHit struct {
	Time     uint32
	BulletID uint8
	TargetID uint32
	Kill     bool
}

func (*EnemyHit) TypeName() string { return "EnemyHit" }
func (p *EnemyHit) Encode(w *Writer) error {
	w.U32(p.Time)
	w.U8(p.BulletID)
	w.U32(p.TargetID)
	w.Bool(p.Kill)
	return nil
}
func (p *EnemyHit) Decode(r *Reader) error {
	var err error
	if p.Time, err = r.U32(); err != nil {
		return err
	}
	if p.BulletID, err = r.U8(); err != nil {
		return err
	}
	if p.TargetID, err = r.U32(); err != nil {
		return err
	}
	if p.Kill, err = r.Bool(); err != nil {
		return err
	}
	return nil
}

type OtherHit struct {
	Time     uint32
	BulletID uint8
	ObjectID uint32
	TargetID uint32
}

func (*OtherHit) TypeName() string { return "OtherHit" }
func (p *OtherHit) Encode(w *Writer) error {
	w.U32(p.Time)
	w.U8(p.BulletID)
	w.U32(p.ObjectID)
	w.U32(p.TargetID)
	return nil
}
func (p *OtherHit) Decode(r *Reader) error {
	var err error
	if p.Time, err = r.U32(); err != nil {
		return err
	}
	if p.BulletID, err = r.U8(); err != nil {
		return err
	}
	if p.ObjectID, err = r.U32(); err != nil {
		return err
	}
	if p.TargetID, err = r.U32(); err != nil {
		return err
	}
	return nil
}

type SquareHit struct {
	Time     uint32
	BulletID uint8
	ObjectID uint32
}

func (*SquareHit) TypeName() string { return "SquareHit" }
func (p *SquareHit) Encode(w *Writer) error {
	w.U32(p.Time)
	w.U8(p.BulletID)
	w.U32(p.ObjectID)
	return nil
}
func (p *SquareHit) Decode(r *Reader) error {
	var err error
	if p.Time, err = r.U32(); err != nil {
		return err
	}
	if p.BulletID, err = r.U8(); err != nil {
		return err
	}
	if p.ObjectID, err = r.U32(); err != nil {
		return err
	}
	return nil
}

type ShootAck struct {
	Time uint32
}

func (*ShootAck) TypeName() string { return "ShootAck" }
func (p *ShootAck) Encode(w *Writer) error {
	w.U32(p.Time)
	return nil
}
func (p *ShootAck) Decode(r *Reader) error {
	v, err := r.U32()
	p.Time = v
	return err
}

type GotoAck struct {
	Time uint32
}

func (*GotoAck) TypeName() string { return "GotoAck" }
func (p *GotoAck) Encode(w *Writer) error {
	w.U32(p.Time)
	return nil
}
func (p *GotoAck) Decode(r *Reader) error {
	v, err := r.U32()
	p.Time = v
	return err
}

type Teleport struct {
	ObjectID uint32
}

func (*Teleport) TypeName() string { return "Teleport" }
func (p *Teleport) Encode(w *Writer) error {
	w.U32(p.ObjectID)
	return nil
}
func (p *Teleport) Decode(r *Reader) error {
	v, err := r.U32()
	p.ObjectID = v
	return err
}

type UsePortal struct {
	ObjectID uint32
}

func (*UsePortal) TypeName() string { return "UsePortal" }
func (p *UsePortal) Encode(w *Writer) error {
	w.U32(p.ObjectID)
	return nil
}
func (p *UsePortal) Decode(r *Reader) error {
	v, err := r.U32()
	p.ObjectID = v
	return err
}

type RequestTrade struct {
	Name string
}

func (*RequestTrade) TypeName() string     { return "RequestTrade" }
func (p *RequestTrade) Encode(w *Writer) error { return w.LPString16(p.Name) }
func (p *RequestTrade) Decode(r *Reader) error {
	v, err := r.LPString16()
	p.Name = v
	return err
}

type AcceptTrade struct {
	MyOffer   []bool
	YourOffer []bool
}

func (*AcceptTrade) TypeName() string { return "AcceptTrade" }
func (p *AcceptTrade) Encode(w *Writer) error {
	if err := w.LPVector16(len(p.MyOffer), func(i int) error { w.Bool(p.MyOffer[i]); return nil }); err != nil {
		return err
	}
	return w.LPVector16(len(p.YourOffer), func(i int) error { w.Bool(p.YourOffer[i]); return nil })
}
func (p *AcceptTrade) Decode(r *Reader) error {
	if _, err := r.LPVector16(func(i int) error {
		v, err := r.Bool()
		if err != nil {
			return err
		}
		p.MyOffer = append(p.MyOffer, v)
		return nil
	}); err != nil {
		return err
	}
	_, err := r.LPVector16(func(i int) error {
		v, err := r.Bool()
		if err != nil {
			return err
		}
		p.YourOffer = append(p.YourOffer, v)
		return nil
	})
	return err
}

type ChangeTrade struct {
	Offer []bool
}

func (*ChangeTrade) TypeName() string { return "ChangeTrade" }
func (p *ChangeTrade) Encode(w *Writer) error {
	return w.LPVector16(len(p.Offer), func(i int) error { w.Bool(p.Offer[i]); return nil })
}
func (p *ChangeTrade) Decode(r *Reader) error {
	_, err := r.LPVector16(func(i int) error {
		v, err := r.Bool()
		if err != nil {
			return err
		}
		p.Offer = append(p.Offer, v)
		return nil
	})
	return err
}

type CancelTrade struct{}

func (*CancelTrade) TypeName() string      { return "CancelTrade" }
func (*CancelTrade) Encode(w *Writer) error { w.Unit(); return nil }
func (*CancelTrade) Decode(r *Reader) error { r.Unit(); return nil }

type Escape struct{}

func (*Escape) TypeName() string      { return "Escape" }
func (*Escape) Encode(w *Writer) error { w.Unit(); return nil }
func (*Escape) Decode(r *Reader) error { r.Unit(); return nil }

type Pong struct {
	Serial uint32
	Time   uint32
}

func (*Pong) TypeName() string { return "Pong" }
func (p *Pong) Encode(w *Writer) error {
	w.U32(p.Serial)
	w.U32(p.Time)
	return nil
}
func (p *Pong) Decode(r *Reader) error {
	var err error
	if p.Serial, err = r.U32(); err != nil {
		return err
	}
	if p.Time, err = r.U32(); err != nil {
		return err
	}
	return nil
}

type Buy struct {
	ObjectID uint32
	Quantity uint32
}

func (*Buy) TypeName() string { return "Buy" }
func (p *Buy) Encode(w *Writer) error {
	w.U32(p.ObjectID)
	w.U32(p.Quantity)
	return nil
}
func (p *Buy) Decode(r *Reader) error {
	var err error
	if p.ObjectID, err = r.U32(); err != nil {
		return err
	}
	if p.Quantity, err = r.U32(); err != nil {
		return err
	}
	return nil
}

type GroundDamage struct {
	Time     uint32
	Position WorldPosData
}

func (*GroundDamage) TypeName() string { return "GroundDamage" }
func (p *GroundDamage) Encode(w *Writer) error {
	w.U32(p.Time)
	return p.Position.Encode(w)
}
func (p *GroundDamage) Decode(r *Reader) error {
	var err error
	if p.Time, err = r.U32(); err != nil {
		return err
	}
	return p.Position.Decode(r)
}

type AoeAck struct {
	Time     uint32
	Position WorldPosData
}

func (*AoeAck) TypeName() string { return "AoeAck" }
func (p *AoeAck) Encode(w *Writer) error {
	w.U32(p.Time)
	return p.Position.Encode(w)
}
func (p *AoeAck) Decode(r *Reader) error {
	var err error
	if p.Time, err = r.U32(); err != nil {
		return err
	}
	return p.Position.Decode(r)
}

type InvDrop struct {
	SlotObject SlotObjectData
}

func (*InvDrop) TypeName() string          { return "InvDrop" }
func (p *InvDrop) Encode(w *Writer) error  { return p.SlotObject.Encode(w) }
func (p *InvDrop) Decode(r *Reader) error  { return p.SlotObject.Decode(r) }
