package codec

// Server-originated packets, a representative subset of the full
// catalog. Not every field-encoding kind of field.go is used here (no
// 8-byte integer, f64 or capture-remaining fields).
// Field names and order are grounded on rotmg_packets' define_packets!
// server block and preserved exactly for wire compatibility.

type Failure struct {
	ErrorID           uint32
	ErrorDescription  string
	ErrorPlace        string
	ErrorConnectionID string
}

func (*Failure) TypeName() string { return "Failure" }

func (p *Failure) Encode(w *Writer) error {
	w.U32(p.ErrorID)
	if err := w.LPString16(p.ErrorDescription); err != nil {
		return err
	}
	if err := w.LPString16(p.ErrorPlace); err != nil {
		return err
	}
	return w.LPString16(p.ErrorConnectionID)
}

func (p *Failure) Decode(r *Reader) error {
	var err error
	if p.ErrorID, err = r.U32(); err != nil {
		return err
	}
	if p.ErrorDescription, err = r.LPString16(); err != nil {
		return err
	}
	if p.ErrorPlace, err = r.LPString16(); err != nil {
		return err
	}
	if p.ErrorConnectionID, err = r.LPString16(); err != nil {
		return err
	}
	return nil
}

type Text struct {
	Name        string
	ObjectID    uint32
	NumStars    uint32
	BubbleTime  uint8
	Recipient   string
	TextBody    string
	CleanText   string
	IsSupporter bool
	StarBG      uint32
}

func (*Text) TypeName() string { return "Text" }

func (p *Text) Encode(w *Writer) error {
	if err := w.LPString16(p.Name); err != nil {
		return err
	}
	w.U32(p.ObjectID)
	w.U32(p.NumStars)
	w.U8(p.BubbleTime)
	if err := w.LPString16(p.Recipient); err != nil {
		return err
	}
	if err := w.LPString16(p.TextBody); err != nil {
		return err
	}
	if err := w.LPString16(p.CleanText); err != nil {
		return err
	}
	w.Bool(p.IsSupporter)
	w.U32(p.StarBG)
	return nil
}

func (p *Text) Decode(r *Reader) error {
	var err error
	if p.Name, err = r.LPString16(); err != nil {
		return err
	}
	if p.ObjectID, err = r.U32(); err != nil {
		return err
	}
	if p.NumStars, err = r.U32(); err != nil {
		return err
	}
	if p.BubbleTime, err = r.U8(); err != nil {
		return err
	}
	if p.Recipient, err = r.LPString16(); err != nil {
		return err
	}
	if p.TextBody, err = r.LPString16(); err != nil {
		return err
	}
	if p.CleanText, err = r.LPString16(); err != nil {
		return err
	}
	if p.IsSupporter, err = r.Bool(); err != nil {
		return err
	}
	if p.StarBG, err = r.U32(); err != nil {
		return err
	}
	return nil
}

type Update struct {
	Tiles   []GroundTileData
	NewObjs []ObjectData
	Drops   []int32
}

func (*Update) TypeName() string { return "Update" }

func (p *Update) Encode(w *Writer) error {
	if err := w.LPVector16(len(p.Tiles), func(i int) error { return p.Tiles[i].Encode(w) }); err != nil {
		return err
	}
	if err := w.LPVector16(len(p.NewObjs), func(i int) error { return p.NewObjs[i].Encode(w) }); err != nil {
		return err
	}
	return w.LPVector16(len(p.Drops), func(i int) error { w.I32(p.Drops[i]); return nil })
}

func (p *Update) Decode(r *Reader) error {
	if _, err := r.LPVector16(func(i int) error {
		var t GroundTileData
		if err := t.Decode(r); err != nil {
			return err
		}
		p.Tiles = append(p.Tiles, t)
		return nil
	}); err != nil {
		return err
	}
	if _, err := r.LPVector16(func(i int) error {
		var o ObjectData
		if err := o.Decode(r); err != nil {
			return err
		}
		p.NewObjs = append(p.NewObjs, o)
		return nil
	}); err != nil {
		return err
	}
	_, err := r.LPVector16(func(i int) error {
		v, err := r.I32()
		if err != nil {
			return err
		}
		p.Drops = append(p.Drops, v)
		return nil
	})
	return err
}

type NewTick struct {
	TickID   uint32
	TickTime uint32
	Statuses []ObjectStatusData
}

func (*NewTick) TypeName() string { return "NewTick" }

func (p *NewTick) Encode(w *Writer) error {
	w.U32(p.TickID)
	w.U32(p.TickTime)
	return w.LPVector16(len(p.Statuses), func(i int) error { return p.Statuses[i].Encode(w) })
}

func (p *NewTick) Decode(r *Reader) error {
	var err error
	if p.TickID, err = r.U32(); err != nil {
		return err
	}
	if p.TickTime, err = r.U32(); err != nil {
		return err
	}
	_, err = r.LPVector16(func(i int) error {
		var s ObjectStatusData
		if err := s.Decode(r); err != nil {
			return err
		}
		p.Statuses = append(p.Statuses, s)
		return nil
	})
	return err
}

type MapInfo struct {
	Width               uint32
	Height              int32
	Name                string
	DisplayName         string
	FP                  uint32
	Background          uint32
	Difficulty          uint32
	AllowPlayerTeleport bool
	ShowDisplays        bool
	MaxPlayers          uint16
	ConnectionGUID      string
	GameOpenedTime      uint32
	ClientXML           []string
	ExtraXML            []string
}

func (*MapInfo) TypeName() string { return "MapInfo" }

func (p *MapInfo) Encode(w *Writer) error {
	w.U32(p.Width)
	w.I32(p.Height)
	if err := w.LPString16(p.Name); err != nil {
		return err
	}
	if err := w.LPString16(p.DisplayName); err != nil {
		return err
	}
	w.U32(p.FP)
	w.U32(p.Background)
	w.U32(p.Difficulty)
	w.Bool(p.AllowPlayerTeleport)
	w.Bool(p.ShowDisplays)
	w.U16(p.MaxPlayers)
	if err := w.LPString16(p.ConnectionGUID); err != nil {
		return err
	}
	w.U32(p.GameOpenedTime)
	if err := w.LPVector16(len(p.ClientXML), func(i int) error { return w.LPString32(p.ClientXML[i]) }); err != nil {
		return err
	}
	return w.LPVector16(len(p.ExtraXML), func(i int) error { return w.LPString32(p.ExtraXML[i]) })
}

func (p *MapInfo) Decode(r *Reader) error {
	var err error
	if p.Width, err = r.U32(); err != nil {
		return err
	}
	if p.Height, err = r.I32(); err != nil {
		return err
	}
	if p.Name, err = r.LPString16(); err != nil {
		return err
	}
	if p.DisplayName, err = r.LPString16(); err != nil {
		return err
	}
	if p.FP, err = r.U32(); err != nil {
		return err
	}
	if p.Background, err = r.U32(); err != nil {
		return err
	}
	if p.Difficulty, err = r.U32(); err != nil {
		return err
	}
	if p.AllowPlayerTeleport, err = r.Bool(); err != nil {
		return err
	}
	if p.ShowDisplays, err = r.Bool(); err != nil {
		return err
	}
	if p.MaxPlayers, err = r.U16(); err != nil {
		return err
	}
	if p.ConnectionGUID, err = r.LPString16(); err != nil {
		return err
	}
	if p.GameOpenedTime, err = r.U32(); err != nil {
		return err
	}
	if _, err = r.LPVector16(func(i int) error {
		s, err := r.LPString32()
		if err != nil {
			return err
		}
		p.ClientXML = append(p.ClientXML, s)
		return nil
	}); err != nil {
		return err
	}
	_, err = r.LPVector16(func(i int) error {
		s, err := r.LPString32()
		if err != nil {
			return err
		}
		p.ExtraXML = append(p.ExtraXML, s)
		return nil
	})
	return err
}

type Reconnect struct {
	Name        string
	Host        string
	Stats       string
	Port        uint32
	GameID      uint32
	KeyTime     uint32
	IsFromArena bool
	Key         []byte
}

func (*Reconnect) TypeName() string { return "Reconnect" }

func (p *Reconnect) Encode(w *Writer) error {
	if err := w.LPString16(p.Name); err != nil {
		return err
	}
	if err := w.LPString16(p.Host); err != nil {
		return err
	}
	if err := w.LPString16(p.Stats); err != nil {
		return err
	}
	w.U32(p.Port)
	w.U32(p.GameID)
	w.U32(p.KeyTime)
	w.Bool(p.IsFromArena)
	return w.LPBytes16(p.Key)
}

func (p *Reconnect) Decode(r *Reader) error {
	var err error
	if p.Name, err = r.LPString16(); err != nil {
		return err
	}
	if p.Host, err = r.LPString16(); err != nil {
		return err
	}
	if p.Stats, err = r.LPString16(); err != nil {
		return err
	}
	if p.Port, err = r.U32(); err != nil {
		return err
	}
	if p.GameID, err = r.U32(); err != nil {
		return err
	}
	if p.KeyTime, err = r.U32(); err != nil {
		return err
	}
	if p.IsFromArena, err = r.Bool(); err != nil {
		return err
	}
	if p.Key, err = r.LPBytes16(); err != nil {
		return err
	}
	return nil
}

// EnemyShoot terminates in two trailing Option fields (spec.md §9
// "Trailing Option"): older servers stop after Damage, mid-version
// servers also send NumShots, newest servers also send AngleInc. Each
// is decoded only if bytes remain, in declared order.
type EnemyShoot struct {
	BulletID    uint8
	OwnerID     uint32
	BulletType  uint8
	StartingPos WorldPosData
	Angle       float32
	Damage      uint16
	NumShots    *uint8
	AngleInc    *float32
}

func (*EnemyShoot) TypeName() string { return "EnemyShoot" }

func (p *EnemyShoot) Encode(w *Writer) error {
	w.U8(p.BulletID)
	w.U32(p.OwnerID)
	w.U8(p.BulletType)
	if err := p.StartingPos.Encode(w); err != nil {
		return err
	}
	w.F32(p.Angle)
	w.U16(p.Damage)
	if p.NumShots == nil {
		return nil
	}
	w.U8(*p.NumShots)
	if p.AngleInc == nil {
		return nil
	}
	w.F32(*p.AngleInc)
	return nil
}

func (p *EnemyShoot) Decode(r *Reader) error {
	var err error
	if p.BulletID, err = r.U8(); err != nil {
		return err
	}
	if p.OwnerID, err = r.U32(); err != nil {
		return err
	}
	if p.BulletType, err = r.U8(); err != nil {
		return err
	}
	if err = p.StartingPos.Decode(r); err != nil {
		return err
	}
	if p.Angle, err = r.F32(); err != nil {
		return err
	}
	if p.Damage, err = r.U16(); err != nil {
		return err
	}
	if r.Remaining() == 0 {
		return nil
	}
	n, err := r.U8()
	if err != nil {
		return err
	}
	p.NumShots = &n
	if r.Remaining() == 0 {
		return nil
	}
	a, err := r.F32()
	if err != nil {
		return err
	}
	p.AngleInc = &a
	return nil
}

type CreateSuccess struct {
	ObjectID uint32
	CharID   uint32
}

func (*CreateSuccess) TypeName() string { return "CreateSuccess" }

func (p *CreateSuccess) Encode(w *Writer) error {
	w.U32(p.ObjectID)
	w.U32(p.CharID)
	return nil
}

func (p *CreateSuccess) Decode(r *Reader) error {
	var err error
	if p.ObjectID, err = r.U32(); err != nil {
		return err
	}
	if p.CharID, err = r.U32(); err != nil {
		return err
	}
	return nil
}

type Damage struct {
	TargetID     uint32
	Effects      []byte
	DamageAmount uint16
	Kill         bool
	ArmorPierce  bool
	BulletID     uint8
	ObjectID     uint32
}

func (*Damage) TypeName() string { return "Damage" }

func (p *Damage) Encode(w *Writer) error {
	w.U32(p.TargetID)
	if err := w.LPBytes8(p.Effects); err != nil {
		return err
	}
	w.U16(p.DamageAmount)
	w.Bool(p.Kill)
	w.Bool(p.ArmorPierce)
	w.U8(p.BulletID)
	w.U32(p.ObjectID)
	return nil
}

func (p *Damage) Decode(r *Reader) error {
	var err error
	if p.TargetID, err = r.U32(); err != nil {
		return err
	}
	if p.Effects, err = r.LPBytes8(); err != nil {
		return err
	}
	if p.DamageAmount, err = r.U16(); err != nil {
		return err
	}
	if p.Kill, err = r.Bool(); err != nil {
		return err
	}
	if p.ArmorPierce, err = r.Bool(); err != nil {
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

type Death struct {
	AccountID  string
	CharID     uint32
	KilledBy   string
	ZombieType uint32
	ZombieID   int32
}

func (*Death) TypeName() string { return "Death" }

func (p *Death) Encode(w *Writer) error {
	if err := w.LPString16(p.AccountID); err != nil {
		return err
	}
	w.U32(p.CharID)
	if err := w.LPString16(p.KilledBy); err != nil {
		return err
	}
	w.U32(p.ZombieType)
	w.I32(p.ZombieID)
	return nil
}

func (p *Death) Decode(r *Reader) error {
	var err error
	if p.AccountID, err = r.LPString16(); err != nil {
		return err
	}
	if p.CharID, err = r.U32(); err != nil {
		return err
	}
	if p.KilledBy, err = r.LPString16(); err != nil {
		return err
	}
	if p.ZombieType, err = r.U32(); err != nil {
		return err
	}
	if p.ZombieID, err = r.I32(); err != nil {
		return err
	}
	return nil
}

type Goto struct {
	ObjectID uint32
	Pos      WorldPosData
}

func (*Goto) TypeName() string { return "Goto" }

func (p *Goto) Encode(w *Writer) error {
	w.U32(p.ObjectID)
	return p.Pos.Encode(w)
}

func (p *Goto) Decode(r *Reader) error {
	var err error
	if p.ObjectID, err = r.U32(); err != nil {
		return err
	}
	return p.Pos.Decode(r)
}

type InvResult struct {
	Result int32
}

func (*InvResult) TypeName() string { return "InvResult" }
func (p *InvResult) Encode(w *Writer) error {
	w.I32(p.Result)
	return nil
}
func (p *InvResult) Decode(r *Reader) error {
	v, err := r.I32()
	p.Result = v
	return err
}

type Notification struct {
	ObjectID uint32
	Message  string
	Color    uint32
}

func (*Notification) TypeName() string { return "Notification" }

func (p *Notification) Encode(w *Writer) error {
	w.U32(p.ObjectID)
	if err := w.LPString16(p.Message); err != nil {
		return err
	}
	w.U32(p.Color)
	return nil
}

func (p *Notification) Decode(r *Reader) error {
	var err error
	if p.ObjectID, err = r.U32(); err != nil {
		return err
	}
	if p.Message, err = r.LPString16(); err != nil {
		return err
	}
	if p.Color, err = r.U32(); err != nil {
		return err
	}
	return nil
}

type Ping struct {
	Serial uint32
}

func (*Ping) TypeName() string { return "Ping" }
func (p *Ping) Encode(w *Writer) error {
	w.U32(p.Serial)
	return nil
}
func (p *Ping) Decode(r *Reader) error {
	v, err := r.U32()
	p.Serial = v
	return err
}

type PlaySound struct {
	OwnerID uint32
	SoundID uint8
}

func (*PlaySound) TypeName() string { return "PlaySound" }
func (p *PlaySound) Encode(w *Writer) error {
	w.U32(p.OwnerID)
	w.U8(p.SoundID)
	return nil
}
func (p *PlaySound) Decode(r *Reader) error {
	var err error
	if p.OwnerID, err = r.U32(); err != nil {
		return err
	}
	if p.SoundID, err = r.U8(); err != nil {
		return err
	}
	return nil
}

type QuestObjId struct {
	ObjectID uint32
}

func (*QuestObjId) TypeName() string { return "QuestObjId" }
func (p *QuestObjId) Encode(w *Writer) error {
	w.U32(p.ObjectID)
	return nil
}
func (p *QuestObjId) Decode(r *Reader) error {
	v, err := r.U32()
	p.ObjectID = v
	return err
}

type ShowEffect struct {
	EffectType      uint8
	TargetObjectID  uint32
	Pos1            WorldPosData
	Pos2            WorldPosData
	Color           uint32
	Duration        float32
}

func (*ShowEffect) TypeName() string { return "ShowEffect" }

func (p *ShowEffect) Encode(w *Writer) error {
	w.U8(p.EffectType)
	w.U32(p.TargetObjectID)
	if err := p.Pos1.Encode(w); err != nil {
		return err
	}
	if err := p.Pos2.Encode(w); err != nil {
		return err
	}
	w.U32(p.Color)
	w.F32(p.Duration)
	return nil
}

func (p *ShowEffect) Decode(r *Reader) error {
	var err error
	if p.EffectType, err = r.U8(); err != nil {
		return err
	}
	if p.TargetObjectID, err = r.U32(); err != nil {
		return err
	}
	if err = p.Pos1.Decode(r); err != nil {
		return err
	}
	if err = p.Pos2.Decode(r); err != nil {
		return err
	}
	if p.Color, err = r.U32(); err != nil {
		return err
	}
	if p.Duration, err = r.F32(); err != nil {
		return err
	}
	return nil
}

type GlobalNotification struct {
	Typ  uint32
	Text string
}

func (*GlobalNotification) TypeName() string { return "GlobalNotification" }
func (p *GlobalNotification) Encode(w *Writer) error {
	w.U32(p.Typ)
	return w.LPString16(p.Text)
}
func (p *GlobalNotification) Decode(r *Reader) error {
	var err error
	if p.Typ, err = r.U32(); err != nil {
		return err
	}
	if p.Text, err = r.LPString16(); err != nil {
		return err
	}
	return nil
}

type File struct {
	Filename string
	Contents string
}

func (*File) TypeName() string { return "File" }
func (p *File) Encode(w *Writer) error {
	if err := w.LPString16(p.Filename); err != nil {
		return err
	}
	return w.LPString32(p.Contents)
}
func (p *File) Decode(r *Reader) error {
	var err error
	if p.Filename, err = r.LPString16(); err != nil {
		return err
	}
	if p.Contents, err = r.LPString32(); err != nil {
		return err
	}
	return nil
}

type ActivePet struct {
	InstanceID uint32
}

func (*ActivePet) TypeName() string { return "ActivePet" }
func (p *ActivePet) Encode(w *Writer) error {
	w.U32(p.InstanceID)
	return nil
}
func (p *ActivePet) Decode(r *Reader) error {
	v, err := r.U32()
	p.InstanceID = v
	return err
}

type DeletePetMessage struct {
	PetID uint32
}

func (*DeletePetMessage) TypeName() string { return "DeletePetMessage" }
func (p *DeletePetMessage) Encode(w *Writer) error {
	w.U32(p.PetID)
	return nil
}
func (p *DeletePetMessage) Decode(r *Reader) error {
	v, err := r.U32()
	p.PetID = v
	return err
}

type PetYard struct {
	Typ uint32
}

func (*PetYard) TypeName() string { return "PetYard" }
func (p *PetYard) Encode(w *Writer) error {
	w.U32(p.Typ)
	return nil
}
func (p *PetYard) Decode(r *Reader) error {
	v, err := r.U32()
	p.Typ = v
	return err
}

type ImminentArenaWave struct {
	CurrentRuntime uint32
}

func (*ImminentArenaWave) TypeName() string { return "ImminentArenaWave" }
func (p *ImminentArenaWave) Encode(w *Writer) error {
	w.U32(p.CurrentRuntime)
	return nil
}
func (p *ImminentArenaWave) Decode(r *Reader) error {
	v, err := r.U32()
	p.CurrentRuntime = v
	return err
}

type ArenaDeath struct {
	Cost uint32
}

func (*ArenaDeath) TypeName() string { return "ArenaDeath" }
func (p *ArenaDeath) Encode(w *Writer) error {
	w.U32(p.Cost)
	return nil
}
func (p *ArenaDeath) Decode(r *Reader) error {
	v, err := r.U32()
	p.Cost = v
	return err
}

type NameResult struct {
	Success   bool
	ErrorText string
}

func (*NameResult) TypeName() string { return "NameResult" }
func (p *NameResult) Encode(w *Writer) error {
	w.Bool(p.Success)
	return w.LPString16(p.ErrorText)
}
func (p *NameResult) Decode(r *Reader) error {
	var err error
	if p.Success, err = r.Bool(); err != nil {
		return err
	}
	if p.ErrorText, err = r.LPString16(); err != nil {
		return err
	}
	return nil
}

type GuildResult struct {
	Success         bool
	LineBuilderJSON string
}

func (*GuildResult) TypeName() string { return "GuildResult" }
func (p *GuildResult) Encode(w *Writer) error {
	w.Bool(p.Success)
	return w.LPString16(p.LineBuilderJSON)
}
func (p *GuildResult) Decode(r *Reader) error {
	var err error
	if p.Success, err = r.Bool(); err != nil {
		return err
	}
	if p.LineBuilderJSON, err = r.LPString16(); err != nil {
		return err
	}
	return nil
}

type InvitedToGuild struct {
	Name      string
	GuildName string
}

func (*InvitedToGuild) TypeName() string { return "InvitedToGuild" }
func (p *InvitedToGuild) Encode(w *Writer) error {
	if err := w.LPString16(p.Name); err != nil {
		return err
	}
	return w.LPString16(p.GuildName)
}
func (p *InvitedToGuild) Decode(r *Reader) error {
	var err error
	if p.Name, err = r.LPString16(); err != nil {
		return err
	}
	if p.GuildName, err = r.LPString16(); err != nil {
		return err
	}
	return nil
}

type TradeRequested struct {
	Name string
}

func (*TradeRequested) TypeName() string { return "TradeRequested" }
func (p *TradeRequested) Encode(w *Writer) error { return w.LPString16(p.Name) }
func (p *TradeRequested) Decode(r *Reader) error {
	v, err := r.LPString16()
	p.Name = v
	return err
}

type TradeDone struct {
	Code        uint32
	Description string
}

func (*TradeDone) TypeName() string { return "TradeDone" }
func (p *TradeDone) Encode(w *Writer) error {
	w.U32(p.Code)
	return w.LPString16(p.Description)
}
func (p *TradeDone) Decode(r *Reader) error {
	var err error
	if p.Code, err = r.U32(); err != nil {
		return err
	}
	if p.Description, err = r.LPString16(); err != nil {
		return err
	}
	return nil
}

type VerifyEmail struct{}

func (*VerifyEmail) TypeName() string        { return "VerifyEmail" }
func (*VerifyEmail) Encode(w *Writer) error   { w.Unit(); return nil }
func (*VerifyEmail) Decode(r *Reader) error   { r.Unit(); return nil }
