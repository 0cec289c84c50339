package codec

// StatType is the byte discriminator of a stat record (spec.md §3 "Stat
// records"). Names and values are fixed by the original protocol's
// client, not chosen here.
type StatType uint8

const (
	MaxHPStat                 StatType = 0
	HPStat                    StatType = 1
	SizeStat                  StatType = 2
	MaxMPStat                 StatType = 3
	MPStat                    StatType = 4
	NextExpStat               StatType = 5
	ExpStat                   StatType = 6
	LevelStat                 StatType = 7
	Inventory0Stat            StatType = 8
	Inventory1Stat            StatType = 9
	Inventory2Stat            StatType = 10
	Inventory3Stat            StatType = 11
	Inventory4Stat            StatType = 12
	Inventory5Stat            StatType = 13
	Inventory6Stat            StatType = 14
	Inventory7Stat            StatType = 15
	Inventory8Stat            StatType = 16
	Inventory9Stat            StatType = 17
	Inventory10Stat           StatType = 18
	Inventory11Stat           StatType = 19
	AttackStat                StatType = 20
	DefenseStat               StatType = 21
	SpeedStat                 StatType = 22
	VitalityStat              StatType = 26
	WisdomStat                StatType = 27
	DexterityStat             StatType = 28
	ConditionStat             StatType = 29
	NumStarsStat              StatType = 30
	NameStat                  StatType = 31
	Tex1Stat                  StatType = 32
	Tex2Stat                  StatType = 33
	MerchandiseTypeStat       StatType = 34
	CreditsStat               StatType = 35
	MerchandisePriceStat      StatType = 36
	ActiveStat                StatType = 37
	AccountIDStat             StatType = 38
	FameStat                  StatType = 39
	MerchandiseCurrencyStat   StatType = 40
	ConnectStat               StatType = 41
	MerchandiseCountStat      StatType = 42
	MerchandiseMinsLeftStat   StatType = 43
	MerchandiseDiscountStat   StatType = 44
	MerchandiseRankReqStat    StatType = 45
	MaxHPBoostStat            StatType = 46
	MaxMPBoostStat            StatType = 47
	AttackBoostStat           StatType = 48
	DefenseBoostStat          StatType = 49
	SpeedBoostStat            StatType = 50
	VitalityBoostStat         StatType = 51
	WisdomBoostStat           StatType = 52
	DexterityBoostStat        StatType = 53
	OwnerAccountIDStat        StatType = 54
	RankRequiredStat          StatType = 55
	NameChosenStat            StatType = 56
	CurrFameStat              StatType = 57
	NextClassQuestFameStat    StatType = 58
	LegendaryRankStat         StatType = 59
	SinkLevelStat             StatType = 60
	AltTextureStat            StatType = 61
	GuildNameStat             StatType = 62
	GuildRankStat             StatType = 63
	BreathStat                StatType = 64
	XPBoostedStat             StatType = 65
	XPTimerStat               StatType = 66
	LDTimerStat               StatType = 67
	LTTimerStat               StatType = 68
	HealthPotionStackStat     StatType = 69
	MagicPotionStackStat      StatType = 70
	Backpack0Stat             StatType = 71
	Backpack1Stat             StatType = 72
	Backpack2Stat             StatType = 73
	Backpack3Stat             StatType = 74
	Backpack4Stat             StatType = 75
	Backpack5Stat             StatType = 76
	Backpack6Stat             StatType = 77
	Backpack7Stat             StatType = 78
	HasBackpackStat           StatType = 79
	TextureStat               StatType = 80
	PetInstanceIDStat         StatType = 81
	PetNameStat               StatType = 82
	PetTypeStat               StatType = 83
	PetRarityStat             StatType = 84
	PetMaxAbilityPowerStat    StatType = 85
	PetFamilyStat             StatType = 86
	PetFirstAbilityPointStat  StatType = 87
	PetSecondAbilityPointStat StatType = 88
	PetThirdAbilityPointStat  StatType = 89
	PetFirstAbilityPowerStat  StatType = 90
	PetSecondAbilityPowerStat StatType = 91
	PetThirdAbilityPowerStat  StatType = 92
	PetFirstAbilityTypeStat   StatType = 93
	PetSecondAbilityTypeStat  StatType = 94
	PetThirdAbilityTypeStat   StatType = 95
	NewConStat                StatType = 96
	FortuneTokenStat          StatType = 97
	SupporterPointsStat       StatType = 98
	SupporterStat             StatType = 99
	ChallengerStarBGStat      StatType = 100
	ProjectileSpeedMultStat   StatType = 102
	ProjectileLifeMultStat    StatType = 103
)

// statValid and statString are built once at package init from the
// fixed catalog above, mirroring the source's byte-indexed lookup
// tables (VALID_TYPES / STRING_TYPES) rather than a switch per call.
var (
	statValid  [256]bool
	statString [256]bool
)

func init() {
	for _, s := range []struct {
		t        StatType
		isString bool
	}{
		{MaxHPStat, false}, {HPStat, false}, {SizeStat, false}, {MaxMPStat, false},
		{MPStat, false}, {NextExpStat, false}, {ExpStat, false}, {LevelStat, false},
		{Inventory0Stat, false}, {Inventory1Stat, false}, {Inventory2Stat, false},
		{Inventory3Stat, false}, {Inventory4Stat, false}, {Inventory5Stat, false},
		{Inventory6Stat, false}, {Inventory7Stat, false}, {Inventory8Stat, false},
		{Inventory9Stat, false}, {Inventory10Stat, false}, {Inventory11Stat, false},
		{AttackStat, false}, {DefenseStat, false}, {SpeedStat, false},
		{VitalityStat, false}, {WisdomStat, false}, {DexterityStat, false},
		{ConditionStat, false}, {NumStarsStat, false}, {NameStat, true},
		{Tex1Stat, false}, {Tex2Stat, false}, {MerchandiseTypeStat, false},
		{CreditsStat, false}, {MerchandisePriceStat, false}, {ActiveStat, false},
		{AccountIDStat, true}, {FameStat, false}, {MerchandiseCurrencyStat, false},
		{ConnectStat, false}, {MerchandiseCountStat, false}, {MerchandiseMinsLeftStat, false},
		{MerchandiseDiscountStat, false}, {MerchandiseRankReqStat, false},
		{MaxHPBoostStat, false}, {MaxMPBoostStat, false}, {AttackBoostStat, false},
		{DefenseBoostStat, false}, {SpeedBoostStat, false}, {VitalityBoostStat, false},
		{WisdomBoostStat, false}, {DexterityBoostStat, false}, {OwnerAccountIDStat, true},
		{RankRequiredStat, false}, {NameChosenStat, false}, {CurrFameStat, false},
		{NextClassQuestFameStat, false}, {LegendaryRankStat, false}, {SinkLevelStat, false},
		{AltTextureStat, false}, {GuildNameStat, true}, {GuildRankStat, false},
		{BreathStat, false}, {XPBoostedStat, false}, {XPTimerStat, false},
		{LDTimerStat, false}, {LTTimerStat, false}, {HealthPotionStackStat, false},
		{MagicPotionStackStat, false}, {Backpack0Stat, false}, {Backpack1Stat, false},
		{Backpack2Stat, false}, {Backpack3Stat, false}, {Backpack4Stat, false},
		{Backpack5Stat, false}, {Backpack6Stat, false}, {Backpack7Stat, false},
		{HasBackpackStat, false}, {TextureStat, false}, {PetInstanceIDStat, false},
		{PetNameStat, true}, {PetTypeStat, false}, {PetRarityStat, false},
		{PetMaxAbilityPowerStat, false}, {PetFamilyStat, false},
		{PetFirstAbilityPointStat, false}, {PetSecondAbilityPointStat, false},
		{PetThirdAbilityPointStat, false}, {PetFirstAbilityPowerStat, false},
		{PetSecondAbilityPowerStat, false}, {PetThirdAbilityPowerStat, false},
		{PetFirstAbilityTypeStat, false}, {PetSecondAbilityTypeStat, false},
		{PetThirdAbilityTypeStat, false}, {NewConStat, false}, {FortuneTokenStat, false},
		{SupporterPointsStat, false}, {SupporterStat, false}, {ChallengerStarBGStat, false},
		{ProjectileSpeedMultStat, false}, {ProjectileLifeMultStat, false},
	} {
		statValid[s.t] = true
		statString[s.t] = s.isString
	}
}

// StatTypeFromByte resolves a wire tag to a StatType, or
// UnknownStatType if the tag names no known stat.
func StatTypeFromByte(tag byte) (StatType, error) {
	if !statValid[tag] {
		return 0, errUnknownStatType(tag)
	}
	return StatType(tag), nil
}

func (t StatType) IsString() bool { return statString[t] }

// StatData is a decoded stat record: tag plus either an int32 or string
// payload, per the tag's fixed classification.
type StatData struct {
	Type        StatType
	IntValue    int32
	StringValue string
}

func IntStat(t StatType, v int32) StatData    { return StatData{Type: t, IntValue: v} }
func StringStat(t StatType, v string) StatData { return StatData{Type: t, StringValue: v} }

func (s StatData) Encode(w *Writer) error {
	w.U8(uint8(s.Type))
	if s.Type.IsString() {
		return w.LPString16(s.StringValue)
	}
	w.I32(s.IntValue)
	return nil
}

func (s *StatData) Decode(r *Reader) error {
	tag, err := r.U8()
	if err != nil {
		return err
	}
	t, err := StatTypeFromByte(tag)
	if err != nil {
		return err
	}
	s.Type = t
	if t.IsString() {
		str, err := r.LPString16()
		if err != nil {
			return err
		}
		s.StringValue = str
		return nil
	}
	v, err := r.I32()
	if err != nil {
		return err
	}
	s.IntValue = v
	return nil
}
